package store

// Opt is a field that is either absent or present with a value. For pointer
// types a present nil is an explicit NULL, distinct from absent.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// Patch lists the mutable fields of a link to replace. Absent fields are left
// untouched; updated_on is refreshed regardless.
type Patch struct {
	Title       Opt[string]
	Description Opt[*string]
	ImageLink   Opt[*string]
	Language    Opt[Language]
}

// assignments returns the SET clauses and bound values for the present fields,
// in a fixed column order.
func (p Patch) assignments() ([]string, []any) {
	var sets []string
	var args []any
	if v, ok := p.Title.Get(); ok {
		sets = append(sets, "title = ?")
		args = append(args, v)
	}
	if v, ok := p.Description.Get(); ok {
		sets = append(sets, "description = ?")
		args = append(args, v)
	}
	if v, ok := p.ImageLink.Get(); ok {
		sets = append(sets, "image_link = ?")
		args = append(args, v)
	}
	if v, ok := p.Language.Get(); ok {
		sets = append(sets, "language = ?")
		args = append(args, string(v))
	}
	return sets, args
}
