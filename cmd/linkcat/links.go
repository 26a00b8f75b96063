package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joestump/linkcat/internal/store"
)

func newLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Create, read, update, delete, and search links",
	}
	cmd.AddCommand(
		newLinksCreateCmd(),
		newLinksGetCmd(),
		newLinksListCmd(),
		newLinksUpdateCmd(),
		newLinksDeleteCmd(),
		newLinksSearchCmd(),
	)
	return cmd
}

// withStore opens a LinkStore for the duration of fn.
func withStore(fn func(s *store.LinkStore) error) error {
	database, err := openDriver()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()
	return fn(store.NewLinkStore(database))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// linkKey is either a positional id or a --url flag.
type linkKey struct {
	id  int64
	url string
}

func parseKey(args []string, url string) (linkKey, error) {
	switch {
	case len(args) == 1 && url == "":
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return linkKey{}, fmt.Errorf("invalid link id %q", args[0])
		}
		return linkKey{id: id}, nil
	case len(args) == 0 && url != "":
		return linkKey{url: url}, nil
	default:
		return linkKey{}, errors.New("pass either a link id or --url")
	}
}

func optionalString(cmd *cobra.Command, flag string) *string {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	v, _ := cmd.Flags().GetString(flag)
	return &v
}

func newLinksCreateCmd() *cobra.Command {
	var l store.NewLink
	var lang string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a link and print its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			l.Language = store.Language(lang)
			l.ImageLink = optionalString(cmd, "image-link")
			l.Description = optionalString(cmd, "description")
			return withStore(func(s *store.LinkStore) error {
				id, err := s.Create(cmd.Context(), l)
				if err != nil {
					return err
				}
				return printJSON(cmd, map[string]int64{"id": id})
			})
		},
	}
	cmd.Flags().StringVar(&l.URL, "url", "", "link URL")
	cmd.Flags().StringVar(&l.Title, "title", "", "link title")
	cmd.Flags().StringVar(&lang, "lang", "", "link language (en, fr)")
	cmd.Flags().String("image-link", "", "image URL")
	cmd.Flags().String("description", "", "description")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("lang")
	return cmd
}

func newLinksGetCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Print a link by id or --url",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args, url)
			if err != nil {
				return err
			}
			return withStore(func(s *store.LinkStore) error {
				var l *store.Link
				if key.url != "" {
					l, err = s.GetByURL(cmd.Context(), key.url)
				} else {
					l, err = s.GetByID(cmd.Context(), key.id)
				}
				if err != nil {
					return err
				}
				return printJSON(cmd, l)
			})
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "look the link up by URL")
	return cmd
}

func newLinksListCmd() *cobra.Command {
	var opts store.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List links by creation time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("limit") {
				n, _ := cmd.Flags().GetInt("limit")
				opts.Limit = store.Some(n)
			}
			if cmd.Flags().Changed("offset") {
				n, _ := cmd.Flags().GetInt("offset")
				opts.Offset = store.Some(n)
			}
			return withStore(func(s *store.LinkStore) error {
				links, err := s.List(cmd.Context(), opts)
				if err != nil {
					return err
				}
				return printJSON(cmd, links)
			})
		},
	}
	cmd.Flags().StringVar(&opts.Order, "order", store.OrderAsc, "asc or desc")
	cmd.Flags().Int("limit", 0, "maximum number of links")
	cmd.Flags().Int("offset", 0, "number of links to skip")
	return cmd
}

func newLinksUpdateCmd() *cobra.Command {
	var url string
	var clearFields []string
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Replace the given fields of a link and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args, url)
			if err != nil {
				return err
			}

			var p store.Patch
			if v := optionalString(cmd, "title"); v != nil {
				p.Title = store.Some(*v)
			}
			if v := optionalString(cmd, "lang"); v != nil {
				p.Language = store.Some(store.Language(*v))
			}
			if v := optionalString(cmd, "description"); v != nil {
				p.Description = store.Some(v)
			}
			if v := optionalString(cmd, "image-link"); v != nil {
				p.ImageLink = store.Some(v)
			}
			for _, field := range clearFields {
				switch strings.TrimSpace(field) {
				case "description":
					p.Description = store.Some[*string](nil)
				case "image-link":
					p.ImageLink = store.Some[*string](nil)
				default:
					return fmt.Errorf("cannot clear %q: only description and image-link are optional", field)
				}
			}

			return withStore(func(s *store.LinkStore) error {
				var l *store.Link
				if key.url != "" {
					l, err = s.UpdateByURL(cmd.Context(), key.url, p)
				} else {
					l, err = s.UpdateByID(cmd.Context(), key.id, p)
				}
				if err != nil {
					return err
				}
				return printJSON(cmd, l)
			})
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "update the link stored for this URL")
	cmd.Flags().String("title", "", "new title")
	cmd.Flags().String("lang", "", "new language (en, fr)")
	cmd.Flags().String("description", "", "new description")
	cmd.Flags().String("image-link", "", "new image URL")
	cmd.Flags().StringSliceVar(&clearFields, "clear", nil, "optional fields to set to null (description, image-link)")
	return cmd
}

func newLinksDeleteCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a link by id or --url",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args, url)
			if err != nil {
				return err
			}
			return withStore(func(s *store.LinkStore) error {
				if key.url != "" {
					return s.DeleteByURL(cmd.Context(), key.url)
				}
				return s.DeleteByID(cmd.Context(), key.id)
			})
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "delete the links stored for this URL")
	return cmd
}

func newLinksSearchCmd() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search links in one language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(s *store.LinkStore) error {
				links, err := s.Search(cmd.Context(), strings.Join(args, " "), store.Language(lang))
				if err != nil {
					return err
				}
				return printJSON(cmd, links)
			})
		},
	}
	cmd.Flags().StringVar(&lang, "lang", string(store.English), "search language (en, fr)")
	return cmd
}
