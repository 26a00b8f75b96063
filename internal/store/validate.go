package store

import "strings"

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SupportedLanguages lists the languages a link may be stored and searched in.
var SupportedLanguages = []Language{English, French}

// ValidateLanguage checks that lang is one of SupportedLanguages.
func ValidateLanguage(lang Language) error {
	for _, l := range SupportedLanguages {
		if lang == l {
			return nil
		}
	}
	return validationError("Invalid language '%s', language must be either 'en' or 'fr'", lang)
}

// orderDirection maps a list order to its SQL keyword. An empty order means asc.
func orderDirection(order string) (string, error) {
	switch order {
	case "", OrderAsc:
		return "ASC", nil
	case OrderDesc:
		return "DESC", nil
	default:
		return "", validationError("order must have value of either asc or desc")
	}
}

// searchTerms splits q into words, dropping tokens with no letter or digit.
func searchTerms(q string) []string {
	var terms []string
	for _, f := range strings.Fields(q) {
		if strings.IndexFunc(f, isWordRune) >= 0 {
			terms = append(terms, f)
		}
	}
	return terms
}
