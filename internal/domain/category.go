package domain

import (
	"strings"
	"unicode/utf8"
)

// Category is the one-letter booking domain code stored in Booking.category.
type Category string

const (
	CategoryMovie Category = "m"
	CategorySport Category = "s"
	CategoryEvent Category = "e"
)

// categorySynonyms is read-only after package init.
var categorySynonyms = map[string]Category{
	"m":      CategoryMovie,
	"mov":    CategoryMovie,
	"movie":  CategoryMovie,
	"movies": CategoryMovie,

	"s":       CategorySport,
	"sport":   CategorySport,
	"sports":  CategorySport,
	"match":   CategorySport,
	"matches": CategorySport,

	"e":         CategoryEvent,
	"event":     CategoryEvent,
	"events":    CategoryEvent,
	"workshop":  CategoryEvent,
	"workshops": CategoryEvent,
}

// AcceptedCategoryHint lists the booking types a client may send.
const AcceptedCategoryHint = "movie, sport, or event/workshop"

// NormalizeCategory maps a free-form booking type to its category code.
// Unknown words fall back to their first character, so "Sandwich" resolves
// to a sport booking.
func NormalizeCategory(raw string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if c, ok := categorySynonyms[key]; ok {
		return c, nil
	}
	if key != "" {
		r, _ := utf8.DecodeRuneInString(key)
		if c, ok := categorySynonyms[string(r)]; ok {
			return c, nil
		}
	}
	return "", UnsupportedCategoryError{Input: raw}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryMovie, CategorySport, CategoryEvent:
		return true
	}
	return false
}

// Label returns a human readable name, used on tickets.
func (c Category) Label() string {
	switch c {
	case CategoryMovie:
		return "Movie"
	case CategorySport:
		return "Sport"
	case CategoryEvent:
		return "Event"
	default:
		return string(c)
	}
}
