package domain

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is the club found for a question together with the city that
// matched.
type Match struct {
	City string
	Club ClubRecord
}

// Extract returns the club of the first city named in question as a whole
// word, ignoring case. Longer city names are tried first so that a more
// specific name wins over one it contains; ties are broken alphabetically.
func (idx CityClubIndex) Extract(question string) (Match, error) {
	for _, city := range sortedCandidates(idx) {
		if containsWholeWord(question, city) {
			return Match{City: city, Club: idx[city]}, nil
		}
	}

	return Match{}, &InvalidInputError{Message: invalidCityMessage}
}

func sortedCandidates(idx CityClubIndex) []string {
	cities := make([]string, 0, len(idx))
	for city := range idx {
		if strings.TrimSpace(city) == "" {
			continue
		}
		cities = append(cities, city)
	}

	sort.Slice(cities, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(cities[i]), utf8.RuneCountInString(cities[j])
		if li != lj {
			return li > lj
		}
		return cities[i] < cities[j]
	})

	return cities
}

// containsWholeWord reports whether word occurs in text, case-insensitively,
// with no word character directly before or after it. Word characters are
// Unicode letters, digits and '_', so "Köln" is bounded in "Köln?" while
// "Munich" is not bounded in "Munichville".
func containsWholeWord(text, word string) bool {
	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(word))
	if err != nil {
		return false
	}

	first, _ := utf8.DecodeRuneInString(word)
	last, _ := utf8.DecodeLastRuneInString(word)

	// Candidates may overlap, so a rejected match only advances the search
	// by one rune.
	for start := 0; start < len(text); {
		loc := pattern.FindStringIndex(text[start:])
		if loc == nil {
			return false
		}
		begin, end := start+loc[0], start+loc[1]

		if bounded(text, begin, end, first, last) {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[begin:])
		start = begin + max(size, 1)
	}

	return false
}

func bounded(text string, begin, end int, first, last rune) bool {
	if isWordRune(first) && begin > 0 {
		before, _ := utf8.DecodeLastRuneInString(text[:begin])
		if isWordRune(before) {
			return false
		}
	}
	if isWordRune(last) && end < len(text) {
		after, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(after) {
			return false
		}
	}

	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
