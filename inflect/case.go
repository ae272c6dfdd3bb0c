package inflect

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
	dashOrSpace     = regexp.MustCompile(`[-\s]`)
	wordStart       = regexp.MustCompile(`\b[a-z]`)
	pascalStart     = regexp.MustCompile(`(?:^|_).`)
)

// Casers hold state, so each call gets its own.
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func lower(s string) string { return cases.Lower(language.Und).String(s) }

func splitFirst(s string) (string, string) {
	_, size := utf8.DecodeRuneInString(s)

	return s[:size], s[size:]
}

// Titleize turns "ActiveRecord" or "active_record" into "Active Record".
func Titleize(word string) string {
	return wordStart.ReplaceAllStringFunc(Humanize(Underscore(word)), upper)
}

// Humanize turns "employee_salary" into "Employee salary".
func Humanize(lowercaseAndUnderscoredWord string) string {
	return Capitalize(strings.ReplaceAll(lowercaseAndUnderscoredWord, "_", " "))
}

// Pascalize turns "active_record" into "ActiveRecord".
func Pascalize(lowercaseAndUnderscoredWord string) string {
	return pascalStart.ReplaceAllStringFunc(lowercaseAndUnderscoredWord, func(match string) string {
		if utf8.RuneCountInString(match) > 1 {
			match = strings.TrimPrefix(match, "_")
		}

		return upper(match)
	})
}

// Camelize turns "active_record" into "activeRecord".
func Camelize(lowercaseAndUnderscoredWord string) string {
	return Uncapitalize(Pascalize(lowercaseAndUnderscoredWord))
}

// Underscore turns "ActiveRecord", "HTMLParser" or "dash-case" into
// snake_case.
func Underscore(pascalCasedWord string) string {
	s := acronymBoundary.ReplaceAllString(pascalCasedWord, "${1}_${2}")
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	s = dashOrSpace.ReplaceAllString(s, "_")

	return lower(s)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(word string) string {
	head, tail := splitFirst(word)

	return upper(head) + lower(tail)
}

// Uncapitalize lower-cases the first letter and leaves the rest alone.
func Uncapitalize(word string) string {
	head, tail := splitFirst(word)

	return lower(head) + tail
}

// Dasherize replaces underscores with dashes.
func Dasherize(underscoredWord string) string {
	return strings.ReplaceAll(underscoredWord, "_", "-")
}

// Ordinalize turns 1 into "1st", 12 into "12th", 22 into "22nd".
func Ordinalize(number int) string {
	return strconv.Itoa(number) + ordinalSuffix(number)
}

// OrdinalizeString is Ordinalize for a number held in a string. The input is
// kept as written, so "007" becomes "007th".
func OrdinalizeString(number string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		return "", err
	}

	return number + ordinalSuffix(n), nil
}

func ordinalSuffix(number int) string {
	if mod := number % 100; mod >= 11 && mod <= 13 {
		return "th"
	}

	switch number % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
