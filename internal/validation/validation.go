package validation

import (
	"unicode/utf8"
)

// MaxKeywordLength is the longest keyword, in characters, accepted for analysis.
const MaxKeywordLength = 200

// IsEmptyKeyword reports whether the analyze action should be skipped.
// Only the empty string counts; whitespace is a keyword like any other.
func IsEmptyKeyword(keyword string) bool {
	return keyword == ""
}

// ValidateKeyword checks a non-empty keyword is valid UTF-8 and not too long.
// Returns a user-facing message when it is not.
func ValidateKeyword(keyword string) (bool, string) {
	if !utf8.ValidString(keyword) {
		return false, "Keyword must be valid UTF-8 text"
	}
	if utf8.RuneCountInString(keyword) > MaxKeywordLength {
		return false, "Keyword must be at most 200 characters"
	}
	return true, ""
}
