package drugstock

import (
	"regexp"
	"strings"
	"unicode"
)

var productIDPattern = regexp.MustCompile(`productId\s*=\s*(\d+)`)

// MatchProductID searches free-form script text for an assignment of the
// form "productId = 123" and returns the first captured number.
func MatchProductID(text string) (string, bool) {
	m := productIDPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// DigitsOnly drops every rune of s that is not a decimal digit.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
