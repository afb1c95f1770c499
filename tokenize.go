/*
File: tokenize.go
Version: 1.0.0
Description: URL normalization into lowercase alphanumeric word tokens.
*/

package main

import (
	"regexp"
	"strings"
)

// Every rune outside [a-z0-9] is a separator, including non-ASCII runes and
// invalid UTF-8 bytes.
var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]`)

// CleanURL lowercases a URL line, blanks out every non-alphanumeric rune and
// returns the remaining words in order. Empty segments are dropped.
func CleanURL(url string) []string {
	s := nonAlnumRe.ReplaceAllLiteralString(strings.ToLower(url), " ")
	return strings.Fields(s)
}
