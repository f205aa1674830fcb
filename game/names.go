package game

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title renders ids like "thick-fat" or "fire" as "Thick Fat" and "Fire".
// A Caser keeps state between calls, so each call gets its own.
func Title(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.TrimSpace(s), "-", " "))
}
