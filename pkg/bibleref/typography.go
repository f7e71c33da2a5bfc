package bibleref

import "regexp"

// NBSP is the non-breaking space inserted by TweakSpacing.
const NBSP = "\u00a0"

var (
	leadingWordSpace = regexp.MustCompile(`^([123]|Song) `)
	trailingNumSpace = regexp.MustCompile(`([a-z]) ([0-9]+)$`)
)

// TweakSpacing replaces some spaces in the display form of a reference with
// non-breaking spaces (shown as _ here):
//
//  1. A book number stays with the name: "1 John" becomes "1_John".
//  2. "Song of Solomon" becomes "Song_of Solomon".
//  3. "verse N" becomes "verse_N".
//  4. With book and chapter only, the chapter stays with the name: "Judges 6"
//     becomes "Judges_6".
//
// All other spaces are left alone. This is meant to be applied once.
func TweakSpacing(display string) string {
	display = leadingWordSpace.ReplaceAllString(display, "${1}"+NBSP)
	display = trailingNumSpace.ReplaceAllString(display, "${1}"+NBSP+"${2}")
	return display
}
