package bibleref

import (
	"fmt"
	"regexp"
)

// BaseURL is the location of the translation all references link into.
const BaseURL = "https://ebible.org/engwebpb/"

// referenceParser accepts a book name, optionally prefixed by a number, then
// an optional chapter, then either ":verse" or an en-dash chapter range.
// Whatever follows the first verse is allowed but ignored for linking.
var referenceParser = regexp.MustCompile(`^((?:[123] )?[A-Za-z ]+)(?: (\d+)(?::(\d+).*|–\d+.*)?)?$`)

// Reference is a parsed scripture reference. Chapter is always set. Verse is
// empty when the reference names a whole chapter.
type Reference struct {
	Book    string
	Chapter string
	Verse   string
}

// HasVerse returns true if the reference points at a particular verse.
func (r Reference) HasVerse() bool {
	return r.Verse != ""
}

// String renders the reference in canonical form, e.g. "Genesis 1:1" or
// "Judges 6".
func (r Reference) String() string {
	if r.HasVerse() {
		return r.Book + " " + r.Chapter + ":" + r.Verse
	}
	return r.Book + " " + r.Chapter
}

// Path returns the chapter file and verse anchor relative to BaseURL, e.g.
// "GEN01.htm#V1".
func (r Reference) Path() (string, error) {
	b, err := LookupBook(r.Book)
	if err != nil {
		return "", err
	}

	p := b.chapterFile(r.Chapter)
	if r.HasVerse() {
		p += "#V" + r.Verse
	}

	return p, nil
}

// Href returns the absolute URL of the reference.
func (r Reference) Href() (string, error) {
	p, err := r.Path()
	if err != nil {
		return "", err
	}
	return BaseURL + p, nil
}

// Parse turns a reference like "Song of Solomon 2:17" or "Obadiah 12" into a
// Reference. The book name is not checked against the book table here.
//
// For books with a single chapter, the only number given is the verse and
// giving both chapter and verse is an error.
func Parse(raw string) (Reference, error) {
	m := referenceParser.FindStringSubmatch(raw)
	if m == nil {
		return Reference{}, fmt.Errorf("%w: %s", ErrMalformedReference, raw)
	}

	book, first, second := m[1], m[2], m[3]

	if IsSingleChapter(book) {
		if second != "" {
			return Reference{}, fmt.Errorf("%w: %s", ErrChapterNotAllowed, book)
		}

		return Reference{
			Book:    book,
			Chapter: "1",
			Verse:   first,
		}, nil
	}

	chapter := first
	if chapter == "" {
		chapter = "1"
	}

	return Reference{
		Book:    book,
		Chapter: chapter,
		Verse:   second,
	}, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(raw string) Reference {
	r, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return r
}
