package bibleref

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zostay/go-std/set"
)

var (
	ErrUnknownBook        = errors.New("not a known book name")
	ErrMalformedReference = errors.New("unable to parse scripture reference")
	ErrChapterNotAllowed  = errors.New("book has one chapter only; omit the chapter number")
)

// Book is a single entry in the book table.
type Book struct {
	name      string
	code      string
	justVerse bool
}

// Name returns the canonical name of the book.
func (b *Book) Name() string {
	return b.name
}

// Code returns the site code of the book as given in the table. For Psalms,
// prefer SiteCode, which knows about chapter numbering.
func (b *Book) Code() string {
	return b.code
}

// SingleChapter returns true for books that have exactly one chapter. These
// are referenced by verse number alone.
func (b *Book) SingleChapter() bool {
	return b.justVerse
}

// SiteCode returns the code used to build the chapter file name on the
// reference site. Psalms 1-99 are stored under an extra zero, so their code
// carries it.
func (b *Book) SiteCode(chapter string) string {
	if b.code == "PSA" && len(chapter) < 3 {
		return "PSA0"
	}
	return b.code
}

// books is the table of the 66 books in canonical order. Callers get copies
// through AllBooks and LookupBook.
var books = []Book{
	{name: "Genesis", code: "GEN"},
	{name: "Exodus", code: "EXO"},
	{name: "Leviticus", code: "LEV"},
	{name: "Numbers", code: "NUM"},
	{name: "Deuteronomy", code: "DEU"},
	{name: "Joshua", code: "JOS"},
	{name: "Judges", code: "JDG"},
	{name: "Ruth", code: "RUT"},
	{name: "1 Samuel", code: "1SA"},
	{name: "2 Samuel", code: "2SA"},
	{name: "1 Kings", code: "1KI"},
	{name: "2 Kings", code: "2KI"},
	{name: "1 Chronicles", code: "1CH"},
	{name: "2 Chronicles", code: "2CH"},
	{name: "Ezra", code: "EZR"},
	{name: "Nehemiah", code: "NEH"},
	{name: "Esther", code: "EST"},
	{name: "Job", code: "JOB"},
	{name: "Psalms", code: "PSA"},
	{name: "Proverbs", code: "PRO"},
	{name: "Ecclesiastes", code: "ECC"},
	{name: "Song of Solomon", code: "SNG"},
	{name: "Isaiah", code: "ISA"},
	{name: "Jeremiah", code: "JER"},
	{name: "Lamentations", code: "LAM"},
	{name: "Ezekiel", code: "EZK"},
	{name: "Daniel", code: "DAN"},
	{name: "Hosea", code: "HOS"},
	{name: "Joel", code: "JOL"},
	{name: "Amos", code: "AMO"},
	{name: "Obadiah", code: "OBA", justVerse: true},
	{name: "Jonah", code: "JON"},
	{name: "Micah", code: "MIC"},
	{name: "Nahum", code: "NAM"},
	{name: "Habakkuk", code: "HAB"},
	{name: "Zephaniah", code: "ZEP"},
	{name: "Haggai", code: "HAG"},
	{name: "Zechariah", code: "ZEC"},
	{name: "Malachi", code: "MAL"},
	{name: "Matthew", code: "MAT"},
	{name: "Mark", code: "MRK"},
	{name: "Luke", code: "LUK"},
	{name: "John", code: "JHN"},
	{name: "Acts", code: "ACT"},
	{name: "Romans", code: "ROM"},
	{name: "1 Corinthians", code: "1CO"},
	{name: "2 Corinthians", code: "2CO"},
	{name: "Galatians", code: "GAL"},
	{name: "Ephesians", code: "EPH"},
	{name: "Philippians", code: "PHP"},
	{name: "Colossians", code: "COL"},
	{name: "1 Thessalonians", code: "1TH"},
	{name: "2 Thessalonians", code: "2TH"},
	{name: "1 Timothy", code: "1TI"},
	{name: "2 Timothy", code: "2TI"},
	{name: "Titus", code: "TIT"},
	{name: "Philemon", code: "PHM", justVerse: true},
	{name: "Hebrews", code: "HEB"},
	{name: "James", code: "JAS"},
	{name: "1 Peter", code: "1PE"},
	{name: "2 Peter", code: "2PE"},
	{name: "1 John", code: "1JN"},
	{name: "2 John", code: "2JN", justVerse: true},
	{name: "3 John", code: "3JN", justVerse: true},
	{name: "Jude", code: "JUD", justVerse: true},
	{name: "Revelation", code: "REV"},
}

var (
	// bookAliases maps alternate spellings that are accepted exactly onto the
	// canonical name in books.
	bookAliases = map[string]string{
		"Psalm": "Psalms",
	}

	// bookIndex is the name lookup for books, including aliases
	bookIndex map[string]*Book

	// singleChapter names the books that have no chapter divisions
	singleChapter set.Set[string]
)

func init() {
	bookIndex = make(map[string]*Book, len(books)+len(bookAliases))
	names := make([]string, 0, 5)
	for i := range books {
		b := &books[i]
		bookIndex[b.name] = b
		if b.justVerse {
			names = append(names, b.name)
		}
	}

	for alias, name := range bookAliases {
		bookIndex[alias] = bookIndex[name]
	}

	singleChapter = set.New(names...)
}

// AllBooks returns a copy of the book table in canonical order.
func AllBooks() []Book {
	bs := make([]Book, len(books))
	copy(bs, books)
	return bs
}

// IsSingleChapter returns true if the name is one of the books that have only
// one chapter.
func IsSingleChapter(name string) bool {
	return singleChapter.Contains(name)
}

// LookupBook finds the book with exactly the given name and returns a copy of
// its entry. No abbreviations or case folding are performed.
func LookupBook(name string) (*Book, error) {
	if b, ok := bookIndex[name]; ok {
		c := *b
		return &c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownBook, name)
}

// SiteCode looks up the book by name and returns the site code for the given
// chapter.
func SiteCode(name, chapter string) (string, error) {
	b, err := LookupBook(name)
	if err != nil {
		return "", err
	}
	return b.SiteCode(chapter), nil
}

// padChapter pads single digit chapters with a leading zero.
func padChapter(chapter string) string {
	if len(chapter) == 1 {
		return "0" + chapter
	}
	return chapter
}

// chapterFile returns the file name for a chapter on the reference site.
func (b *Book) chapterFile(chapter string) string {
	var sb strings.Builder
	sb.WriteString(b.SiteCode(chapter))
	sb.WriteString(padChapter(chapter))
	sb.WriteString(".htm")
	return sb.String()
}
