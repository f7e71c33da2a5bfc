// Package bibleref turns ★-delimited scripture references in text into links
// to the World English Bible on ebible.org.
package bibleref

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ReferenceClass is the CSS class placed on every rewritten reference.
const ReferenceClass = "bible-reference"

// Marker opens and closes a citation in running text.
const Marker = "★"

var (
	// citations finds ★display★ or ★display <reference>★ in running text. The
	// angle brackets may already be escaped when the text went through
	// markdown first.
	citations = regexp.MustCompile(`★(.*?)(?: (?:&lt;|<)(.*?)(?:&gt;|>))?★`)

	// bareCitation is the same as citations, but the whole string is the
	// citation.
	bareCitation = regexp.MustCompile(`^(.*?)(?: (?:&lt;|<)(.*?)(?:&gt;|>))?$`)
)

// Citation is a single reference found in text.
type Citation struct {
	Span      string // the whole matched text, markers included
	Display   string // the text the reader sees
	Reference string // the reference to link to, same as Display unless overridden
}

// HasTitle returns true when the reference was given separately from the
// display text, in which case the output carries it as a title.
func (c Citation) HasTitle() bool {
	return c.Reference != c.Display
}

func newCitation(m []string) Citation {
	c := Citation{
		Span:      m[0],
		Display:   m[1],
		Reference: m[2],
	}
	if c.Reference == "" {
		c.Reference = c.Display
	}
	return c
}

// CitationError reports a citation that could not be turned into a link.
type CitationError struct {
	Filter    string // name of the operation reporting the error
	Reference string // the reference that failed
	Span      string // the full citation the reference came from
	Book      string // the detected book name, if parsing got that far
	Err       error  // one of ErrMalformedReference, ErrUnknownBook, or ErrChapterNotAllowed
}

func (e *CitationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrChapterNotAllowed):
		return fmt.Sprintf("%s has one chapter only; omit the chapter number (filter `%s` couldn't cope in `%s`)",
			e.Book, e.Filter, e.Span)
	case errors.Is(e.Err, ErrUnknownBook):
		return fmt.Sprintf("filter `%s` couldn't cope with the reference `%s` (in `%s`; detected book name `%s`, but that's not a known book name)",
			e.Filter, e.Reference, e.Span, e.Book)
	default:
		return fmt.Sprintf("filter `%s` couldn't parse the reference `%s` (in `%s`)",
			e.Filter, e.Reference, e.Span)
	}
}

func (e *CitationError) Unwrap() error {
	return e.Err
}

type rewriteOpts struct {
	link   bool
	filter string
}

// Option changes how citations are rewritten.
type Option func(*rewriteOpts)

// WithLink selects between an anchor (true, the default) and a plain span
// (false).
func WithLink(link bool) Option {
	return func(o *rewriteOpts) {
		o.link = link
	}
}

// WithFilterName sets the name reported in CitationError.
func WithFilterName(name string) Option {
	return func(o *rewriteOpts) {
		o.filter = name
	}
}

func makeOpts(filter string, opt []Option) *rewriteOpts {
	o := &rewriteOpts{link: true, filter: filter}
	for _, f := range opt {
		f(o)
	}
	return o
}

// FindCitations returns every ★-delimited citation in text, in order.
func FindCitations(text string) []Citation {
	ms := citations.FindAllStringSubmatch(text, -1)
	cs := make([]Citation, len(ms))
	for i, m := range ms {
		cs[i] = newCitation(m)
	}
	return cs
}

// Rewrite replaces every ★-delimited citation in text with a link to the
// passage. The first citation that cannot be resolved aborts the rewrite and
// its *CitationError is returned.
func Rewrite(text string, opt ...Option) (string, error) {
	return rewriteWith(citations, text, makeOpts("bible_refs", opt))
}

// RewriteBare is like Rewrite, but treats the whole of text as a single
// citation without markers. Text spanning more than one line is malformed.
func RewriteBare(text string, opt ...Option) (string, error) {
	o := makeOpts("bible_ref", opt)
	if !bareCitation.MatchString(text) {
		return "", &CitationError{
			Filter:    o.filter,
			Reference: text,
			Span:      text,
			Err:       ErrMalformedReference,
		}
	}
	return rewriteWith(bareCitation, text, o)
}

func rewriteWith(re *regexp.Regexp, text string, o *rewriteOpts) (string, error) {
	var (
		out  strings.Builder
		last int
	)
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		c := newCitation(submatches(text, loc))
		frag, err := Format(c, o.link, o.filter)
		if err != nil {
			return "", err
		}

		out.WriteString(text[last:loc[0]])
		out.WriteString(frag)
		last = loc[1]
	}
	out.WriteString(text[last:])

	return out.String(), nil
}

func submatches(text string, loc []int) []string {
	m := make([]string, len(loc)/2)
	for i := range m {
		if loc[2*i] >= 0 {
			m[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return m
}

// resolve parses and looks up the citation reference.
func resolve(c Citation, filter string) (Reference, string, error) {
	ref, err := Parse(c.Reference)
	if err != nil {
		cerr := &CitationError{
			Filter:    filter,
			Reference: c.Reference,
			Span:      c.Span,
			Err:       ErrMalformedReference,
		}
		if errors.Is(err, ErrChapterNotAllowed) {
			cerr.Err = ErrChapterNotAllowed
			cerr.Book = referenceParser.FindStringSubmatch(c.Reference)[1]
		}
		return Reference{}, "", cerr
	}

	href, err := ref.Href()
	if err != nil {
		return Reference{}, "", &CitationError{
			Filter:    filter,
			Reference: c.Reference,
			Span:      c.Span,
			Book:      ref.Book,
			Err:       ErrUnknownBook,
		}
	}

	return ref, href, nil
}

// Format renders a single citation as an anchor (when link is true) or a span.
func Format(c Citation, link bool, filter string) (string, error) {
	_, href, err := resolve(c, filter)
	if err != nil {
		return "", err
	}

	var title string
	if c.HasTitle() {
		title = ` title="` + c.Reference + `"`
	}

	display := TweakSpacing(c.Display)

	if link {
		return `<a class=` + ReferenceClass + ` href="` + href + `"` + title + `>` + display + `</a>`, nil
	}
	return `<span class=` + ReferenceClass + title + `>` + display + `</span>`, nil
}
