// Package filters provides the functions available to templates, including
// the scripture reference rewriting.
package filters

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/zostay/bible-refs/pkg/bibleref"
)

// md is configured with tables, footnotes, and strikethrough. Raw HTML is
// passed through.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Footnote,
		extension.Strikethrough,
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// flag returns the first of the optional boolean arguments or def.
func flag(name, arg string, def bool, opts []bool) (bool, error) {
	switch len(opts) {
	case 0:
		return def, nil
	case 1:
		return opts[0], nil
	default:
		return false, fmt.Errorf("filter `%s` expected at most one `%s` argument", name, arg)
	}
}

// BibleRefs rewrites the ★-delimited references in s. The optional argument
// turns linking off when false.
func BibleRefs(s string, link ...bool) (string, error) {
	l, err := flag("bible_refs", "link", true, link)
	if err != nil {
		return "", err
	}
	return bibleref.Rewrite(s, bibleref.WithLink(l))
}

// BibleRef rewrites s, which is a single reference without markers.
func BibleRef(s string, link ...bool) (string, error) {
	l, err := flag("bible_ref", "link", true, link)
	if err != nil {
		return "", err
	}
	return bibleref.RewriteBare(s, bibleref.WithLink(l))
}

// ReplaceAll replaces every match of the regular expression in s with rep,
// which may refer to groups as $1 or ${name}.
func ReplaceAll(s, regex, rep string) (string, error) {
	re, err := regexp.Compile(regex)
	if err != nil {
		return "", fmt.Errorf("filter `replace_all`: invalid regular expression: %w", err)
	}
	return re.ReplaceAllString(s, rep), nil
}

// Markdown converts s to HTML. When inline is true, the paragraph wrapped
// around a single line of text is removed.
func Markdown(s string, inline ...bool) (string, error) {
	in, err := flag("markdown", "inline", false, inline)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return "", fmt.Errorf("filter `markdown`: %w", err)
	}

	out := buf.String()
	if in {
		out = strings.TrimPrefix(out, "<p>")
		out = strings.TrimSuffix(out, "</p>\n")
	}

	return out, nil
}

// Base64Encode encodes s with standard base64 encoding.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes standard base64 encoding.
func Base64Decode(s string) (string, error) {
	bs, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("filter `base64_decode`: %w", err)
	}
	return string(bs), nil
}

// FuncMap returns the filters by their template names.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"bible_refs":    BibleRefs,
		"bible_ref":     BibleRef,
		"replace_all":   ReplaceAll,
		"markdown":      Markdown,
		"base64_encode": Base64Encode,
		"base64_decode": Base64Decode,
	}
}

// Render parses tmpl with the filters available and executes it with data.
func Render(w io.Writer, name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(FuncMap()).Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}
