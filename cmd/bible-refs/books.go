package main

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"
	"github.com/zostay/go-std/slices"

	"github.com/zostay/bible-refs/internal/console"
	"github.com/zostay/bible-refs/internal/xtrings"
	"github.com/zostay/bible-refs/pkg/bibleref"
)

var (
	compact bool
	width   int
)

func initBooks(cmd *cobra.Command) {
	booksCmd := &cobra.Command{
		Use:   "books [search...]",
		Short: "List the books that references may name",
		RunE:  RunBooks,
	}

	booksCmd.Flags().BoolVarP(&compact, "compact", "c", false, "list only the names, wrapped to --width")
	booksCmd.Flags().IntVarP(&width, "width", "w", 80, "the width to wrap the compact listing to")

	cmd.AddCommand(booksCmd)
}

// matchingBooks returns the books whose name or code contain every search
// word, ignoring case.
func matchingBooks(words []string) []bibleref.Book {
	var bs []bibleref.Book
	for _, b := range bibleref.AllBooks() {
		if xtrings.ContainsAllFold(b.Name()+" "+b.Code(), words...) {
			bs = append(bs, b)
		}
	}
	return bs
}

// nameJoiner stands in for the spaces inside a book name while wrapping. Book
// names never contain it.
const nameJoiner = "_"

// wrapNames lists the names separated by commas and wrapped to width, only
// ever breaking between names.
func wrapNames(names []string, width int) string {
	joined := slices.Map(names, func(n string) string {
		return strings.ReplaceAll(n, " ", nameJoiner)
	})
	wrapped := wordwrap.WrapString(strings.Join(joined, ", "), uint(width))
	return strings.ReplaceAll(wrapped, nameJoiner, " ")
}

func RunBooks(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	bs := matchingBooks(args)

	if len(bs) == 0 {
		return fmt.Errorf("%w: %s", bibleref.ErrUnknownBook, strings.Join(args, " "))
	}

	if compact {
		names := slices.Map(bs, func(b bibleref.Book) string { return b.Name() })
		fmt.Fprintln(out, wrapNames(names, width))
		return nil
	}

	for _, b := range bs {
		note := ""
		if b.SingleChapter() {
			note = "  (one chapter; cite by verse)"
		}

		console.Palette.Fcolor(out,
			"code", fmt.Sprintf("%-4s", b.Code()),
			"book", b.Name(),
			"meh", note,
			"base", "\n",
		)
	}

	return nil
}
