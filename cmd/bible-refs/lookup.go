package main

import (
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/zostay/bible-refs/internal/console"
	"github.com/zostay/bible-refs/pkg/bibleref"
)

func initLookup(cmd *cobra.Command) {
	lookupCmd := &cobra.Command{
		Use:   "lookup <reference>",
		Short: "Show how a reference is parsed and where it links",
		Args:  cobra.MinimumNArgs(1),
		RunE:  RunLookup,
	}

	cmd.AddCommand(lookupCmd)
}

func RunLookup(cmd *cobra.Command, args []string) error {
	raw := strings.Join(args, " ")

	ref, err := bibleref.Parse(raw)
	if err != nil {
		return err
	}

	b, err := bibleref.LookupBook(ref.Book)
	if err != nil {
		return err
	}

	href, err := ref.Href()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verbose > 3 {
		_, _ = pretty.Fprintf(out, "%# v\n", ref)
	}

	verse := ref.Verse
	if !ref.HasVerse() {
		verse = "-"
	}

	console.Palette.Fcolor(out,
		"label", "Book:    ", "book", b.Name(), "base", "\n",
		"label", "Code:    ", "code", b.SiteCode(ref.Chapter), "base", "\n",
		"label", "Chapter: ", "value", ref.Chapter, "base", "\n",
		"label", "Verse:   ", "value", verse, "base", "\n",
		"label", "URL:     ", "url", href, "base", "\n",
	)

	return nil
}
