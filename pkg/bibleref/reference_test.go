package bibleref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	var data = []struct {
		raw  string
		want Reference
	}{
		{"Genesis 1:1", Reference{"Genesis", "1", "1"}},
		{"Song of Solomon 2:17", Reference{"Song of Solomon", "2", "17"}},
		{"Song of Solomon 4", Reference{"Song of Solomon", "4", ""}},
		{"Judges 6", Reference{"Judges", "6", ""}},
		{"Judges", Reference{"Judges", "1", ""}},
		{"Psalm 119:174–176", Reference{"Psalm", "119", "174"}},
		{"Psalm 23–24", Reference{"Psalm", "23", ""}},
		{"1 John 3:12–15, 17", Reference{"1 John", "3", "12"}},
		{"Obadiah 12", Reference{"Obadiah", "1", "12"}},
		{"Jude", Reference{"Jude", "1", ""}},
		{"2 John 4", Reference{"2 John", "1", "4"}},
		{"Hezekiah 3:16", Reference{"Hezekiah", "3", "16"}},
	}

	for _, test := range data {
		ref, err := Parse(test.raw)
		if assert.NoErrorf(t, err, "parse %q", test.raw) {
			assert.Equalf(t, test.want, ref, "parse %q", test.raw)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Obadiah 1:12", "Philemon 1:3", "3 John 1:14", "Jude 1:1"} {
		_, err := Parse(raw)
		assert.ErrorIsf(t, err, ErrChapterNotAllowed, "parse %q", raw)
	}

	for _, raw := range []string{"", "15:2", "4 Kings 1", "Genesis 1:", "Genesis:1", "Genesis 1.1"} {
		_, err := Parse(raw)
		assert.ErrorIsf(t, err, ErrMalformedReference, "parse %q", raw)
	}
}

func TestReference_Path(t *testing.T) {
	t.Parallel()

	var data = []struct {
		raw  string
		path string
	}{
		{"Genesis 1:1", "GEN01.htm#V1"},
		{"Song of Solomon 2:17", "SNG02.htm#V17"},
		{"Judges 6", "JDG06.htm"},
		{"Psalms 3", "PSA003.htm"},
		{"Psalm 15:2", "PSA015.htm#V2"},
		{"Psalm 119:174–176", "PSA119.htm#V174"},
		{"Obadiah 12", "OBA01.htm#V12"},
		{"Isaiah 53:5", "ISA53.htm#V5"},
	}

	for _, test := range data {
		ref, err := Parse(test.raw)
		require.NoError(t, err)

		p, err := ref.Path()
		if assert.NoErrorf(t, err, "path for %q", test.raw) {
			assert.Equalf(t, test.path, p, "path for %q", test.raw)
		}
	}

	_, err := MustParse("Hezekiah 3:16").Path()
	assert.ErrorIs(t, err, ErrUnknownBook)
}

func TestReference_Href(t *testing.T) {
	t.Parallel()

	href, err := MustParse("Genesis 1:1").Href()
	require.NoError(t, err)
	assert.Equal(t, "https://ebible.org/engwebpb/GEN01.htm#V1", href)
}

func TestReference_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Obadiah 1:12", MustParse("Obadiah 12").String())
	assert.Equal(t, "Judges 6", MustParse("Judges 6").String())
	assert.Panics(t, func() { MustParse("Obadiah 1:12") })
}

func TestVerseAnchor(t *testing.T) {
	t.Parallel()

	for _, b := range AllBooks() {
		if b.SingleChapter() {
			ref, err := Parse(b.Name() + " 7")
			require.NoError(t, err)
			assert.Equal(t, "1", ref.Chapter)
			assert.Equal(t, "7", ref.Verse)

			_, err = Parse(b.Name() + " 1:7")
			assert.ErrorIs(t, err, ErrChapterNotAllowed)
			continue
		}

		p, err := MustParse(b.Name() + " 12:34").Path()
		if assert.NoError(t, err) {
			assert.Regexpf(t, `\.htm#V34$`, p, "anchor for %s", b.Name())
		}
	}
}
