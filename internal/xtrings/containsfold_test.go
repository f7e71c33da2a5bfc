package xtrings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	t.Parallel()

	var data = []struct {
		s      string
		substr string
		pass   bool
	}{
		{"Genesis", "gen", true},
		{"Song of Solomon", "SOLOMON", true},
		{"Song of Solomon", "of sol", true},
		{"1 John", "john", true},
		{"Jude", "john", false},
		{"Job", "Jobs", false},
		{"Psalms", "", true},
		{"", "a", false},
		{"Ésaïe", "ÏE", true},
	}

	for _, test := range data {
		assert.Equalf(
			t,
			test.pass,
			ContainsFold(test.s, test.substr),
			"%q contains %q",
			test.s,
			test.substr,
		)
	}
}

func TestContainsAllFold(t *testing.T) {
	t.Parallel()

	assert.True(t, ContainsAllFold("2 Thessalonians", "2", "thess"))
	assert.False(t, ContainsAllFold("1 Thessalonians", "2", "thess"))
	assert.True(t, ContainsAllFold("Genesis"))
}
