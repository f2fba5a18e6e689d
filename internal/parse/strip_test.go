package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripContentRemovesFragments(t *testing.T) {
	got := stripContent("מחר בשעה 10 פגישה עם דוד", []string{"מחר", "בשעה 10"})
	assert.Equal(t, "פגישה עם דוד", got)
}

func TestStripContentFragmentsAreLiteral(t *testing.T) {
	// Fragments containing regex metacharacters are removed verbatim.
	got := stripContent("פגישה 5/10 (חשוב)", []string{"5/10", "(חשוב)"})
	assert.Equal(t, "פגישה", got)
}

func TestStripContentStopPhrases(t *testing.T) {
	got := stripContent("להזכיר לי פגישה כל שבוע", nil)
	assert.Equal(t, "פגישה", got)
}

func TestStripContentDropsDanglingSeparators(t *testing.T) {
	got := stripContent("פגישה עם דוד ברחוב הרצל 5, מחר", []string{"ברחוב הרצל 5", "מחר"})
	assert.Equal(t, "פגישה עם דוד", got)
}

func TestStripContentCollapsesWhitespace(t *testing.T) {
	got := stripContent("  פגישה   עם\tדוד  ", nil)
	assert.Equal(t, "פגישה עם דוד", got)
}

func TestStripContentEmptyResult(t *testing.T) {
	assert.Equal(t, "", stripContent("מחר", []string{"מחר"}))
	assert.Equal(t, "", stripContent("", nil))
}

func TestStripContentIdempotent(t *testing.T) {
	inputs := []string{
		"פגישה עם דוד",
		"פגישה עם דוד ברחוב הרצל 5, מחר בשעה 10",
		"",
	}
	for _, in := range inputs {
		once := stripContent(in, nil)
		twice := stripContent(once, nil)
		assert.Equal(t, once, twice, in)
	}
}
