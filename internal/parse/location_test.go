package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLocationConferencing(t *testing.T) {
	got, ok := extractLocation("פגישה בזום מחר")
	require.True(t, ok)
	assert.Equal(t, "Zoom/Meet/Teams", got.value)

	got, ok = extractLocation("שיחת Teams עם המנהלת")
	require.True(t, ok)
	assert.Equal(t, "Zoom/Meet/Teams", got.value)

	// A URL in the same text wins over the keyword label.
	got, ok = extractLocation("פגישה בזום https://zoom.us/j/123 מחר")
	require.True(t, ok)
	assert.Equal(t, "https://zoom.us/j/123", got.value)
	assert.Equal(t, "https://zoom.us/j/123", got.raw)
}

func TestExtractLocationAddress(t *testing.T) {
	got, ok := extractLocation("פגישה ברחוב הרצל 5, מחר בבוקר")
	require.True(t, ok)
	assert.Equal(t, "רחוב הרצל 5", got.value)
	// The raw span keeps the introducing particle for stripping.
	assert.Equal(t, "ברחוב הרצל 5", got.raw)

	got, ok = extractLocation("נפגשים במשרד של דנה, בשעה 9")
	require.True(t, ok)
	assert.Equal(t, "משרד של דנה", got.value)

	got, ok = extractLocation("חתונה באולם גני התערוכה")
	require.True(t, ok)
	assert.Equal(t, "אולם גני התערוכה", got.value)
}

func TestExtractLocationGenericFallback(t *testing.T) {
	got, ok := extractLocation("ניפגש ב-סינמטק, מחר")
	require.True(t, ok)
	assert.Equal(t, "סינמטק", got.value)
	assert.Equal(t, "ב-סינמטק", got.raw)
}

func TestExtractLocationNoMatch(t *testing.T) {
	_, ok := extractLocation("פגישה עם דוד מחר")
	assert.False(t, ok)

	_, ok = extractLocation("")
	assert.False(t, ok)
}
