package gcal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"voicecal/internal/event"
)

func TestInsertValidation(t *testing.T) {
	i := &Inserter{}

	_, err := i.Insert(context.Background(), event.InsertPayload{
		Start: "2025-09-16T10:00:00+03:00",
		End:   "2025-09-16T11:00:00+03:00",
	})
	assert.Error(t, err)

	_, err = i.Insert(context.Background(), event.InsertPayload{
		Summary: "פגישה עם דוד",
	})
	assert.Error(t, err)
}
