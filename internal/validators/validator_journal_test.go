// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LogMind

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logmind/moodlog/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrStr(s string) *string   { return &s }
func ptrF64(f float64) *float64 { return &f }

func validCreateRequest() models.CreateJournalRequest {
	return models.CreateJournalRequest{
		Content:   ptrStr("wrote some code, went for a run"),
		Mood:      models.MoodHappy,
		CreatedAt: time.Now(),
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	req := validCreateRequest()
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestValidate_CreateRequest
// ---------------------------------------------------------------------------

func TestValidate_CreateRequest(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCreateRequest()))
	})

	t.Run("images without text are enough", func(t *testing.T) {
		req := validCreateRequest()
		req.Content = nil
		req.ImageURIs = []string{"file:///photos/1.jpg"}
		require.NoError(t, v.Validate(ctx, req))
	})

	t.Run("no text and no images", func(t *testing.T) {
		req := validCreateRequest()
		req.Content = nil
		assert.ErrorIs(t, v.Validate(ctx, req), ErrEmptyEntry)
	})

	t.Run("whitespace-only text", func(t *testing.T) {
		req := validCreateRequest()
		req.Content = ptrStr("   \n\t ")
		assert.ErrorIs(t, v.Validate(ctx, req), ErrEmptyEntry)
	})

	t.Run("unknown mood", func(t *testing.T) {
		req := validCreateRequest()
		req.Mood = models.MoodType("ecstatic")
		assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidMood)
	})

	t.Run("latitude without longitude", func(t *testing.T) {
		req := validCreateRequest()
		req.Latitude = ptrF64(55.75)
		assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidCoordinates)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		req := validCreateRequest()
		req.Latitude = ptrF64(95.0)
		req.Longitude = ptrF64(37.6)
		assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidCoordinates)
	})

	t.Run("valid pair", func(t *testing.T) {
		req := validCreateRequest()
		req.Latitude = ptrF64(55.75)
		req.Longitude = ptrF64(37.6)
		require.NoError(t, v.Validate(ctx, req))
	})

	t.Run("scoped to mood only", func(t *testing.T) {
		req := validCreateRequest()
		req.Content = nil
		require.NoError(t, v.Validate(ctx, req, FieldMood))
	})

	t.Run("unknown field", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, validCreateRequest(), "nope"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_UpdateRequest
// ---------------------------------------------------------------------------

func TestValidate_UpdateRequest(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.UpdateJournalRequest{
			ID:      3,
			Content: ptrStr("edited later in the evening"),
		}))
	})

	t.Run("zero id", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdateJournalRequest{Content: ptrStr("x")})
		assert.ErrorIs(t, err, ErrInvalidJournalID)
	})

	t.Run("nothing to update", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdateJournalRequest{ID: 3})
		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("incomplete coordinates", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdateJournalRequest{ID: 3, Longitude: ptrF64(37.6)})
		assert.ErrorIs(t, err, ErrInvalidCoordinates)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Tag
// ---------------------------------------------------------------------------

func TestValidate_Tag(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Tag{Name: "work"}))
	})

	t.Run("blank name", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.Tag{Name: "   "}), ErrEmptyTagName)
	})

	t.Run("name too long", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'a'
		}
		assert.ErrorIs(t, v.Validate(ctx, models.Tag{Name: string(long)}), ErrEmptyTagName)
	})

	t.Run("scoped to id", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.Tag{Name: "work"}, FieldTagID), ErrInvalidTagID)
	})
}
