package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logmind/moodlog/models"
)

func Test_buildUpdateJournalQuery_OnlyProvidedFields(t *testing.T) {
	content := "updated"
	address := "Seoul"

	query, args, err := buildUpdateJournalQuery(models.UpdateJournalRequest{
		ID:      12,
		Content: &content,
		Address: &address,
	}, nil)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update journals")
	require.Contains(t, q, "content = ?")
	require.Contains(t, q, "address = ?")

	assert.NotContains(t, q, "ai_response")
	assert.NotContains(t, q, "latitude")
	assert.NotContains(t, q, "image_uris")
	assert.NotContains(t, q, "mood_type")
	assert.NotContains(t, q, "created_at")

	require.Equal(t, []any{content, address, int64(12)}, args)
}

func Test_buildUpdateJournalQuery_ImagesReencoded(t *testing.T) {
	encoded := `["file:///img/new.jpg"]`

	query, args, err := buildUpdateJournalQuery(models.UpdateJournalRequest{ID: 3}, &encoded)
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(query), "image_uris = ?")
	require.Equal(t, []any{encoded, int64(3)}, args)
}

func Test_buildUpdateJournalQuery_EmptyRequestStillValid(t *testing.T) {
	query, args, err := buildUpdateJournalQuery(models.UpdateJournalRequest{ID: 8}, nil)
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(query), "update journals")
	require.Contains(t, strings.ToLower(query), "where id = ?")
	require.NotEmpty(t, args)
}

func Test_buildUpdateJournalQuery_LocationFields(t *testing.T) {
	lat, lon := 37.5665, 126.978

	query, args, err := buildUpdateJournalQuery(models.UpdateJournalRequest{
		ID:        1,
		Latitude:  &lat,
		Longitude: &lon,
	}, nil)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "latitude = ?")
	require.Contains(t, q, "longitude = ?")
	require.Equal(t, []any{lat, lon, int64(1)}, args)
}
