package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/logmind/moodlog/models"
)

const (
	journalColumns = `
			id,
			content,
			mood_type,
			image_uris,
			created_at,
			ai_response_enabled,
			ai_response,
			latitude,
			longitude,
			address,
			temperature,
			weather_icon,
			weather_description`

	getJournalByID = `
		SELECT` + journalColumns + `
		FROM journals
		WHERE id = ?;`

	getAllJournals = `
		SELECT` + journalColumns + `
		FROM journals
		ORDER BY created_at DESC;`

	getJournalsByDate = `
		SELECT` + journalColumns + `
		FROM journals
		WHERE DATE(created_at) = DATE(?)
		ORDER BY created_at DESC;`

	getJournalsByMonth = `
		SELECT` + journalColumns + `
		FROM journals
		WHERE strftime('%Y-%m', created_at) = strftime('%Y-%m', ?)
		ORDER BY created_at DESC;`

	getJournalsByDateRange = `
		SELECT` + journalColumns + `
		FROM journals
		WHERE created_at BETWEEN ? AND ?
		ORDER BY created_at DESC;`

	insertJournal = `
		INSERT INTO journals (
			content,
			mood_type,
			image_uris,
			created_at,
			ai_response_enabled,
			ai_response,
			latitude,
			longitude,
			address,
			temperature,
			weather_icon,
			weather_description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	deleteJournalByID = `
		DELETE FROM journals
		WHERE id = ?;`

	getAllTags = `
		SELECT id, name, color, created_at
		FROM tags
		ORDER BY created_at DESC;`

	getTagByID = `
		SELECT id, name, color, created_at
		FROM tags
		WHERE id = ?;`

	getTagsByJournalID = `
		SELECT t.id, t.name, t.color, t.created_at
		FROM tags t
		INNER JOIN journal_tag_link jt ON t.id = jt.tag_id
		WHERE jt.journal_id = ?
		ORDER BY t.created_at DESC;`

	insertTag = `
		INSERT INTO tags (name, color, created_at)
		VALUES (?, ?, ?);`

	updateTag = `
		UPDATE tags
		SET name = ?, color = ?
		WHERE id = ?;`

	deleteTagByID = `
		DELETE FROM tags
		WHERE id = ?;`

	deleteLinksForJournal = `
		DELETE FROM journal_tag_link
		WHERE journal_id = ?;`

	insertJournalTagLink = `
		INSERT INTO journal_tag_link (journal_id, tag_id)
		VALUES (?, ?);`
)

// buildUpdateJournalQuery builds the partial UPDATE for a journal. Only
// fields present in the request appear in the SET clause, so absent fields
// keep their persisted value. imageURIs carries the already re-encoded
// image_uris column value when the request provided a non-empty list.
func buildUpdateJournalQuery(update models.UpdateJournalRequest, imageURIs *string) (string, []any, error) {
	builder := sq.Update("journals").Where(sq.Eq{"id": update.ID})

	set := false
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
		set = true
	}
	if imageURIs != nil {
		builder = builder.Set("image_uris", *imageURIs)
		set = true
	}
	if update.AIResponse != nil {
		builder = builder.Set("ai_response", *update.AIResponse)
		set = true
	}
	if update.Latitude != nil {
		builder = builder.Set("latitude", *update.Latitude)
		set = true
	}
	if update.Longitude != nil {
		builder = builder.Set("longitude", *update.Longitude)
		set = true
	}
	if update.Address != nil {
		builder = builder.Set("address", *update.Address)
		set = true
	}

	if !set {
		// Nothing to change; keep the statement valid by touching id.
		builder = builder.Set("id", update.ID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
