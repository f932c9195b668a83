package models

import "time"

// Journal is a single journal record: mood, optional text and images, and
// optional location and weather captured at write time.
type Journal struct {
	ID                 int64
	Content            *string
	Mood               MoodType
	ImageURIs          []string
	CreatedAt          time.Time
	AIResponseEnabled  bool
	AIResponse         *string
	Latitude           *float64
	Longitude          *float64
	Address            *string
	Temperature        *float64
	WeatherIcon        *string
	WeatherDescription *string

	// Tags is populated on the point-read and list-read paths. The live
	// journal feed leaves it empty; see store.JournalFeed.
	Tags []Tag
}

// CreateJournalRequest carries the fields of a new journal record.
// At least one of Content or ImageURIs must be populated; the use-case
// layer enforces this, not the schema.
type CreateJournalRequest struct {
	Content            *string
	Mood               MoodType
	ImageURIs          []string
	AIResponseEnabled  bool
	AIResponse         *string
	CreatedAt          time.Time
	Latitude           *float64
	Longitude          *float64
	Address            *string
	Temperature        *float64
	WeatherIcon        *string
	WeatherDescription *string

	// TagIDs are the tags to attach to the new record. Attachment happens
	// after the record itself is saved; a failed attachment does not undo
	// the save.
	TagIDs []int64
}

// UpdateJournalRequest is a partial update: nil fields keep the persisted
// value, non-nil fields overwrite it (last-non-null-wins per field).
// Mood and CreatedAt are immutable after creation and cannot be updated.
type UpdateJournalRequest struct {
	ID         int64
	Content    *string
	ImageURIs  []string
	AIResponse *string
	Latitude   *float64
	Longitude  *float64
	Address    *string
}
