package models

import "time"

// Tag labels journal records. Names are free text and intentionally not
// unique; duplicates are allowed.
type Tag struct {
	ID        int64
	Name      string
	Color     *string
	CreatedAt time.Time
}
