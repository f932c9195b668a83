package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// createdAtLayout is the text form of created_at. Local wall-clock time
// without a zone, so SQLite's DATE() and strftime() see calendar days the
// way the user does.
const createdAtLayout = "2006-01-02 15:04:05"

func encodeTime(t time.Time) string {
	return t.Format(createdAtLayout)
}

func decodeTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(createdAtLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse created_at %q: %w", value, err)
	}
	return t, nil
}

// encodeImageURIs serializes the ordered image list into the image_uris
// text column. Empty and nil lists are stored as NULL.
func encodeImageURIs(uris []string) (*string, error) {
	if len(uris) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(uris)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image uris: %w", err)
	}
	s := string(raw)
	return &s, nil
}

// decodeImageURIs parses the image_uris column back into the ordered list.
// NULL decodes to nil.
func decodeImageURIs(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var uris []string
	if err := json.Unmarshal([]byte(*raw), &uris); err != nil {
		return nil, fmt.Errorf("failed to decode image uris: %w", err)
	}
	return uris, nil
}
