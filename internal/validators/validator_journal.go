package validators

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/logmind/moodlog/models"
)

const (
	FieldJournalID   = "journal_id"
	FieldBody        = "body"
	FieldMood        = "mood"
	FieldCoordinates = "coordinates"
	FieldUpdates     = "updates"
	FieldTagID       = "tag_id"
	FieldTagName     = "tag_name"
)

type JournalValidator struct {
}

func NewJournalValidator() Validator {
	return &JournalValidator{}
}

func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateJournalRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateJournalRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.UpdateJournalRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateJournalRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	case models.Tag:
		return v.validateTag(ctx, value, fields...)
	case *models.Tag:
		return v.validateTag(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *JournalValidator) validateCreateRequest(ctx context.Context, request models.CreateJournalRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBody, FieldMood, FieldCoordinates}
	}

	for _, f := range fields {
		switch f {
		case FieldBody:
			hasText := request.Content != nil && strings.TrimSpace(*request.Content) != ""
			if !hasText && len(request.ImageURIs) == 0 {
				return ErrEmptyEntry
			}
		case FieldMood:
			if !request.Mood.Valid() {
				return ErrInvalidMood
			}
		case FieldCoordinates:
			if err := validateCoordinates(request.Latitude, request.Longitude); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateUpdateRequest(ctx context.Context, request models.UpdateJournalRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldJournalID, FieldUpdates, FieldCoordinates}
	}

	for _, f := range fields {
		switch f {
		case FieldJournalID:
			if request.ID <= 0 {
				return ErrInvalidJournalID
			}
		case FieldUpdates:
			if request.Content == nil && request.ImageURIs == nil && request.AIResponse == nil &&
				request.Latitude == nil && request.Longitude == nil && request.Address == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldCoordinates:
			if err := validateCoordinates(request.Latitude, request.Longitude); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateTag(ctx context.Context, tag models.Tag, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTagName}
	}

	for _, f := range fields {
		switch f {
		case FieldTagID:
			if tag.ID <= 0 {
				return ErrInvalidTagID
			}
		case FieldTagName:
			if err := validation.Validate(strings.TrimSpace(tag.Name),
				validation.Required,
				validation.Length(1, 50),
			); err != nil {
				return ErrEmptyTagName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCoordinates allows absent coordinates but requires a present pair
// to be complete and within WGS84 bounds.
func validateCoordinates(lat, lon *float64) error {
	if lat == nil && lon == nil {
		return nil
	}
	if lat == nil || lon == nil {
		return ErrInvalidCoordinates
	}

	if err := validation.Validate(*lat, validation.Min(-90.0), validation.Max(90.0)); err != nil {
		return ErrInvalidCoordinates
	}
	if err := validation.Validate(*lon, validation.Min(-180.0), validation.Max(180.0)); err != nil {
		return ErrInvalidCoordinates
	}

	return nil
}
