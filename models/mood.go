package models

// MoodType is one of five fixed ordered mood levels, stored as a text enum.
type MoodType string

const (
	MoodVerySad   MoodType = "verySad"
	MoodSad       MoodType = "sad"
	MoodNeutral   MoodType = "neutral"
	MoodHappy     MoodType = "happy"
	MoodVeryHappy MoodType = "veryHappy"
)

// NeutralSliderValue is the slider value reported for an empty statistics
// window, so averages never degenerate into NaN.
const NeutralSliderValue = 2.0

// AllMoods lists the mood levels in ascending score order.
func AllMoods() []MoodType {
	return []MoodType{MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy}
}

// Score returns the 1-5 numeric score of the mood level.
func (m MoodType) Score() int {
	switch m {
	case MoodVerySad:
		return 1
	case MoodSad:
		return 2
	case MoodNeutral:
		return 3
	case MoodHappy:
		return 4
	case MoodVeryHappy:
		return 5
	}
	return 3
}

// SliderValue returns the 0-4 slider position of the mood level.
func (m MoodType) SliderValue() float64 {
	switch m {
	case MoodVerySad:
		return 0
	case MoodSad:
		return 1
	case MoodNeutral:
		return 2
	case MoodHappy:
		return 3
	case MoodVeryHappy:
		return 4
	}
	return NeutralSliderValue
}

// Emoji returns the display emoji for the mood level.
func (m MoodType) Emoji() string {
	switch m {
	case MoodVerySad:
		return "😭"
	case MoodSad:
		return "😢"
	case MoodNeutral:
		return "😐"
	case MoodHappy:
		return "😊"
	case MoodVeryHappy:
		return "😄"
	}
	return "😐"
}

// ColorValue returns the ARGB color associated with the mood level.
func (m MoodType) ColorValue() uint32 {
	switch m {
	case MoodVerySad:
		return 0xFFF44336
	case MoodSad:
		return 0xFFFF9800
	case MoodNeutral:
		return 0xFFFFEB3B
	case MoodHappy:
		return 0xFF8BC34A
	case MoodVeryHappy:
		return 0xFF4CAF50
	}
	return 0xFFFFEB3B
}

// Valid reports whether m is one of the five fixed levels.
func (m MoodType) Valid() bool {
	switch m {
	case MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy:
		return true
	}
	return false
}

// MoodFromScore maps a 1-5 score back to a mood level. Unknown scores
// resolve to MoodNeutral.
func MoodFromScore(score int) MoodType {
	for _, m := range AllMoods() {
		if m.Score() == score {
			return m
		}
	}
	return MoodNeutral
}

// MoodFromSlider maps a 0-4 slider position back to a mood level. Unknown
// positions resolve to MoodNeutral.
func MoodFromSlider(value float64) MoodType {
	switch value {
	case 0:
		return MoodVerySad
	case 1:
		return MoodSad
	case 2:
		return MoodNeutral
	case 3:
		return MoodHappy
	case 4:
		return MoodVeryHappy
	}
	return MoodNeutral
}

// MoodFromString decodes a stored text enum value. Unknown values resolve
// to MoodNeutral so a corrupted row never fails a read.
func MoodFromString(value string) MoodType {
	m := MoodType(value)
	if m.Valid() {
		return m
	}
	return MoodNeutral
}
