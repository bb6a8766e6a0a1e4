package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateID is returned when two specimens share an identifier.
	ErrDuplicateID = errors.New("catalog: duplicate specimen id")
	// ErrInvalidSpecimen wraps every field-level validation failure.
	ErrInvalidSpecimen = errors.New("catalog: invalid specimen")
)

// Specimen is one archived sound event. Records are read-only once the
// Store has been built.
type Specimen struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	TitleEn     string    `json:"title_en" yaml:"title_en"`
	Category    Category  `json:"category" yaml:"category"`
	District    District  `json:"district" yaml:"district"`
	Location    string    `json:"location" yaml:"location"`
	Duration    string    `json:"duration" yaml:"duration"`
	Era         Era       `json:"era" yaml:"era"`
	TimeOfDay   TimeOfDay `json:"time_of_day" yaml:"time_of_day"`
	Description string    `json:"description" yaml:"description"`
	Freq        []int     `json:"freq" yaml:"freq"`
}

// Normalized trims free-text fields and canonicalizes enum casing. Unknown
// enum values are kept verbatim so Validate can report them.
func (s Specimen) Normalized() Specimen {
	clone := Specimen{
		ID:          strings.TrimSpace(s.ID),
		Title:       strings.TrimSpace(s.Title),
		TitleEn:     strings.TrimSpace(s.TitleEn),
		Category:    Category(strings.TrimSpace(string(s.Category))),
		District:    District(strings.TrimSpace(string(s.District))),
		Location:    strings.TrimSpace(s.Location),
		Duration:    strings.TrimSpace(s.Duration),
		Era:         Era(strings.TrimSpace(string(s.Era))),
		TimeOfDay:   TimeOfDay(strings.TrimSpace(string(s.TimeOfDay))),
		Description: strings.TrimSpace(s.Description),
	}
	if c, ok := ParseCategory(string(clone.Category)); ok {
		clone.Category = c
	}
	if d, ok := ParseDistrict(string(clone.District)); ok {
		clone.District = d
	}
	if e, ok := ParseEra(string(clone.Era)); ok {
		clone.Era = e
	}
	if t, ok := ParseTimeOfDay(string(clone.TimeOfDay)); ok {
		clone.TimeOfDay = t
	}
	if s.Freq != nil {
		clone.Freq = append([]int(nil), s.Freq...)
	}
	return clone
}

// Validate checks the record invariants.
func (s Specimen) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidSpecimen)
	}
	if s.Title == "" && s.TitleEn == "" {
		return fmt.Errorf("%w: %s: a title is required", ErrInvalidSpecimen, s.ID)
	}
	if !s.Category.Valid() {
		return fmt.Errorf("%w: %s: unknown category %q", ErrInvalidSpecimen, s.ID, s.Category)
	}
	if !s.District.Valid() {
		return fmt.Errorf("%w: %s: unknown district %q", ErrInvalidSpecimen, s.ID, s.District)
	}
	if !s.Era.Valid() {
		return fmt.Errorf("%w: %s: unknown era %q", ErrInvalidSpecimen, s.ID, s.Era)
	}
	if !s.TimeOfDay.Valid() {
		return fmt.Errorf("%w: %s: unknown time of day %q", ErrInvalidSpecimen, s.ID, s.TimeOfDay)
	}
	if len(s.Freq) != FreqBands {
		return fmt.Errorf("%w: %s: freq needs %d values, got %d", ErrInvalidSpecimen, s.ID, FreqBands, len(s.Freq))
	}
	for i, v := range s.Freq {
		if v < 0 || v > FreqMax {
			return fmt.Errorf("%w: %s: freq[%d]=%d outside 0..%d", ErrInvalidSpecimen, s.ID, i, v, FreqMax)
		}
	}
	return nil
}
