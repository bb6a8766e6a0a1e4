package plugins

import (
	"errors"
	"strings"
	"testing"

	"github.com/kingrea/sound-archive/internal/catalog"
)

func validSpecimen(id string) catalog.Specimen {
	return catalog.Specimen{
		ID:        id,
		Title:     "Test",
		TitleEn:   "Test Recording",
		Category:  catalog.CategoryNature,
		District:  catalog.DistrictPinggu,
		Duration:  "01:00",
		Era:       catalog.EraModern,
		TimeOfDay: catalog.TimeMorning,
		Freq:      []int{10, 20, 30, 40, 50, 60, 70, 80},
	}
}

func TestCatalogFileValidate(t *testing.T) {
	file := CatalogFile{Specimens: []catalog.Specimen{validSpecimen("EX-001"), validSpecimen("EX-002")}}
	if err := file.Validate(); err != nil {
		t.Fatalf("expected catalog to validate, got %v", err)
	}
}

func TestCatalogFileValidateFailures(t *testing.T) {
	badEra := validSpecimen("EX-003")
	badEra.Era = "Bronze Age"
	shortFreq := validSpecimen("EX-004")
	shortFreq.Freq = []int{1, 2, 3}

	tests := []struct {
		name string
		file CatalogFile
		msg  string
	}{
		{name: "empty", file: CatalogFile{}, msg: "at least one specimen"},
		{name: "unknown era", file: CatalogFile{Specimens: []catalog.Specimen{badEra}}, msg: "Bronze Age"},
		{name: "short freq", file: CatalogFile{Specimens: []catalog.Specimen{shortFreq}}, msg: "freq"},
		{
			name: "duplicate ids",
			file: CatalogFile{Specimens: []catalog.Specimen{validSpecimen("EX-001"), validSpecimen("EX-001")}},
			msg:  "duplicate",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.file.Validate(); err == nil || !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected error containing %q, got %v", tc.msg, err)
			}
		})
	}
}

func TestCatalogFileValidateWrapsSentinels(t *testing.T) {
	bad := validSpecimen("EX-005")
	bad.District = "Atlantis"
	err := CatalogFile{Specimens: []catalog.Specimen{bad}}.Validate()
	if !errors.Is(err, catalog.ErrInvalidSpecimen) {
		t.Fatalf("expected ErrInvalidSpecimen, got %v", err)
	}
}
