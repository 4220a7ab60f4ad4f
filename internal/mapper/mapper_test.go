package mapper

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jesap-it/recruiting-backend/internal/models"
)

// candidateColumns extracts every storage column name from the gorm tags
// of models.Candidate, so the mapping table is checked against the model
// itself and cannot silently drop a field.
func candidateColumns(t *testing.T) []string {
	t.Helper()
	typ := reflect.TypeOf(models.Candidate{})
	columns := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		column := ""
		for _, part := range strings.Split(field.Tag.Get("gorm"), ";") {
			if strings.HasPrefix(part, "column:") {
				column = strings.TrimPrefix(part, "column:")
			}
		}
		if column == "" {
			// ID and CreatedAt carry no column tag; gorm snake-cases them.
			switch field.Name {
			case "ID":
				column = "id"
			case "CreatedAt":
				column = "created_at"
			default:
				t.Fatalf("model field %s has no column tag and no known default", field.Name)
			}
		}
		columns = append(columns, column)
	}
	return columns
}

func TestPairs_ExhaustiveOverCandidate(t *testing.T) {
	columns := candidateColumns(t)
	if len(Pairs) != len(columns) {
		t.Errorf("mapping table has %d entries, model has %d columns", len(Pairs), len(columns))
	}
	for _, column := range columns {
		if _, ok := ToDisplay(column); !ok {
			t.Errorf("storage column %q has no presentation counterpart", column)
		}
	}
}

func TestPairs_BothDirectionsUnique(t *testing.T) {
	seenStorage := map[string]bool{}
	seenDisplay := map[string]bool{}
	for _, p := range Pairs {
		if seenStorage[p.Storage] {
			t.Errorf("storage name %q mapped twice", p.Storage)
		}
		if seenDisplay[p.Display] {
			t.Errorf("display name %q mapped twice", p.Display)
		}
		seenStorage[p.Storage] = true
		seenDisplay[p.Display] = true
	}
}

// Mapping storage→presentation→storage must reproduce the original
// name, and the same the other way around.
func TestMapping_RoundTrip(t *testing.T) {
	for _, p := range Pairs {
		display, ok := ToDisplay(p.Storage)
		if !ok {
			t.Fatalf("ToDisplay(%q) not defined", p.Storage)
		}
		back, ok := ToStorage(display)
		if !ok || back != p.Storage {
			t.Errorf("round trip %q -> %q -> %q", p.Storage, display, back)
		}

		storage, ok := ToStorage(p.Display)
		if !ok {
			t.Fatalf("ToStorage(%q) not defined", p.Display)
		}
		back, ok = ToDisplay(storage)
		if !ok || back != p.Display {
			t.Errorf("round trip %q -> %q -> %q", p.Display, storage, back)
		}
	}
}

func TestToDisplay_UnknownName(t *testing.T) {
	if _, ok := ToDisplay("nope"); ok {
		t.Error("ToDisplay accepted an unknown column")
	}
	if _, ok := ToStorage("nope"); ok {
		t.Error("ToStorage accepted an unknown name")
	}
}

func TestToCandidato(t *testing.T) {
	resumeURL := "https://drive.google.com/file/d/abc/view"
	createdAt := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	record := models.Candidate{
		ID:            "3f1b2a9e-0000-0000-0000-000000000000",
		CreatedAt:     createdAt,
		Name:          "Jo",
		Surname:       "Do",
		Email:         "a@b.com",
		Phone:         "123",
		BirthDate:     "2000-01-01",
		Residency:     "RM",
		Domicile:      "MI",
		University:    "Sapienza",
		Faculty:       "Ingegneria",
		Course:        "Informatica",
		Curriculum:    "Triennale",
		CourseYear:    "1",
		Area1:         "Legal",
		Area2:         "Human Resources",
		HowJesap:      "online",
		WhyJesap:      "social",
		WhyArea:       "because I like it a lot",
		KnowSomeone:   "no",
		JEItalyMember: "no",
		ResumeURL:     &resumeURL,
	}

	candidato := ToCandidato(record)

	if candidato.ID != record.ID {
		t.Errorf("ID = %q, want %q", candidato.ID, record.ID)
	}
	if candidato.Nome != "Jo" || candidato.Cognome != "Do" {
		t.Errorf("nome/cognome = %q/%q", candidato.Nome, candidato.Cognome)
	}
	if candidato.Telefono != "123" {
		t.Errorf("Telefono = %q, want 123", candidato.Telefono)
	}
	if candidato.DataNascita != "2000-01-01" {
		t.Errorf("DataNascita = %q, want 2000-01-01", candidato.DataNascita)
	}
	if candidato.Residenza != "RM" || candidato.Domiciliazione != "MI" {
		t.Errorf("residenza/domiciliazione = %q/%q", candidato.Residenza, candidato.Domiciliazione)
	}
	if candidato.Area1 != "Legal" || candidato.Area2 != "Human Resources" {
		t.Errorf("aree = %q/%q", candidato.Area1, candidato.Area2)
	}
	if candidato.ResumeURL != resumeURL {
		t.Errorf("ResumeURL = %q, want %q", candidato.ResumeURL, resumeURL)
	}
	if candidato.CreatedAt != "2026-02-10T09:30:00Z" {
		t.Errorf("CreatedAt = %q, want RFC3339 UTC", candidato.CreatedAt)
	}
}

func TestToCandidato_NilResume(t *testing.T) {
	candidato := ToCandidato(models.Candidate{})
	if candidato.ResumeURL != "" {
		t.Errorf("ResumeURL = %q, want empty for nil reference", candidato.ResumeURL)
	}
	if candidato.CreatedAt != "" {
		t.Errorf("CreatedAt = %q, want empty for zero time", candidato.CreatedAt)
	}
}
