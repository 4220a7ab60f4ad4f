package sheets

import (
	"testing"

	"github.com/jesap-it/recruiting-backend/internal/schema"
	"github.com/jesap-it/recruiting-backend/internal/validation"
)

func TestRow_SchemaOrder(t *testing.T) {
	candidate := &validation.ValidatedCandidate{
		Email:          "a@b.com",
		Name:           "Jo",
		Surname:        "Do",
		BirthDate:      "2000-01-01",
		Phone:          "123",
		Residency:      "RM",
		Domiciliation:  "MI",
		University:     "X",
		Faculty:        "Y",
		Course:         "Z",
		CurriculumType: "T",
		CourseYear:     "1",
		Area1:          "Legal",
		Area2:          "Human Resources",
		HowKnowJesap:   "online",
		WhyJesap:       "social",
		WhyArea:        "because I like it a lot",
		KnowSomeone:    "no",
		JEItalyMember:  "no",
	}

	row := Row(candidate)
	if len(row) != len(schema.Fields) {
		t.Fatalf("row has %d values, want %d", len(row), len(schema.Fields))
	}
	for i, name := range schema.Names() {
		if row[i] != candidate.Value(name) {
			t.Errorf("row[%d] = %v, want value of %q", i, row[i], name)
		}
	}
	if row[0] != "a@b.com" {
		t.Errorf("row[0] = %v, email must lead the row", row[0])
	}
	if row[len(row)-1] != "no" {
		t.Errorf("last value = %v, want je_italy_member", row[len(row)-1])
	}
}

func TestRow_UnspecifiedTriStateStaysEmpty(t *testing.T) {
	row := Row(&validation.ValidatedCandidate{Email: "a@b.com"})
	for i, name := range schema.Names() {
		if name == "know_someone" || name == "je_italy_member" {
			if row[i] != "" {
				t.Errorf("%s = %v, want empty cell for unspecified", name, row[i])
			}
		}
	}
}
