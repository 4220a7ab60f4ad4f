// Package validation applies the shared field schema to a raw submission.
// Every violated rule is collected; the caller always sees the full set
// of failing fields, never just the first.
package validation

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/jesap-it/recruiting-backend/internal/dtos"
	"github.com/jesap-it/recruiting-backend/internal/schema"
)

var validate = validator.New()

// FieldErrors maps a field name (or the synthetic area_2 cross-field
// key) to one or more user-facing messages.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

// ValidatedCandidate is the submission after schema coercion: every
// required field present and well-formed. Immutable once produced.
type ValidatedCandidate struct {
	Email          string
	Name           string
	Surname        string
	BirthDate      string
	Phone          string
	Residency      string
	Domiciliation  string
	University     string
	Faculty        string
	Course         string
	CurriculumType string
	CourseYear     string
	Area1          string
	Area2          string
	HowKnowJesap   string
	WhyJesap       string
	WhyArea        string
	KnowSomeone    string
	JEItalyMember  string

	Resume *dtos.ResumeFile
}

// Validate checks a raw submission against the schema. It returns either
// the typed candidate or a non-empty error map; never both, never
// neither. The resume is optional: only when present are its size and
// extension checked, and violations are ordinary field errors.
func Validate(sub *dtos.RawSubmission, maxResumeBytes int64) (*ValidatedCandidate, FieldErrors) {
	errs := FieldErrors{}

	for _, f := range schema.Fields {
		value := sub.Fields[f.Name]
		if value == "" {
			if f.Required {
				errs.add(f.Name, f.Message)
			}
			continue
		}
		if f.Kind == schema.KindEmail {
			if err := validate.Var(value, "email"); err != nil {
				errs.add(f.Name, f.Message)
			}
			continue
		}
		if f.MinLen > 0 && utf8.RuneCountInString(value) < f.MinLen {
			errs.add(f.Name, f.Message)
		}
	}

	// Cross-field rule: the two preference areas must differ. Reported
	// on area_2, matching where the form shows it.
	area1, area2 := sub.Fields["area_1"], sub.Fields["area_2"]
	if area1 != "" && area2 != "" && area1 == area2 {
		errs.add("area_2", schema.AreaDistinctMessage)
	}

	if sub.Resume != nil {
		if maxResumeBytes > 0 && sub.Resume.Size > maxResumeBytes {
			errs.add(schema.ResumeField, schema.ResumeTooLargeMessage)
		}
		ext := strings.ToLower(filepath.Ext(sub.Resume.Filename))
		if !schema.AllowedResumeExts[ext] {
			errs.add(schema.ResumeField, schema.ResumeBadTypeMessage)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &ValidatedCandidate{
		Email:          sub.Fields["email"],
		Name:           sub.Fields["name"],
		Surname:        sub.Fields["surname"],
		BirthDate:      sub.Fields["birth_date"],
		Phone:          sub.Fields["phone"],
		Residency:      sub.Fields["residency"],
		Domiciliation:  sub.Fields["domiciliation"],
		University:     sub.Fields["university"],
		Faculty:        sub.Fields["faculty"],
		Course:         sub.Fields["course"],
		CurriculumType: sub.Fields["curriculum_type"],
		CourseYear:     sub.Fields["course_year"],
		Area1:          area1,
		Area2:          area2,
		HowKnowJesap:   sub.Fields["how_know_jesap"],
		WhyJesap:       sub.Fields["why_jesap"],
		WhyArea:        sub.Fields["why_area"],
		KnowSomeone:    sub.Fields["know_someone"],
		JEItalyMember:  sub.Fields["je_italy_member"],
		Resume:         sub.Resume,
	}, nil
}
