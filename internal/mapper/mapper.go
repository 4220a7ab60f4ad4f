// Package mapper translates between the storage field names (terse
// English, candidati columns) and the presentation field names (Italian)
// the review table displays. Both directions come from a single table so
// they cannot drift apart; mapper_test.go checks the table covers every
// Candidate attribute.
package mapper

import (
	"time"

	"github.com/jesap-it/recruiting-backend/internal/dtos"
	"github.com/jesap-it/recruiting-backend/internal/models"
)

// Pair binds one storage column to its presentation counterpart.
type Pair struct {
	Storage string
	Display string
}

// Pairs is exhaustive over the candidati table, one entry per column.
var Pairs = []Pair{
	{"id", "id"},
	{"name", "nome"},
	{"surname", "cognome"},
	{"email", "email"},
	{"n_tel", "telefono"},
	{"birth_date", "data_nascita"},
	{"res", "residenza"},
	{"dom", "domiciliazione"},
	{"ateneo", "universita"},
	{"facolta", "facolta"},
	{"corso", "corso"},
	{"curriculum", "tipo_curriculum"},
	{"anno_freq", "anno_corso"},
	{"area", "area_1"},
	{"area2", "area_2"},
	{"how_jesap", "come_conosciuto_jesap"},
	{"motivo_jesap", "perche_jesap"},
	{"motivo_area", "perche_area"},
	{"conoscente_jesap", "conosce_membri_jesap"},
	{"je_italy_member", "in_je_italy"},
	{"resume_url", "resume_url"},
	{"created_at", "created_at"},
}

var (
	storageToDisplay = make(map[string]string, len(Pairs))
	displayToStorage = make(map[string]string, len(Pairs))
)

func init() {
	for _, p := range Pairs {
		storageToDisplay[p.Storage] = p.Display
		displayToStorage[p.Display] = p.Storage
	}
}

// ToDisplay translates a storage column name. The second result is false
// for names outside the table.
func ToDisplay(storage string) (string, bool) {
	display, ok := storageToDisplay[storage]
	return display, ok
}

// ToStorage is the inverse of ToDisplay.
func ToStorage(display string) (string, bool) {
	storage, ok := displayToStorage[display]
	return storage, ok
}

// ToCandidato maps a stored record into its presentation shape.
func ToCandidato(c models.Candidate) dtos.Candidato {
	resumeURL := ""
	if c.ResumeURL != nil {
		resumeURL = *c.ResumeURL
	}
	createdAt := ""
	if !c.CreatedAt.IsZero() {
		createdAt = c.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dtos.Candidato{
		ID:                  c.ID,
		Nome:                c.Name,
		Cognome:             c.Surname,
		Email:               c.Email,
		Telefono:            c.Phone,
		DataNascita:         c.BirthDate,
		Residenza:           c.Residency,
		Domiciliazione:      c.Domicile,
		Universita:          c.University,
		Facolta:             c.Faculty,
		Corso:               c.Course,
		TipoCurriculum:      c.Curriculum,
		AnnoCorso:           c.CourseYear,
		Area1:               c.Area1,
		Area2:               c.Area2,
		ComeConosciutoJesap: c.HowJesap,
		PercheJesap:         c.WhyJesap,
		PercheArea:          c.WhyArea,
		ConosceMembriJesap:  c.KnowSomeone,
		InJeItaly:           c.JEItalyMember,
		ResumeURL:           resumeURL,
		CreatedAt:           createdAt,
	}
}
