package dtos

import "io"

// RawSubmission is the untyped field bag parsed from the multipart body:
// every form value as a string, plus at most one resume attachment
// carried out of band. Nothing here is trusted until the validator ran.
type RawSubmission struct {
	Fields map[string]string
	Resume *ResumeFile
}

// ResumeFile is the one binary attachment of a submission.
type ResumeFile struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// Candidato is the presentation shape of a stored candidate: the same
// record with the Italian field names the review table displays.
type Candidato struct {
	ID                  string `json:"id"`
	Nome                string `json:"nome"`
	Cognome             string `json:"cognome"`
	Email               string `json:"email"`
	Telefono            string `json:"telefono"`
	DataNascita         string `json:"data_nascita"`
	Residenza           string `json:"residenza"`
	Domiciliazione      string `json:"domiciliazione"`
	Universita          string `json:"universita"`
	Facolta             string `json:"facolta"`
	Corso               string `json:"corso"`
	TipoCurriculum      string `json:"tipo_curriculum"`
	AnnoCorso           string `json:"anno_corso"`
	Area1               string `json:"area_1"`
	Area2               string `json:"area_2"`
	ComeConosciutoJesap string `json:"come_conosciuto_jesap"`
	PercheJesap         string `json:"perche_jesap"`
	PercheArea          string `json:"perche_area"`
	ConosceMembriJesap  string `json:"conosce_membri_jesap"`
	InJeItaly           string `json:"in_je_italy"`
	ResumeURL           string `json:"resume_url"`
	CreatedAt           string `json:"created_at"`
}

// SubmitResult is what a successful submission returns to the browser.
// ApplicationID is display-only and is not the storage key.
type SubmitResult struct {
	ApplicationID string `json:"applicationId"`
	Version       string `json:"version"`
}
