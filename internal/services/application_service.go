package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/jesap-it/recruiting-backend/internal/common"
	"github.com/jesap-it/recruiting-backend/internal/dtos"
	"github.com/jesap-it/recruiting-backend/internal/mapper"
	"github.com/jesap-it/recruiting-backend/internal/models"
	"github.com/jesap-it/recruiting-backend/internal/sheets"
	"github.com/jesap-it/recruiting-backend/internal/storage"
	"github.com/jesap-it/recruiting-backend/internal/validation"
)

// ResponseVersion is the protocol tag the form checks after submitting.
const ResponseVersion = "10.0"

// CandidateStore is the record store the service writes to and lists from.
type CandidateStore interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	FindAll(ctx context.Context) ([]models.Candidate, error)
}

// BlobStore uploads a resume under a named key and returns a retrievable
// reference.
type BlobStore interface {
	Upload(ctx context.Context, key string, content io.Reader) (string, error)
}

// Mirror appends one positional row to the external spreadsheet.
type Mirror interface {
	Append(ctx context.Context, row []interface{}) error
}

// ApplicationService runs the submission pipeline and the listing.
//
// The three external calls of a submission are sequential and each is
// attempted at most once: upload before insert (a record must never
// reference a blob that failed to upload), insert before mirror. There
// is no transaction across them. A mirror failure is logged and the
// response stays Accepted; an insert failure after a successful upload
// leaves an orphaned blob, which is logged rather than hidden.
type ApplicationService struct {
	Store          CandidateStore
	Blobs          BlobStore
	Mirror         Mirror
	MaxResumeBytes int64
	Timeout        time.Duration
}

func NewApplicationService(store CandidateStore, blobs BlobStore, mirror Mirror, maxResumeBytes int64, timeout time.Duration) *ApplicationService {
	return &ApplicationService{
		Store:          store,
		Blobs:          blobs,
		Mirror:         mirror,
		MaxResumeBytes: maxResumeBytes,
		Timeout:        timeout,
	}
}

// Submit validates a raw submission and, if it passes, uploads the
// resume, inserts the candidate row, and mirrors it to the sheet.
// Rejected submissions cause no side effects at all.
func (s *ApplicationService) Submit(ctx context.Context, sub *dtos.RawSubmission) (*dtos.SubmitResult, error) {
	candidate, fieldErrs := validation.Validate(sub, s.MaxResumeBytes)
	if fieldErrs != nil {
		return nil, common.NewValidationError("Errore di validazione", fieldErrs)
	}

	var resumeURL *string
	if candidate.Resume != nil {
		key := storage.BuildResumeKey(candidate.Name, candidate.Surname, candidate.Resume.Filename, time.Now())
		url, err := s.upload(ctx, key, candidate.Resume.Content)
		if err != nil {
			return nil, common.NewError(common.CodeStorage, "Caricamento del curriculum non riuscito", err)
		}
		resumeURL = &url
	}

	record := &models.Candidate{
		Name:          candidate.Name,
		Surname:       candidate.Surname,
		Email:         candidate.Email,
		Phone:         candidate.Phone,
		BirthDate:     candidate.BirthDate,
		Residency:     candidate.Residency,
		Domicile:      candidate.Domiciliation,
		University:    candidate.University,
		Faculty:       candidate.Faculty,
		Course:        candidate.Course,
		Curriculum:    candidate.CurriculumType,
		CourseYear:    candidate.CourseYear,
		Area1:         candidate.Area1,
		Area2:         candidate.Area2,
		HowJesap:      candidate.HowKnowJesap,
		WhyJesap:      candidate.WhyJesap,
		WhyArea:       candidate.WhyArea,
		KnowSomeone:   candidate.KnowSomeone,
		JEItalyMember: candidate.JEItalyMember,
		ResumeURL:     resumeURL,
	}

	if err := s.insert(ctx, record); err != nil {
		if resumeURL != nil {
			// Accepted inconsistency window: the upload succeeded but
			// the row did not land. No rollback, just a loud trace.
			log.Printf("⚠️ orphaned resume blob after failed insert: %s", *resumeURL)
		}
		return nil, common.NewError(common.CodePersistence, "Salvataggio della candidatura non riuscito", err)
	}

	applicationID := fmt.Sprintf("APP-%d", time.Now().UnixMilli())

	if err := s.mirror(ctx, sheets.Row(candidate)); err != nil {
		// Policy: the mirror is best-effort. The candidate already has a
		// stored record, so the submission stays accepted and the miss
		// is left to manual reconciliation.
		log.Printf("⚠️ sheet mirror failed for %s: %v", applicationID, err)
	}

	return &dtos.SubmitResult{
		ApplicationID: applicationID,
		Version:       ResponseVersion,
	}, nil
}

// ListAll returns every stored candidate in presentation field names.
// An empty store is an empty list, not an error.
func (s *ApplicationService) ListAll(ctx context.Context) ([]dtos.Candidato, error) {
	listCtx, cancel := s.callContext(ctx)
	defer cancel()

	records, err := s.Store.FindAll(listCtx)
	if err != nil {
		return nil, common.NewError(common.CodePersistence, "Errore durante il recupero dei candidati", err)
	}

	candidati := make([]dtos.Candidato, len(records))
	for i, record := range records {
		candidati[i] = mapper.ToCandidato(record)
	}
	return candidati, nil
}

func (s *ApplicationService) upload(ctx context.Context, key string, content io.Reader) (string, error) {
	uploadCtx, cancel := s.callContext(ctx)
	defer cancel()
	return s.Blobs.Upload(uploadCtx, key, content)
}

func (s *ApplicationService) insert(ctx context.Context, record *models.Candidate) error {
	insertCtx, cancel := s.callContext(ctx)
	defer cancel()
	return s.Store.Create(insertCtx, record)
}

func (s *ApplicationService) mirror(ctx context.Context, row []interface{}) error {
	if s.Mirror == nil {
		log.Println("⚠️ sheet mirror not configured, skipping append")
		return nil
	}
	appendCtx, cancel := s.callContext(ctx)
	defer cancel()
	if err := s.Mirror.Append(appendCtx, row); err != nil {
		return common.NewError(common.CodeMirror, "sheet append failed", err)
	}
	return nil
}

func (s *ApplicationService) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.Timeout)
}
