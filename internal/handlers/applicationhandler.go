package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jesap-it/recruiting-backend/internal/common"
	"github.com/jesap-it/recruiting-backend/internal/dtos"
	"github.com/jesap-it/recruiting-backend/internal/schema"
	"github.com/jesap-it/recruiting-backend/internal/services"
)

// maxMultipartMemory caps in-memory multipart parsing; larger parts
// spill to temp files.
const maxMultipartMemory = 32 << 20 // 32 MB

type ApplicationHandler struct {
	Service *services.ApplicationService
}

func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Service: service}
}

// Submit is the POST /api/v1/submit endpoint: multipart form fields plus
// an optional resume part.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.submitError(c, common.NewError(common.CodeMalformed, "Richiesta non valida", err))
		return
	}
	form := c.Request.MultipartForm

	sub := &dtos.RawSubmission{Fields: make(map[string]string, len(form.Value))}
	for key, values := range form.Value {
		if key == schema.ResumeField || len(values) == 0 {
			continue
		}
		sub.Fields[key] = values[0]
	}

	if headers := form.File[schema.ResumeField]; len(headers) > 0 {
		header := headers[0]
		file, err := header.Open()
		if err != nil {
			h.submitError(c, common.NewError(common.CodeMalformed, "Richiesta non valida", err))
			return
		}
		defer file.Close()
		sub.Resume = &dtos.ResumeFile{
			Filename: header.Filename,
			Size:     header.Size,
			Content:  file,
		}
	}

	result, err := h.Service.Submit(c.Request.Context(), sub)
	if err != nil {
		h.submitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Candidatura inviata con successo!",
		"applicationId": result.ApplicationID,
		"version":       result.Version,
	})
}

// List is the GET /api/v1/applications endpoint. Candidates come back in
// presentation (Italian) field names. An empty store is success with an
// empty array, not a 404.
func (h *ApplicationHandler) List(c *gin.Context) {
	candidati, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("❌ listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Errore durante il recupero dei candidati",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    candidati,
	})
}

// Schema serves the field catalogue so the form renders and
// pre-validates from the same rules the server enforces.
func (h *ApplicationHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    schema.Fields,
	})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// submitError converts a pipeline failure into the response contract.
// Only the static message crosses the boundary; the wrapped cause stays
// in the server log.
func (h *ApplicationHandler) submitError(c *gin.Context, err error) {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		log.Printf("❌ submit failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Si è verificato un errore durante l'elaborazione della richiesta",
		})
		return
	}

	if appErr.Code == common.CodeValidation {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": appErr.Message,
			"errors":  appErr.Fields,
		})
		return
	}

	log.Printf("❌ submit failed: %v", appErr)
	c.JSON(common.HTTPStatus(appErr), gin.H{
		"success": false,
		"message": appErr.Message,
	})
}
