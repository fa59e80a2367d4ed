package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	providerRepo "guidely/database/repository/provider"
	"guidely/models"
	"guidely/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler drives the provider application review workflow.
type AdminHandler struct {
	Providers providerRepo.ProviderRepository
	Storage   storage.StorageService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(providers providerRepo.ProviderRepository, storageSvc storage.StorageService) *AdminHandler {
	return &AdminHandler{Providers: providers, Storage: storageSvc}
}

// ListApplicationsHandler handles GET /admin/applications?status=.
func (h *AdminHandler) ListApplicationsHandler(c *gin.Context) {
	status := models.VerificationStatus(c.Query("status"))
	switch status {
	case "", models.VerificationPending, models.VerificationApproved, models.VerificationRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown verification status"})
		return
	}

	providers, err := h.Providers.ListByVerificationStatus(c.Request.Context(), status)
	if err != nil {
		getLogger(c).Error("failed to list applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	c.JSON(http.StatusOK, gin.H{"applications": providers})
}

// VerifyApplicationHandler handles PATCH /admin/applications/:id/verify.
func (h *AdminHandler) VerifyApplicationHandler(c *gin.Context) {
	var input struct {
		Status models.VerificationStatus `json:"status"`
		Notes  string                    `json:"notes,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Status != models.VerificationApproved && input.Status != models.VerificationRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}

	provider, err := h.Providers.UpdateVerification(c.Request.Context(), c.Param("id"), input.Status, input.Notes)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			return
		}
		getLogger(c).Error("failed to update verification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update verification"})
		return
	}
	c.JSON(http.StatusOK, provider)
}

// UploadVerificationDocumentHandler handles
// POST /admin/applications/:id/documents: the file goes to the blob store and
// only its reference is attached to the application.
func (h *AdminHandler) UploadVerificationDocumentHandler(c *gin.Context) {
	providerID := c.Param("id")

	file, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document file is required"})
		return
	}
	label := c.PostForm("label")
	if label == "" {
		label = file.Filename
	}

	tmpPath := filepath.Join(os.TempDir(), file.Filename)
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		getLogger(c).Error("failed to persist upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "verification/"+providerID)
	if err != nil {
		getLogger(c).Error("blob store upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store document"})
		return
	}

	doc := models.VerificationDocument{
		PublicID:   publicID,
		Label:      label,
		UploadedAt: time.Now(),
	}
	if err := h.Providers.AddVerificationDocument(c.Request.Context(), providerID, doc); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			return
		}
		getLogger(c).Error("failed to attach document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attach document"})
		return
	}
	c.JSON(http.StatusCreated, doc)
}
