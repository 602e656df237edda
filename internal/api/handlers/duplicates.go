package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/predialis/bankimport-backend/internal/api/dto"
	"github.com/predialis/bankimport-backend/internal/application/service"
)

// DuplicatesHandler exposes duplicate detection to the import UI.
type DuplicatesHandler struct {
	detection *service.DuplicateDetectionService
}

// NewDuplicatesHandler creates a new duplicates handler.
func NewDuplicatesHandler(detection *service.DuplicateDetectionService) *DuplicatesHandler {
	return &DuplicatesHandler{detection: detection}
}

// Detect handles POST /api/duplicates/detect - batch duplicate detection
// with summary counts.
func (h *DuplicatesHandler) Detect(c *gin.Context) {
	var req dto.DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	batch, err := dto.ToIncomingBatch(req.Transactions, req.AccountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	result, err := h.detection.FindDuplicates(c.Request.Context(), batch, req.AccountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	resp := dto.DetectResponse{
		Summary:    result.Summary,
		Duplicates: make([]dto.MatchResponse, 0, len(result.Duplicates)),
		Unique:     make([]dto.TransactionPayload, 0, len(result.Unique)),
	}
	for _, m := range result.Duplicates {
		resp.Duplicates = append(resp.Duplicates, dto.FromMatch(m))
	}
	for _, tx := range result.Unique {
		resp.Unique = append(resp.Unique, dto.FromIncoming(tx))
	}

	c.JSON(http.StatusOK, resp)
}

// Preview handles POST /api/duplicates/preview - per-transaction
// recommendations for the import review screen.
func (h *DuplicatesHandler) Preview(c *gin.Context) {
	var req dto.DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	batch, err := dto.ToIncomingBatch(req.Transactions, req.AccountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	previews, err := h.detection.GenerateDuplicatePreview(c.Request.Context(), batch, req.AccountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	resp := dto.PreviewResponse{
		Previews: make([]dto.PreviewEntryResponse, 0, len(previews)),
	}
	for _, p := range previews {
		entry := dto.PreviewEntryResponse{
			Transaction:    dto.FromIncoming(p.Transaction),
			Matches:        make([]dto.MatchResponse, 0, len(p.Matches)),
			Recommendation: string(p.Recommendation),
			Reason:         p.Reason,
		}
		for _, m := range p.Matches {
			entry.Matches = append(entry.Matches, dto.FromMatch(m))
		}
		resp.Previews = append(resp.Previews, entry)
	}

	c.JSON(http.StatusOK, resp)
}

// Check handles POST /api/duplicates/check - single-transaction check.
func (h *DuplicatesHandler) Check(c *gin.Context) {
	var req dto.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	tx, err := req.Transaction.ToIncoming(req.AccountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	duplicate, err := h.detection.CheckSingleTransaction(c.Request.Context(), tx, req.AccountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusOK, dto.CheckResponse{Duplicate: duplicate})
}
