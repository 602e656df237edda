package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/predialis/bankimport-backend/internal/api/dto"
	"github.com/predialis/bankimport-backend/internal/infrastructure/storage"
)

// TransactionsHandler persists accepted transactions (import execute).
type TransactionsHandler struct {
	store storage.TransactionStore
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(store storage.TransactionStore) *TransactionsHandler {
	return &TransactionsHandler{store: store}
}

// Create handles POST /api/transactions - persists one transaction the
// user accepted in the import review.
func (h *TransactionsHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	incoming, err := req.Transaction.ToIncoming(req.AccountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	tx := &storage.Transaction{
		AccountID:   incoming.AccountID,
		ExternalID:  incoming.ExternalID,
		Date:        incoming.Date,
		Amount:      incoming.Amount,
		Description: incoming.Description,
		Type:        incoming.Type,
	}

	if err := h.store.CreateTransaction(c.Request.Context(), tx); err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{ID: tx.ID})
}
