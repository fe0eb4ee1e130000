package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/elmerohueso/FamilyChores/internal/ledger"
	"github.com/elmerohueso/FamilyChores/internal/util"

	"github.com/gin-gonic/gin"
)

// TransactionHandler exposes the ledger over HTTP. All balance logic
// lives in the ledger service; this layer only binds, maps errors and
// formats replies.
type TransactionHandler struct {
	Ledger *ledger.Service
}

func NewTransactionHandler(svc *ledger.Service) *TransactionHandler {
	return &TransactionHandler{Ledger: svc}
}

type createTransactionReq struct {
	UserID    *uint  `json:"user_id"`
	ChoreID   *uint  `json:"chore_id"`
	Value     *int   `json:"value"`
	Timestamp string `json:"timestamp"`
}

// ListTransactions returns the full ledger enriched with user and chore
// display names, newest first.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	records, err := h.Ledger.ListTransactions()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, records)
}

// RecordTransaction records a completion, adjustment or redemption.
func (h *TransactionHandler) RecordTransaction(c *gin.Context) {
	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "value must be a number")
		return
	}
	if req.Value == nil {
		util.Error(c, http.StatusBadRequest, "value is required")
		return
	}
	if req.UserID == nil {
		util.Error(c, http.StatusBadRequest, "user_id is required")
		return
	}

	timestamp := time.Now()
	if req.Timestamp != "" {
		layouts := []string{
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02",
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, req.Timestamp); err == nil {
				timestamp = t
				break
			}
		}
	}

	id, err := h.Ledger.RecordTransaction(*req.UserID, req.ChoreID, *req.Value, timestamp)
	if err != nil {
		var insufficient *ledger.InsufficientBalanceError
		switch {
		case errors.Is(err, ledger.ErrUserNotFound):
			util.Error(c, http.StatusNotFound, "user not found")
		case errors.Is(err, ledger.ErrChoreNotFound):
			util.Error(c, http.StatusNotFound, "chore not found")
		case errors.As(err, &insufficient):
			util.Error(c, http.StatusBadRequest, insufficient.Error())
		default:
			util.Error(c, http.StatusInternalServerError, "failed to record transaction")
		}
		return
	}

	util.Created(c, util.Response{
		"transaction_id": id,
		"message":        "Transaction created successfully",
	})
}
