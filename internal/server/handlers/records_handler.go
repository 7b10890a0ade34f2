package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/mangsho/internal/domain/models"
	"github.com/mamadbah2/mangsho/internal/domain/validation"
	"github.com/mamadbah2/mangsho/internal/service/records"
)

// RecordsHandler handles the create and list endpoints for the three ledgers.
type RecordsHandler struct {
	svc    records.RecordService
	logger *zap.Logger
}

// NewRecordsHandler constructs the HTTP handler adapter.
func NewRecordsHandler(svc records.RecordService, logger *zap.Logger) *RecordsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordsHandler{svc: svc, logger: logger}
}

// CreateInventory ingests a new inventory batch.
func (h *RecordsHandler) CreateInventory(c *gin.Context) {
	var input models.InventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.badPayload(c, err)
		return
	}

	id, err := h.svc.CreateInventoryItem(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err, "Error: could not save inventory item.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Inventory item added successfully.",
		"item_id": id,
	})
}

// CreateSale ingests a new sales transaction.
func (h *RecordsHandler) CreateSale(c *gin.Context) {
	var input models.SaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.badPayload(c, err)
		return
	}

	created, err := h.svc.CreateSaleRecord(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err, "Error: could not save sale record.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":              true,
		"message":              "Sale record added successfully.",
		"sale_id":              created.ID,
		"generated_product_id": created.ProductID,
	})
}

// CreateLoss ingests a new wastage record.
func (h *RecordsHandler) CreateLoss(c *gin.Context) {
	var input models.LossInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.badPayload(c, err)
		return
	}

	id, err := h.svc.CreateLossRecord(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err, "Error: could not save loss record.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Loss record added successfully.",
		"record_id": id,
	})
}

// ListSales returns every sale, newest first.
func (h *RecordsHandler) ListSales(c *gin.Context) {
	sales, err := h.svc.ListSales(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching sales records.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sales})
}

func (h *RecordsHandler) badPayload(c *gin.Context, err error) {
	h.logger.Warn("invalid request payload", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Error: No data received or invalid JSON format.",
	})
}

// writeError maps a service failure onto the response: validation failures
// become 400 with the full message list, anything else is an opaque 500.
func (h *RecordsHandler) writeError(c *gin.Context, err error, opaque string) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": vErr.Error(),
			"errors":  vErr.Messages,
		})
		return
	}

	h.logger.Error("persistence failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": opaque,
	})
}
