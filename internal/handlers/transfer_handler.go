package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	portssvc "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/services"
	"github.com/rah7202/Dino-Wallet-Service/internal/dto"
	"github.com/rah7202/Dino-Wallet-Service/internal/middleware"
)

// transferHandler handles the three write endpoints: topup, bonus, spend.
// All three share one request/response shape and differ only in flow.
type transferHandler struct {
	transferService portssvc.TransferExecutor
}

func newTransferHandler(ts portssvc.TransferExecutor) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers the write endpoints under /wallets/:walletID/transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferExecutor) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/wallets/:walletID/transfers")
	{
		transfers.POST("/topup", h.topup)
		transfers.POST("/bonus", h.bonus)
		transfers.POST("/spend", h.spend)
	}
}

func (h *transferHandler) topup(c *gin.Context) {
	h.execute(c, domain.FlowTopup, "POST /v1/wallets/:walletID/transfers/topup")
}

func (h *transferHandler) bonus(c *gin.Context) {
	h.execute(c, domain.FlowBonus, "POST /v1/wallets/:walletID/transfers/bonus")
}

func (h *transferHandler) spend(c *gin.Context) {
	h.execute(c, domain.FlowSpend, "POST /v1/wallets/:walletID/transfers/spend")
}

// execute binds the shared request body, resolves the idempotency key from
// its header, and runs the requested flow.
func (h *transferHandler) execute(c *gin.Context, flow domain.Flow, endpoint string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("walletID")

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind transfer request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	idempotencyKey := c.GetHeader("Idempotency-Key")
	if req.InitiatedBy == "" {
		req.InitiatedBy = "system"
	}

	input := domain.TransferInput{
		Flow:           flow,
		WalletID:       walletID,
		AssetTypeID:    req.AssetTypeID,
		Amount:         req.Amount,
		Reference:      req.Reference,
		InitiatedBy:    req.InitiatedBy,
		Metadata:       req.Metadata,
		IdempotencyKey: idempotencyKey,
		Endpoint:       endpoint,
	}

	logger = logger.With(slog.String("wallet_id", walletID), slog.String("flow", string(flow)))

	outcome, err := h.transferService.Execute(c.Request.Context(), input)
	if err != nil {
		writeTransferError(c, logger, err)
		return
	}

	status := http.StatusCreated
	if outcome.FromCache {
		status = http.StatusOK
	}
	logger.Info("transfer executed", slog.String("transaction_id", outcome.Result.TransactionID), slog.Bool("from_cache", outcome.FromCache))
	c.JSON(status, dto.ToTransferResponse(*outcome))
}

// writeTransferError maps an apperrors.Kind onto its HTTP status.
func writeTransferError(c *gin.Context, logger *slog.Logger, err error) {
	kind := apperrors.KindOf(err)
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		logger.Warn("bad request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnprocessable):
		logger.Warn("unprocessable", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTransientConflict), errors.Is(err, apperrors.ErrTimeout):
		logger.Error("retry exhausted", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable, retry later"})
	default:
		logger.Error("internal error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
