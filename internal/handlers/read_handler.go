package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/services"
	"github.com/rah7202/Dino-Wallet-Service/internal/dto"
	"github.com/rah7202/Dino-Wallet-Service/internal/middleware"
)

// assetHandler handles asset-type registration and listing.
type assetHandler struct {
	assetService portssvc.AssetService
}

func newAssetHandler(as portssvc.AssetService) *assetHandler {
	return &assetHandler{assetService: as}
}

func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetService) {
	h := newAssetHandler(assetService)
	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAssetType)
		assets.GET("", h.listAssetTypes)
	}
}

func (h *assetHandler) createAssetType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind asset type request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	asset, err := h.assetService.CreateAssetType(c.Request.Context(), req.Name, req.Symbol, req.Description)
	if err != nil {
		writeTransferError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssetTypeResponse(*asset))
}

func (h *assetHandler) listAssetTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAssetTypesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("failed to bind list asset types query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	assets, total, err := h.assetService.ListAssetTypes(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		writeTransferError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListAssetTypesResponse{
		AssetTypes: dto.ToAssetTypeResponses(assets),
		Total:      total,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
}

// walletHandler handles wallet lifecycle, balance, and history reads.
type walletHandler struct {
	walletService  portssvc.WalletService
	historyService portssvc.TransactionHistoryService
}

func newWalletHandler(ws portssvc.WalletService, hs portssvc.TransactionHistoryService) *walletHandler {
	return &walletHandler{walletService: ws, historyService: hs}
}

func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletService, historyService portssvc.TransactionHistoryService) {
	h := newWalletHandler(walletService, historyService)
	wallets := rg.Group("/wallets")
	{
		wallets.POST("", h.createWallet)
		wallets.GET("", h.listWallets)
		wallets.GET("/:walletID", h.getWallet)
		wallets.GET("/:walletID/balance", h.getBalance)
		wallets.GET("/:walletID/transactions", h.getTransactions)
	}
}

func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind create wallet request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.walletService.CreateWallet(c.Request.Context(), req.OwnerRef, req.Label)
	if err != nil {
		writeTransferError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToWalletResponse(*wallet))
}

func (h *walletHandler) listWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListWalletsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("failed to bind list wallets query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	wallets, total, err := h.walletService.ListWallets(c.Request.Context(), params.OwnerRefPrefix, params.Limit, params.Offset)
	if err != nil {
		writeTransferError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListWalletsResponse{
		Wallets: dto.ToWalletResponses(wallets),
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
	})
}

func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("walletID")

	wallet, err := h.walletService.GetWallet(c.Request.Context(), walletID)
	if err != nil {
		writeTransferError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(*wallet))
}

func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("walletID")
	assetTypeID := c.Query("assetTypeID")
	if assetTypeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assetTypeID query parameter is required"})
		return
	}

	wallet, asset, balance, err := h.walletService.GetBalance(c.Request.Context(), walletID, assetTypeID)
	if err != nil {
		writeTransferError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{
		WalletID:    wallet.WalletID,
		AssetTypeID: asset.AssetTypeID,
		AssetSymbol: asset.Symbol,
		Balance:     balance,
	})
}

func (h *walletHandler) getTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("walletID")

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("failed to bind list entries query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	entries, total, err := h.historyService.ListEntriesByWallet(c.Request.Context(), walletID, params.AssetTypeID, params.Limit, params.Offset)
	if err != nil {
		writeTransferError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.ToEntryResponses(entries),
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
	})
}
