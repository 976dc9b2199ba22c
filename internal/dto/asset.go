package dto

import (
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
)

// CreateAssetTypeRequest defines the data needed to register a new asset type.
type CreateAssetTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Symbol      string `json:"symbol" binding:"required,max=10"`
	Description string `json:"description"`
}

// AssetTypeResponse defines the data returned for an asset type.
type AssetTypeResponse struct {
	AssetTypeID string `json:"assetTypeID"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// ListAssetTypesParams defines query parameters for listing asset types.
type ListAssetTypesParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAssetTypesResponse wraps a page of asset types.
type ListAssetTypesResponse struct {
	AssetTypes []AssetTypeResponse `json:"assetTypes"`
	Total      int                 `json:"total"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// ToAssetTypeResponse converts a domain.AssetType to its DTO.
func ToAssetTypeResponse(a domain.AssetType) AssetTypeResponse {
	return AssetTypeResponse{
		AssetTypeID: a.AssetTypeID,
		Name:        a.Name,
		Symbol:      a.Symbol,
		Description: a.Description,
		Active:      a.Active,
	}
}

// ToAssetTypeResponses converts a slice of domain.AssetType to its DTO slice.
func ToAssetTypeResponses(assets []domain.AssetType) []AssetTypeResponse {
	res := make([]AssetTypeResponse, len(assets))
	for i, a := range assets {
		res[i] = ToAssetTypeResponse(a)
	}
	return res
}
