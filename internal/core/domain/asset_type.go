package domain

// AssetType is a virtual currency denomination (e.g. GLD, DIA, LPT).
type AssetType struct {
	AssetTypeID string `json:"assetTypeID"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"` // <= 10 chars, unique
	Description string `json:"description"`
	Active      bool   `json:"active"`
	CreatedAt
}
