package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
)

// CanonicalHash produces the hex SHA-256 digest an idempotency key is
// checked against. It is computed over exactly {amount, assetTypeId,
// reference} with keys in sorted order, with the amount rendered at a fixed
// scale, so semantically identical requests hash identically regardless of
// incidental JSON formatting (key order, whitespace, trailing zeros, or
// exponent notation) in the original request body. Metadata is
// intentionally excluded: it is caller-supplied annotation, not part of
// what the transfer request means.
func CanonicalHash(input domain.TransferInput) string {
	canonical := fmt.Sprintf(
		`{"amount":%q,"assetTypeId":%q,"reference":%q}`,
		input.Amount.StringFixed(domain.AmountScale),
		input.AssetTypeID,
		input.Reference,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
