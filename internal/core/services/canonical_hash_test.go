package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
)

func TestCanonicalHash_StableAcrossEquivalentAmountRepresentations(t *testing.T) {
	base := domain.TransferInput{
		AssetTypeID: "asset-gld",
		Amount:      decimal.RequireFromString("10"),
		Reference:   "order-1",
	}
	scaled := domain.TransferInput{
		AssetTypeID: "asset-gld",
		Amount:      decimal.RequireFromString("10.00000000"),
		Reference:   "order-1",
	}

	assert.Equal(t, CanonicalHash(base), CanonicalHash(scaled))
}

func TestCanonicalHash_DiffersOnAmount(t *testing.T) {
	a := domain.TransferInput{AssetTypeID: "asset-gld", Amount: decimal.RequireFromString("10"), Reference: "order-1"}
	b := domain.TransferInput{AssetTypeID: "asset-gld", Amount: decimal.RequireFromString("11"), Reference: "order-1"}

	assert.NotEqual(t, CanonicalHash(a), CanonicalHash(b))
}

func TestCanonicalHash_IgnoresEndpointInitiatedByAndMetadata(t *testing.T) {
	a := domain.TransferInput{
		AssetTypeID: "asset-gld", Amount: decimal.RequireFromString("10"), Reference: "order-1",
		Endpoint: "POST /v1/wallets/x/transfers/topup", InitiatedBy: "alice", Metadata: []byte(`{"note":"a"}`),
	}
	b := domain.TransferInput{
		AssetTypeID: "asset-gld", Amount: decimal.RequireFromString("10"), Reference: "order-1",
		Endpoint: "POST /v1/wallets/y/transfers/bonus", InitiatedBy: "bob", Metadata: []byte(`{"note":"b"}`),
	}

	assert.Equal(t, CanonicalHash(a), CanonicalHash(b))
}

func TestCanonicalHash_DiffersOnReference(t *testing.T) {
	a := domain.TransferInput{AssetTypeID: "asset-gld", Amount: decimal.RequireFromString("10"), Reference: "order-1"}
	b := domain.TransferInput{AssetTypeID: "asset-gld", Amount: decimal.RequireFromString("10"), Reference: "order-2"}

	assert.NotEqual(t, CanonicalHash(a), CanonicalHash(b))
}
