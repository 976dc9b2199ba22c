// Command seed populates a fresh database with the demo fixtures used by
// the end-to-end scenarios: three asset types and one funded user wallet.
// System wallets (treasury, bonus_pool, revenue) are created by migration
// 0002, not here, since the engine cannot run at all without them.
package main

import (
	"context"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/services"
	portssvc "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/services"
	"github.com/rah7202/Dino-Wallet-Service/internal/platform/config"
	"github.com/rah7202/Dino-Wallet-Service/internal/repositories/database/pgsql"
	"github.com/rah7202/Dino-Wallet-Service/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg)
	if err != nil {
		log.Fatalf("unable to connect to database: %v", err)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	svc := services.NewServiceContainer(repos)

	assets := []struct{ name, symbol string }{
		{"Gold", "GLD"},
		{"Diamond", "DIA"},
		{"Loot Point", "LPT"},
	}
	assetIDs := map[string]string{}
	for _, a := range assets {
		existing, _, err := svc.Transfer.ListAssetTypes(ctx, 100, 0)
		if err == nil {
			for _, e := range existing {
				if e.Symbol == a.symbol {
					assetIDs[a.symbol] = e.AssetTypeID
				}
			}
		}
		if assetIDs[a.symbol] != "" {
			log.Printf("asset %s already exists, skipping", a.symbol)
			continue
		}
		created, err := svc.Transfer.CreateAssetType(ctx, a.name, a.symbol, "seed fixture")
		if err != nil {
			log.Fatalf("failed to create asset type %s: %v", a.symbol, err)
		}
		assetIDs[a.symbol] = created.AssetTypeID
		log.Printf("created asset type %s (%s)", a.symbol, created.AssetTypeID)
	}

	alice, err := findOrCreateWallet(ctx, svc, "user:alice", "Alice")
	if err != nil {
		log.Fatalf("failed to provision alice's wallet: %v", err)
	}
	log.Printf("alice wallet: %s", alice.WalletID)

	fund := []struct {
		symbol string
		amount string
		ref    string
	}{
		{"GLD", "1000", "SEED-GLD"},
		{"DIA", "50", "SEED-DIA"},
	}
	for _, f := range fund {
		amount, err := decimal.NewFromString(f.amount)
		if err != nil {
			log.Fatalf("invalid seed amount %q: %v", f.amount, err)
		}
		outcome, err := svc.Transfer.Execute(ctx, domain.TransferInput{
			Flow:           domain.FlowTopup,
			WalletID:       alice.WalletID,
			AssetTypeID:    assetIDs[f.symbol],
			Amount:         amount,
			Reference:      f.ref,
			InitiatedBy:    "seed",
			IdempotencyKey: f.ref,
			Endpoint:       "cmd/seed",
		})
		if err != nil {
			log.Fatalf("failed to fund alice with %s: %v", f.symbol, err)
		}
		log.Printf("funded alice: %s %s (tx %s, fromCache=%v)", f.amount, f.symbol, outcome.Result.TransactionID, outcome.FromCache)
	}

	log.Println("seed complete")
	os.Exit(0)
}

func findOrCreateWallet(ctx context.Context, svc *portssvc.ServiceContainer, ownerRef, label string) (*domain.Wallet, error) {
	existing, _, err := svc.Transfer.ListWallets(ctx, ownerRef, 1, 0)
	if err == nil && len(existing) > 0 {
		return &existing[0], nil
	}
	return svc.Transfer.CreateWallet(ctx, ownerRef, label)
}
