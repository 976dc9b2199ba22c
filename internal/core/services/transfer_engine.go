package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
	"github.com/rah7202/Dino-Wallet-Service/internal/metrics"
	"github.com/rah7202/Dino-Wallet-Service/internal/middleware"
	"github.com/google/uuid"
)

// TransferEngine implements the single write path of the wallet service:
// topup, bonus, and spend, each run through the same locked, idempotent,
// atomic algorithm. It holds no state beyond its collaborators, so it is
// safe to share across concurrent callers backed by a pooled connection.
type TransferEngine struct {
	repos repositories.RepositoryProvider
}

// NewTransferEngine builds a TransferEngine over its repository collaborators.
func NewTransferEngine(repos repositories.RepositoryProvider) *TransferEngine {
	return &TransferEngine{repos: repos}
}

// Execute runs one transfer flow to completion, retrying internally on
// TransientConflict, and returns either a freshly committed result or a
// replayed idempotent one.
func (e *TransferEngine) Execute(ctx context.Context, input domain.TransferInput) (*domain.TransferOutcome, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	requestHash := CanonicalHash(input)

	if cached, err := e.checkCache(ctx, input.IdempotencyKey, requestHash); err != nil {
		return nil, err
	} else if cached != nil {
		return cached, nil
	}

	asset, err := e.repos.AssetRepo.FindAssetTypeByID(ctx, input.AssetTypeID)
	if err != nil {
		return nil, err
	}
	if !asset.Active {
		return nil, apperrors.NewBadRequestError("asset type is not active: " + input.AssetTypeID)
	}

	systemRef := systemWalletRef(input.Flow)
	systemWallet, err := e.repos.WalletRepo.FindWalletByOwnerRef(ctx, systemRef)
	if err != nil {
		return nil, err
	}
	userWallet, err := e.repos.WalletRepo.FindWalletByID(ctx, input.WalletID)
	if err != nil {
		return nil, err
	}

	var fromWallet, toWallet *domain.Wallet
	if input.Flow == domain.FlowSpend {
		fromWallet, toWallet = userWallet, systemWallet
	} else {
		fromWallet, toWallet = systemWallet, userWallet
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	var outcome *domain.TransferOutcome
	attempt := 0
	err = withRetry(ctx, func() error {
		attempt++
		o, txErr := e.runTransactionalScope(ctx, input, requestHash, *fromWallet, *toWallet, *asset)
		if txErr != nil {
			if apperrors.IsRetryable(txErr) {
				metrics.TransferRetriesTotal.WithLabelValues(string(input.Flow)).Inc()
				logger.Warn("transient conflict, retrying transfer",
					"attempt", attempt, "flow", input.Flow, "walletId", input.WalletID)
			}
			return txErr
		}
		outcome = o
		return nil
	})
	if err != nil {
		metrics.TransferOutcomesTotal.WithLabelValues(string(input.Flow), string(apperrors.KindOf(err))).Inc()
		return nil, err
	}
	result := "committed"
	if outcome.FromCache {
		result = "cache_hit"
	}
	metrics.TransferOutcomesTotal.WithLabelValues(string(input.Flow), result).Inc()
	return outcome, nil
}

func validateInput(input domain.TransferInput) error {
	if _, err := domain.NewAmount(input.Amount); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	if input.Reference == "" {
		return apperrors.NewBadRequestError("reference must not be empty")
	}
	if input.IdempotencyKey == "" {
		return apperrors.NewBadRequestError("idempotencyKey must not be empty")
	}
	if len(input.IdempotencyKey) > 255 {
		return apperrors.NewBadRequestError("idempotencyKey must not exceed 255 characters")
	}
	if input.WalletID == "" {
		return apperrors.NewBadRequestError("walletID must not be empty")
	}
	return nil
}

// checkCache performs the optimistic idempotency read outside any
// transactional scope. It is a pure read: no row is inserted or modified.
func (e *TransferEngine) checkCache(ctx context.Context, key, requestHash string) (*domain.TransferOutcome, error) {
	record, err := e.repos.IdempotencyRepo.FindByKey(ctx, key)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, nil
		}
		return nil, err
	}
	if record.Expired(now()) {
		return nil, nil
	}
	if record.RequestHash != requestHash {
		return nil, apperrors.NewConflictError("idempotency key reused with a different request")
	}
	var outcome domain.TransferOutcome
	if err := json.Unmarshal(record.ResponseBody, &outcome); err != nil {
		return nil, apperrors.NewInternalError("failed to decode cached response", err)
	}
	outcome.FromCache = true
	return &outcome, nil
}

// runTransactionalScope executes step 6 of the transfer algorithm: lock,
// validate, write, and commit as one atomic unit.
func (e *TransferEngine) runTransactionalScope(
	ctx context.Context,
	input domain.TransferInput,
	requestHash string,
	fromWallet, toWallet domain.Wallet,
	asset domain.AssetType,
) (*domain.TransferOutcome, error) {
	tx, err := e.repos.TxManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer e.repos.TxManager.Rollback(ctx, tx)

	walletIDs := dedupe(fromWallet.WalletID, toWallet.WalletID)
	locked, err := e.repos.WalletRepo.LockWalletsForUpdate(ctx, tx, walletIDs)
	if err != nil {
		return nil, err
	}

	from, to := locked[fromWallet.WalletID], locked[toWallet.WalletID]
	if !from.Active || !to.Active {
		return nil, apperrors.NewBadRequestError("wallet is not active")
	}

	if input.Flow == domain.FlowSpend {
		balance, err := e.repos.WalletRepo.GetBalanceInTx(ctx, tx, from.WalletID, asset.AssetTypeID)
		if err != nil {
			return nil, err
		}
		if balance.LessThan(input.Amount) {
			return nil, apperrors.NewUnprocessableError("insufficient balance")
		}
	}

	transactionID := uuid.NewString()
	createdAt := now()
	transaction := domain.Transaction{
		TransactionID: transactionID,
		Type:          input.Flow.TransactionType(),
		Reference:     input.Reference,
		InitiatedBy:   input.InitiatedBy,
		Metadata:      input.Metadata,
		CreatedAt:     domain.CreatedAt{CreatedAt: createdAt},
	}
	if err := e.repos.TransactionRepo.InsertTransactionInTx(ctx, tx, transaction); err != nil {
		return nil, err
	}

	debit := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		TransactionID: transactionID,
		WalletID:      from.WalletID,
		AssetTypeID:   asset.AssetTypeID,
		Direction:     domain.Debit,
		Amount:        input.Amount,
		CreatedAt:     domain.CreatedAt{CreatedAt: createdAt},
	}
	credit := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		TransactionID: transactionID,
		WalletID:      to.WalletID,
		AssetTypeID:   asset.AssetTypeID,
		Direction:     domain.Credit,
		Amount:        input.Amount,
		CreatedAt:     domain.CreatedAt{CreatedAt: createdAt},
	}
	if err := e.repos.LedgerRepo.InsertEntryPairInTx(ctx, tx, debit, credit); err != nil {
		return nil, err
	}

	result := domain.TransferResult{
		TransactionID: transactionID,
		Type:          transaction.Type,
		Reference:     input.Reference,
		AssetTypeID:   asset.AssetTypeID,
		AssetSymbol:   asset.Symbol,
		Amount:        input.Amount,
		FromWalletID:  from.WalletID,
		ToWalletID:    to.WalletID,
		CreatedAt:     createdAt.Format(time.RFC3339),
	}
	outcome := domain.TransferOutcome{Result: result, FromCache: false}
	responseBody, err := json.Marshal(outcome)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode transfer response", err)
	}

	idempotencyRecord := domain.IdempotencyRecord{
		Key:            input.IdempotencyKey,
		Endpoint:       input.Endpoint,
		RequestHash:    requestHash,
		ResponseStatus: 201,
		ResponseBody:   responseBody,
		TransactionID:  transactionID,
		ExpiresAt:      createdAt.Add(domain.IdempotencyTTL),
		CreatedAt:      domain.CreatedAt{CreatedAt: createdAt},
	}
	if err := e.repos.IdempotencyRepo.InsertInTx(ctx, tx, idempotencyRecord); err != nil {
		// Race for the same key: another writer committed first. Re-read
		// outside this (about-to-be-rolled-back) transaction to decide
		// between a cache hit and a genuine conflict.
		if apperrors.KindOf(err) == apperrors.KindConflict {
			existing, findErr := e.repos.IdempotencyRepo.FindByKey(ctx, input.IdempotencyKey)
			if findErr != nil {
				return nil, findErr
			}
			if existing.RequestHash != requestHash {
				return nil, apperrors.NewConflictError("idempotency key reused with a different request")
			}
			var cachedOutcome domain.TransferOutcome
			if err := json.Unmarshal(existing.ResponseBody, &cachedOutcome); err != nil {
				return nil, apperrors.NewInternalError("failed to decode cached response", err)
			}
			cachedOutcome.FromCache = true
			return &cachedOutcome, nil
		}
		return nil, err
	}

	if err := e.repos.TxManager.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &outcome, nil
}

func dedupe(ids ...string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// now is a seam so tests can freeze time without a clock argument
// threading through every call in the engine.
var now = time.Now

// systemWalletRef resolves the well-known owner reference for the system
// side of a flow.
func systemWalletRef(flow domain.Flow) string {
	switch flow {
	case domain.FlowTopup:
		return domain.SystemTreasury
	case domain.FlowBonus:
		return domain.SystemBonusPool
	default:
		return domain.SystemRevenue
	}
}
