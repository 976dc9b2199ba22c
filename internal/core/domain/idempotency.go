package domain

import (
	"encoding/json"
	"time"
)

// IdempotencyRecord is the cached outcome of a completed write, keyed by
// the caller-supplied idempotency key.
type IdempotencyRecord struct {
	Key            string          `json:"key"` // <= 255 chars
	Endpoint       string          `json:"endpoint"`
	RequestHash    string          `json:"requestHash"` // hex SHA-256
	ResponseStatus int             `json:"responseStatus"`
	ResponseBody   json.RawMessage `json:"responseBody"`
	TransactionID  string          `json:"transactionID,omitempty"`
	ExpiresAt      time.Time       `json:"expiresAt"`
	CreatedAt
}

// Expired reports whether the record should be treated as absent.
func (r IdempotencyRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// IdempotencyTTL is the fixed lifetime of a committed idempotency record.
const IdempotencyTTL = 24 * time.Hour
