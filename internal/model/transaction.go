package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownTransactionType is returned when a feed carries a type tag other
// than income or outcome.
var ErrUnknownTransactionType = errors.New("unknown transaction type")

// TransactionType tags a transaction as money coming in or going out.
type TransactionType string

const (
	// TypeIncome marks money received.
	TypeIncome TransactionType = "income"
	// TypeOutcome marks money spent.
	TypeOutcome TransactionType = "outcome"
)

// Valid reports whether t is one of the two known tags.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeOutcome
}

// UnmarshalJSON rejects any tag that is not income or outcome.
func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	tt := TransactionType(raw)
	if !tt.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTransactionType, raw)
	}
	*t = tt
	return nil
}

// Transaction is a single entry as returned by the transactions API.
type Transaction struct {
	CreatedAt Timestamp       `json:"created_at"`
	Category  Category        `json:"category"`
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Type      TransactionType `json:"type"`
	Value     float64         `json:"value"`
}

// IsOutcome reports whether the transaction is money going out.
func (t Transaction) IsOutcome() bool {
	return t.Type == TypeOutcome
}

// UnmarshalJSON decodes a transaction, accepting createdAt as an alias for
// created_at.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	aux := struct {
		CreatedAtAlias *Timestamp `json:"createdAt"`
		*plain
	}{plain: (*plain)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if t.CreatedAt.IsZero() && aux.CreatedAtAlias != nil {
		t.CreatedAt = *aux.CreatedAtAlias
	}
	return nil
}

// Timestamp is a point in time decoded from either RFC 3339 or a bare
// YYYY-MM-DD date.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses s using the accepted layouts. Bare dates and
// timestamps without an offset are taken as UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: parsed}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*ts = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.UTC().Format(time.RFC3339))
}
