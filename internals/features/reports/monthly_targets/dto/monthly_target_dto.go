package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TargetRow is one ingested spreadsheet row before upsert.
type TargetRow struct {
	Username       string
	Month          string // YYYY-MM; defaults to the current month when blank
	NewTarget      decimal.Decimal
	RenewTarget    decimal.Decimal
	RenewCollected decimal.Decimal
}

func (r *TargetRow) Normalize() {
	r.Username = strings.TrimSpace(strings.ToLower(r.Username))
	r.Month = strings.TrimSpace(r.Month)
}

// RowResult records the outcome of one row's ingestion. Failures are logged
// server-side; the HTTP response only carries the processed count.
type RowResult struct {
	Username string `json:"username"`
	Month    string `json:"month"`
	Status   string `json:"status"` // ok | skipped | failed
	Error    string `json:"error,omitempty"`
}

// TargetSummary is the zero-default sum of the three measures over a filter.
type TargetSummary struct {
	NewBusinessTarget decimal.Decimal `json:"new_business_target"`
	RenewalTarget     decimal.Decimal `json:"renewal_target"`
	RenewalCollected  decimal.Decimal `json:"renewal_collected"`
	Rows              int             `json:"rows"`
}
