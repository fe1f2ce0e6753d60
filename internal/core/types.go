// Package core implements the parcel import pipeline: column inference,
// record building, validation, the interactive review session, and batch
// assembly. It has no HTTP dependencies and can be driven by any frontend.
package core

import "time"

// Status is the derived review state of a record. Outside of the AI
// correction overlay, only the validation engine assigns it.
type Status string

const (
	StatusPending Status = "pending"
	StatusValid   Status = "valid"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// ServiceTier is the delivery speed a parcel is booked under.
type ServiceTier string

const (
	TierStandard ServiceTier = "Standard"
	TierExpress  ServiceTier = "Express"
	TierSameDay  ServiceTier = "SameDay"
)

// ValidTier reports whether t is one of the supported tiers.
func ValidTier(t ServiceTier) bool {
	switch t {
	case TierStandard, TierExpress, TierSameDay:
		return true
	}
	return false
}

// Record is one parcel candidate built from a CSV row. ID is assigned
// at build time and never changes; Status and StatusReason are derived
// and recomputed over the whole list after every structural change.
type Record struct {
	ID        string      `json:"id"`
	InvoiceID string      `json:"invoiceId"`
	Name      string      `json:"recipientName"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	CODAmount float64     `json:"codAmount"`
	Weight    float64     `json:"weight"`
	Note      string      `json:"note"`
	Tier      ServiceTier `json:"serviceTier"`

	Status       Status `json:"status"`
	StatusReason string `json:"statusReason,omitempty"`
}

// RecordEdit carries a partial update to a record. Nil fields are left
// untouched.
type RecordEdit struct {
	InvoiceID *string      `json:"invoiceId,omitempty"`
	Name      *string      `json:"recipientName,omitempty"`
	Phone     *string      `json:"phone,omitempty"`
	Address   *string      `json:"address,omitempty"`
	CODAmount *float64     `json:"codAmount,omitempty"`
	Weight    *float64     `json:"weight,omitempty"`
	Note      *string      `json:"note,omitempty"`
	Tier      *ServiceTier `json:"serviceTier,omitempty"`
}

// Batch is the frozen output of a confirmed review session. The counts
// are a snapshot taken at assembly time and are never re-derived.
type Batch struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	Records    []Record  `json:"records"`
	Total      int       `json:"total"`
	ValidCount int       `json:"validCount"`
	ErrorCount int       `json:"errorCount"`
}

// BatchSink receives each confirmed batch exactly once.
type BatchSink func(Batch)

// Correction is one AI-suggested fix for a record, keyed by record ID.
type Correction struct {
	RecordID         string `json:"id"`
	Issue            string `json:"issue"`
	SuggestedAddress string `json:"suggestedAddress,omitempty"`
}

// Analysis is the AI collaborator's quality report over a record list.
type Analysis struct {
	Summary         string       `json:"summary"`
	Recommendations []string     `json:"recommendations"`
	Corrections     []Correction `json:"correctedParcels"`
}
