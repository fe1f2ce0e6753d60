package core

import "strings"

// Human-readable status reasons assigned by the validation engine.
const (
	ReasonDuplicate    = "Duplicate Invoice ID"
	ReasonInvalidPhone = "Invalid Operator/Length"
	ReasonMissing      = "Missing Required Fields"
)

// Revalidate recomputes status and reason for every record as a pure
// function of the whole list, and returns a fresh slice. Checks run in
// strict priority order per record: duplicate invoice id, then phone,
// then required fields. It must be re-run after every edit or removal;
// recomputing from scratch is what lets a duplicate warning "heal"
// when its sibling is deleted, and what flips both sides of a newly
// created invoice-id collision.
func Revalidate(records []Record) []Record {
	census := make(map[string]int, len(records))
	for _, r := range records {
		if id := strings.TrimSpace(r.InvoiceID); id != "" {
			census[id]++
		}
	}

	out := make([]Record, len(records))
	for i, r := range records {
		id := strings.TrimSpace(r.InvoiceID)

		switch {
		case id != "" && census[id] > 1:
			r.Status = StatusWarning
			r.StatusReason = ReasonDuplicate
		case !ValidPhone(r.Phone):
			r.Status = StatusError
			r.StatusReason = ReasonInvalidPhone
		case id == "" || r.Name == "" || r.Address == "" || r.Weight <= 0:
			r.Status = StatusError
			r.StatusReason = ReasonMissing
		default:
			r.Status = StatusValid
			r.StatusReason = ""
		}

		out[i] = r
	}

	return out
}

// blocksConfirmation reports whether a record keeps its batch from
// being confirmed: any error, or a duplicate warning. Warnings raised
// by the AI overlay alone do not gate confirmation.
func blocksConfirmation(r Record) bool {
	if r.Status == StatusError {
		return true
	}
	return r.Status == StatusWarning && strings.Contains(r.StatusReason, ReasonDuplicate)
}
