package core

// overlay.go applies the AI collaborator's corrections to a record
// list. This is the one sanctioned write to record status outside the
// validation engine: a corrected record is force-set to WARNING and is
// deliberately not re-checked for duplicate or phone validity
// afterwards, matching the behavior merchants already rely on.

import "context"

// Analyzer is the asynchronous AI collaborator. It receives the full
// current record list by value and returns a quality report with a
// sparse set of per-record corrections. Implementations may fail; the
// caller substitutes FallbackAnalysis and never surfaces the error.
type Analyzer interface {
	Analyze(ctx context.Context, records []Record) (*Analysis, error)
}

// FallbackAnalysis is the static report used whenever the AI
// collaborator is unavailable or errors out. It carries no
// corrections, so applying it only promotes pending records.
func FallbackAnalysis() *Analysis {
	return &Analysis{
		Summary: "Automated analysis was unavailable. Records were checked against the standard validation rules only.",
		Recommendations: []string{
			"Double-check recipient addresses for missing area, road, or house details.",
			"Verify phone numbers are reachable 11-digit mobile numbers before confirming the batch.",
		},
	}
}

// ApplyAnalysis overlays the report onto the record list and returns a
// fresh slice. Corrected records get the suggested address (when one
// is present), WARNING status, and the issue text joined onto any
// existing reason with " & ". Uncorrected records promote from PENDING
// to VALID and are otherwise untouched.
func ApplyAnalysis(records []Record, analysis *Analysis) []Record {
	byID := make(map[string]Correction, len(analysis.Corrections))
	for _, c := range analysis.Corrections {
		byID[c.RecordID] = c
	}

	out := make([]Record, len(records))
	for i, r := range records {
		if c, ok := byID[r.ID]; ok {
			if c.SuggestedAddress != "" {
				r.Address = c.SuggestedAddress
			}
			r.Status = StatusWarning
			if r.StatusReason != "" {
				r.StatusReason += " & " + c.Issue
			} else {
				r.StatusReason = c.Issue
			}
		} else if r.Status == StatusPending {
			r.Status = StatusValid
		}
		out[i] = r
	}

	return out
}
