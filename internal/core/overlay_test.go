package core

import "testing"

func TestApplyAnalysis_CorrectionOverwritesAddress(t *testing.T) {
	r := validRecord("r1", "INV")
	analysis := &Analysis{
		Corrections: []Correction{
			{RecordID: "r1", Issue: "Address missing road number", SuggestedAddress: "House 12, Road 5, Dhanmondi, Dhaka"},
		},
	}

	out := ApplyAnalysis([]Record{r}, analysis)

	if out[0].Address != "House 12, Road 5, Dhanmondi, Dhaka" {
		t.Errorf("address = %q, want suggestion applied", out[0].Address)
	}
	if out[0].Status != StatusWarning {
		t.Errorf("status = %s, want warning", out[0].Status)
	}
	if out[0].StatusReason != "Address missing road number" {
		t.Errorf("reason = %q", out[0].StatusReason)
	}
}

func TestApplyAnalysis_IssueWithoutSuggestionKeepsAddress(t *testing.T) {
	r := validRecord("r1", "INV")
	analysis := &Analysis{
		Corrections: []Correction{{RecordID: "r1", Issue: "Vague address"}},
	}

	out := ApplyAnalysis([]Record{r}, analysis)

	if out[0].Address != r.Address {
		t.Errorf("address changed to %q with no suggestion", out[0].Address)
	}
	if out[0].Status != StatusWarning || out[0].StatusReason != "Vague address" {
		t.Errorf("got %s/%q", out[0].Status, out[0].StatusReason)
	}
}

func TestApplyAnalysis_AppendsToExistingReason(t *testing.T) {
	r := validRecord("r1", "X")
	r.Status = StatusWarning
	r.StatusReason = ReasonDuplicate

	analysis := &Analysis{
		Corrections: []Correction{{RecordID: "r1", Issue: "Incomplete address"}},
	}

	out := ApplyAnalysis([]Record{r}, analysis)

	want := ReasonDuplicate + " & Incomplete address"
	if out[0].StatusReason != want {
		t.Errorf("reason = %q, want %q", out[0].StatusReason, want)
	}
}

func TestApplyAnalysis_PendingPromotesToValid(t *testing.T) {
	r := validRecord("r1", "INV") // StatusPending from the builder default

	out := ApplyAnalysis([]Record{r}, &Analysis{})

	if out[0].Status != StatusValid {
		t.Errorf("uncorrected pending record = %s, want valid", out[0].Status)
	}
}

func TestApplyAnalysis_SettledStatusesUntouched(t *testing.T) {
	errRec := validRecord("r1", "INV")
	errRec.Status = StatusError
	errRec.StatusReason = ReasonMissing

	out := ApplyAnalysis([]Record{errRec}, &Analysis{})

	if out[0].Status != StatusError || out[0].StatusReason != ReasonMissing {
		t.Errorf("uncorrected error record changed: %s/%q", out[0].Status, out[0].StatusReason)
	}
}

func TestFallbackAnalysis(t *testing.T) {
	fb := FallbackAnalysis()

	if fb.Summary == "" {
		t.Error("fallback summary is empty")
	}
	if len(fb.Recommendations) != 2 {
		t.Errorf("fallback has %d recommendations, want 2", len(fb.Recommendations))
	}
	if len(fb.Corrections) != 0 {
		t.Errorf("fallback has %d corrections, want 0", len(fb.Corrections))
	}
}
