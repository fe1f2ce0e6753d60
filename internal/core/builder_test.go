package core

import "testing"

var testCols = ColumnMap{0, 1, 2, 3, 4, 5, 6}

func TestBuildRecords_Basic(t *testing.T) {
	rows := [][]string{
		{"INV-1", "Rahim", "+8801712345678", "Dhanmondi, Dhaka", "1250", "1.5", "call first"},
	}

	records := BuildRecords(rows, testCols)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if r.ID == "" {
		t.Error("record ID not assigned")
	}
	if r.InvoiceID != "INV-1" {
		t.Errorf("invoice = %q", r.InvoiceID)
	}
	if r.Phone != "01712345678" {
		t.Errorf("phone = %q, want normalized 01712345678", r.Phone)
	}
	if r.CODAmount != 1250 {
		t.Errorf("cod = %v, want 1250", r.CODAmount)
	}
	if r.Weight != 1.5 {
		t.Errorf("weight = %v, want 1.5", r.Weight)
	}
	if r.Tier != TierStandard {
		t.Errorf("tier = %q, want Standard default", r.Tier)
	}
	if r.Status != StatusPending {
		t.Errorf("status = %q, want pending before validation", r.Status)
	}
}

func TestBuildRecords_DropsAllEmptyRow(t *testing.T) {
	rows := [][]string{
		{"", "", "", "", "2.5", "1", "weight and note only"},
		{"INV-2", "", "", "", "", "", ""},
	}

	records := BuildRecords(rows, testCols)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (all-empty row must be dropped)", len(records))
	}
	if records[0].InvoiceID != "INV-2" {
		t.Errorf("surviving record = %q", records[0].InvoiceID)
	}
}

func TestBuildRecords_ShortRowDegradesToEmpty(t *testing.T) {
	rows := [][]string{
		{"INV-3", "Karim"},
	}

	records := BuildRecords(rows, testCols)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if r.Phone != "" || r.Address != "" || r.Note != "" {
		t.Errorf("missing columns should be empty, got phone=%q address=%q note=%q", r.Phone, r.Address, r.Note)
	}
	if r.CODAmount != 0 || r.Weight != 0 {
		t.Errorf("missing numerics should be zero, got cod=%v weight=%v", r.CODAmount, r.Weight)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1250", 1250},
		{"1,250.50", 1250.50},
		{"BDT 500", 500},
		{"12.34.56", 12.3456}, // only the first decimal point survives
		{"", 0},
		{"n/a", 0},
		{"-100", 100}, // minus sign is stripped, amounts cannot go negative
	}

	for _, tt := range tests {
		if got := parseAmount(tt.in); got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{"1,5", 1.5},
		{"2", 2},
		{"", 0},
		{"heavy", 0},
	}

	for _, tt := range tests {
		if got := parseWeight(tt.in); got != tt.want {
			t.Errorf("parseWeight(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildRecords_UniqueIDs(t *testing.T) {
	rows := [][]string{
		{"A", "x", "01712345678", "addr", "0", "1", ""},
		{"B", "y", "01712345678", "addr", "0", "1", ""},
	}

	records := BuildRecords(rows, testCols)
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].ID == records[1].ID {
		t.Error("record IDs must be unique within a batch")
	}
}
