package core

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// BuildRecords turns tokenized data rows into parcel candidates using
// the resolved column mapping. Rows where invoice id, recipient name,
// phone, and address are all empty produce no record; nothing else is
// filtered at build time. Malformed numbers degrade to zero rather
// than failing the row.
func BuildRecords(rows [][]string, cols ColumnMap) []Record {
	records := make([]Record, 0, len(rows))

	for _, row := range rows {
		invoice := cellAt(row, cols[FieldInvoice])
		name := cellAt(row, cols[FieldName])
		phone := cellAt(row, cols[FieldPhone])
		address := cellAt(row, cols[FieldAddress])

		if invoice == "" && name == "" && phone == "" && address == "" {
			continue
		}

		records = append(records, Record{
			ID:        uuid.New().String(),
			InvoiceID: invoice,
			Name:      name,
			Phone:     NormalizePhone(phone),
			Address:   address,
			CODAmount: parseAmount(cellAt(row, cols[FieldCOD])),
			Weight:    parseWeight(cellAt(row, cols[FieldWeight])),
			Note:      cellAt(row, cols[FieldNote]),
			Tier:      TierStandard,
			Status:    StatusPending,
		})
	}

	return records
}

// cellAt reads row[idx], degrading to the empty string when the row is
// short. Values are trimmed.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseAmount coerces COD amount text to a number. Everything except
// digits and the first decimal point is stripped before parsing; a
// parse failure yields 0.
func parseAmount(s string) float64 {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseWeight coerces weight text to kilograms. Decimal commas are
// rewritten to points first ("1,5" -> 1.5); a parse failure yields 0.
func parseWeight(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
