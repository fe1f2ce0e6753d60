package core

import "strings"

// Field identifies one of the canonical parcel attributes every import
// must resolve, regardless of how the merchant named their columns.
type Field int

const (
	FieldInvoice Field = iota
	FieldName
	FieldPhone
	FieldAddress
	FieldCOD
	FieldWeight
	FieldNote
	fieldCount
)

// fieldKeywords lists, per canonical field, the lowercase substrings
// that mark a header cell as that field. Order within a list does not
// affect the winner; the first matching column (left to right) does.
var fieldKeywords = [fieldCount][]string{
	FieldInvoice: {"invoice", "order", "memo", "bill", "consignment"},
	FieldName:    {"name", "recipient", "customer", "client", "receiver"},
	FieldPhone:   {"phone", "mobile", "contact", "number", "tel", "cell"},
	FieldAddress: {"address", "location", "area", "destination"},
	FieldCOD:     {"cod", "amount", "collection", "cash", "price", "total"},
	FieldWeight:  {"weight", "kg", "kilo"},
	FieldNote:    {"note", "instruction", "remark", "comment"},
}

// fallbackIndex is the positional column used when no header cell
// matches a field's keywords. A file with a completely unrecognized
// header still imports by position.
var fallbackIndex = [fieldCount]int{
	FieldInvoice: 0,
	FieldName:    1,
	FieldPhone:   2,
	FieldAddress: 3,
	FieldCOD:     4,
	FieldWeight:  5,
	FieldNote:    6,
}

// ColumnMap resolves each canonical field to a column index in the
// tokenized rows.
type ColumnMap [fieldCount]int

// InferColumns maps the header row to canonical fields by
// case-insensitive keyword substring matching. Scanning is left to
// right and the first hit wins; a field with no matching column falls
// back to its fixed positional index. Header mismatch never fails the
// file.
func InferColumns(header []string) ColumnMap {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var cols ColumnMap
	for f := Field(0); f < fieldCount; f++ {
		cols[f] = fallbackIndex[f]
		for i, cell := range cells {
			if matchesAny(cell, fieldKeywords[f]) {
				cols[f] = i
				break
			}
		}
	}
	return cols
}

func matchesAny(cell string, keywords []string) bool {
	if cell == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(cell, kw) {
			return true
		}
	}
	return false
}
