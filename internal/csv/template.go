package csv

import (
	"bytes"
	stdcsv "encoding/csv"
)

// TemplateHeader is the canonical column order merchants are asked to
// use. Imports still work when headers or order differ; this is only
// the shape the download endpoint hands out.
var TemplateHeader = []string{
	"Invoice ID",
	"Recipient Name",
	"Phone Number",
	"Full Address",
	"COD Amount",
	"Weight (kg)",
	"Note",
}

var templateSamples = [][]string{
	{"INV-1001", "Rahim Uddin", "01712345678", "House 12, Road 5, Dhanmondi, Dhaka", "1250", "1.5", "Call before delivery"},
	{"INV-1002", "Fatema Begum", "01898765432", "Flat 3B, Agrabad, Chattogram", "0", "0.75", ""},
	{"INV-1003", "Sajid Khan", "01611223344", "Shop 7, Station Road, Sylhet", "560", "2", "Fragile, handle with care"},
}

// Template renders the downloadable sample CSV. Output is always
// comma-delimited with standard quote escaping, regardless of what the
// importer accepts.
func Template() []byte {
	var buf bytes.Buffer
	w := stdcsv.NewWriter(&buf)

	_ = w.Write(TemplateHeader)
	for _, row := range templateSamples {
		_ = w.Write(row)
	}
	w.Flush()

	return buf.Bytes()
}
