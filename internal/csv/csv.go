// Package csv parses merchant-supplied parcel sheets.
//
// Files in the wild arrive with mixed delimiters, Windows line endings,
// quoted fields containing delimiters and newlines, and a UTF-8 BOM.
// This package never rejects a file for formatting reasons: the parser
// degrades to best-effort tokenization and leaves semantic validation
// to the caller.
package csv

import "strings"

// DetectDelimiter inspects the first line of raw text and picks the
// field delimiter. Semicolon wins only when it strictly outnumbers
// commas; everything else falls back to comma.
func DetectDelimiter(text string) byte {
	line := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		line = text[:i]
	}

	commas := strings.Count(line, ",")
	semis := strings.Count(line, ";")

	if semis > commas {
		return ';'
	}
	return ','
}

// ParseLine splits one logical row into trimmed fields, honoring
// double-quote escaping ("" inside quotes yields a literal quote).
// Row boundaries are the caller's problem; any newline characters in
// the input are treated as ordinary field content.
func ParseLine(line string, delim byte) []string {
	var fields []string
	var field []byte
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				field = append(field, '"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(string(field)))
			field = field[:0]
		default:
			field = append(field, c)
		}
	}

	return append(fields, strings.TrimSpace(string(field)))
}

// Parse tokenizes raw text into rows of trimmed fields in a single
// left-to-right scan. Quoted fields may contain the delimiter and
// embedded newlines; "" inside quotes emits one literal quote. CRLF
// and LF both terminate rows, and a pending partial row is flushed at
// end of input. Blank lines produce no row.
//
// The scan is O(len(text)) and keeps no state between calls.
func Parse(text string, delim byte) [][]string {
	var rows [][]string
	var row []string
	var field []byte
	inQuotes := false
	fieldStarted := false

	endField := func() {
		row = append(row, strings.TrimSpace(string(field)))
		field = field[:0]
		fieldStarted = false
	}

	endRow := func() {
		if len(row) > 0 || len(field) > 0 || fieldStarted {
			endField()
			rows = append(rows, row)
			row = nil
		}
		field = field[:0]
		fieldStarted = false
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				field = append(field, '"')
				i++
			} else {
				inQuotes = !inQuotes
			}
			fieldStarted = true
		case c == delim && !inQuotes:
			endField()
			// The delimiter opens the next field even if it stays empty.
			fieldStarted = true
		case (c == '\r' || c == '\n') && !inQuotes:
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			field = append(field, c)
		}
	}

	endRow()
	return rows
}

// NormalizeInput strips a leading UTF-8 byte-order mark and surrounding
// whitespace from raw decoded file text. Byte-level decoding beyond the
// BOM is the file source's responsibility.
func NormalizeInput(text string) string {
	text = strings.TrimPrefix(text, "\uFEFF")
	return strings.TrimSpace(text)
}
