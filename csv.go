package holdings

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the tokenizer: it turns raw export text into a header
// row and data rows. Vendor exports are not well-formed CSV documents (they
// prepend disclaimers, account summaries, or blank lines before the real
// header), so lines are split individually instead of feeding the whole
// text to a document-level CSV reader.

// headerScanLimit bounds how many leading lines are inspected when looking
// for the real header row.
const headerScanLimit = 10

// splitLine splits one line into fields, honoring double-quoted fields. A
// doubled quote inside a quoted field is a literal quote. Fields are
// trimmed of surrounding whitespace.
func splitLine(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				b.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(c)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}

// looksNumeric reports whether a field parses as a number once currency
// symbols and thousands separators are stripped.
func looksNumeric(field string) bool {
	s := strings.TrimSpace(field)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// normalizeHeader lower-cases a header token and strips every character
// that is not a lowercase letter, digit, underscore, or space.
func normalizeHeader(h string) string {
	h = strings.ToLower(h)
	var b strings.Builder
	for _, c := range h {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' || c == ' ' {
			b.WriteRune(c)
		}
	}
	return strings.TrimSpace(b.String())
}

// parseTable splits raw text into a normalized header row and data rows.
//
// Header recovery: among the first headerScanLimit parsed lines, the first
// one with at least 4 fields where at least half of the non-empty fields
// are not numeric is taken as the header. If none qualifies, line 0 is
// used. Data rows with fewer fields than half the header width are
// discarded.
func parseTable(raw string) (headers []string, rows [][]string) {
	var lines [][]string
	for _, l := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, splitLine(l))
	}
	if len(lines) == 0 {
		return nil, nil
	}

	headerIdx := 0
	for i := 0; i < len(lines) && i < headerScanLimit; i++ {
		fields := lines[i]
		if len(fields) < 4 {
			continue
		}
		nonEmpty, nonNumeric := 0, 0
		for _, f := range fields {
			if strings.TrimSpace(f) == "" {
				continue
			}
			nonEmpty++
			if !looksNumeric(f) {
				nonNumeric++
			}
		}
		if nonEmpty > 0 && float64(nonNumeric) >= 0.5*float64(nonEmpty) {
			headerIdx = i
			break
		}
	}

	for _, h := range lines[headerIdx] {
		headers = append(headers, normalizeHeader(h))
	}
	for _, fields := range lines[headerIdx+1:] {
		if 2*len(fields) < len(headers) {
			continue
		}
		rows = append(rows, fields)
	}
	return headers, rows
}

// findColumn returns the index of the first header containing the given
// substring, or -1. All normalizers share these first-match semantics.
func findColumn(headers []string, substring string) int {
	for i, h := range headers {
		if strings.Contains(h, substring) {
			return i
		}
	}
	return -1
}

// field reads column i of a row, returning "" for a missing column.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseNumber parses a decimal out of vendor text, stripping currency
// symbols, thousands separators, quotes, and whitespace. Non-numeric input
// yields zero.
func parseNumber(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseQuantity parses a signed quantity field.
func parseQuantity(s string) Quantity { return Q(parseNumber(s)) }

// parseMoney parses a signed money field.
func parseMoney(s string) Money { return M(parseNumber(s)) }

// parseDate parses a date field, returning the zero Date when the field is
// empty or unrecognizable.
func parseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}
	}
	return d
}
