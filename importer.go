package holdings

import "fmt"

// ImportResult is the sole output of an import. It is never partially
// populated: even catastrophic failures return a well-formed value whose
// warnings explain what happened.
type ImportResult struct {
	Source      string // display name of the detected source
	Format      Format
	Positions   []ImportedPosition
	TaxEvents   []ImportedTaxEvent
	Warnings    []string // ordered, human-readable
	SkippedRows int      // totalRows minus transactions produced
	TotalRows   int
	RawHeaders  []string // normalized header tokens
}

// MarshalJSON implements the json.Marshaler interface with a fixed field
// order, so identical imports marshal to identical bytes.
func (r ImportResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("source", r.Source)
	w.Append("format", r.Format)
	w.Append("positions", emptySlice(r.Positions))
	w.Append("taxEvents", emptySlice(r.TaxEvents))
	w.Append("warnings", emptySlice(r.Warnings))
	w.Append("skippedRows", r.SkippedRows)
	w.Append("totalRows", r.TotalRows)
	w.Append("rawHeaders", emptySlice(r.RawHeaders))
	return w.MarshalJSON()
}

// emptySlice keeps nil slices marshaling as [] instead of null.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// importConfig carries the per-call options.
type importConfig struct {
	format  Format
	mapping ColumnMapping
	mapped  bool
}

// ImportOption configures a single ImportCSV call.
type ImportOption func(*importConfig)

// WithFormat bypasses format detection.
func WithFormat(f Format) ImportOption {
	return func(c *importConfig) { c.format = f }
}

// WithMapping supplies the column mapping for the custom normalizer. It is
// only consulted when the resolved format is custom; without it the
// auto-mapper guesses one.
func WithMapping(m ColumnMapping) ImportOption {
	return func(c *importConfig) {
		c.mapping = m
		c.mapped = true
	}
}

// ImportCSV runs the full pipeline on raw export text: tokenize, detect the
// source format, normalize rows into canonical transactions, aggregate
// positions, and derive tax events. It is a pure synchronous function and
// never fails: every error class degrades to a warning in the result, so
// the call is safely repeatable with the same or corrected input.
func ImportCSV(rawText string, opts ...ImportOption) ImportResult {
	var cfg importConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	headers, rows := parseTable(rawText)
	if len(headers) == 0 {
		return ImportResult{
			Source:   "Unknown",
			Format:   FormatUnknown,
			Warnings: []string{"Could not detect any CSV headers in the provided text"},
		}
	}

	format := cfg.format
	if format == "" {
		format = DetectFormat(headers)
	}
	result := ImportResult{
		Source:     format.Label(),
		Format:     format,
		RawHeaders: headers,
		TotalRows:  len(rows),
	}

	if len(rows) == 0 {
		result.Warnings = append(result.Warnings, "No data rows found below the header row")
		return result
	}

	mapping := cfg.mapping
	if format == FormatCustom && !cfg.mapped {
		mapping = AutoMapColumns(headers)
	}

	txs, err := runNormalizer(normalizerFor(format, mapping), headers, rows)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Failed to parse %s rows: %v", result.Source, err))
	}

	result.SkippedRows = len(rows) - len(txs)
	if result.SkippedRows > 0 && err == nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Skipped %d of %d rows that could not be recognized", result.SkippedRows, len(rows)))
	}

	result.Positions, result.TaxEvents = aggregate(txs, result.Source)
	return result
}
