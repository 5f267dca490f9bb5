package renderer

import (
	"bytes"
	"fmt"

	"github.com/folionet/holdings"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders a one-screen digest of an import result, for
// contexts where the full report is too verbose.
func SummaryMarkdown(r holdings.ImportResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Imported from %s", r.Source))
	doc.PlainText(fmt.Sprintf("%d rows read, %d skipped, %d positions, %d tax events.",
		r.TotalRows, r.SkippedRows, len(r.Positions), len(r.TaxEvents)))

	if len(r.Positions) > 0 {
		rows := make([][]string, 0, len(r.Positions))
		for _, p := range r.Positions {
			rows = append(rows, []string{
				p.Ticker,
				string(p.AssetClass),
				p.Quantity.String(),
				p.CurrentValue.String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Ticker", "Class", "Quantity", "Est. Value"},
			Rows:   rows,
		})
	}

	for _, w := range r.Warnings {
		doc.PlainText("Warning: " + w)
	}

	return doc.String()
}

// FormatsMarkdown renders the catalogue of supported source formats as a
// markdown table.
func FormatsMarkdown(formats []holdings.FormatInfo) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Supported Formats")

	rows := make([][]string, 0, len(formats))
	for _, f := range formats {
		rows = append(rows, []string{string(f.ID), f.Label})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Label"},
		Rows:   rows,
	})

	return doc.String()
}
