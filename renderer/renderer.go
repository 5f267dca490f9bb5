package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/folionet/holdings"
)

// Report is the view model behind the import report templates. Numbers are
// carried as the exact decimal types (Money, Quantity) so the templates can
// rely on their renderers.
type Report struct {
	// Source is the display name of the detected source format.
	Source string `json:"source"`
	// Format is the format identifier.
	Format holdings.Format `json:"format"`
	// TotalRows and SkippedRows describe how much of the input was usable.
	TotalRows   int `json:"totalRows"`
	SkippedRows int `json:"skippedRows"`
	// TotalCostBasis is the summed remaining basis of all open positions.
	TotalCostBasis holdings.Money `json:"totalCostBasis"`
	// TotalCurrentValue is the summed estimated value of all open positions.
	TotalCurrentValue holdings.Money `json:"totalCurrentValue"`
	// Positions are the open positions, in import order.
	Positions []holdings.ImportedPosition `json:"positions"`
	// TaxEvents are the derived taxable events, in date order.
	TaxEvents []holdings.ImportedTaxEvent `json:"taxEvents"`
	// Warnings are the import warnings, in emission order.
	Warnings []string `json:"warnings"`
}

// NewReport builds the view model for one import result, computing the
// totals the templates display.
func NewReport(r holdings.ImportResult) *Report {
	rep := &Report{
		Source:      r.Source,
		Format:      r.Format,
		TotalRows:   r.TotalRows,
		SkippedRows: r.SkippedRows,
		Positions:   r.Positions,
		TaxEvents:   r.TaxEvents,
		Warnings:    r.Warnings,
	}
	for _, p := range r.Positions {
		rep.TotalCostBasis = rep.TotalCostBasis.Add(p.CostBasis)
		rep.TotalCurrentValue = rep.TotalCurrentValue.Add(p.CurrentValue)
	}
	return rep
}

// RenderReport renders an import result to a markdown string.
func RenderReport(r holdings.ImportResult) string {
	partials := map[string]string{
		"import_title":      "import_title.md",
		"import_positions":  "import_positions.md",
		"import_tax_events": "import_tax_events.md",
		"import_warnings":   "import_warnings.md",
	}
	return renderTemplate("import", "import.md", partials, NewReport(r))
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
