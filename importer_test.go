package holdings

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
)

const coinbaseExport = `Timestamp,Transaction Type,Asset,Quantity Transacted,Spot Price at Transaction,Subtotal,Total,Fees and/or Spread,Notes
2023-01-05T10:00:00Z,Buy,BTC,0.5,"$20,000.00","$10,000.00","$10,000.00",$25.00,Bought 0.5 BTC
2023-06-01T09:30:00Z,Sell,BTC,0.1,"$30,000.00","$3,000.00","$3,000.00",$5.00,Sold 0.1 BTC
`

// jsonQuery marshals a result and evaluates a jsonpath expression against it.
func jsonQuery(t *testing.T, result ImportResult, path string) any {
	t.Helper()
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		t.Fatalf("jsonpath %q: %v", path, err)
	}
	return jval
}

func TestImportCSVCoinbase(t *testing.T) {
	result := ImportCSV(coinbaseExport)

	if result.Format != FormatCoinbase {
		t.Fatalf("Format = %v, want coinbase", result.Format)
	}
	if result.Source != "Coinbase" {
		t.Errorf("Source = %q, want Coinbase", result.Source)
	}
	if result.TotalRows != 2 || result.SkippedRows != 0 {
		t.Errorf("TotalRows, SkippedRows = %d, %d, want 2, 0", result.TotalRows, result.SkippedRows)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}

	if len(result.Positions) != 1 {
		t.Fatalf("len(Positions) = %d, want 1", len(result.Positions))
	}
	p := result.Positions[0]
	if p.Ticker != "BTC" {
		t.Errorf("Ticker = %q, want BTC", p.Ticker)
	}
	if !p.Quantity.Equal(Q(0.4)) {
		t.Errorf("Quantity = %s, want 0.4", p.Quantity)
	}
	// Basis 10025 with a fifth of the quantity sold leaves 8020.
	if !p.CostBasis.Equal(M(8020)) {
		t.Errorf("CostBasis = %s, want 8020", p.CostBasis)
	}
	// Valued at the sale's spot price, the last one observed.
	if !p.CurrentValue.Equal(M(12000)) {
		t.Errorf("CurrentValue = %s, want 12000", p.CurrentValue)
	}

	if len(result.TaxEvents) != 1 || result.TaxEvents[0].Type != EventSale {
		t.Fatalf("TaxEvents = %v, want one sale", result.TaxEvents)
	}
}

func TestImportCSVJSONShape(t *testing.T) {
	result := ImportCSV(coinbaseExport)

	if got := jsonQuery(t, result, "$.format"); got != "coinbase" {
		t.Errorf("$.format = %v, want coinbase", got)
	}
	if got := jsonQuery(t, result, "$.positions[0].ticker"); got != "BTC" {
		t.Errorf("$.positions[0].ticker = %v, want BTC", got)
	}
	if got := jsonQuery(t, result, "$.positions[0].tags[0]"); got != "imported" {
		t.Errorf("$.positions[0].tags[0] = %v, want imported", got)
	}
	if got := jsonQuery(t, result, "$.taxEvents[0].realized"); got != true {
		t.Errorf("$.taxEvents[0].realized = %v, want true", got)
	}
	// Empty collections marshal as arrays, never null.
	if got, ok := jsonQuery(t, result, "$.warnings").([]any); !ok || len(got) != 0 {
		t.Errorf("$.warnings = %v, want empty array", got)
	}
}

func TestImportCSVDeterministic(t *testing.T) {
	a, err := json.Marshal(ImportCSV(coinbaseExport))
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(ImportCSV(coinbaseExport))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("imports of identical input marshal differently:\n%s\n%s", a, b)
	}
}

func TestImportCSVNoHeaders(t *testing.T) {
	for _, text := range []string{"", "\n\n", "   \n\t\n  \n"} {
		result := ImportCSV(text)
		if result.Format != FormatUnknown {
			t.Errorf("ImportCSV(%q).Format = %v, want unknown", text, result.Format)
		}
		if result.Source != "Unknown" {
			t.Errorf("ImportCSV(%q).Source = %q, want Unknown", text, result.Source)
		}
		if len(result.Warnings) != 1 {
			t.Errorf("ImportCSV(%q).Warnings = %v, want exactly one", text, result.Warnings)
		}
		if len(result.Positions) != 0 || len(result.TaxEvents) != 0 {
			t.Errorf("ImportCSV(%q) produced positions or events from garbage", text)
		}
	}
}

func TestImportCSVHeaderOnly(t *testing.T) {
	result := ImportCSV("Timestamp,Transaction Type,Asset,Quantity Transacted\n")
	if result.Format != FormatCoinbase {
		t.Errorf("Format = %v, want coinbase", result.Format)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "No data rows") {
		t.Errorf("Warnings = %v, want the no-data-rows warning", result.Warnings)
	}
}

func TestImportCSVSkippedRowsWarning(t *testing.T) {
	text := coinbaseExport +
		"2023-07-01T00:00:00Z,Exchange Fiat Deposit,BTC,0,$0,$0,$0,$0,noise\n"
	result := ImportCSV(text)

	if result.SkippedRows != 1 {
		t.Fatalf("SkippedRows = %d, want 1", result.SkippedRows)
	}
	want := "Skipped 1 of 3 rows that could not be recognized"
	if len(result.Warnings) != 1 || result.Warnings[0] != want {
		t.Errorf("Warnings = %v, want [%q]", result.Warnings, want)
	}
}

func TestImportCSVWithFormat(t *testing.T) {
	// The headers would auto-detect as Coinbase; the override wins.
	result := ImportCSV(coinbaseExport, WithFormat(FormatCustom))
	if result.Format != FormatCustom {
		t.Errorf("Format = %v, want custom", result.Format)
	}
	if result.Source != "Custom CSV" {
		t.Errorf("Source = %q, want Custom CSV", result.Source)
	}
	// The auto-mapper still finds the asset and quantity columns.
	if len(result.Positions) != 1 || result.Positions[0].Ticker != "BTC" {
		t.Fatalf("Positions = %v, want one BTC position", result.Positions)
	}
}

func TestImportCSVWithMapping(t *testing.T) {
	text := "Holding,Units,When,Comment\nBTC,,,\nETH,,,\n"
	mapping := NewColumnMapping()
	mapping.Asset = 0

	result := ImportCSV(text, WithFormat(FormatCustom), WithMapping(mapping))

	if len(result.Positions) != 2 {
		t.Fatalf("len(Positions) = %d, want 2", len(result.Positions))
	}
	for i, want := range []string{"BTC", "ETH"} {
		p := result.Positions[i]
		if p.Ticker != want {
			t.Errorf("Positions[%d].Ticker = %q, want %q", i, p.Ticker, want)
		}
		// Rows without quantity or type columns default to a single unit
		// bought.
		if !p.Quantity.Equal(Q(1)) {
			t.Errorf("Positions[%d].Quantity = %s, want 1", i, p.Quantity)
		}
	}
}
