package holdings

import "testing"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    Format
	}{
		{"coinbase", []string{"timestamp", "transaction type", "asset", "quantity transacted"}, FormatCoinbase},
		{"kraken", []string{"txid", "refid", "time", "type", "aclass", "asset", "amount"}, FormatKraken},
		{"binance by date", []string{"dateutc", "pair", "side", "price", "executed qty"}, FormatBinance},
		{"binance by pair", []string{"pair", "executed qty", "price"}, FormatBinance},
		{"robinhood", []string{"activity date", "instrument", "description", "trans code"}, FormatRobinhood},
		{"schwab", []string{"date", "action", "symbol", "description", "schwab account"}, FormatSchwab},
		{"fidelity", []string{"run date", "symbol", "security description", "quantity"}, FormatFidelity},
		{"bank posting date", []string{"posting date", "description", "amount"}, FormatGenericBank},
		{"bank transaction date", []string{"transaction date", "description", "amount"}, FormatGenericBank},
		{"unrecognized", []string{"when", "what", "how much"}, FormatCustom},
		{"empty", nil, FormatCustom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.headers); got != tt.want {
				t.Errorf("DetectFormat(%v) = %v, want %v", tt.headers, got, tt.want)
			}
		})
	}
}

// Detection is ordered: an export matching an earlier predicate must not be
// claimed by a later one, even when both would match.
func TestDetectFormatOrder(t *testing.T) {
	// Satisfies both the coinbase predicate and the bank predicate.
	headers := []string{"timestamp", "transaction type", "asset", "posting date", "description", "amount"}
	if got := DetectFormat(headers); got != FormatCoinbase {
		t.Errorf("DetectFormat = %v, want %v", got, FormatCoinbase)
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 8 {
		t.Fatalf("len(SupportedFormats()) = %d, want 8", len(formats))
	}
	if formats[0].ID != FormatCoinbase || formats[0].Label != "Coinbase" {
		t.Errorf("formats[0] = %+v, want coinbase/Coinbase", formats[0])
	}
	if got := FormatGenericBank.Label(); got != "Bank Statement" {
		t.Errorf("FormatGenericBank.Label() = %q, want %q", got, "Bank Statement")
	}
	if got := FormatUnknown.Label(); got != "Unknown" {
		t.Errorf("FormatUnknown.Label() = %q, want %q", got, "Unknown")
	}
}
