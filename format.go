package holdings

import "strings"

// Format identifies the source layout of an export.
type Format string

// Known source formats.
const (
	FormatCoinbase    Format = "coinbase"
	FormatKraken      Format = "kraken"
	FormatBinance     Format = "binance"
	FormatRobinhood   Format = "robinhood"
	FormatSchwab      Format = "schwab"
	FormatFidelity    Format = "fidelity"
	FormatGenericBank Format = "generic_bank"
	FormatCustom      Format = "custom"

	// FormatUnknown is only ever produced for degenerate input with no
	// detectable headers.
	FormatUnknown Format = "unknown"
)

// FormatInfo describes one supported source format.
type FormatInfo struct {
	ID    Format `json:"id"`
	Label string `json:"label"`
}

// supportedFormats is the catalogue exposed to callers, in a fixed order.
var supportedFormats = []FormatInfo{
	{FormatCoinbase, "Coinbase"},
	{FormatKraken, "Kraken"},
	{FormatBinance, "Binance"},
	{FormatRobinhood, "Robinhood"},
	{FormatSchwab, "Charles Schwab"},
	{FormatFidelity, "Fidelity"},
	{FormatGenericBank, "Bank Statement"},
	{FormatCustom, "Custom CSV"},
}

// SupportedFormats returns the catalogue of source formats, in display order.
func SupportedFormats() []FormatInfo {
	out := make([]FormatInfo, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}

// Label returns the display name for a format, or "Unknown" when the
// format is not in the catalogue.
func (f Format) Label() string {
	for _, info := range supportedFormats {
		if info.ID == f {
			return info.Label
		}
	}
	return "Unknown"
}

// DetectFormat classifies normalized header tokens into a source format.
// Predicates are tested in a fixed order and the first match wins: some of
// them overlap (e.g. every brokerage export has a "description" column), so
// the order is part of the contract.
func DetectFormat(headers []string) Format {
	joined := strings.ToLower(strings.Join(headers, " "))
	has := func(s string) bool { return strings.Contains(joined, s) }

	switch {
	case has("timestamp") && has("transaction type") && has("asset"):
		return FormatCoinbase
	case has("txid") && has("refid") && has("aclass"):
		return FormatKraken
	case has("date(utc)") || has("dateutc") || (has("pair") && has("executed qty")):
		return FormatBinance
	case has("activity date") && has("instrument"):
		return FormatRobinhood
	case has("action") && has("symbol") && has("description") && has("schwab"):
		return FormatSchwab
	case has("run date") && has("symbol") && has("security description"):
		return FormatFidelity
	case (has("posting date") || has("transaction date")) && has("description") && has("amount"):
		return FormatGenericBank
	default:
		return FormatCustom
	}
}
