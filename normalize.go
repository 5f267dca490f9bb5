package holdings

import "fmt"

// normalizer maps source-specific rows into canonical transactions. One
// implementation exists per known format plus the mapping-driven fallback;
// the format is resolved once and never branched on again.
type normalizer interface {
	normalize(headers []string, rows [][]string) []RawTransaction
}

// normalizerFor selects the normalizer for a resolved format. The custom
// normalizer is driven entirely by the supplied column mapping.
func normalizerFor(format Format, mapping ColumnMapping) normalizer {
	switch format {
	case FormatCoinbase:
		return coinbaseNormalizer{}
	case FormatKraken:
		return krakenNormalizer{}
	case FormatBinance:
		return binanceNormalizer{}
	case FormatRobinhood:
		return robinhoodNormalizer{}
	case FormatSchwab, FormatFidelity:
		return brokerNormalizer{}
	case FormatGenericBank:
		return bankNormalizer{}
	default:
		return customNormalizer{mapping: mapping}
	}
}

// runNormalizer executes a normalizer, converting a panic (typically from a
// malformed layout the per-format code did not anticipate) into an error so
// the import can degrade to a warning instead of crashing.
func runNormalizer(n normalizer, headers []string, rows [][]string) (txs []RawTransaction, err error) {
	defer func() {
		if r := recover(); r != nil {
			txs = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	return n.normalize(headers, rows), nil
}
