package holdings

import "strings"

// krakenNormalizer handles Kraken ledger exports ("txid, refid, time, type,
// subtype, aclass, asset, amount, fee, balance").
type krakenNormalizer struct{}

// krakenFiat are settlement currencies that appear as ledger assets but are
// not holdings.
var krakenFiat = map[string]bool{
	"USD": true, "EUR": true, "GBP": true,
	"CAD": true, "AUD": true, "JPY": true,
}

func (krakenNormalizer) normalize(headers []string, rows [][]string) []RawTransaction {
	iDate := findColumn(headers, "time")
	if iDate < 0 {
		iDate = findColumn(headers, "date")
	}
	iType := findColumn(headers, "type")
	iAsset := findColumn(headers, "asset")
	iAmount := findColumn(headers, "amount")
	iFee := findColumn(headers, "fee")

	var txs []RawTransaction
	for _, row := range rows {
		ticker := krakenTicker(field(row, iAsset))
		if ticker == "" || krakenFiat[ticker] {
			continue
		}
		txType := krakenTxType(field(row, iType))
		if txType == TxUnknown {
			continue
		}

		amount := parseQuantity(field(row, iAmount))
		// The ledger tags both legs of a trade "trade"; the sign of the
		// amount tells which side this asset was on.
		if txType == TxBuy && amount.IsNegative() {
			txType = TxSell
		} else if txType == TxSell && amount.IsPositive() {
			txType = TxBuy
		}

		txs = append(txs, RawTransaction{
			Date:     parseDate(field(row, iDate)),
			Asset:    field(row, iAsset),
			Ticker:   ticker,
			Type:     txType,
			Quantity: amount.Abs(),
			// The ledger export carries no price column. The zero price is
			// deliberately preserved downstream so consumers can prompt for
			// a manual price instead of trusting an invented one.
			PricePerUnit: M(0),
			TotalValue:   M(0),
			Fee:          parseMoney(field(row, iFee)).Abs(),
		})
	}
	return txs
}

func krakenTxType(raw string) TxType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trade", "buy":
		return TxBuy
	case "sell":
		return TxSell
	case "deposit":
		return TxDeposit
	case "withdrawal":
		return TxWithdrawal
	case "staking":
		return TxStakingReward
	case "transfer":
		return TxReceive
	case "margin":
		return TxTrade
	default:
		return TxUnknown
	}
}

// krakenTicker undoes Kraken's ISO-4217-like asset codes: a 4-character
// code starting with X or Z drops its prefix, and XBT is Bitcoin.
func krakenTicker(asset string) string {
	t := strings.ToUpper(strings.TrimSpace(asset))
	if len(t) == 4 && (t[0] == 'X' || t[0] == 'Z') {
		t = t[1:]
	}
	if t == "XBT" {
		t = "BTC"
	}
	return t
}
