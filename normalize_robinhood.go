package holdings

import "strings"

// robinhoodNormalizer handles Robinhood activity exports ("Activity Date,
// Instrument, Description, Trans Code, Quantity, Price, Amount").
type robinhoodNormalizer struct{}

func (robinhoodNormalizer) normalize(headers []string, rows [][]string) []RawTransaction {
	iDate := findColumn(headers, "activity date")
	if iDate < 0 {
		iDate = findColumn(headers, "date")
	}
	iInstrument := findColumn(headers, "instrument")
	if iInstrument < 0 {
		iInstrument = findColumn(headers, "description")
	}
	iType := findColumn(headers, "trans")
	if iType < 0 {
		iType = findColumn(headers, "type")
	}
	iQty := findColumn(headers, "quantity")
	iPrice := findColumn(headers, "price")
	iAmount := findColumn(headers, "amount")

	var txs []RawTransaction
	for _, row := range rows {
		instrument := field(row, iInstrument)
		txType := robinhoodTxType(field(row, iType))
		qty := parseQuantity(field(row, iQty))
		if instrument == "" || txType == TxUnknown || !qty.IsPositive() {
			continue
		}
		txs = append(txs, RawTransaction{
			Date:         parseDate(field(row, iDate)),
			Asset:        instrument,
			Ticker:       strings.ToUpper(firstToken(instrument)),
			Type:         txType,
			Quantity:     qty,
			PricePerUnit: parseMoney(field(row, iPrice)).Abs(),
			TotalValue:   parseMoney(field(row, iAmount)).Abs(),
			Fee:          M(0),
		})
	}
	return txs
}

func robinhoodTxType(raw string) TxType {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "buy", "ach":
		return TxBuy
	case "sell":
		return TxSell
	case "div":
		return TxDividend
	}
	switch {
	case strings.Contains(s, "buy"):
		return TxBuy
	case strings.Contains(s, "sell"):
		return TxSell
	case strings.Contains(s, "dividend"):
		return TxDividend
	case strings.Contains(s, "interest"):
		return TxInterest
	default:
		return TxUnknown
	}
}

// firstToken returns the first whitespace-delimited token of s.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
