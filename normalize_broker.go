package holdings

import "strings"

// brokerNormalizer handles traditional brokerage exports. Schwab ("Date,
// Action, Symbol, Description, ...") and Fidelity ("Run Date, Action,
// Symbol, Security Description, ...") share the same action vocabulary and
// column roles, so one normalizer serves both.
type brokerNormalizer struct{}

func (brokerNormalizer) normalize(headers []string, rows [][]string) []RawTransaction {
	iDate := findColumn(headers, "date") // matches "run date" too
	iAction := findColumn(headers, "action")
	iSymbol := findColumn(headers, "symbol")
	iDesc := findColumn(headers, "description")
	iQty := findColumn(headers, "quantity")
	iPrice := findColumn(headers, "price")
	iAmount := findColumn(headers, "amount")
	iCommission := findColumn(headers, "commission")
	iFees := findColumn(headers, "fee")

	var txs []RawTransaction
	for _, row := range rows {
		ticker := strings.ToUpper(field(row, iSymbol))
		txType := brokerTxType(field(row, iAction))
		if ticker == "" || txType == TxUnknown {
			continue
		}
		name := field(row, iDesc)
		if name == "" {
			name = ticker
		}
		// Commission and exchange fees come in separate columns; the
		// transaction fee is their sum.
		fee := parseMoney(field(row, iCommission)).Abs().Add(parseMoney(field(row, iFees)).Abs())

		txs = append(txs, RawTransaction{
			Date:         parseDate(field(row, iDate)),
			Asset:        name,
			Ticker:       ticker,
			Type:         txType,
			Quantity:     parseQuantity(field(row, iQty)).Abs(),
			PricePerUnit: parseMoney(field(row, iPrice)).Abs(),
			TotalValue:   parseMoney(field(row, iAmount)).Abs(),
			Fee:          fee,
		})
	}
	return txs
}

func brokerTxType(raw string) TxType {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "buy"), strings.Contains(s, "bought"), strings.Contains(s, "reinvest"):
		return TxBuy
	case strings.Contains(s, "sell"), strings.Contains(s, "sold"):
		return TxSell
	case strings.Contains(s, "dividend"):
		return TxDividend
	case strings.Contains(s, "interest"):
		return TxInterest
	default:
		return TxUnknown
	}
}
