package holdings

import "strings"

// customNormalizer is the configurable fallback for layouts no named
// normalizer recognizes. It is driven entirely by a ColumnMapping, supplied
// by the caller or guessed by AutoMapColumns.
type customNormalizer struct {
	mapping ColumnMapping
}

func (n customNormalizer) normalize(headers []string, rows [][]string) []RawTransaction {
	m := n.mapping

	var txs []RawTransaction
	for _, row := range rows {
		asset := field(row, m.Asset)
		if asset == "" || strings.EqualFold(asset, "unknown") {
			continue
		}

		qty := parseQuantity(field(row, m.Quantity)).Abs()
		price := parseMoney(field(row, m.Price)).Abs()
		total := parseMoney(field(row, m.Total)).Abs()

		// Back-derive whichever of quantity/price/total is missing from
		// the two that are present.
		switch {
		case total.IsZero() && !qty.IsZero() && !price.IsZero():
			total = qty.Mul(price)
		case qty.IsZero() && !total.IsZero() && !price.IsZero():
			qty = total.DivPrice(price)
		case price.IsZero() && !qty.IsZero() && !total.IsZero():
			price = total.Div(qty)
		}
		if qty.IsZero() {
			qty = Q(1)
		}

		txs = append(txs, RawTransaction{
			Date:         parseDate(field(row, m.Date)),
			Asset:        asset,
			Ticker:       strings.ToUpper(firstToken(asset)),
			Type:         customTxType(field(row, m.Type)),
			Quantity:     qty,
			PricePerUnit: price,
			TotalValue:   total,
			Fee:          parseMoney(field(row, m.Fee)).Abs(),
			Notes:        field(row, m.Notes),
		})
	}
	return txs
}

// customTxType classifies a free-form type string by ordered substring
// rules. Unmatched strings default to buy, not unknown: the named formats
// drop unrecognized rows, but the custom path keeps them so a mapping with
// no type column still imports every row. The asymmetry is historical and
// load-bearing for which rows get silently dropped.
func customTxType(raw string) TxType {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "buy"), strings.Contains(s, "purchase"):
		return TxBuy
	case strings.Contains(s, "sell"), strings.Contains(s, "sale"):
		return TxSell
	case strings.Contains(s, "stake"), strings.Contains(s, "reward"):
		return TxStakingReward
	case strings.Contains(s, "airdrop"):
		return TxAirdrop
	case strings.Contains(s, "convert"), strings.Contains(s, "swap"):
		return TxConversion
	case strings.Contains(s, "send"), strings.Contains(s, "transfer out"):
		return TxSend
	case strings.Contains(s, "receive"), strings.Contains(s, "transfer in"):
		return TxReceive
	default:
		return TxBuy
	}
}
