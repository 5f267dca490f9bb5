package holdings

import "strings"

// coinbaseNormalizer handles Coinbase transaction-history exports
// ("Timestamp, Transaction Type, Asset, Quantity Transacted, ...").
type coinbaseNormalizer struct{}

func (coinbaseNormalizer) normalize(headers []string, rows [][]string) []RawTransaction {
	iDate := findColumn(headers, "timestamp")
	if iDate < 0 {
		iDate = findColumn(headers, "date")
	}
	iType := findColumn(headers, "transaction type")
	if iType < 0 {
		iType = findColumn(headers, "type")
	}
	iAsset := findColumn(headers, "asset")
	iQty := findColumn(headers, "quantity")
	iPrice := findColumn(headers, "spot price")
	if iPrice < 0 {
		iPrice = findColumn(headers, "price")
	}
	// "Subtotal" contains "total", so the preferred column is the first
	// "total" header that is not the subtotal.
	iTotal := -1
	for i, h := range headers {
		if strings.Contains(h, "total") && !strings.Contains(h, "subtotal") {
			iTotal = i
			break
		}
	}
	if iTotal < 0 {
		iTotal = findColumn(headers, "subtotal")
	}
	iFee := findColumn(headers, "fee")
	iNotes := findColumn(headers, "notes")

	var txs []RawTransaction
	for _, row := range rows {
		asset := field(row, iAsset)
		txType := coinbaseTxType(field(row, iType))
		if asset == "" || txType == TxUnknown {
			continue
		}
		txs = append(txs, RawTransaction{
			Date:         parseDate(field(row, iDate)),
			Asset:        asset,
			Ticker:       strings.ToUpper(asset),
			Type:         txType,
			Quantity:     parseQuantity(field(row, iQty)).Abs(),
			PricePerUnit: parseMoney(field(row, iPrice)).Abs(),
			TotalValue:   parseMoney(field(row, iTotal)).Abs(),
			Fee:          parseMoney(field(row, iFee)).Abs(),
			Notes:        field(row, iNotes),
		})
	}
	return txs
}

// coinbaseTxType classifies a Coinbase transaction-type string. Exact forms
// are checked first; the "earn"/"learning reward" check precedes the
// generic "reward" one because learning rewards would otherwise be
// misfiled as staking income.
func coinbaseTxType(raw string) TxType {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "buy", "advanced trade buy":
		return TxBuy
	case "sell", "advanced trade sell":
		return TxSell
	case "receive":
		return TxReceive
	case "send":
		return TxSend
	case "airdrop":
		return TxAirdrop
	case "learning reward":
		return TxAirdrop
	}
	switch {
	case strings.Contains(s, "convert"), strings.Contains(s, "swap"):
		return TxConversion
	case strings.Contains(s, "earn"):
		return TxAirdrop
	case strings.Contains(s, "staking"), strings.Contains(s, "reward"):
		return TxStakingReward
	default:
		return TxUnknown
	}
}
