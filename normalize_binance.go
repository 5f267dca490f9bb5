package holdings

import "strings"

// binanceNormalizer handles Binance trade exports ("Date(UTC), Pair, Side,
// Price, Executed Qty, ...") and the close variants Binance produces.
type binanceNormalizer struct{}

// binanceQuoteAssets are the quote-asset suffixes stripped from a trading
// pair to recover the base asset. Order matters: "USDT" must be tried
// before "USD" or "BTCUSDT" would strip to "BTCUSD".
var binanceQuoteAssets = []string{"USDT", "USDC", "BUSD", "USD", "EUR", "BTC", "ETH", "BNB"}

func (binanceNormalizer) normalize(headers []string, rows [][]string) []RawTransaction {
	iDate := findColumn(headers, "date")
	if iDate < 0 {
		iDate = findColumn(headers, "time")
	}
	iPair := findColumn(headers, "pair")
	if iPair < 0 {
		iPair = findColumn(headers, "coin")
	}
	if iPair < 0 {
		iPair = findColumn(headers, "asset")
	}
	iType := findColumn(headers, "type")
	if iType < 0 {
		iType = findColumn(headers, "side")
	}
	iQty := findColumn(headers, "qty")
	if iQty < 0 {
		iQty = findColumn(headers, "quantity")
	}
	if iQty < 0 {
		iQty = findColumn(headers, "amount")
	}
	iPrice := findColumn(headers, "price")
	iTotal := findColumn(headers, "total")
	iFee := findColumn(headers, "fee")

	var txs []RawTransaction
	for _, row := range rows {
		pair := field(row, iPair)
		base := binanceBaseAsset(pair)
		qty := parseQuantity(field(row, iQty))
		if base == "" || !qty.IsPositive() {
			continue
		}
		txs = append(txs, RawTransaction{
			Date:         parseDate(field(row, iDate)),
			Asset:        base,
			Ticker:       strings.ToUpper(base),
			Type:         binanceTxType(field(row, iType)),
			Quantity:     qty,
			PricePerUnit: parseMoney(field(row, iPrice)).Abs(),
			TotalValue:   parseMoney(field(row, iTotal)).Abs(),
			Fee:          parseMoney(field(row, iFee)).Abs(),
		})
	}
	return txs
}

func binanceTxType(raw string) TxType {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "buy":
		return TxBuy
	case "sell":
		return TxSell
	case "deposit":
		return TxDeposit
	}
	switch {
	case strings.Contains(s, "convert"), strings.Contains(s, "swap"):
		return TxConversion
	case strings.Contains(s, "withdraw"):
		return TxWithdrawal
	case strings.Contains(s, "staking"), strings.Contains(s, "reward"), strings.Contains(s, "interest"):
		return TxStakingReward
	case strings.Contains(s, "airdrop"), strings.Contains(s, "distribution"):
		return TxAirdrop
	default:
		return TxUnknown
	}
}

// binanceBaseAsset strips the first matching quote-asset suffix from a
// trading pair. A plain asset code (deposit exports) passes through.
func binanceBaseAsset(pair string) string {
	p := strings.ToUpper(strings.TrimSpace(pair))
	for _, quote := range binanceQuoteAssets {
		if strings.HasSuffix(p, quote) && len(p) > len(quote) {
			return p[:len(p)-len(quote)]
		}
	}
	return p
}
