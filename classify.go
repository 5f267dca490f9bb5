package holdings

import (
	"regexp"
	"strings"
)

// AssetClass buckets a position for downstream allocation views.
type AssetClass string

// Asset classes.
const (
	ClassCrypto      AssetClass = "crypto"
	ClassDefi        AssetClass = "defi"
	ClassNFT         AssetClass = "nft"
	ClassEquity      AssetClass = "equity"
	ClassCommodity   AssetClass = "commodity"
	ClassRealEstate  AssetClass = "real_estate"
	ClassSpeculative AssetClass = "speculative"
	ClassOther       AssetClass = "other"
)

// Static membership tables, initialized once. These are lookup tables, not
// market data: they only have to be right often enough to produce a sane
// default classification.
var (
	stablecoins = newTickerSet("USDT", "USDC", "DAI", "BUSD", "TUSD", "USDP", "GUSD")

	blueChips = newTickerSet("BTC", "ETH")

	largeCaps = newTickerSet(
		"SOL", "ADA", "DOT", "AVAX", "MATIC", "LINK", "ATOM", "XRP",
		"LTC", "BCH", "NEAR", "APT", "ARB", "OP", "XLM", "TRX", "ALGO",
	)

	defiTickers = newTickerSet(
		"UNI", "AAVE", "COMP", "CRV", "MKR", "SNX", "SUSHI", "YFI",
		"LDO", "JUP", "RAY", "GMX", "PENDLE", "CAKE",
	)

	nftTickers = newTickerSet("APE", "SAND", "MANA", "BLUR", "ENS")

	// otherCrypto catches well-known coins outside the curated tiers so
	// they do not fall through to the equity heuristic.
	otherCrypto = newTickerSet(
		"DOGE", "SHIB", "PEPE", "FIL", "ICP", "ETC", "HBAR", "VET",
		"EOS", "XTZ", "KSM", "RUNE", "INJ", "SEI", "SUI", "TIA",
	)
)

var nftNameKeywords = []string{"nft", "punk", "bored", "collectible"}
var defiNameKeywords = []string{"defi", "yield", "liquidity"}

var equityTickerRE = regexp.MustCompile(`^[A-Z]{1,5}$`)

func newTickerSet(tickers ...string) map[string]bool {
	s := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		s[t] = true
	}
	return s
}

func isKnownCrypto(ticker string) bool {
	return stablecoins[ticker] || blueChips[ticker] || largeCaps[ticker] ||
		defiTickers[ticker] || nftTickers[ticker] || otherCrypto[ticker]
}

// classifyAsset infers an asset class from ticker and display name. A short
// all-caps ticker that is in no crypto table reads as an equity symbol;
// everything else defaults to crypto because that is what the supported
// exchange exports overwhelmingly carry.
func classifyAsset(ticker, name string) AssetClass {
	lower := strings.ToLower(name)
	switch {
	case defiTickers[ticker] || containsAny(lower, defiNameKeywords):
		return ClassDefi
	case nftTickers[ticker] || containsAny(lower, nftNameKeywords):
		return ClassNFT
	case stablecoins[ticker], blueChips[ticker], largeCaps[ticker], otherCrypto[ticker]:
		return ClassCrypto
	case equityTickerRE.MatchString(ticker) && !isKnownCrypto(ticker):
		return ClassEquity
	default:
		return ClassCrypto
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// classRiskDefaults are the per-class risk scores used when the ticker has
// no specific override.
var classRiskDefaults = map[AssetClass]int{
	ClassEquity:      4,
	ClassCommodity:   5,
	ClassCrypto:      7,
	ClassDefi:        8,
	ClassNFT:         9,
	ClassSpeculative: 9,
	ClassRealEstate:  6,
	ClassOther:       6,
}

// riskScore rates a position 1 (stable) to 10 (speculative).
func riskScore(ticker string, class AssetClass) int {
	switch {
	case stablecoins[ticker]:
		return 1
	case blueChips[ticker]:
		return 5
	case largeCaps[ticker]:
		return 6
	}
	if score, ok := classRiskDefaults[class]; ok {
		return score
	}
	return 6
}
