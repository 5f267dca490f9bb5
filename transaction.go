package holdings

// TxType is a typed string classifying a canonical transaction.
type TxType string

// Transaction types produced by the normalizers.
const (
	TxBuy           TxType = "buy"
	TxSell          TxType = "sell"
	TxReceive       TxType = "receive"
	TxSend          TxType = "send"
	TxStakingReward TxType = "staking_reward"
	TxAirdrop       TxType = "airdrop"
	TxMining        TxType = "mining"
	TxTrade         TxType = "trade"
	TxConversion    TxType = "conversion"
	TxDeposit       TxType = "deposit"
	TxWithdrawal    TxType = "withdrawal"
	TxDividend      TxType = "dividend"
	TxInterest      TxType = "interest"
	TxFee           TxType = "fee"
	TxUnknown       TxType = "unknown"
)

// RawTransaction is the canonical, source-agnostic record a normalizer
// produces from one data row. It is immutable once built and consumed only
// by the aggregation pass.
type RawTransaction struct {
	Date         Date     `json:"date"`         // zero when the source row carried no parseable date
	Asset        string   `json:"asset"`        // free-text asset label as the source wrote it
	Ticker       string   `json:"ticker"`       // normalized uppercase symbol, may be empty
	Type         TxType   `json:"type"`
	Quantity     Quantity `json:"quantity"`     // meaning of sign depends on the source
	PricePerUnit Money    `json:"pricePerUnit"` // 0 when the source omits prices
	TotalValue   Money    `json:"totalValue"`   // always non-negative at this stage
	Fee          Money    `json:"fee"`
	Notes        string   `json:"notes"`
}
