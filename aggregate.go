package holdings

import (
	"fmt"
	"slices"
	"time"
)

// exitTolerance is the net quantity below which a position counts as fully
// exited: exchange exports routinely leave dust residues from rounding.
var exitTolerance = Q(1e-6)

// longTermHoldingPeriod is the holding period beyond which a disposal
// qualifies for long-term capital gains treatment.
const longTermHoldingPeriod = time.Duration(365.25 * 24 * float64(time.Hour))

// fiatTickers are cash currencies excluded from aggregation entirely; cash
// is not a holding.
var fiatTickers = map[string]bool{"USD": true, "EUR": true, "GBP": true}

// assetGroup accumulates the transactions of one ticker in three buckets.
type assetGroup struct {
	key     string
	name    string
	buys    []RawTransaction // buy, receive, deposit, trade, conversion
	sells   []RawTransaction // sell, send, withdrawal
	rewards []RawTransaction // staking_reward, airdrop, mining
	all     []RawTransaction // every bucketed transaction, in sorted order
}

// aggregate turns the canonical transaction stream into positions and tax
// events. Transactions are sorted ascending by date (undated last), grouped
// by ticker, and each group is reduced to at most one open position. Tax
// events are derived per transaction during the same pass.
func aggregate(txs []RawTransaction, sourceLabel string) ([]ImportedPosition, []ImportedTaxEvent) {
	sorted := make([]RawTransaction, len(txs))
	copy(sorted, txs)
	slices.SortStableFunc(sorted, func(a, b RawTransaction) int {
		return a.Date.Compare(b.Date)
	})

	groups := make(map[string]*assetGroup)
	var order []string
	var events []ImportedTaxEvent

	for _, tx := range sorted {
		key := tx.Ticker
		if key == "" {
			key = tx.Asset
		}
		if key == "" || fiatTickers[key] {
			continue
		}
		if ev, ok := deriveTaxEvent(tx); ok {
			events = append(events, ev)
		}
		g, ok := groups[key]
		if !ok {
			g = &assetGroup{key: key, name: tx.Asset}
			groups[key] = g
			order = append(order, key)
		}
		switch tx.Type {
		case TxBuy, TxReceive, TxDeposit, TxTrade, TxConversion:
			g.buys = append(g.buys, tx)
		case TxSell, TxSend, TxWithdrawal:
			g.sells = append(g.sells, tx)
		case TxStakingReward, TxAirdrop, TxMining:
			g.rewards = append(g.rewards, tx)
		default:
			continue
		}
		g.all = append(g.all, tx)
	}

	var positions []ImportedPosition
	for _, key := range order {
		if p, ok := groups[key].position(sourceLabel); ok {
			positions = append(positions, p)
		}
	}
	return positions, events
}

// position reduces one asset group to its open position. The second return
// is false when the position is fully exited.
func (g *assetGroup) position(sourceLabel string) (ImportedPosition, bool) {
	totalBought := Q(0)
	totalSold := Q(0)
	costBasis := M(0)

	for _, tx := range g.buys {
		totalBought = totalBought.Add(tx.Quantity.Abs())
		costBasis = costBasis.Add(tx.TotalValue.Abs()).Add(tx.Fee)
	}
	for _, tx := range g.rewards {
		// Rewards enter the position at fair market value: that value is
		// both taxable income and the basis of the received units.
		totalBought = totalBought.Add(tx.Quantity.Abs())
		costBasis = costBasis.Add(tx.TotalValue.Abs())
	}
	for _, tx := range g.sells {
		totalSold = totalSold.Add(tx.Quantity.Abs())
	}

	netQuantity := totalBought.Sub(totalSold)
	if !netQuantity.GreaterThan(exitTolerance) {
		return ImportedPosition{}, false
	}

	// Average-cost allocation: the sold share of the basis is proportional
	// to the sold share of the quantity.
	remaining := costBasis
	if totalBought.IsPositive() && totalSold.IsPositive() {
		soldBasis := costBasis.Mul(totalSold.Div(totalBought))
		remaining = costBasis.Sub(soldBasis)
		if remaining.IsNegative() {
			remaining = M(0)
		}
	}

	// Value the position at the last observed price, falling back to the
	// remaining basis when no transaction in the group carried a price.
	currentValue := remaining
	for i := len(g.all) - 1; i >= 0; i-- {
		if g.all[i].PricePerUnit.IsPositive() {
			currentValue = g.all[i].PricePerUnit.Mul(netQuantity)
			break
		}
	}

	name := g.name
	if name == "" {
		name = g.key
	}
	class := classifyAsset(g.key, name)

	return ImportedPosition{
		Name:         name,
		Ticker:       g.key,
		AssetClass:   class,
		Quantity:     netQuantity,
		CostBasis:    remaining,
		CurrentValue: currentValue,
		AcquiredDate: g.acquiredDate(),
		TaxTreatment: g.taxTreatment(),
		Tags:         []string{"imported", string(class)},
		RiskScore:    riskScore(g.key, class),
		Notes:        fmt.Sprintf("Imported from %s (%d transactions)", sourceLabel, len(g.all)),
	}, true
}

// acquiredDate returns the earliest dated buy.
func (g *assetGroup) acquiredDate() Date {
	var earliest Date
	for _, tx := range g.buys {
		if tx.Date.IsZero() {
			continue
		}
		if earliest.IsZero() || tx.Date.Before(earliest) {
			earliest = tx.Date
		}
	}
	return earliest
}

// taxTreatment applies the precedence rules: reward income first, then the
// holding period of the earliest buy.
func (g *assetGroup) taxTreatment() TaxTreatment {
	for _, tx := range g.rewards {
		if tx.Type == TxStakingReward {
			return TreatmentStakingReward
		}
	}
	for _, tx := range g.rewards {
		if tx.Type == TxAirdrop {
			return TreatmentAirdrop
		}
	}
	if isLongTerm(g.acquiredDate()) {
		return TreatmentLongTermCG
	}
	return TreatmentShortTermCG
}

// isLongTerm reports whether a holding acquired on d has crossed the
// long-term threshold by now. An absent date never qualifies.
func isLongTerm(d Date) bool {
	if d.IsZero() {
		return false
	}
	return time.Since(d.Time()) >= longTermHoldingPeriod
}

// deriveTaxEvent emits the tax event for one transaction, if its type is
// taxable. Buys, receives, deposits, and unrecognized rows produce none.
func deriveTaxEvent(tx RawTransaction) (ImportedTaxEvent, bool) {
	amount := tx.TotalValue.Abs()
	if amount.IsZero() {
		// Sources without a value column (the Kraken ledger) still need a
		// magnitude; fall back to the unit count.
		amount = asMoney(tx.Quantity.Abs())
	}

	switch tx.Type {
	case TxSell, TxSend, TxWithdrawal:
		treatment := TreatmentShortTermCG
		if isLongTerm(tx.Date) {
			treatment = TreatmentLongTermCG
		}
		return ImportedTaxEvent{
			Type:            EventSale,
			Description:     fmt.Sprintf("Sale of %s %s", tx.Quantity.Abs(), tickerOrAsset(tx)),
			EstimatedAmount: amount,
			TaxTreatment:    treatment,
			ExpectedDate:    tx.Date,
			Realized:        true,
			Notes:           tx.Notes,
		}, true
	case TxStakingReward:
		return rewardEvent(tx, EventStakingReward, TreatmentStakingReward, "Staking reward", amount), true
	case TxAirdrop:
		return rewardEvent(tx, EventAirdrop, TreatmentAirdrop, "Airdrop", amount), true
	case TxMining:
		return rewardEvent(tx, EventMining, TreatmentMiningIncome, "Mining income", amount), true
	case TxConversion:
		return ImportedTaxEvent{
			Type:            EventConversion,
			Description:     fmt.Sprintf("Conversion of %s %s", tx.Quantity.Abs(), tickerOrAsset(tx)),
			EstimatedAmount: amount,
			TaxTreatment:    TreatmentShortTermCG,
			ExpectedDate:    tx.Date,
			Realized:        true,
			Notes:           tx.Notes,
		}, true
	case TxDividend, TxInterest:
		return ImportedTaxEvent{
			Type:            EventIncome,
			Description:     fmt.Sprintf("%s income from %s", titleCase(string(tx.Type)), tickerOrAsset(tx)),
			EstimatedAmount: amount,
			TaxTreatment:    TreatmentOrdinaryIncome,
			ExpectedDate:    tx.Date,
			Realized:        true,
			Notes:           tx.Notes,
		}, true
	default:
		return ImportedTaxEvent{}, false
	}
}

func rewardEvent(tx RawTransaction, typ EventType, treatment TaxTreatment, label string, amount Money) ImportedTaxEvent {
	return ImportedTaxEvent{
		Type:            typ,
		Description:     fmt.Sprintf("%s: %s %s", label, tx.Quantity.Abs(), tickerOrAsset(tx)),
		EstimatedAmount: amount,
		TaxTreatment:    treatment,
		ExpectedDate:    tx.Date,
		Realized:        true,
		Notes:           tx.Notes,
	}
}

func tickerOrAsset(tx RawTransaction) string {
	if tx.Ticker != "" {
		return tx.Ticker
	}
	return tx.Asset
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// asMoney reinterprets a quantity as a money magnitude, used only for the
// no-value-column fallback above.
func asMoney(q Quantity) Money { return Money{value: q.value} }
