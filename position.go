package holdings

// TaxTreatment classifies how income or gains from a position or event are
// taxed.
type TaxTreatment string

// Tax treatments.
const (
	TreatmentOrdinaryIncome TaxTreatment = "ordinary_income"
	TreatmentShortTermCG    TaxTreatment = "short_term_cg"
	TreatmentLongTermCG     TaxTreatment = "long_term_cg"
	TreatmentMiningIncome   TaxTreatment = "mining_income"
	TreatmentAirdrop        TaxTreatment = "airdrop"
	TreatmentStakingReward  TaxTreatment = "staking_reward"
	TreatmentUnknown        TaxTreatment = "unknown"
)

// ImportedPosition is one aggregated holding: the net open quantity of a
// ticker with its allocated cost basis and inferred metadata. It is
// produced once per import call and never mutated afterward.
type ImportedPosition struct {
	Name         string
	Ticker       string
	AssetClass   AssetClass
	Quantity     Quantity
	CostBasis    Money // remaining basis after average-cost allocation, never negative
	CurrentValue Money
	AcquiredDate Date // earliest buy, zero when no buy carried a date
	TaxTreatment TaxTreatment
	Tags         []string
	RiskScore    int // 1 (stable) to 10 (speculative)
	Notes        string
}

// MarshalJSON implements the json.Marshaler interface with a fixed field
// order.
func (p ImportedPosition) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.Name)
	w.Append("ticker", p.Ticker)
	w.Append("assetClass", p.AssetClass)
	w.Append("quantity", p.Quantity)
	w.Append("costBasis", p.CostBasis)
	w.Append("currentValue", p.CurrentValue)
	w.Optional("acquiredDate", p.AcquiredDate)
	w.Append("taxTreatment", p.TaxTreatment)
	w.Optional("tags", p.Tags)
	w.Append("riskScore", p.RiskScore)
	w.Optional("notes", p.Notes)
	return w.MarshalJSON()
}

// EventType classifies a derived tax event.
type EventType string

// Tax event types.
const (
	EventAirdrop       EventType = "airdrop"
	EventTGE           EventType = "tge"
	EventVest          EventType = "vest"
	EventSale          EventType = "sale"
	EventConversion    EventType = "conversion"
	EventStakingReward EventType = "staking_reward"
	EventMining        EventType = "mining"
	EventIncome        EventType = "income"
	EventLoss          EventType = "loss"
)

// ImportedTaxEvent is one discrete taxable occurrence derived from a single
// transaction. Importer-generated events are always realized: they come
// from history, not projections.
type ImportedTaxEvent struct {
	Type            EventType
	Description     string
	EstimatedAmount Money
	TaxTreatment    TaxTreatment
	ExpectedDate    Date
	Realized        bool
	Notes           string
}

// MarshalJSON implements the json.Marshaler interface with a fixed field
// order.
func (e ImportedTaxEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", e.Type)
	w.Append("description", e.Description)
	w.Append("estimatedAmount", e.EstimatedAmount)
	w.Append("taxTreatment", e.TaxTreatment)
	w.Optional("expectedDate", e.ExpectedDate)
	w.Append("realized", e.Realized)
	w.Optional("notes", e.Notes)
	return w.MarshalJSON()
}
