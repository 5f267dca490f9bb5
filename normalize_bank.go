package holdings

import "github.com/shopspring/decimal"

// bankNormalizer handles generic bank statements ("Posting Date,
// Description, Amount" or separate Debit/Credit columns). The records it
// produces represent cash movements, not holdings: quantity is fixed at 1
// and the price per unit is the absolute amount.
type bankNormalizer struct{}

func (bankNormalizer) normalize(headers []string, rows [][]string) []RawTransaction {
	iDate := findColumn(headers, "date")
	iDesc := findColumn(headers, "description")
	iDebit := findColumn(headers, "debit")
	iCredit := findColumn(headers, "credit")
	iAmount := findColumn(headers, "amount")

	var txs []RawTransaction
	for _, row := range rows {
		var amount decimal.Decimal
		if iDebit >= 0 && iCredit >= 0 {
			credit := parseNumber(field(row, iCredit))
			if credit.IsPositive() {
				amount = credit
			} else {
				amount = parseNumber(field(row, iDebit)).Neg()
			}
		} else {
			amount = parseNumber(field(row, iAmount))
		}
		if amount.IsZero() {
			continue
		}

		txType := TxDeposit
		if amount.IsNegative() {
			txType = TxWithdrawal
		}
		desc := field(row, iDesc)
		abs := M(amount.Abs())

		txs = append(txs, RawTransaction{
			Date:         parseDate(field(row, iDate)),
			Asset:        desc,
			Type:         txType,
			Quantity:     Q(1),
			PricePerUnit: abs,
			TotalValue:   abs,
			Fee:          M(0),
			Notes:        desc,
		})
	}
	return txs
}
