package holdings

import "strings"

// ColumnMapping assigns a column index to each role the custom normalizer
// understands. -1 means "no column".
type ColumnMapping struct {
	Date     int `json:"date"`
	Asset    int `json:"asset"`
	Type     int `json:"type"`
	Quantity int `json:"quantity"`
	Price    int `json:"price"`
	Total    int `json:"total"`
	Fee      int `json:"fee"`
	Notes    int `json:"notes"`
}

// NewColumnMapping returns a mapping with every role unassigned.
func NewColumnMapping() ColumnMapping {
	return ColumnMapping{
		Date:     -1,
		Asset:    -1,
		Type:     -1,
		Quantity: -1,
		Price:    -1,
		Total:    -1,
		Fee:      -1,
		Notes:    -1,
	}
}

// roleKeywords drive the auto-mapper. For each role the first header
// containing any of its keywords wins; later matches are ignored.
var roleKeywords = []struct {
	role     func(*ColumnMapping) *int
	keywords []string
}{
	{func(m *ColumnMapping) *int { return &m.Date }, []string{"date", "time", "timestamp"}},
	{func(m *ColumnMapping) *int { return &m.Asset }, []string{"asset", "currency", "symbol", "coin", "token", "ticker", "instrument"}},
	{func(m *ColumnMapping) *int { return &m.Type }, []string{"type", "action", "side", "trans"}},
	{func(m *ColumnMapping) *int { return &m.Quantity }, []string{"quantity", "amount", "qty", "size", "volume"}},
	{func(m *ColumnMapping) *int { return &m.Price }, []string{"price", "rate", "spot"}},
	{func(m *ColumnMapping) *int { return &m.Total }, []string{"total", "value", "cost", "proceeds"}},
	{func(m *ColumnMapping) *int { return &m.Fee }, []string{"fee", "commission", "spread"}},
	{func(m *ColumnMapping) *int { return &m.Notes }, []string{"note", "memo", "description", "comment"}},
}

// AutoMapColumns guesses column roles from normalized headers. It is used
// when the resolved format is custom and the caller supplied no mapping.
func AutoMapColumns(headers []string) ColumnMapping {
	m := NewColumnMapping()
	for _, r := range roleKeywords {
		target := r.role(&m)
		for i, h := range headers {
			if *target >= 0 {
				break
			}
			h = strings.ToLower(h)
			for _, kw := range r.keywords {
				if strings.Contains(h, kw) {
					*target = i
					break
				}
			}
		}
	}
	return m
}
