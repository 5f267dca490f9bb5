package holdings

import "testing"

func TestAutoMapColumns(t *testing.T) {
	headers := []string{"trade date", "coin", "side", "volume", "rate", "proceeds", "commission", "memo"}
	m := AutoMapColumns(headers)

	want := ColumnMapping{Date: 0, Asset: 1, Type: 2, Quantity: 3, Price: 4, Total: 5, Fee: 6, Notes: 7}
	if m != want {
		t.Errorf("AutoMapColumns() = %+v, want %+v", m, want)
	}
}

func TestAutoMapColumnsFirstMatchWins(t *testing.T) {
	// Two headers match the date role; the first one is kept.
	m := AutoMapColumns([]string{"timestamp", "date", "asset"})
	if m.Date != 0 {
		t.Errorf("Date = %d, want 0", m.Date)
	}
	if m.Asset != 2 {
		t.Errorf("Asset = %d, want 2", m.Asset)
	}
}

func TestAutoMapColumnsUnmatchedStayUnassigned(t *testing.T) {
	m := AutoMapColumns([]string{"alpha", "beta"})
	if m != NewColumnMapping() {
		t.Errorf("AutoMapColumns() = %+v, want all -1", m)
	}
}
