package holdings

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2023-01-05", NewDate(2023, time.January, 5)},
		{"2023-1-5", NewDate(2023, time.January, 5)},
		{"2023-01-05T12:30:00Z", NewDate(2023, time.January, 5)},
		{"2023-01-05 12:30:00", NewDate(2023, time.January, 5)},
		{"1/5/2023", NewDate(2023, time.January, 5)},
		{"01/05/2023", NewDate(2023, time.January, 5)},
		{"1/5/23", NewDate(2023, time.January, 5)},
		{"12/31/99", NewDate(2099, time.December, 31)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not a date", "13/45/2023", "--"} {
		if got, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) = %v, want error", in, got)
		}
	}
}

func TestDateCompareZeroSortsLast(t *testing.T) {
	present := NewDate(2024, time.June, 1)
	var absent Date

	if got := present.Compare(absent); got != -1 {
		t.Errorf("present.Compare(absent) = %d, want -1", got)
	}
	if got := absent.Compare(present); got != 1 {
		t.Errorf("absent.Compare(present) = %d, want 1", got)
	}
	if got := absent.Compare(Date{}); got != 0 {
		t.Errorf("absent.Compare(absent) = %d, want 0", got)
	}
}

func TestDateMarshalJSON(t *testing.T) {
	b, err := NewDate(2024, time.June, 1).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-06-01"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, `"2024-06-01"`)
	}

	b, err = Date{}.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("zero MarshalJSON() = %s, want null", b)
	}
}
