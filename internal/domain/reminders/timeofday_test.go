package reminders

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "22:00", want: "22:00"},
		{in: "00:00", want: "00:00"},
		{in: "9:05", want: "09:05"},
		{in: " 13:30 ", want: "13:30"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}

	for _, c := range cases {
		got, err := ParseTimeOfDay(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseTimeOfDay(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) error: %v", c.in, err)
		}
		if got.String() != c.want {
			t.Fatalf("ParseTimeOfDay(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestAddHours_WrapsPastMidnight(t *testing.T) {
	start, _ := ParseTimeOfDay("22:00")

	if got := start.AddHours(4); got.String() != "02:00" {
		t.Fatalf("22:00 + 4h = %s, want 02:00", got)
	}
	if got := start.AddHours(24); got.String() != "22:00" {
		t.Fatalf("22:00 + 24h = %s, want 22:00", got)
	}
	if got := start.AddHours(26); got.String() != "00:00" {
		t.Fatalf("22:00 + 26h = %s, want 00:00", got)
	}
}
