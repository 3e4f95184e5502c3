package handler

import (
	"testing"
	"time"
)

func TestParseCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "20.00", want: 2000},
		{in: "10.5", want: 1050},
		{in: "0.99", want: 99},
		{in: "3", want: 300},
		{in: ".5", want: 50},
		{in: "-3.25", want: -325},
		{in: "+7", want: 700},
		{in: " 12.00 ", want: 1200},
		{in: "1.005", want: 101},  // third digit rounds half up
		{in: "1.004", want: 100},
		{in: "2.999", want: 300},
		{in: "0", want: 0},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "12.x", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: ".", wantErr: true},
		{in: "1,50", wantErr: true},
		{in: "1e3", wantErr: true},
		{in: "99999999999999999999", wantErr: true}, // beyond cents range
	}

	for _, tc := range cases {
		got, err := parseCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseCents(%q) = %d, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCents(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseOrderDate(t *testing.T) {
	got, err := parseOrderDate("2026-03-01T10:30:00+02:00")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	want := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("rfc3339 = %v, want %v", got, want)
	}

	got, err = parseOrderDate("2026-03-01")
	if err != nil {
		t.Fatalf("date only: %v", err)
	}
	want = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("date only = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "yesterday", "03/01/2026"} {
		if _, err := parseOrderDate(bad); err == nil {
			t.Errorf("parseOrderDate(%q) should fail", bad)
		}
	}
}
