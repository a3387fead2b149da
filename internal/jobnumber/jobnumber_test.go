package jobnumber

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func fixedLatest(number string) LatestFunc {
	return func() (string, bool, error) { return number, true, nil }
}

func noLatest() (string, bool, error) { return "", false, nil }

func TestFiscalYearLabel(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{date(2023, time.April, 1), "23-24"},
		{date(2023, time.March, 31), "22-23"},
		{date(2023, time.December, 25), "23-24"},
		{date(2024, time.January, 15), "23-24"},
		{date(2024, time.March, 1), "23-24"},
		{date(2024, time.April, 30), "24-25"},
		{date(1999, time.June, 1), "99-00"},
		{date(2000, time.February, 1), "99-00"},
	}
	for _, tc := range cases {
		if got := FiscalYearLabel(tc.date); got != tc.want {
			t.Errorf("FiscalYearLabel(%s) = %q, want %q", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestFiscalYearBoundaryDiffers(t *testing.T) {
	march := FiscalYearLabel(date(2023, time.March, 31))
	april := FiscalYearLabel(date(2023, time.April, 1))
	if march == april {
		t.Fatalf("March 31 and April 1 must fall in different fiscal years, both got %q", march)
	}
}

func TestNextIncrementsWithinFiscalYear(t *testing.T) {
	g := Generator{Latest: fixedLatest("23-24_0000042")}
	got, err := g.Next(date(2023, time.June, 1))
	if err != nil {
		t.Fatal(err)
	}
	if got != "23-24_0000043" {
		t.Errorf("expected 23-24_0000043, got %s", got)
	}
}

func TestNextResetsOnRollover(t *testing.T) {
	g := Generator{Latest: fixedLatest("22-23_0000042")}
	got, err := g.Next(date(2023, time.June, 1))
	if err != nil {
		t.Fatal(err)
	}
	if got != "23-24_0000001" {
		t.Errorf("expected 23-24_0000001, got %s", got)
	}
}

func TestNextStartsAtOneWhenEmpty(t *testing.T) {
	g := Generator{Latest: noLatest}
	got, err := g.Next(date(2023, time.June, 1))
	if err != nil {
		t.Fatal(err)
	}
	if got != "23-24_0000001" {
		t.Errorf("expected 23-24_0000001, got %s", got)
	}
}

func TestNextKeepsSevenDigitPadding(t *testing.T) {
	g := Generator{Latest: fixedLatest("23-24_0000999")}
	got, err := g.Next(date(2023, time.June, 1))
	if err != nil {
		t.Fatal(err)
	}
	if got != "23-24_0001000" {
		t.Errorf("expected 23-24_0001000, got %s", got)
	}
}

func TestNextMalformedLatest(t *testing.T) {
	for _, bad := range []string{"badformat", "23-24_12ab", "2324_0000001", "23-24_", "_0000001"} {
		g := Generator{Latest: fixedLatest(bad)}
		_, err := g.Next(date(2023, time.June, 1))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("latest %q: expected ErrMalformed, got %v", bad, err)
		}
	}
}

func TestNextPropagatesLookupError(t *testing.T) {
	lookupErr := fmt.Errorf("store unavailable")
	g := Generator{Latest: func() (string, bool, error) { return "", false, lookupErr }}
	_, err := g.Next(date(2023, time.June, 1))
	if !errors.Is(err, lookupErr) {
		t.Errorf("expected wrapped lookup error, got %v", err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	label, seq, err := Parse(Format("23-24", 42))
	if err != nil {
		t.Fatal(err)
	}
	if label != "23-24" || seq != 42 {
		t.Errorf("round trip gave %q %d", label, seq)
	}
}

func TestParseRejectsNonPositiveSequence(t *testing.T) {
	if _, _, err := Parse("23-24_0000000"); !errors.Is(err, ErrMalformed) {
		t.Errorf("sequence 0 should be malformed, got %v", err)
	}
}
