package utils

import "testing"

func TestFormatPence(t *testing.T) {
	cases := []struct {
		pence int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{2500, "25.00"},
		{27500, "275.00"},
		{13100, "131.00"},
		{-150, "-1.50"},
	}
	for _, tc := range cases {
		if got := FormatPence(tc.pence); got != tc.want {
			t.Errorf("FormatPence(%d) = %q, want %q", tc.pence, got, tc.want)
		}
	}
}

func TestFormatPounds(t *testing.T) {
	if got := FormatPounds(27500); got != "£275.00" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPounds(-150); got != "-£1.50" {
		t.Fatalf("got %q", got)
	}
}

func TestParsePoundsToPence(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"£275.00", 27500},
		{"275.00", 27500},
		{"275", 27500},
		{"275.5", 27550},
		{"1,250.00", 125000},
	}
	for _, tc := range cases {
		got, err := ParsePoundsToPence(tc.in)
		if err != nil {
			t.Errorf("ParsePoundsToPence(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePoundsToPence(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if _, err := ParsePoundsToPence(""); err == nil {
		t.Fatalf("expected error for empty amount")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-03-01", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-03-06" {
		t.Fatalf("got %q", got)
	}

	got, err = AddDays("2026-02-27", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-03-02" {
		t.Fatalf("month rollover wrong: %q", got)
	}

	if _, err := AddDays("27/02/2026", 3); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}
