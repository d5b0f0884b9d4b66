package main

import (
	"strings"
	"testing"

	"github.com/gnp/cusip/core/cusip"
)

func TestParseFunc(t *testing.T) {
	tests := []struct {
		name           string
		lenient, loose bool
		input          string
		wantOK         bool
		wantSelectErr  bool
	}{
		{name: "strict accepts valid", input: "023135106", wantOK: true},
		{name: "strict rejects bad check digit", input: "023135107", wantOK: false},
		{name: "lenient accepts bad check digit", lenient: true, input: "023135107", wantOK: true},
		{name: "loose normalizes", loose: true, input: " 023135106 ", wantOK: true},
		{name: "lenient and loose conflict", lenient: true, loose: true, wantSelectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse, err := parseFunc(tt.lenient, tt.loose)
			if tt.wantSelectErr {
				if err == nil {
					t.Fatal("parseFunc accepted conflicting modes")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFunc failed: %v", err)
			}
			_, err = parse(tt.input)
			if (err == nil) != tt.wantOK {
				t.Errorf("parse(%q) error = %v, want ok = %v", tt.input, err, tt.wantOK)
			}
		})
	}
}

func TestValidateLines(t *testing.T) {
	input := strings.Join([]string{
		"023135106", // valid
		"",          // blank lines are skipped
		"023135107", // checksum mismatch
		"037833100", // valid
		"notacusip", // structurally invalid
	}, "\n")

	checked, invalid, err := validateLines(strings.NewReader(input), cusip.ParseStrict, true)
	if err != nil {
		t.Fatalf("validateLines failed: %v", err)
	}
	if checked != 4 {
		t.Errorf("checked = %d, want 4", checked)
	}
	if invalid != 2 {
		t.Errorf("invalid = %d, want 2", invalid)
	}

	// Lenient mode accepts the checksum mismatch.
	checked, invalid, err = validateLines(strings.NewReader(input), cusip.Parse, true)
	if err != nil {
		t.Fatalf("validateLines failed: %v", err)
	}
	if checked != 4 || invalid != 1 {
		t.Errorf("lenient checked, invalid = %d, %d, want 4, 1", checked, invalid)
	}
}

func TestValidateValues(t *testing.T) {
	checked, invalid := validateValues([]string{"023135106", "bogus"}, cusip.ParseStrict, true)
	if checked != 2 || invalid != 1 {
		t.Errorf("checked, invalid = %d, %d, want 2, 1", checked, invalid)
	}
}

func TestNewParseRecord(t *testing.T) {
	c, err := cusip.ParseStrict("S08000AA9")
	if err != nil {
		t.Fatalf("ParseStrict failed: %v", err)
	}

	rec := newParseRecord(c)
	if rec.CUSIP != "S08000AA9" {
		t.Errorf("CUSIP = %q, want %q", rec.CUSIP, "S08000AA9")
	}
	if rec.IssuerNum != "S08000" {
		t.Errorf("IssuerNum = %q, want %q", rec.IssuerNum, "S08000")
	}
	if rec.IssueNum != "AA" {
		t.Errorf("IssueNum = %q, want %q", rec.IssueNum, "AA")
	}
	if rec.CheckDigit != "9" {
		t.Errorf("CheckDigit = %q, want %q", rec.CheckDigit, "9")
	}
	if rec.CINSCountryCode != "S" {
		t.Errorf("CINSCountryCode = %q, want %q", rec.CINSCountryCode, "S")
	}

	plain, err := cusip.ParseStrict("023135106")
	if err != nil {
		t.Fatalf("ParseStrict failed: %v", err)
	}
	if rec := newParseRecord(plain); rec.CINSCountryCode != "" {
		t.Errorf("CINSCountryCode = %q for a non-CINS identifier, want empty", rec.CINSCountryCode)
	}
}
