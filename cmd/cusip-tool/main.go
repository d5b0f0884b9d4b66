// Command cusip-tool is the CLI for working with CUSIP identifiers.
// It provides commands for parsing identifiers, validating them in bulk,
// and computing check digits.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gnp/cusip/core/cusip"
	"github.com/gnp/cusip/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for cusip-tool.
var CLI struct {
	// Global flags
	Verbose   bool   `name:"verbose" short:"v" help:"Enable info-level logging"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log output format (text or json)"`

	Parse    ParseCmd    `cmd:"" help:"Parse CUSIP identifiers and print their fields"`
	Validate ValidateCmd `cmd:"" help:"Validate CUSIP identifiers from arguments or stdin"`
	Build    BuildCmd    `cmd:"" help:"Compute the check digit and print the complete identifier"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// parseFunc selects the parsing mode from the shared mode flags.
func parseFunc(lenient, loose bool) (func(string) (cusip.CUSIP, error), error) {
	if lenient && loose {
		return nil, errors.New("--lenient and --loose are mutually exclusive")
	}
	switch {
	case lenient:
		return cusip.Parse, nil
	case loose:
		return cusip.ParseLoose, nil
	default:
		return cusip.ParseStrict, nil
	}
}

// parseRecord is the JSON shape emitted by `cusip-tool parse --json`.
type parseRecord struct {
	CUSIP           string `json:"cusip"`
	IssuerNum       string `json:"issuer_num"`
	IssueNum        string `json:"issue_num"`
	CheckDigit      string `json:"check_digit"`
	CINSCountryCode string `json:"cins_country_code,omitempty"`
	PrivateUse      bool   `json:"private_use"`
}

func newParseRecord(c cusip.CUSIP) parseRecord {
	rec := parseRecord{
		CUSIP:      c.String(),
		IssuerNum:  c.IssuerNum(),
		IssueNum:   c.IssueNum(),
		CheckDigit: string(c.CheckDigit()),
		PrivateUse: c.IsPrivateUse(),
	}
	if n, ok := c.AsCINS(); ok {
		rec.CINSCountryCode = string(n.CountryCode())
	}
	return rec
}

// ParseCmd parses identifiers given as arguments and prints their fields.
type ParseCmd struct {
	Lenient bool     `help:"Accept structurally valid identifiers without verifying the check digit"`
	Loose   bool     `help:"Trim whitespace and uppercase letters before strict parsing"`
	JSON    bool     `help:"Emit one JSON object per identifier"`
	Values  []string `arg:"" name:"cusip" help:"CUSIP identifiers to parse"`
}

func (c *ParseCmd) Run() error {
	parse, err := parseFunc(c.Lenient, c.Loose)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	invalid := 0
	for _, value := range c.Values {
		parsed, err := parse(value)
		if err != nil {
			invalid++
			fmt.Fprintf(os.Stderr, "%s: %v\n", value, err)
			continue
		}

		if c.JSON {
			if err := enc.Encode(newParseRecord(parsed)); err != nil {
				return fmt.Errorf("failed to encode output: %w", err)
			}
			continue
		}

		fmt.Printf("%s\n", parsed)
		fmt.Printf("  Issuer number: %s\n", parsed.IssuerNum())
		fmt.Printf("  Issue number: %s\n", parsed.IssueNum())
		fmt.Printf("  Check digit: %c\n", parsed.CheckDigit())
		if n, ok := parsed.AsCINS(); ok {
			fmt.Printf("  CINS country code: %c\n", n.CountryCode())
		}
		if parsed.IsPrivateUse() {
			fmt.Printf("  Private use: yes\n")
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d identifiers invalid", invalid, len(c.Values))
	}
	return nil
}

// ValidateCmd validates identifiers from arguments, or from stdin one per
// line when no arguments are given. It exits non-zero if any input fails.
type ValidateCmd struct {
	Lenient bool     `help:"Check structure only, without verifying the check digit"`
	Loose   bool     `help:"Trim whitespace and uppercase letters before strict parsing"`
	Quiet   bool     `short:"q" help:"Suppress per-input diagnostics"`
	Values  []string `arg:"" optional:"" name:"cusip" help:"CUSIP identifiers to validate (stdin when omitted)"`
}

func (c *ValidateCmd) Run() error {
	parse, err := parseFunc(c.Lenient, c.Loose)
	if err != nil {
		return err
	}

	var checked, invalid int
	if len(c.Values) > 0 {
		checked, invalid = validateValues(c.Values, parse, c.Quiet)
	} else {
		checked, invalid, err = validateLines(os.Stdin, parse, c.Quiet)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	fmt.Printf("checked %d, invalid %d\n", checked, invalid)
	if invalid > 0 {
		return fmt.Errorf("%d of %d identifiers invalid", invalid, checked)
	}
	return nil
}

// validateValues validates identifiers supplied as arguments.
func validateValues(values []string, parse func(string) (cusip.CUSIP, error), quiet bool) (checked, invalid int) {
	for i, value := range values {
		checked++
		if _, err := parse(value); err != nil {
			invalid++
			if !quiet {
				logging.InvalidIdentifier(value, i+1, err)
			}
		}
	}
	return checked, invalid
}

// validateLines validates identifiers read from r, one per line.
func validateLines(r io.Reader, parse func(string) (cusip.CUSIP, error), quiet bool) (checked, invalid int, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		value := scanner.Text()
		if value == "" {
			continue
		}
		checked++
		if _, err := parse(value); err != nil {
			invalid++
			if !quiet {
				logging.InvalidIdentifier(value, line, err)
			}
		}
	}
	return checked, invalid, scanner.Err()
}

// BuildCmd computes the check digit for a payload, or for an issuer number
// and issue number pair, and prints the complete identifier.
type BuildCmd struct {
	Payload string `help:"8-character payload (issuer number and issue number concatenated)"`
	Issuer  string `help:"6-character issuer number"`
	Issue   string `help:"2-character issue number"`
}

func (c *BuildCmd) Run() error {
	var built cusip.CUSIP
	var err error

	switch {
	case c.Payload != "":
		if c.Issuer != "" || c.Issue != "" {
			return errors.New("--payload cannot be combined with --issuer and --issue")
		}
		built, err = cusip.BuildFromPayload(c.Payload)
	case c.Issuer != "" || c.Issue != "":
		built, err = cusip.BuildFromParts(c.Issuer, c.Issue)
	default:
		return errors.New("either --payload or --issuer and --issue are required")
	}
	if err != nil {
		return err
	}

	fmt.Println(built)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("cusip-tool %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cusip-tool"),
		kong.Description("Parse, validate and build CUSIP security identifiers (ANSI X9.6-2020)"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level := logging.LevelWarn
	if CLI.Verbose {
		level = logging.LevelInfo
	}
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
