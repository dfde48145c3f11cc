// Package printers renders lookup results for the non-interactive commands.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"

	"bell-lookup/internal/channel"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ParseFormat validates an --output value.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output %q (want table, json or yaml)", s)
	}
}

// Result is what list prints in structured formats.
type Result struct {
	Summary  string            `json:"summary" yaml:"summary"`
	Count    int               `json:"count" yaml:"count"`
	Channels []channel.Channel `json:"channels" yaml:"channels"`
}

// Printer writes to Out in Format.
type Printer struct {
	Out    io.Writer
	Format string
}

func New(out io.Writer, format string) *Printer {
	if out == nil {
		out = color.Output
	}
	return &Printer{Out: out, Format: format}
}

// Channels prints matches with the summary line.
func (p *Printer) Channels(matches []channel.Channel, summary string) error {
	switch p.Format {
	case FormatJSON:
		return p.json(Result{Summary: summary, Count: len(matches), Channels: nonNil(matches)})
	case FormatYAML:
		return p.yaml(Result{Summary: summary, Count: len(matches), Channels: nonNil(matches)})
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	if len(matches) > 0 {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = 40
		tbl.AddRow(bold.Sprint("Number"), bold.Sprint("Channel"), bold.Sprint("Category"),
			bold.Sprint("Bundles"), bold.Sprint("A la Carte 10"), bold.Sprint("Add-on Pkg"))
		for _, c := range matches {
			card := channel.BuildCard(c)
			tbl.AddRow(card.Number, card.Name, card.Category, badges(card), alaCarte(card), addOn(card))
		}
		_, _ = fmt.Fprintln(p.Out, tbl)
	} else {
		_, _ = color.New(color.Bold).Fprintln(p.Out, "No channels found")
		_, _ = faint.Fprintln(p.Out, "Try adjusting your filters or search query.")
	}
	_, _ = faint.Fprintln(p.Out, summary)
	return nil
}

// Categories prints one category per line in table format.
func (p *Printer) Categories(cats []string) error {
	switch p.Format {
	case FormatJSON:
		return p.json(map[string][]string{"categories": cats})
	case FormatYAML:
		return p.yaml(map[string][]string{"categories": cats})
	}
	for _, c := range cats {
		_, _ = fmt.Fprintln(p.Out, c)
	}
	return nil
}

func (p *Printer) json(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.Out, string(b))
	return err
}

func (p *Printer) yaml(v any) error {
	enc := yaml.NewEncoder(p.Out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func badges(card channel.Card) string {
	if card.AddOnOnly {
		return color.New(color.FgYellow).Sprint("Add-on Only")
	}
	return strings.Join(card.Badges, " ")
}

func alaCarte(card channel.Card) string {
	if !card.AlaCarte.Available {
		return color.New(color.Faint).Sprint(card.AlaCarte.Price)
	}
	return color.New(color.FgGreen).Sprint(card.AlaCarte.Price)
}

func addOn(card channel.Card) string {
	if card.AddOn == nil {
		return ""
	}
	if card.AddOn.Price == "" {
		return card.AddOn.Name
	}
	return card.AddOn.Name + " " + card.AddOn.Price
}

func nonNil(l []channel.Channel) []channel.Channel {
	if l == nil {
		return []channel.Channel{}
	}
	return l
}
