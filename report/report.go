// Package report renders the result of a simulation for people and scripts.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sarchlab/tlbsim/simulation"
	"gopkg.in/yaml.v3"
)

// Format selects how a summary is rendered.
type Format string

// Supported formats.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatTable, FormatYAML}

// ParseFormat converts a name into a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown output format %q, use one of %v",
		name, Formats)
}

// Summary is a result with the effective cycle rate evaluated for a given
// pair of costs.
type Summary struct {
	Hits     uint64  `json:"hits" yaml:"hits"`
	Misses   uint64  `json:"misses" yaml:"misses"`
	Total    uint64  `json:"total" yaml:"total"`
	HitRate  float64 `json:"hit_rate" yaml:"hit_rate"`
	MissRate float64 `json:"miss_rate" yaml:"miss_rate"`

	EffectiveMemoryCycleRate float64 `json:"effective_memory_cycle_rate" yaml:"effective_memory_cycle_rate"`
}

// NewSummary evaluates r with a memory read costing memCycles and a TLB hit
// costing hitCycles.
func NewSummary(r simulation.Result, memCycles, hitCycles float64) Summary {
	return Summary{
		Hits:                     r.Hits,
		Misses:                   r.Misses,
		Total:                    r.Total,
		HitRate:                  r.HitRate,
		MissRate:                 r.MissRate,
		EffectiveMemoryCycleRate: r.EffectiveMemoryCycleRate(memCycles, hitCycles),
	}
}

// Write renders s to w in format f.
func Write(w io.Writer, f Format, s Summary) error {
	switch f {
	case FormatText:
		return writeText(w, s)
	case FormatJSON:
		return writeJSON(w, s)
	case FormatTable:
		return writeTable(w, s)
	case FormatYAML:
		return writeYAML(w, s)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

func writeText(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w,
		"Hits: %d\nMisses: %d\nTotal: %d\n"+
			"Hit rate: %.2f%% Miss rate: %.2f%%\n"+
			"Effective Memory Cycle Rate: %.2f Cycles/Memory Access\n",
		s.Hits, s.Misses, s.Total,
		s.HitRate*100, s.MissRate*100,
		s.EffectiveMemoryCycleRate)

	return err
}

func writeJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")

	return enc.Encode(s)
}

func writeYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(s)
}

// NewTable creates a table writer with box-drawn borders and headers kept
// as given.
func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	return t
}

func writeTable(w io.Writer, s Summary) error {
	t := NewTable()
	t.AppendHeader(table.Row{
		"Hits", "Misses", "Total",
		"Hit rate (%)", "Miss rate (%)", "(Cycle/Access)",
	})
	t.AppendRow(table.Row{
		s.Hits, s.Misses, s.Total,
		fmt.Sprintf("%.2f%%", s.HitRate*100),
		fmt.Sprintf("%.2f%%", s.MissRate*100),
		fmt.Sprintf("%.2f", s.EffectiveMemoryCycleRate),
	})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}
