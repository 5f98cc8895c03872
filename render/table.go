// SPDX-License-Identifier: MIT

package render

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ganvalue/gan"
	"github.com/katalvlaran/ganvalue/gaussian"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects the WriteTable encoding.
type Format int

const (
	FormatTable Format = iota
	FormatCSV
	FormatJSON
	FormatYAML
)

var formatNames = [...]string{
	FormatTable: "table",
	FormatCSV:   "csv",
	FormatJSON:  "json",
	FormatYAML:  "yaml",
}

func (f Format) String() string {
	if f < FormatTable || f > FormatYAML {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, s) {
			return Format(i), nil
		}
	}

	return FormatTable, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

var columns = []string{"x", "p_true", "p_gen", "D", "V"}

// Summary is the scalar part of a result written alongside the curves.
type Summary struct {
	Integral           float64 `json:"integral" yaml:"integral"`
	NormalizedIntegral float64 `json:"normalized_integral" yaml:"normalized_integral"`
	TrueMass           float64 `json:"true_mass" yaml:"true_mass"`
	GenMass            float64 `json:"gen_mass" yaml:"gen_mass"`
}

// Summarize computes the Summary of r.
func Summarize(r gan.Result) Summary {
	mt, mg := r.Mass()

	return Summary{
		Integral:           r.Integral(),
		NormalizedIntegral: r.NormalizedIntegral(),
		TrueMass:           mt,
		GenMass:            mg,
	}
}

// document is the YAML shape of WriteTable. YAML spells non-finite
// values natively (.nan, -.inf).
type document struct {
	gan.Result `yaml:",inline"`
	Summary    Summary `json:"summary" yaml:"summary"`
}

// number is a float64 that encodes NaN and ±Inf as JSON null instead of
// failing the encoder. They appear whenever a density underflows to 0.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(f)
}

func numbers(xs []float64) []number {
	out := make([]number, len(xs))
	for i, x := range xs {
		out[i] = number(x)
	}

	return out
}

// jsonDocument is the JSON shape of WriteTable; field names match
// gan.Result and Summary so either decodes it.
type jsonDocument struct {
	Mode          gan.Mode        `json:"mode"`
	True          gaussian.Params `json:"true"`
	Gen           gaussian.Params `json:"generator"`
	X             []number        `json:"x"`
	TrueDensity   []number        `json:"true_density"`
	GenDensity    []number        `json:"gen_density"`
	Discriminator []number        `json:"discriminator"`
	Value         []number        `json:"value"`
	Summary       jsonSummary     `json:"summary"`
}

type jsonSummary struct {
	Integral           number `json:"integral"`
	NormalizedIntegral number `json:"normalized_integral"`
	TrueMass           number `json:"true_mass"`
	GenMass            number `json:"gen_mass"`
}

func newJSONDocument(r gan.Result) jsonDocument {
	s := Summarize(r)

	return jsonDocument{
		Mode:          r.Mode,
		True:          r.True,
		Gen:           r.Gen,
		X:             numbers(r.X),
		TrueDensity:   numbers(r.TrueDensity),
		GenDensity:    numbers(r.GenDensity),
		Discriminator: numbers(r.Discriminator),
		Value:         numbers(r.Value),
		Summary: jsonSummary{
			Integral:           number(s.Integral),
			NormalizedIntegral: number(s.NormalizedIntegral),
			TrueMass:           number(s.TrueMass),
			GenMass:            number(s.GenMass),
		},
	}
}

// WriteTable writes every sample point of r to w in format f.
// JSON writes non-finite values as null.
func WriteTable(w io.Writer, r gan.Result, f Format) error {
	switch f {
	case FormatTable:
		return writeText(w, r)
	case FormatCSV:
		return writeCSV(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(newJSONDocument(r))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Result: r, Summary: Summarize(r)}); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("WriteTable(%v): %w", f, ErrUnknownFormat)
	}
}

func row(r gan.Result, i int, format func(float64) string) []string {
	pt, pg, d, v := r.At(i)

	return []string{format(r.X[i]), format(pt), format(pg), format(d), format(v)}
}

func writeCSV(w io.Writer, r gan.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	full := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for i := 0; i < r.Len(); i++ {
		if err := cw.Write(row(r, i, full)); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeText(w io.Writer, r gan.Result) error {
	short := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	rows := make([][]string, r.Len())
	for i := range rows {
		rows[i] = row(r, i, short)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(columns...).
		Rows(rows...)

	s := Summarize(r)
	_, err := fmt.Fprintf(w, "%s\nmode=%s true=%s generator=%s\n∫V=%.6f normalized=%.6f mass(true)=%.6f mass(gen)=%.6f\n",
		t.Render(), r.Mode, r.True, r.Gen, s.Integral, s.NormalizedIntegral, s.TrueMass, s.GenMass)

	return err
}
