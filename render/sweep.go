// SPDX-License-Identifier: MIT

package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ganvalue/gan"
	"github.com/katalvlaran/ganvalue/sweep"
)

// sweepDocument is the JSON/YAML shape of WriteSweep.
type sweepDocument struct {
	Param  string        `json:"param" yaml:"param"`
	Points []sweep.Point `json:"points" yaml:"points"`
}

type jsonSweepDocument struct {
	Param  string      `json:"param"`
	Points []jsonPoint `json:"points"`
}

type jsonPoint struct {
	Value              number `json:"value"`
	Integral           number `json:"integral"`
	NormalizedIntegral number `json:"normalized_integral"`
	Gradient           number `json:"gradient"`
}

// WriteSweep writes sweep points over generator parameter p to w in format f.
// JSON writes non-finite values as null.
func WriteSweep(w io.Writer, p gan.Param, points []sweep.Point, f Format) error {
	header := []string{p.String(), "integral", "normalized", "gradient"}
	cells := func(pt sweep.Point, format func(float64) string) []string {
		return []string{format(pt.Value), format(pt.Integral), format(pt.NormalizedIntegral), format(pt.Gradient)}
	}

	switch f {
	case FormatTable:
		short := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
		rows := make([][]string, len(points))
		for i, pt := range points {
			rows[i] = cells(pt, short)
		}
		t := table.New().Border(lipgloss.NormalBorder()).Headers(header...).Rows(rows...)
		_, err := fmt.Fprintln(w, t.Render())

		return err
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		full := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
		for _, pt := range points {
			if err := cw.Write(cells(pt, full)); err != nil {
				return err
			}
		}
		cw.Flush()

		return cw.Error()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		doc := jsonSweepDocument{Param: p.String(), Points: make([]jsonPoint, len(points))}
		for i, pt := range points {
			doc.Points[i] = jsonPoint{
				Value:              number(pt.Value),
				Integral:           number(pt.Integral),
				NormalizedIntegral: number(pt.NormalizedIntegral),
				Gradient:           number(pt.Gradient),
			}
		}

		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sweepDocument{Param: p.String(), Points: points}); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("WriteSweep(%v): %w", f, ErrUnknownFormat)
	}
}
