package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/radioactive/internal/timeline"
)

// Meta describes how a series was produced.
type Meta struct {
	Mixture        map[string]float64 `json:"mixture,omitempty"`
	Policy         string             `json:"policy,omitempty"`
	Merge          string             `json:"merge,omitempty"`
	Chains         []string           `json:"chains,omitempty"`
	DecayConstants map[string]float64 `json:"decay_constants,omitempty"`
}

// Data is the JSON document for a series. Values[i][j] is isotope IDs[j]
// at Times[i].
type Data struct {
	Meta
	Quantity string      `json:"quantity"`
	Unit     string      `json:"unit"`
	Points   int         `json:"points"`
	IDs      []string    `json:"ids"`
	Times    []float64   `json:"times"`
	Values   [][]float64 `json:"values"`
	Totals   []float64   `json:"totals"`
}

func NewData(s *timeline.Series, meta Meta) Data {
	ids := s.IDs()
	data := Data{
		Meta:     meta,
		Quantity: string(s.Quantity),
		Unit:     s.Quantity.Unit(),
		Points:   s.Len(),
		IDs:      ids,
		Times:    s.Times,
		Values:   make([][]float64, len(s.Samples)),
		Totals:   s.Totals(),
	}
	for i, smp := range s.Samples {
		row := make([]float64, len(ids))
		for j, id := range ids {
			row[j] = smp.Get(id)
		}
		data.Values[i] = row
	}
	return data
}

func WriteJSON(w io.Writer, s *timeline.Series, meta Meta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewData(s, meta))
}

// WriteCSV writes one row per sample: time, one column per isotope in
// first-seen order, then the total. Isotopes absent from a sample are 0.
func WriteCSV(w io.Writer, s *timeline.Series) error {
	cw := csv.NewWriter(w)

	ids := s.IDs()
	header := append([]string{"time"}, ids...)
	header = append(header, "total")
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, smp := range s.Samples {
		row := make([]string, 0, len(ids)+2)
		row = append(row, formatFloat(s.Times[i]))
		for _, id := range ids {
			row = append(row, formatFloat(smp.Get(id)))
		}
		row = append(row, formatFloat(smp.Total))
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ToFile runs write against path, or stdout when path is "" or "-".
func ToFile(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
