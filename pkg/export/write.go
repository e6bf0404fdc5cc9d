package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
)

// WritePrices encodes price rows to w.
func WritePrices(w io.Writer, rows []PriceRow, format Format) error {
	if format != FormatCSV {
		return encode(w, rows, format)
	}
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{
			r.Network.String(),
			optionalString(r.PlanID),
			formatFloat(r.SizeGB),
			r.ValidityLabel,
			formatFloat(r.CostPrice),
			optionalFloat(r.DefaultPrice),
			optionalFloat(r.LowestCompetitorPrice),
			formatFloat(r.FinalPrice),
			r.Status.String(),
		}
	}
	return writeCSV(w, priceHeader, records)
}

// WritePlans encodes plans to w.
func WritePlans(w io.Writer, plans []Plan, format Format) error {
	if format != FormatCSV {
		return encode(w, plans, format)
	}
	records := make([][]string, len(plans))
	for i, p := range plans {
		records[i] = []string{
			strconv.Itoa(p.NetworkID),
			p.PlanID,
			p.NetworkName,
			p.PlanType,
			p.PlanName,
			strconv.Itoa(p.Amount),
			formatFloat(p.CostPrice),
			p.Validity,
		}
	}
	return writeCSV(w, planHeader, records)
}

func encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func optionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
