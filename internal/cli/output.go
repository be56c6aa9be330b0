package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

// Table выводит строки выровненными колонками.
type Table struct {
	headers []string
	rows    [][]string
	writer  io.Writer
}

func (o *options) table(headers ...string) *Table {
	return &Table{headers: headers, writer: o.out}
}

// AddRow добавляет строку.
func (t *Table) AddRow(cols ...string) {
	t.rows = append(t.rows, cols)
}

// Render печатает заголовок, разделитель и строки.
func (t *Table) Render() error {
	w := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(t.headers, "\t"))
	sep := make([]string, len(t.headers))
	for i, h := range t.headers {
		sep[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(sep, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}

func (o *options) revenueTable(rows []models.Revenue) *Table {
	t := o.table("PLAN", "VISITS", "EXTRA", "REVENUE", "COST", "PROFIT")
	for _, r := range rows {
		t.AddRow(
			r.Plan,
			strconv.Itoa(r.Visits),
			strconv.Itoa(r.ExtraVisits),
			money(r.Revenue),
			money(r.Cost),
			money(r.Profit),
		)
	}
	return t
}

// print выводит data в формате json или yaml.
// YAML строится из JSON-представления, чтобы безлимит печатался как "Unlimited".
func (o *options) print(data any) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if o.output == "json" {
		_, err = fmt.Fprintln(o.out, string(raw))
		return err
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(o.out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(generic)
}
