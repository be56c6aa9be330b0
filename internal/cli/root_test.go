package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCmd(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCatalog_Table(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Lite Care Pack")
	assert.Contains(t, lines[5], "Unlimited Premium Pack")
	assert.Contains(t, lines[5], "Unlimited")
}

func TestCatalog_JSONKeepsUnlimitedMarker(t *testing.T) {
	out, err := run(t, "catalog", "-o", "json")
	require.NoError(t, err)

	var plans []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 4)
	assert.Equal(t, float64(2), plans[0]["included_visits"])
	assert.Equal(t, "Unlimited", plans[3]["included_visits"])
}

func TestRevenue(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		revenue float64
		profit  float64
	}{
		{"within included", []string{"--plan", "1", "--visits", "2"}, 25, 5},
		{"extra visits", []string{"--plan", "Lite Care Pack", "--visits", "3"}, 40, 10},
		{"unlimited", []string{"--plan", "4", "--visits", "20"}, 120, -80},
		{"custom cost", []string{"--plan", "2", "--visits", "4", "--cost", "5"}, 45, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"revenue", "-o", "json"}, tt.args...)...)
			require.NoError(t, err)

			var res struct {
				Revenue float64 `json:"revenue"`
				Profit  float64 `json:"profit"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.InDelta(t, tt.revenue, res.Revenue, 1e-9)
			assert.InDelta(t, tt.profit, res.Profit, 1e-9)
		})
	}
}

func TestRevenue_Errors(t *testing.T) {
	_, err := run(t, "revenue", "--plan", "9", "--visits", "1")
	assert.EqualError(t, err, "plan 9 not found")

	_, err = run(t, "revenue", "--plan", "Gold", "--visits", "1")
	assert.EqualError(t, err, `plan "Gold" not found`)

	_, err = run(t, "revenue", "--plan", "1", "--visits", "-1")
	assert.Error(t, err)

	_, err = run(t, "revenue", "--plan", "1")
	assert.Error(t, err)

	_, err = run(t, "catalog", "-o", "xml")
	assert.Error(t, err)

	_, err = run(t, "compare", "--visits", "1", "--cost", "-2")
	assert.Error(t, err)
}

func TestSimulate_TablePrintsBreakEven(t *testing.T) {
	out, err := run(t, "simulate", "--plan", "4", "--max-visits", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "break-even visits: 12")

	out, err = run(t, "simulate", "--plan", "2", "--max-visits", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "break-even visits: never")
}

func TestCompare_YAML(t *testing.T) {
	out, err := run(t, "compare", "--visits", "5", "-o", "yaml")
	require.NoError(t, err)

	var res []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	require.Len(t, res, 4)
	assert.Equal(t, "Lite Care Pack", res[0]["plan"])
	assert.Equal(t, 5, res[0]["visits"])
}
