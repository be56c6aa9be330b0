// Package cli реализует офлайн-калькулятор тарифов plansim.
//
// Команды работают со встроенным каталогом планов и не требуют
// ни базы данных, ни запущенного сервиса.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/health-subscriptions/internal/models"
	"github.com/magabrotheeeer/health-subscriptions/internal/pricing"
)

type options struct {
	output       string
	costPerVisit float64
	out          io.Writer
}

// NewRootCmd собирает дерево команд, печатающих в out.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &options{out: out}

	cmd := &cobra.Command{
		Use:   "plansim",
		Short: "Offline revenue calculator for healthcare subscription plans",
		Long: `plansim computes revenue, cost and profit of the built-in plan catalog
for a given number of visits, prints profitability curves and compares plans.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case "table", "json", "yaml":
			default:
				return fmt.Errorf("unknown output format %q: use table, json or yaml", opts.output)
			}
			if opts.costPerVisit < 0 {
				return fmt.Errorf("cost per visit must be non-negative, got %g", opts.costPerVisit)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "output format: table, json, yaml")
	cmd.PersistentFlags().Float64Var(&opts.costPerVisit, "cost", pricing.DefaultCostPerVisit, "clinic cost of one visit")

	cmd.AddCommand(newCatalogCmd(opts))
	cmd.AddCommand(newRevenueCmd(opts))
	cmd.AddCommand(newSimulateCmd(opts))
	cmd.AddCommand(newCompareCmd(opts))

	return cmd
}

// findPlan ищет план каталога по ID или точному имени.
func findPlan(ref string) (models.Plan, error) {
	catalog := pricing.Catalog()
	if id, err := strconv.Atoi(ref); err == nil {
		for _, p := range catalog {
			if p.ID == id {
				return p, nil
			}
		}
		return models.Plan{}, fmt.Errorf("plan %d not found", id)
	}
	if p, ok := pricing.FindByName(catalog, ref); ok {
		return p, nil
	}
	return models.Plan{}, fmt.Errorf("plan %q not found", ref)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
