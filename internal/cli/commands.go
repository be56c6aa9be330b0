package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/health-subscriptions/internal/models"
	"github.com/magabrotheeeer/health-subscriptions/internal/pricing"
)

func newCatalogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List plans ordered by price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans := pricing.Catalog()
			pricing.SortCatalog(plans)
			if opts.output != "table" {
				return opts.print(plans)
			}

			t := opts.table("ID", "NAME", "PRICE", "INCLUDED", "EXTRA", "SERVICES")
			for _, p := range plans {
				t.AddRow(
					strconv.Itoa(p.ID),
					p.Name,
					money(p.Price),
					p.IncludedVisits.String(),
					money(p.ExtraVisitPrice),
					strings.Join(p.Services, ", "),
				)
			}
			return t.Render()
		},
	}
}

func newRevenueCmd(opts *options) *cobra.Command {
	var (
		plan   string
		visits int
	)

	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Compute revenue, cost and profit of a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := findPlan(plan)
			if err != nil {
				return err
			}
			res, err := pricing.Compute(p, visits, opts.costPerVisit)
			if err != nil {
				return err
			}
			if opts.output != "table" {
				return opts.print(res)
			}
			return opts.revenueTable([]models.Revenue{res}).Render()
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "plan ID or exact name")
	cmd.Flags().IntVar(&visits, "visits", 0, "number of visits")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("visits")

	return cmd
}

func newSimulateCmd(opts *options) *cobra.Command {
	var (
		plan      string
		maxVisits int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Print the profitability curve of a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := findPlan(plan)
			if err != nil {
				return err
			}
			sim, err := pricing.Simulate(p, maxVisits, opts.costPerVisit)
			if err != nil {
				return err
			}
			if opts.output != "table" {
				return opts.print(sim)
			}

			if err := opts.revenueTable(sim.Points).Render(); err != nil {
				return err
			}
			breakEven := "never"
			if sim.BreakEven != nil {
				breakEven = strconv.Itoa(*sim.BreakEven)
			}
			_, err = fmt.Fprintf(opts.out, "\nbreak-even visits: %s\n", breakEven)
			return err
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "plan ID or exact name")
	cmd.Flags().IntVar(&maxVisits, "max-visits", 20, "last visit count of the curve")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func newCompareCmd(opts *options) *cobra.Command {
	var visits int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare all plans at the same number of visits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans := pricing.Catalog()
			pricing.SortCatalog(plans)
			res, err := pricing.Compare(plans, visits, opts.costPerVisit)
			if err != nil {
				return err
			}
			if opts.output != "table" {
				return opts.print(res)
			}
			return opts.revenueTable(res).Render()
		},
	}

	cmd.Flags().IntVar(&visits, "visits", 0, "number of visits")
	_ = cmd.MarkFlagRequired("visits")

	return cmd
}
