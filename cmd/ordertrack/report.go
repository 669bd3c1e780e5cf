package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/polkiloo/ordertrack/internal/app"
	"github.com/polkiloo/ordertrack/internal/config"
	"github.com/polkiloo/ordertrack/internal/di"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/report"
)

func newReportCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Load the CSV files into a fresh store and print all reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}
			return runReport(cmd.Context(), cmd.OutOrStdout(), limit, fx.Decorate(freshStore))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", report.DefaultLimit, "Entries in ranked reports")
	return cmd
}

// freshStore forces the store to be recreated so reports reflect the files only.
func freshStore(c *config.Config) *config.Config {
	fresh := *c
	fresh.ResetOnStart = true
	return &fresh
}

func runReport(ctx context.Context, out io.Writer, limit int, opts ...fx.Option) error {
	var (
		tracker *app.OrderTracker
		cfg     *config.Config
	)
	options := []fx.Option{
		fx.NopLogger,
		fx.Provide(func() context.Context { return ctx }),
		di.CoreModule(opts...),
		fx.Populate(&tracker, &cfg),
	}
	fxApp := fx.New(options...)
	if err := fxApp.Err(); err != nil {
		return err
	}
	if err := fxApp.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = fxApp.Stop(context.Background()) }()

	if err := tracker.LoadFiles(ctx, cfg.ClientsCSV, cfg.OrdersCSV); err != nil {
		return err
	}
	summary, err := tracker.ReportSummary(ctx, limit)
	if err != nil {
		return err
	}
	return printReport(out, summary)
}

func printReport(w io.Writer, s model.ReportSummary) error {
	var b strings.Builder

	b.WriteString("Top clients:\n")
	writeRanked(&b, s.TopClients)

	b.WriteString("\nTop products:\n")
	writeRanked(&b, s.TopProducts)

	b.WriteString("\nOrders over time:\n")
	if len(s.OrdersOverTime) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, p := range s.OrdersOverTime {
		fmt.Fprintf(&b, "  %s  %d\n", p.Date.Format("2006-01-02"), p.Count)
	}

	fmt.Fprintf(&b, "\nClient graph: %d clients, %d links\n", len(s.ClientGraph.Nodes), len(s.ClientGraph.Edges))
	for _, e := range s.ClientGraph.Edges {
		fmt.Fprintf(&b, "  %s - %s: %s\n", e.A, e.B, strings.Join(e.Products, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRanked(b *strings.Builder, items []model.NameCount) {
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for i, it := range items {
		fmt.Fprintf(b, "  %d. %s (%d)\n", i+1, it.Name, it.Count)
	}
}
