package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgscope/pkgscope/internal/adapters/outbound/tui"
	"github.com/pkgscope/pkgscope/internal/domain/dataset"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print statistics for the bundled sample records",
		Long:  "Summarize the in-memory customer and employee records that the completion examples are built around.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			customers := dataset.Customers()
			employees := dataset.Employees()

			fmt.Fprintf(out, "Customers: %d records\n", len(customers))
			if len(customers) > 0 {
				fmt.Fprintf(out, "First customer: %s\n", customers[0].FullName())
			}
			fmt.Fprintf(out, "Average credit limit: $%.2f\n", dataset.Mean(dataset.CreditLimits(customers)))
			fmt.Fprintf(out, "Employees: %d records\n\n", len(employees))

			fmt.Fprintln(out, tui.RenderDescribe([]tui.Column{
				{Name: "credit_limit", Summary: dataset.Describe(dataset.CreditLimits(customers))},
				{Name: "orders", Summary: dataset.Describe(dataset.OrderCounts(customers))},
				{Name: "salary", Summary: dataset.Describe(dataset.Salaries(employees))},
			}))
			return nil
		},
	}
}
