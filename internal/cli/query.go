// Get, low, and report commands read the persisted inventory.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/ledger"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <item>",
		Short: "Print the quantity of an item",
		Long: `Get prints the on-hand quantity of an item, or 0 if it is not in stock.

Example:
  stockroom get apple`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			stock := s.ledger.Load()
			fmt.Fprintln(cmd.OutOrStdout(), s.ledger.Quantity(stock, args[0]))
			return nil
		},
	}
}

func newLowCmd() *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "low",
		Short: "List items below the low stock threshold",
		Long: `Low prints, one per line and in insertion order, every item whose
quantity is strictly below the threshold. The threshold defaults to
low_stock_threshold from config.yaml.

Example:
  stockroom low
  stockroom low --threshold 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if cmd.Flags().Changed("threshold") && threshold < 0 {
				return userError(types.ErrInvalidThreshold)
			}

			stock := s.ledger.Load()
			low := s.ledger.LowItems(stock)
			if cmd.Flags().Changed("threshold") {
				low = s.ledger.LowItemsBelow(stock, threshold)
			}
			for _, name := range low {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", types.DefaultLowStockThreshold, "report items with quantity below this value")
	return cmd
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print every item and its quantity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			stock := s.ledger.Load()
			if err := ledger.WriteReport(cmd.OutOrStdout(), stock); err != nil {
				return sysError(fmt.Errorf("write report: %w", err))
			}
			return nil
		},
	}
}
