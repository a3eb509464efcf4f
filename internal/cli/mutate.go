// Add and remove commands mutate the persisted inventory.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <item> <qty>",
		Short: "Add a quantity of an item",
		Long: `Add increments the quantity of an item, creating it when absent,
and saves the inventory.

Example:
  stockroom add apple 10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd, args[0], args[1], false)
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item> <qty>",
		Short: "Remove a quantity of an item",
		Long: `Remove subtracts a quantity from an item and saves the inventory.
An item whose quantity drops to zero or below is deleted.

Example:
  stockroom remove apple 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd, args[0], args[1], true)
		},
	}
}

// runMutation loads the stock, applies one add or remove, saves, and prints
// the resulting quantity.
func runMutation(cmd *cobra.Command, item, qty string, remove bool) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	stock := s.ledger.Load()

	var total int
	if remove {
		total, err = s.ledger.RemoveText(stock, item, qty)
	} else {
		total, err = s.ledger.AddText(stock, item, qty)
	}
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return userError(fmt.Errorf("item %q not in stock", item))
		}
		return userError(err)
	}

	if err := s.ledger.Save(stock); err != nil {
		return sysError(fmt.Errorf("save inventory: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", item, total)
	return nil
}
