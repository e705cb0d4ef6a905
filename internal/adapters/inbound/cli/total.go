package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
)

func newTotalCmd(flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show total amount in store",
		Long:  "Show the total quantity in stock across every product, active or not.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openShop(cmd, flags)
			if err != nil {
				return err
			}

			total := svc.TotalQuantity()
			if jsonOutput {
				return renderJSON(cmd, map[string]int{"total_quantity": total})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTotalQuantity(total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
