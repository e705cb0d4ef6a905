package cli

import (
	"github.com/spf13/cobra"

	"github.com/stockroom/stockroom/internal/adapters/inbound/menu"
)

func newShopCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Run the interactive store menu",
		Long:  "List products, show the total stock, and place orders interactively. This is also what runs when stockroom is called without a command.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShop(cmd, flags)
		},
	}
}

func runShop(cmd *cobra.Command, flags *globalFlags) error {
	svc, err := openShop(cmd, flags)
	if err != nil {
		return err
	}
	return menu.New(svc, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}
