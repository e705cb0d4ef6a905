package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
)

func newProductsCmd(flags *globalFlags) *cobra.Command {
	var (
		jsonOutput bool
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List active products",
		Long:  "List the active products of the catalog, numbered the way the order command expects them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openShop(cmd, flags)
			if err != nil {
				return err
			}

			products := svc.ListProducts()
			if all {
				products = svc.AllProducts()
			}

			if jsonOutput {
				return renderJSON(cmd, products)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProducts(products))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output products as JSON")
	cmd.Flags().BoolVar(&all, "all", false, "Include inactive products")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
