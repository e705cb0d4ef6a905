package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
	"github.com/stockroom/stockroom/internal/application"
	"github.com/stockroom/stockroom/internal/domain"
)

func newOrderCmd(flags *globalFlags) *cobra.Command {
	var (
		lines      []string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place one order against the catalog",
		Long: "Place one order. Each --line is <n>:<quantity> where <n> is the product number shown by `stockroom products`.\n" +
			"Lines that cannot be filled from stock are skipped; an unknown or inactive product cancels the whole order.",
		Example: "  stockroom order --line 1:2 --line 3:1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(lines) == 0 {
				return fmt.Errorf("specify at least one --line <n>:<quantity>")
			}

			svc, err := openShop(cmd, flags)
			if err != nil {
				return err
			}

			orderLines, err := resolveLines(svc, lines)
			if err != nil {
				return err
			}

			result, err := svc.PlaceOrder(orderLines)
			if err != nil {
				if !jsonOutput {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrderCancelled(err))
				}
				return fmt.Errorf("order cancelled: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrderResult(result))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&lines, "line", nil, "Order line as <n>:<quantity> (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the order result as JSON")

	return cmd
}

// resolveLines maps <n>:<quantity> pairs onto product IDs of the active
// listing.
func resolveLines(svc *application.ShopService, raw []string) ([]domain.OrderLine, error) {
	out := make([]domain.OrderLine, 0, len(raw))
	for _, line := range raw {
		number, quantity, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		product, err := svc.ProductAt(number)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", line, err)
		}
		out = append(out, domain.OrderLine{ProductID: product.ID, Quantity: quantity})
	}
	return out, nil
}

func parseLine(line string) (number, quantity int, err error) {
	left, right, ok := strings.Cut(line, ":")
	if !ok {
		return 0, 0, fmt.Errorf("line %q: expected <n>:<quantity>", line)
	}
	number, err = strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("line %q: invalid product number", line)
	}
	quantity, err = strconv.Atoi(strings.TrimSpace(right))
	if err != nil || quantity < 0 {
		return 0, 0, fmt.Errorf("line %q: invalid quantity", line)
	}
	return number, quantity, nil
}
