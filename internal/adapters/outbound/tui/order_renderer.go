package tui

import (
	"fmt"
	"strings"

	"github.com/stockroom/stockroom/internal/domain"
)

// RenderOrderResult renders each order line followed by the total cost.
// Skipped lines show the product as it stood and why it was not bought.
func RenderOrderResult(result *domain.OrderResult) string {
	var b strings.Builder
	b.WriteString(separator())

	for _, line := range result.Lines {
		if line.OK() {
			fmt.Fprintf(&b, "%s %s x%d  %s\n",
				passStyle.Render("●"),
				line.Name,
				line.Requested,
				dimStyle.Render(domain.FormatAmount(line.Cost)),
			)
			continue
		}
		fmt.Fprintf(&b, "%s Error buying %s: %s\n",
			failStyle.Render("●"),
			line.Product.String(),
			failStyle.Render(line.Err.Error()),
		)
	}

	fmt.Fprintf(&b, "Total cost: %s\n", titleStyle.Render(domain.FormatAmount(result.TotalCost)))
	b.WriteString(separator())
	return b.String()
}

// RenderOrderCancelled renders a whole-order failure.
func RenderOrderCancelled(err error) string {
	var b strings.Builder
	b.WriteString(separator())
	fmt.Fprintf(&b, "Error ordering: %s\n", failStyle.Render(err.Error()))
	b.WriteString(warnStyle.Render("Order cancelled") + "\n")
	b.WriteString(separator())
	return b.String()
}
