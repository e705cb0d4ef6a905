package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stockroom/stockroom/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 4).
			Align(lipgloss.Center)

	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	faintStyle  = lipgloss.NewStyle().Foreground(faint)
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	warnStyle   = lipgloss.NewStyle().Foreground(warning)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	numberStyle = lipgloss.NewStyle().Foreground(accent)
)

// Separator is the rule printed around every menu section.
var Separator = strings.Repeat("-", 10)

func separator() string {
	return faintStyle.Render(Separator) + "\n"
}

// RenderBanner renders the boxed store name shown when the menu starts.
func RenderBanner(storeName string) string {
	title := headerStyle.Render(storeName)
	subtitle := dimStyle.Render("stockroom")
	return boxStyle.Render(title+"\n"+subtitle) + "\n"
}

// RenderMenu renders the numbered list of menu options.
func RenderMenu(labels []string) string {
	var b strings.Builder
	b.WriteString(separator())
	b.WriteString(titleStyle.Render("Menu:") + "\n")
	b.WriteString(separator())
	for i, label := range labels {
		fmt.Fprintf(&b, "%s %s\n", numberStyle.Render(fmt.Sprintf("%d.", i+1)), label)
	}
	return b.String()
}

// RenderProducts renders products numbered from 1, the numbering users type
// back when ordering. Inactive products are marked.
func RenderProducts(products []domain.ProductView) string {
	var b strings.Builder
	b.WriteString(separator())
	if len(products) == 0 {
		b.WriteString(dimStyle.Render("No products available.") + "\n")
	}
	for i, p := range products {
		line := fmt.Sprintf("%s %s", numberStyle.Render(fmt.Sprintf("%d.", i+1)), p.String())
		if !p.Active {
			line += "  " + warnStyle.Render("(inactive)")
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(separator())
	return b.String()
}

// RenderTotalQuantity renders the store-wide stock count.
func RenderTotalQuantity(total int) string {
	var b strings.Builder
	b.WriteString(separator())
	fmt.Fprintf(&b, "Total quantity: %s\n", titleStyle.Render(fmt.Sprintf("%d", total)))
	b.WriteString(separator())
	return b.String()
}
