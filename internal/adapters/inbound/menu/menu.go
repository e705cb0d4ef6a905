package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
	"github.com/stockroom/stockroom/internal/application"
	"github.com/stockroom/stockroom/internal/domain"
)

// Command tags one menu action.
type Command int

const (
	CommandListProducts Command = iota
	CommandTotalQuantity
	CommandOrder
	CommandQuit
)

type option struct {
	command Command
	label   string
}

var options = []option{
	{CommandListProducts, "List all products in store"},
	{CommandTotalQuantity, "Show total amount in store"},
	{CommandOrder, "Order products"},
	{CommandQuit, "Quit"},
}

// Labels returns the menu labels in display order.
func Labels() []string {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.label
	}
	return labels
}

var errQuit = errors.New("quit")

// Menu is the interactive read-eval-print loop over a ShopService.
type Menu struct {
	svc *application.ShopService
	in  *bufio.Scanner
	out io.Writer
}

func New(svc *application.ShopService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run shows the menu until the user quits, input ends, or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprint(m.out, tui.RenderBanner(m.svc.Name()))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(m.out, tui.RenderMenu(Labels()))
		input, ok := m.prompt("What do you want to do? ")
		if !ok {
			return m.in.Err()
		}

		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintln(m.out, "Invalid choice")
			continue
		}

		if err := m.dispatch(options[choice-1].command); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) dispatch(cmd Command) error {
	switch cmd {
	case CommandListProducts:
		m.listProducts()
	case CommandTotalQuantity:
		fmt.Fprint(m.out, tui.RenderTotalQuantity(m.svc.TotalQuantity()))
	case CommandOrder:
		m.order()
	case CommandQuit:
		return errQuit
	default:
		return fmt.Errorf("unknown command %d", cmd)
	}
	return nil
}

func (m *Menu) listProducts() []domain.ProductView {
	products := m.svc.ListProducts()
	fmt.Fprint(m.out, tui.RenderProducts(products))
	return products
}

// order collects lines against the listing shown at the start, so product
// numbers stay stable while the user types. Input ending before the empty
// line discards the order.
func (m *Menu) order() {
	fmt.Fprintln(m.out, "When you want to finish order, enter empty text.")
	products := m.listProducts()

	var lines []domain.OrderLine
	for {
		input, ok := m.prompt("Which product # do you want? ")
		if !ok {
			return
		}
		if input == "" {
			break
		}
		number, err := strconv.Atoi(input)
		if err != nil || number < 1 || number > len(products) {
			fmt.Fprintln(m.out, "Invalid product number")
			continue
		}
		product := products[number-1]

		input, ok = m.prompt("What amount do you want? ")
		if !ok {
			return
		}
		quantity, err := strconv.Atoi(input)
		if err != nil || quantity < 0 {
			fmt.Fprintln(m.out, "Invalid quantity")
			continue
		}
		lines = append(lines, domain.OrderLine{ProductID: product.ID, Quantity: quantity})
	}

	result, err := m.svc.PlaceOrder(lines)
	if err != nil {
		fmt.Fprint(m.out, tui.RenderOrderCancelled(err))
		return
	}
	fmt.Fprint(m.out, tui.RenderOrderResult(result))
}

// prompt writes label and reads one trimmed line. ok is false at end of input.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
