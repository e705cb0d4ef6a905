package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/stockroom/stockroom/internal/application"
	"github.com/stockroom/stockroom/internal/domain"
)

// registerTools registers all stockroom MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.ShopService) {
	s.AddTool(
		mcplib.NewTool("stockroom_list_products",
			mcplib.WithDescription("Lists the store's products as JSON. Only active products unless include_inactive is set."),
			mcplib.WithBoolean("include_inactive", mcplib.Description("Include inactive products")),
		),
		handleListProducts(svc),
	)

	s.AddTool(
		mcplib.NewTool("stockroom_total_quantity",
			mcplib.WithDescription("Returns the total quantity in stock across every product, active or not"),
		),
		handleTotalQuantity(svc),
	)

	s.AddTool(
		mcplib.NewTool("stockroom_place_order",
			mcplib.WithDescription("Places one order. Lines that cannot be filled from stock are skipped and reported; an unknown or inactive product cancels the whole order."),
			mcplib.WithString("lines",
				mcplib.Required(),
				mcplib.Description("Comma-separated <product_id>:<quantity> pairs, e.g. 1b4e...:2,9c0a...:1"),
			),
		),
		handlePlaceOrder(svc),
	)

	s.AddTool(
		mcplib.NewTool("stockroom_add_product",
			mcplib.WithDescription("Adds a new product to the store and returns it"),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Product name")),
			mcplib.WithNumber("price", mcplib.Required(), mcplib.Description("Unit price, non-negative")),
			mcplib.WithNumber("quantity", mcplib.Required(), mcplib.Description("Initial stock, a non-negative whole number")),
		),
		handleAddProduct(svc),
	)

	s.AddTool(
		mcplib.NewTool("stockroom_remove_product",
			mcplib.WithDescription("Removes a product from the store"),
			mcplib.WithString("product_id", mcplib.Required(), mcplib.Description("Product ID")),
		),
		handleRemoveProduct(svc),
	)

	s.AddTool(
		mcplib.NewTool("stockroom_set_quantity",
			mcplib.WithDescription("Sets a product's stock. Zero deactivates the product; a positive value does not reactivate it."),
			mcplib.WithString("product_id", mcplib.Required(), mcplib.Description("Product ID")),
			mcplib.WithNumber("quantity", mcplib.Required(), mcplib.Description("New stock, a non-negative whole number")),
		),
		handleSetQuantity(svc),
	)

	s.AddTool(
		mcplib.NewTool("stockroom_activate_product",
			mcplib.WithDescription("Marks a product active so it is listed and can be ordered"),
			mcplib.WithString("product_id", mcplib.Required(), mcplib.Description("Product ID")),
		),
		handleToggle(svc.Activate),
	)

	s.AddTool(
		mcplib.NewTool("stockroom_deactivate_product",
			mcplib.WithDescription("Marks a product inactive; it stays in stock totals but cannot be listed or ordered"),
			mcplib.WithString("product_id", mcplib.Required(), mcplib.Description("Product ID")),
		),
		handleToggle(svc.Deactivate),
	)
}

func handleListProducts(svc *application.ShopService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		includeInactive, _ := request.GetArguments()["include_inactive"].(bool)
		if includeInactive {
			return jsonResult(svc.AllProducts())
		}
		return jsonResult(svc.ListProducts())
	}
}

func handleTotalQuantity(svc *application.ShopService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(map[string]int{"total_quantity": svc.TotalQuantity()})
	}
}

func handlePlaceOrder(svc *application.ShopService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("lines")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		lines, err := parseOrderLines(raw)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result, err := svc.PlaceOrder(lines)
		if err != nil {
			return errorResult(fmt.Sprintf("order cancelled: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleAddProduct(svc *application.ShopService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		price, err := request.RequireFloat("price")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		quantity, err := requireWhole(request, "quantity")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		product, err := svc.AddProduct(name, price, quantity)
		if err != nil {
			return errorResult(fmt.Sprintf("add product failed: %v", err)), nil
		}
		return jsonResult(product)
	}
}

func handleRemoveProduct(svc *application.ShopService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := requireProductID(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if err := svc.RemoveProduct(id); err != nil {
			return errorResult(fmt.Sprintf("remove product failed: %v", err)), nil
		}
		return jsonResult(map[string]string{"removed": id.String()})
	}
}

func handleSetQuantity(svc *application.ShopService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := requireProductID(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		quantity, err := requireWhole(request, "quantity")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		product, err := svc.SetQuantity(id, quantity)
		if err != nil {
			return errorResult(fmt.Sprintf("set quantity failed: %v", err)), nil
		}
		return jsonResult(product)
	}
}

func handleToggle(action func(uuid.UUID) (domain.ProductView, error)) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := requireProductID(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		product, err := action(id)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(product)
	}
}

func requireProductID(request mcplib.CallToolRequest) (uuid.UUID, error) {
	raw, err := request.RequireString("product_id")
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid product_id %q: %w", raw, err)
	}
	return id, nil
}

// requireWhole reads a numeric argument that must hold a whole number in
// [0, domain.MaxQuantity]. JSON numbers arrive as float64, so 2.5 is
// rejected here rather than truncated.
func requireWhole(request mcplib.CallToolRequest, key string) (int, error) {
	v, err := request.RequireFloat(key)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, &domain.ValidationError{Reason: fmt.Sprintf("%s must be a whole number, got %v", key, v)}
	}
	if v < 0 || v > domain.MaxQuantity {
		return 0, &domain.ValidationError{Reason: fmt.Sprintf("%s %v", key, v), Err: domain.ErrInvalidQuantity}
	}
	return int(v), nil
}

// parseOrderLines parses "<id>:<qty>,<id>:<qty>".
func parseOrderLines(raw string) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine
	for _, part := range splitAndTrim(raw) {
		idStr, qtyStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("line %q: expected <product_id>:<quantity>", part)
		}
		id, err := uuid.Parse(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("line %q: invalid product id", part)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("line %q: invalid quantity", part)
		}
		lines = append(lines, domain.OrderLine{ProductID: id, Quantity: qty})
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no order lines given")
	}
	return lines, nil
}

func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
