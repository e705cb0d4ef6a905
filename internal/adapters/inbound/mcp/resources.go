package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/stockroom/stockroom/internal/application"
)

const (
	productsURI      = "stockroom://products"
	productURIPrefix = productsURI + "/"
)

// registerResources registers all stockroom MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.ShopService) {
	// stockroom://products - active listing
	s.AddResource(
		mcplib.NewResource(
			productsURI,
			"Products",
			mcplib.WithResourceDescription("Active products in store order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleProductsResource(svc),
	)

	// stockroom://products/{id} - one product, active or not
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			productURIPrefix+"{id}",
			"Product",
			mcplib.WithTemplateDescription("A single product by ID"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleProductResource(svc),
	)
}

func handleProductsResource(svc *application.ShopService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(svc.ListProducts(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling products: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      productsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleProductResource(svc *application.ShopService) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// The ID is taken from the URI itself; template arguments are not
		// needed for a single trailing segment.
		raw := strings.TrimPrefix(request.Params.URI, productURIPrefix)
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q: %w", raw, err)
		}

		product, err := svc.Product(id)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(product, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling product: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
