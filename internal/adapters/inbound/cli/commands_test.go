package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stockroom dev")
}

func TestProductsCommand_DefaultTUI(t *testing.T) {
	out, err := execute(t, "products")
	require.NoError(t, err)
	assert.Contains(t, out, "1. MacBook Air M2, Price: 1450, Quantity: 100")
	assert.Contains(t, out, "3. Google Pixel 7")
}

func TestProductsCommand_JSON(t *testing.T) {
	out, err := execute(t, "products", "--json")
	require.NoError(t, err)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &products), "output should be valid JSON")
	require.Len(t, products, 3)
	assert.Contains(t, products[0], "id")
	assert.Equal(t, "MacBook Air M2", products[0]["name"])
}

func TestProductsCommand_AllIncludesInactive(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`
products:
  - name: Lamp
    price: 20
    quantity: 2
  - name: Retired
    price: 5
    quantity: 9
    active: false
`), 0644))

	out, err := execute(t, "products", "--catalog", catalogPath)
	require.NoError(t, err)
	assert.NotContains(t, out, "Retired")

	out, err = execute(t, "products", "--all", "--catalog", catalogPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Retired")
	assert.Contains(t, out, "(inactive)")
}

func TestTotalCommand(t *testing.T) {
	out, err := execute(t, "total")
	require.NoError(t, err)
	assert.Contains(t, out, "Total quantity: 850")

	out, err = execute(t, "total", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_quantity": 850}`, out)
}

func TestOrderCommand(t *testing.T) {
	out, err := execute(t, "order", "--line", "1:2", "--line", "3:1")
	require.NoError(t, err)
	assert.Contains(t, out, "Total cost: 3400")
}

func TestOrderCommand_JSONReportsSkippedLines(t *testing.T) {
	out, err := execute(t, "order", "--line", "1:101", "--line", "2:2", "--json")
	require.NoError(t, err)

	var result struct {
		TotalCost float64 `json:"total_cost"`
		Lines     []struct {
			Name  string `json:"name"`
			Error string `json:"error"`
		} `json:"lines"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 500.0, result.TotalCost, 0.0001)
	require.Len(t, result.Lines, 2)
	assert.Contains(t, result.Lines[0].Error, "not enough quantity")
	assert.Empty(t, result.Lines[1].Error)
}

func TestOrderCommand_CancelledOrderFails(t *testing.T) {
	out, err := execute(t, "order", "--line", "1:100", "--line", "1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order cancelled")
	assert.Contains(t, out, "Order cancelled")
}

func TestOrderCommand_BadLines(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no lines", []string{"order"}, "at least one --line"},
		{"missing colon", []string{"order", "--line", "12"}, "expected <n>:<quantity>"},
		{"bad number", []string{"order", "--line", "x:1"}, "invalid product number"},
		{"bad quantity", []string{"order", "--line", "1:lots"}, "invalid quantity"},
		{"negative quantity", []string{"order", "--line", "1:-1"}, "invalid quantity"},
		{"out of range", []string{"order", "--line", "9:1"}, "product does not exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestShopCommand_Transcript(t *testing.T) {
	out, err := executeWithInput(t, "2\n3\n1\n1\n\n2\n4\n", "shop")
	require.NoError(t, err)
	assert.Contains(t, out, "Total quantity: 850")
	assert.Contains(t, out, "Total cost: 1450")
	assert.Contains(t, out, "Total quantity: 849")
}

func TestRootCommand_RunsShop(t *testing.T) {
	out, err := executeWithInput(t, "4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Menu:")
}

func TestRootCommand_InvalidCatalog(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("products: [{name: ''}]"), 0644))

	_, err := execute(t, "total", "--catalog", catalogPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening store")
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "total", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing log level")
}
