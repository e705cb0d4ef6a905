package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/stockroom/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "stockroom-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "stockroom")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/stockroom")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/catalogs", name))
	return abs
}

func run(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = t.TempDir()
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Listing Tests ---

func TestE2E_ProductsBuiltInCatalog(t *testing.T) {
	out, code := run(t, "", "products")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "MacBook Air M2, Price: 1450, Quantity: 100")
	assert.Contains(t, out, "Google Pixel 7")
}

func TestE2E_ProductsFromFixture(t *testing.T) {
	out, code := run(t, "", "products", "--json", "--catalog", fixturePath("corner-shop.yaml"))
	require.Equal(t, 0, code, out)

	var products []domain.ProductView
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 2, "inactive Kettle is hidden")
	assert.Equal(t, "Coffee", products[0].Name)
}

func TestE2E_Total(t *testing.T) {
	out, code := run(t, "", "total", "--json", "--catalog", fixturePath("corner-shop.yaml"))
	require.Equal(t, 0, code, out)
	assert.JSONEq(t, `{"total_quantity": 50}`, out)
}

// --- Order Tests ---

func TestE2E_OrderJSON(t *testing.T) {
	out, code := run(t, "", "order", "--line", "1:2", "--line", "2:1", "--json")
	require.Equal(t, 0, code, out)

	var result struct {
		TotalCost float64 `json:"total_cost"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 3150.0, result.TotalCost, 0.0001)
}

func TestE2E_OrderCancelledExitsNonZero(t *testing.T) {
	out, code := run(t, "", "order", "--line", "9:1")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "product does not exist in the store")
}

func TestE2E_InvalidCatalog(t *testing.T) {
	out, code := run(t, "", "products", "--catalog", fixturePath("invalid.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "invalid invalid.yaml")
}

// --- Menu Tests ---

func TestE2E_Menu(t *testing.T) {
	out, code := run(t, "2\n3\n1\n1\n\n2\n4\n")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Total quantity: 850")
	assert.Contains(t, out, "Total cost: 1450")
	assert.Contains(t, out, "Total quantity: 849")
}

// --- Init / Version ---

func TestE2E_InitThenLoad(t *testing.T) {
	dir := t.TempDir()
	out, code := run(t, "", "init", dir)
	require.Equal(t, 0, code, out)

	out, code = run(t, "", "total", "--catalog", filepath.Join(dir, ".stockroom.yaml"))
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Total quantity: 850")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "stockroom")
}
