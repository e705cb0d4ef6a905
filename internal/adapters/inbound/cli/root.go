package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockroom/stockroom/internal/adapters/outbound/catalog"
	"github.com/stockroom/stockroom/internal/adapters/outbound/logging"
	"github.com/stockroom/stockroom/internal/application"
)

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are the persistent flags every command reads.
type globalFlags struct {
	catalogPath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "stockroom",
		Short:         "In-memory inventory and ordering simulator",
		Long:          "stockroom loads a product catalog into an in-memory store and lets you list stock and place orders from a menu, the command line, or an MCP client.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShop(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Catalog file (default "+catalog.FileName+", built-in catalog when missing)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", logging.DefaultLevel, "Log level (debug, info, warn, error)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newShopCmd(flags))
	cmd.AddCommand(newProductsCmd(flags))
	cmd.AddCommand(newTotalCmd(flags))
	cmd.AddCommand(newOrderCmd(flags))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd(flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// openShop builds a fresh store from the configured catalog. Logs go to the
// command's error stream so stdout carries only rendered output.
func openShop(cmd *cobra.Command, flags *globalFlags) (*application.ShopService, error) {
	logger, err := logging.New(flags.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	svc, err := application.NewShopServiceFromCatalog(catalog.New(), flags.catalogPath, logger)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return svc, nil
}
