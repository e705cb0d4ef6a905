package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stockroom/stockroom/internal/adapters/outbound/catalog"
	"github.com/stockroom/stockroom/internal/domain"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a " + catalog.FileName + " catalog file",
		Long:  "Create a " + catalog.FileName + " holding the built-in catalog, ready to edit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			dest := filepath.Join(absDir, catalog.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", catalog.FileName)
				}
			}

			content, err := catalog.Marshal(domain.DefaultCatalog())
			if err != nil {
				return err
			}
			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing catalog: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", catalog.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+catalog.FileName)

	return cmd
}
