package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/freeeve/datc-orders/internal/config"
	"github.com/freeeve/datc-orders/internal/repository/postgres"
	"github.com/freeeve/datc-orders/internal/service"
)

var importCmd = &cobra.Command{
	Use:   "import FILE...",
	Short: "Convert notation files and store them as cases",
	Long: `Converts each file and stores it as a named case. The case name is the
file's base name without its extension, so 6.A.1.txt becomes "6.A.1".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.EnsureSchema(cmd.Context(), db); err != nil {
		return err
	}

	svc := service.NewConvertService(postgres.NewCaseRepo(db), nil, cfg.CacheTTL)
	imported, err := importFiles(cmd.Context(), svc, args)
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d files\n", imported, len(args))
	return err
}

// caseName derives a case name from a file path.
func caseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// importFiles stores each file as a case and stops at the first failure.
func importFiles(ctx context.Context, svc *service.ConvertService, paths []string) (int, error) {
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return i, fmt.Errorf("read %s: %w", path, err)
		}
		c, err := svc.SaveCase(ctx, caseName(path), string(data))
		if err != nil {
			return i, fmt.Errorf("%s: %w", path, err)
		}
		log.Info().Str("file", path).Str("caseId", c.ID).Int("orders", c.OrderCount).Msg("Imported case")
	}
	return len(paths), nil
}
