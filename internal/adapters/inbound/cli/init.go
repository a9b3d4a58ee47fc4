package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/config"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		minimumVersion string
		retentionDays  int
		force          bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .vaultcheck.yaml thresholds file",
		Long:  "Create a .vaultcheck.yaml holding the default vault thresholds, ready to be tuned.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			th := domain.DefaultThresholds()
			th.MinimumVersion = minimumVersion
			th.MinimumRetentionDays = retentionDays
			if err := th.Validate(); err != nil {
				return fmt.Errorf("invalid thresholds: %w", err)
			}

			if err := os.WriteFile(dest, []byte(generateConfig(th)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&minimumVersion, "min-version", domain.DefaultMinimumVersion, "Minimum backup server version")
	cmd.Flags().IntVar(&retentionDays, "retention-days", domain.DefaultMinimumRetentionDays, "Minimum retention and immutability in days")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .vaultcheck.yaml")

	return cmd
}

func generateConfig(th domain.Thresholds) string {
	var b strings.Builder
	b.WriteString("# vaultcheck thresholds\n")
	b.WriteString("# Values left out fall back to the built-in defaults.\n\n")
	fmt.Fprintf(&b, "minimum_version: %q\n", th.MinimumVersion)
	fmt.Fprintf(&b, "minimum_retention_days: %d\n\n", th.MinimumRetentionDays)

	b.WriteString("# Job types the vault cannot protect. An explicit list replaces the defaults.\n")
	b.WriteString("disallowed_job_types:\n")
	for _, jt := range th.DisallowedJobTypes {
		fmt.Fprintf(&b, "  - %s\n", jt)
	}
	return b.String()
}
