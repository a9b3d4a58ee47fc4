package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/config"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/export"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/history"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/tui"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/application"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		noHistory  bool
		configDir  string
	)

	cmd := &cobra.Command{
		Use:   "analyze <export.json> [export.json...]",
		Short: "Run the vault compatibility rules against healthcheck exports",
		Long:  "Normalize one or more healthcheck exports and evaluate every vault compatibility rule against each of them.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := absPaths(args)
			if err != nil {
				return err
			}

			svc, err := newAnalyzeService(opts.logger, !noHistory)
			if err != nil {
				return err
			}

			reports, err := svc.AnalyzeFiles(cmd.Context(), paths, configDir)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if jsonOutput {
				if len(reports) == 1 {
					return renderJSON(cmd, reports[0])
				}
				if err := renderJSON(cmd, reports); err != nil {
					return err
				}
			} else {
				for _, r := range reports {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(r))
				}
			}

			if ciMode {
				failed := 0
				for _, r := range reports {
					if r.Verdict == domain.StatusFail {
						failed++
					}
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d exports are not vault-ready", failed, len(reports))
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output reports as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any rule fails")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the run in .vaultcheck/history.json")
	cmd.Flags().StringVar(&configDir, "config", "", "Directory holding .vaultcheck.yaml (defaults to each export's directory)")

	return cmd
}

func newAnalyzeService(logger *zap.Logger, withHistory bool) (*application.AnalyzeService, error) {
	reader, err := export.New()
	if err != nil {
		return nil, fmt.Errorf("loading export schema: %w", err)
	}
	var hist domain.RunHistory
	if withHistory {
		hist = history.New()
	}
	return application.NewAnalyzeService(reader, config.New(), hist, logger), nil
}

func absPaths(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, a := range args {
		p, err := filepath.Abs(a)
		if err != nil {
			return nil, fmt.Errorf("resolving path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
