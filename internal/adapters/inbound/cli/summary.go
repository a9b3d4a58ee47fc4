package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/sizing"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/tui"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput    bool
		sizingRequest bool
		configDir     string
	)

	cmd := &cobra.Command{
		Use:   "summary <export.json>",
		Short: "Show the sizing summary for a healthcheck export",
		Long:  "Derive source size, change rate, retention and GFS figures used to size a vault from a healthcheck export.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := absPaths(args)
			if err != nil {
				return err
			}

			svc, err := newAnalyzeService(opts.logger, false)
			if err != nil {
				return err
			}

			report, err := svc.AnalyzeFile(cmd.Context(), paths[0], configDir)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			switch {
			case sizingRequest:
				req := sizing.FromReport(report)
				if !req.Complete() {
					fmt.Fprintln(cmd.ErrOrStderr(), "Note: source size or change rate is unknown, the estimate will be incomplete.")
				}
				return renderJSON(cmd, req)
			case jsonOutput:
				return renderJSON(cmd, report.Summary)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(report.Summary))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the summary as JSON")
	cmd.Flags().BoolVar(&sizingRequest, "sizing-request", false, "Output the capacity-estimation request payload")
	cmd.Flags().StringVar(&configDir, "config", "", "Directory holding .vaultcheck.yaml (defaults to the export's directory)")

	return cmd
}
