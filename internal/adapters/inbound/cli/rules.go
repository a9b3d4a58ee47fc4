package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/tui"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the vault compatibility rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return renderJSON(cmd, rules.Catalog())
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(rules.Catalog()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the rule catalog as JSON")

	return cmd
}
