package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	peaqMath "github.com/peaqnetwork/peaq-network-node-sub001/math"
	blockrewardtypes "github.com/peaqnetwork/peaq-network-node-sub001/x/blockreward/types"
	inflationtypes "github.com/peaqnetwork/peaq-network-node-sub001/x/inflation/types"
	stakingrewardstypes "github.com/peaqnetwork/peaq-network-node-sub001/x/stakingrewards/types"
)

const flagModule = "module"

// NewDefaultsCmd prints the default genesis of every issuance module.
func NewDefaultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default genesis state of the issuance modules as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := map[string]interface{}{
				inflationtypes.ModuleName:      inflationtypes.DefaultGenesisState(),
				blockrewardtypes.ModuleName:    blockrewardtypes.DefaultGenesisState(),
				stakingrewardstypes.ModuleName: stakingrewardstypes.DefaultGenesisState(),
			}

			module, err := cmd.Flags().GetString(flagModule)
			if err != nil {
				return err
			}
			var v interface{} = out
			if module != "" {
				state, ok := out[module]
				if !ok {
					return fmt.Errorf("unknown module %q, expected one of %s",
						module, strings.Join(peaqMath.GetSortedKeys(out), ", "))
				}
				v = state
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
	cmd.Flags().String(flagModule, "", "print only this module's genesis")
	return cmd
}
