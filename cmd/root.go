package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "godeque",
		Short: "godeque - a double-ended queue and an operation script runner",
		Long: `godeque - a double-ended queue and an operation script runner.

Scripts hold one operation per line:
  addbeg <value> | addend <value> | rembeg | remend
  peekbeg | peekend | count | isempty | clear
The literal value "nil" stores an absent element.
`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
	cmd.AddCommand(newRunCmd())
	return cmd
}
