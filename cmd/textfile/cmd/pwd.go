package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-forge-libs/textfile"
)

func newPwdCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pwd",
		Short: "Print the working directory files are resolved against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), textfile.CurrentWorkingDirectory(o.fileOptions(cmd)...))
			return nil
		},
	}
}
