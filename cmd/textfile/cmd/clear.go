package cmd

import (
	"github.com/spf13/cobra"
)

func newClearCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <target>",
		Short: "Truncate a file to zero length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := o.open(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFile(f, &err)

			return f.Clear()
		},
	}
}
