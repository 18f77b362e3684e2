package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <target>",
		Short: "Print every line of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := o.open(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFile(f, &err)

			out := cmd.OutOrStdout()
			f.ForEachLine(func(line string) {
				fmt.Fprintln(out, line)
			})
			return f.Err()
		},
	}
}

func newSizeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "size <target>",
		Short: "Print the size of a file in bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := o.open(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFile(f, &err)

			n := f.Size()
			if err := f.Err(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newExistsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <target>",
		Short: "Report whether a target resolves to a regular file",
		Long: `Resolves the target, creating it when missing, and prints true when the
result is a regular file. Targets that cannot be resolved print false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.open(cmd, args[0])
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), false)
				return nil
			}
			exists := f.Exists()
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), exists)
			return nil
		},
	}
}
