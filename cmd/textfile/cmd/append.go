package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newAppendCmd(o *rootOptions) *cobra.Command {
	var noNewline bool

	appendCmd := &cobra.Command{
		Use:   "append <target> <text>...",
		Short: "Append text to a file",
		Long: `Appends the arguments, joined by spaces, to the end of the target.
A newline is added unless --no-newline is given.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := o.open(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFile(f, &err)

			text := strings.Join(args[1:], " ")
			if !noNewline {
				text += "\n"
			}
			return f.AppendText(text)
		},
	}

	appendCmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Do not terminate the text with a newline")
	return appendCmd
}
