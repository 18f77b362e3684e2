// Package cmd implements the textfile command line.
package cmd

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-forge-libs/textfile"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose   bool
	chunkSize int
}

// NewRootCmd builds the textfile command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "textfile",
		Short: "Line-oriented access to text files",
		Long: `textfile creates, reads, appends to and inspects text files.

Every command takes a target, either a path or a file URL:
  textfile append notes.txt "first line"
  textfile cat /var/log/app/events.txt
  textfile size file:///var/log/app/events.txt

Targets are created when they do not exist yet.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Log resolution and I/O details to stderr")
	rootCmd.PersistentFlags().IntVar(&o.chunkSize, "chunk-size", 0, "Read chunk size in bytes (default 256)")

	rootCmd.AddCommand(
		newAppendCmd(o),
		newCatCmd(o),
		newSizeCmd(o),
		newClearCmd(o),
		newExistsCmd(o),
		newPwdCmd(o),
	)
	return rootCmd
}

// Execute runs the textfile command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// fileOptions maps the persistent flags onto textfile options.
func (o *rootOptions) fileOptions(cmd *cobra.Command) []textfile.Option {
	var logger *slog.Logger
	if o.verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return []textfile.Option{
		textfile.WithLogger(logger),
		textfile.WithChunkSize(o.chunkSize),
	}
}

// open resolves target, a path or a file URL. The caller must close the result.
func (o *rootOptions) open(cmd *cobra.Command, target string) (*textfile.LineFile, error) {
	opts := o.fileOptions(cmd)

	var f *textfile.LineFile
	if strings.HasPrefix(target, "file:") {
		f = textfile.CreateFileFromURL(target, opts...)
	} else {
		dir, name := filepath.Split(target)
		f = textfile.CreateFile(dir, name, opts...)
	}

	if f.State() == textfile.Failed {
		return nil, f.Err()
	}
	return f, nil
}

// closeFile closes f, reporting the close error unless err is already set.
func closeFile(f *textfile.LineFile, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
