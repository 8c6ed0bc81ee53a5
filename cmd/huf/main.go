// Command huf compresses and decompresses files with Huffman coding.
//
//     huf compress example.txt        # writes example.txt.huf
//     huf decompress example.txt.huf  # writes example_unc.txt
//     huf inspect example.txt.huf     # dumps the frequency and code tables
//
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chronos-tachyon/huffman"
)

type cliOptions struct {
	logLevel string
	logFile  string
	workers  int

	logger    *zap.Logger
	logCloser io.Closer
}

func (o *cliOptions) pipeline() *huffman.Pipeline {
	return huffman.New(huffman.Options{
		Logger:  o.logger,
		Workers: o.workers,
	})
}

func (o *cliOptions) close() {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
	if o.logCloser != nil {
		_ = o.logCloser.Close()
		o.logCloser = nil
	}
}

// newRootCmd returns the root command and the options its flags fill in.
// The caller must call close on the options once Execute returns, whether
// or not the command failed.
func newRootCmd() (*cobra.Command, *cliOptions) {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "huf",
		Short:         "Huffman file compressor",
		Long:          "Compress files to NAME.huf and decompress NAME.ext.huf to NAME_unc.ext.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFile)
			if err != nil {
				return err
			}
			opts.logger = logger
			opts.logCloser = closer
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this file, rotated by size")
	flags.IntVar(&opts.workers, "workers", 1, "goroutines used to count byte frequencies")

	rootCmd.AddCommand(
		newCompressCmd(opts),
		newDecompressCmd(opts),
		newInspectCmd(opts),
	)
	return rootCmd, opts
}

func main() {
	rootCmd, opts := newRootCmd()
	err := rootCmd.Execute()
	opts.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "huf:", err)
		os.Exit(1)
	}
}
