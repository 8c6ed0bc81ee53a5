package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chronos-tachyon/huffman"
)

func newCompressCmd(opts *cliOptions) *cobra.Command {
	var printBits bool

	cmd := &cobra.Command{
		Use:   "compress FILE...",
		Short: "Compress each FILE into FILE" + huffman.Extension,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := opts.pipeline()
			for _, path := range args {
				bits, err := p.CompressFile(path)
				if err != nil {
					return err
				}
				opts.logger.Debug("payload", zap.String("file", path), zap.Int("bits", len(bits)))
				if printBits {
					fmt.Fprintln(cmd.OutOrStdout(), bits)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printBits, "print-bits", false, "print the payload of each file as a string of 0s and 1s")
	return cmd
}
