package main

import (
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffman"
)

func newDecompressCmd(opts *cliOptions) *cobra.Command {
	var printOut bool

	cmd := &cobra.Command{
		Use:   "decompress FILE" + huffman.Extension + "...",
		Short: "Decompress each NAME.ext" + huffman.Extension + " into NAME_unc.ext",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := opts.pipeline()
			for _, path := range args {
				out, err := p.DecompressFile(path)
				if err != nil {
					return err
				}
				if printOut {
					if _, err := cmd.OutOrStdout().Write(out); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printOut, "print", false, "also write the decompressed bytes to stdout")
	return cmd
}
