package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chronos-tachyon/huffman"
)

func newInspectCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE" + huffman.Extension,
		Short: "Print the frequency table and code table stored in a compressed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ft, err := huffman.ReadHeader(bufio.NewReader(f))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			root, err := huffman.BuildTree(ft)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			table := huffman.BuildCodeTable(root)
			opts.logger.Debug("inspected header",
				zap.String("file", args[0]),
				zap.Int("symbols", ft.Len()),
				zap.Int("max_bits", table.MaxSize()))

			w := cmd.OutOrStdout()
			if _, err := ft.Dump(w); err != nil {
				return err
			}
			if _, err := table.Dump(w); err != nil {
				return err
			}
			if bits, ok := table.EncodedSize(ft); ok {
				fmt.Fprintf(w, "payload: %d bits (%d bytes) for %d input bytes\n", bits, (bits+7)/8, ft.Total()-1)
			}
			return nil
		},
	}
}
