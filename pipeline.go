package huffman

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/icza/bitio"
	"go.uber.org/zap"
)

// Options configures a Pipeline.
type Options struct {
	// Logger receives progress and summary messages.  Nil means no logging.
	Logger *zap.Logger

	// Workers is the number of goroutines used to count frequencies during
	// compression.  Values above 1 make Compress read its whole source
	// into memory first.
	Workers int
}

// DefaultOptions returns the Options used by New when given a zero Options.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Workers: 1,
	}
}

// Pipeline compresses and decompresses whole streams.  The artifact layout
// is the header written by WriteHeader followed by the packed payload bits,
// earliest bit in the most significant position of each byte, with the final
// byte padded with zeros.
type Pipeline struct {
	log     *zap.Logger
	workers int
}

// New returns a Pipeline configured by opts.
func New(opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Pipeline{
		log:     opts.Logger,
		workers: opts.Workers,
	}
}

// Compress compresses src into dst and returns the logical bit string of the
// payload.  src is read twice: once to count frequencies and once, after
// seeking back to where it started, to encode.
func (p *Pipeline) Compress(src io.ReadSeeker, dst io.Writer) (string, error) {
	const op = "compress"

	ft, input, err := p.count(src)
	if err != nil {
		return "", &PhaseError{Op: op, Phase: PhaseCount, Err: err}
	}
	p.log.Debug("counted frequencies",
		zap.Int("symbols", ft.Len()),
		zap.Uint64("total", ft.Total()))

	root, err := BuildTree(ft)
	if err != nil {
		return "", &PhaseError{Op: op, Phase: PhaseTree, Err: err}
	}
	table := BuildCodeTable(root)
	p.log.Debug("built code table",
		zap.Int("codes", table.Len()),
		zap.Int("min_bits", table.MinSize()),
		zap.Int("max_bits", table.MaxSize()))

	bw := bufio.NewWriter(dst)
	headerLen, err := WriteHeader(bw, ft)
	if err != nil {
		return "", &PhaseError{Op: op, Phase: PhaseHeader, Err: err}
	}

	bitw := bitio.NewWriter(bw)
	bits, n, err := Encode(input, table, bitw)
	if err != nil {
		return "", &PhaseError{Op: op, Phase: PhaseEncode, Err: err}
	}
	if err := bitw.Close(); err != nil {
		return "", &PhaseError{Op: op, Phase: PhaseOutput, Err: ioError("write", "", err)}
	}
	if err := bw.Flush(); err != nil {
		return "", &PhaseError{Op: op, Phase: PhaseOutput, Err: ioError("write", "", err)}
	}

	p.log.Info("compressed",
		zap.Uint64("input_bytes", ft.Total()-1),
		zap.Int64("header_bytes", headerLen),
		zap.Int64("payload_bits", n),
		zap.Int64("payload_bytes", (n+7)/8))
	return bits, nil
}

func (p *Pipeline) count(src io.ReadSeeker) (*FrequencyTable, io.ByteReader, error) {
	if p.workers > 1 {
		data, err := io.ReadAll(src)
		if err != nil {
			return nil, nil, ioError("read", "", err)
		}
		return CountBytesParallel(data, p.workers), bytes.NewReader(data), nil
	}

	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, nil, ioError("seek", "", err)
	}
	ft, err := CountReader(src)
	if err != nil {
		return nil, nil, err
	}
	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return nil, nil, ioError("seek", "", err)
	}
	return ft, bufio.NewReader(src), nil
}

// Decompress reads an artifact written by Compress from src, writes the
// reconstructed bytes to dst, and returns them.
//
// A corrupt or truncated artifact is an error.  Nothing is flushed to dst in
// that case, although bytes may already have reached dst if the output
// exceeded the internal buffer.
//
func (p *Pipeline) Decompress(src io.Reader, dst io.Writer) ([]byte, error) {
	const op = "decompress"

	br := bufio.NewReader(src)
	ft, err := ReadHeader(br)
	if err != nil {
		return nil, &PhaseError{Op: op, Phase: PhaseHeader, Err: err}
	}
	p.log.Debug("read header",
		zap.Int("symbols", ft.Len()),
		zap.Uint64("total", ft.Total()))

	root, err := BuildTree(ft)
	if err != nil {
		return nil, &PhaseError{Op: op, Phase: PhaseTree, Err: err}
	}

	bw := bufio.NewWriter(dst)
	d := NewDecoder(root)
	out, err := d.Decode(bitio.NewReader(br), bw)
	if err != nil {
		return nil, &PhaseError{Op: op, Phase: PhaseDecode, Err: err}
	}
	if expect := ft.Total() - 1; uint64(len(out)) != expect {
		err := fmt.Errorf("%w: decoded %d bytes, header promises %d", ErrCorruptStream, len(out), expect)
		return nil, &PhaseError{Op: op, Phase: PhaseDecode, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return nil, &PhaseError{Op: op, Phase: PhaseOutput, Err: ioError("write", "", err)}
	}

	p.log.Info("decompressed",
		zap.Int("output_bytes", len(out)),
		zap.Int64("payload_bits", d.Bits()))
	return out, nil
}

// CompressFile compresses the named file into CompressedName(path) and
// returns the logical bit string of the payload.
func (p *Pipeline) CompressFile(path string) (string, error) {
	const op = "compress"

	in, err := os.Open(path)
	if err != nil {
		return "", &PhaseError{Op: op, Phase: PhaseCount, Err: ioError("open", path, err)}
	}
	defer in.Close()

	outPath := CompressedName(path)
	var bits string
	err = p.writeFile(op, outPath, func(w io.Writer) error {
		var err error
		bits, err = p.Compress(in, w)
		return withPaths(err, path, outPath)
	})
	if err != nil {
		return "", err
	}
	p.log.Info("wrote artifact", zap.String("input", path), zap.String("output", outPath))
	return bits, nil
}

// DecompressFile decompresses the named file into DecompressedName(path)
// and returns the reconstructed bytes.
func (p *Pipeline) DecompressFile(path string) ([]byte, error) {
	const op = "decompress"

	in, err := os.Open(path)
	if err != nil {
		return nil, &PhaseError{Op: op, Phase: PhaseHeader, Err: ioError("open", path, err)}
	}
	defer in.Close()

	outPath := DecompressedName(path)
	var out []byte
	err = p.writeFile(op, outPath, func(w io.Writer) error {
		var err error
		out, err = p.Decompress(in, w)
		return withPaths(err, path, outPath)
	})
	if err != nil {
		return nil, err
	}
	p.log.Info("wrote output", zap.String("input", path), zap.String("output", outPath))
	return out, nil
}

// writeFile creates outPath, lets fn fill it, and removes it again if
// anything fails.
func (p *Pipeline) writeFile(op, outPath string, fn func(io.Writer) error) error {
	out, err := os.Create(outPath)
	if err != nil {
		return &PhaseError{Op: op, Phase: PhaseOutput, Err: ioError("create", outPath, err)}
	}

	err = fn(out)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = &PhaseError{Op: op, Phase: PhaseOutput, Err: ioError("close", outPath, closeErr)}
	}
	if err != nil {
		if removeErr := os.Remove(outPath); removeErr != nil {
			p.log.Warn("failed to remove partial output", zap.String("path", outPath), zap.Error(removeErr))
		}
		return err
	}
	return nil
}

// withPaths fills in the path of an IOError that was raised without one:
// outPath for write failures, inPath for everything else.
func withPaths(err error, inPath, outPath string) error {
	var ioe *IOError
	if errors.As(err, &ioe) && ioe.Path == "" {
		ioe.Path = inPath
		if ioe.Op == "write" {
			ioe.Path = outPath
		}
	}
	return err
}
