package huffman

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when a tree is requested for an empty
	// frequency table.
	ErrInvalidInput = errors.New("huffman: empty alphabet")

	// ErrMissingCode is returned when the encoder meets a symbol that has
	// no entry in the code table.  This means the code table was not
	// derived from the data being encoded.
	ErrMissingCode = errors.New("huffman: symbol has no code")

	// ErrTruncatedStream is returned when the bit stream ends before the
	// end-of-stream code has been decoded.
	ErrTruncatedStream = errors.New("huffman: truncated stream")

	// ErrCorruptStream is returned when the bit stream selects a tree leaf
	// that carries no symbol.
	ErrCorruptStream = errors.New("huffman: corrupt stream")

	// ErrHeaderCorrupt is returned when the frequency header of a
	// compressed artifact cannot be parsed.
	ErrHeaderCorrupt = errors.New("huffman: corrupt header")
)

// IOError reports a failure to open, read, or write a source or destination.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return "huffman: " + e.Op + ": " + e.Err.Error()
	}
	return "huffman: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Phase names a stage of the compression pipeline.
type Phase string

const (
	PhaseCount  Phase = "count"
	PhaseTree   Phase = "tree"
	PhaseTable  Phase = "table"
	PhaseHeader Phase = "header"
	PhaseEncode Phase = "encode"
	PhaseDecode Phase = "decode"
	PhaseOutput Phase = "output"
)

// PhaseError is returned by Pipeline methods.  It records which stage failed
// and wraps the component error unchanged.
type PhaseError struct {
	Op    string
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return e.Op + " failed during " + string(e.Phase) + " phase: " + e.Err.Error()
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

func ioError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var ioe *IOError
	if errors.As(err, &ioe) {
		return err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
