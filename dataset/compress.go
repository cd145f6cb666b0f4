package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the compression wrapping a feature file.
type Compression int

const (
	// CompressionNone reads the file as is.
	CompressionNone Compression = iota
	// CompressionZSTD reads a zstd stream.
	CompressionZSTD
	// CompressionLZ4 reads an lz4 frame.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// DetectCompression derives the compression from the file name suffix and
// returns the name with that suffix removed.
func DetectCompression(name string) (Compression, string) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".zst"):
		return CompressionZSTD, name[:len(name)-len(".zst")]
	case strings.HasSuffix(lower, ".zstd"):
		return CompressionZSTD, name[:len(name)-len(".zstd")]
	case strings.HasSuffix(lower, ".lz4"):
		return CompressionLZ4, name[:len(name)-len(".lz4")]
	default:
		return CompressionNone, name
	}
}

// Decompress wraps r with the decoder for c.
func Decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %v", c)
	}
}

// Compress wraps w with the encoder for c. Close flushes the encoder but does
// not close w.
func Compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %v", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
