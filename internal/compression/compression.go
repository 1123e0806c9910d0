package compression

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

const (
	lz4Ext  = ".lz4"
	zstdExt = ".zst"
)

// readCloser couples a decoding stream with the resources it draws from
type readCloser struct {
	io.Reader
	close func() error
}

// Close releases the decoder and the underlying file handle
func (rc *readCloser) Close() error {
	return rc.close()
}

// writeCloser couples an encoding stream with the resources it feeds
type writeCloser struct {
	io.Writer
	closers []io.Closer
}

// Close flushes the encoder and releases the underlying file handle
func (wc *writeCloser) Close() error {
	var multierr *multierror.Error
	for _, c := range wc.closers {
		if err := c.Close(); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	return multierr.ErrorOrNil()
}

// OpenReader opens fileName for reading, transparently decompressing lz4
// and zstd data based on the file extension
func OpenReader(fileName string) (io.ReadCloser, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(fileName, lz4Ext):
		return &readCloser{Reader: lz4.NewReader(f), close: f.Close}, nil
	case strings.HasSuffix(fileName, zstdExt):
		decompressor, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{Reader: decompressor, close: func() error {
			decompressor.Close()
			return f.Close()
		}}, nil
	default:
		return f, nil
	}
}

// CreateWriter opens fileName for writing, transparently compressing lz4
// and zstd data based on the file extension. Closing the returned
// WriteCloser flushes the encoder, so the caller must check its error.
func CreateWriter(fileName string) (io.WriteCloser, error) {
	f, err := os.Create(fileName)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(fileName, lz4Ext):
		compressor := lz4.NewWriter(f)
		return &writeCloser{Writer: compressor, closers: []io.Closer{compressor, f}}, nil
	case strings.HasSuffix(fileName, zstdExt):
		compressor, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &writeCloser{Writer: compressor, closers: []io.Closer{compressor, f}}, nil
	default:
		return f, nil
	}
}
