package dataset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hupe1980/vecrank"
	"github.com/hupe1980/vecrank/blobstore"
	"github.com/hupe1980/vecrank/codec"
	"github.com/hupe1980/vecrank/model"
)

// Format identifies the row encoding of a feature file.
type Format int

const (
	// FormatAuto picks the format from the file name.
	FormatAuto Format = iota
	// FormatCSV is identifier-first comma separated rows.
	FormatCSV
	// FormatJSON is an array of model.Entry objects.
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// DetectFormat derives the format from an uncompressed file name.
// Anything other than .json is read as CSV.
func DetectFormat(name string) Format {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return FormatJSON
	}
	return FormatCSV
}

type loadOptions struct {
	format           Format
	codec            codec.Codec
	validate         bool
	logger           *vecrank.Logger
	metricsCollector vecrank.MetricsCollector
}

// Option configures Load.
type Option func(*loadOptions)

// WithFormat overrides format detection.
func WithFormat(f Format) Option {
	return func(o *loadOptions) {
		o.format = f
	}
}

// WithCodec sets the codec used for JSON feature files.
// Defaults to codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *loadOptions) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithoutValidation returns the rows as read, without checking for duplicate
// identifiers or mixed vector lengths.
func WithoutValidation() Option {
	return func(o *loadOptions) {
		o.validate = false
	}
}

// WithLogger sets the logger for load events.
func WithLogger(l *vecrank.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets the collector notified after every load.
func WithMetricsCollector(mc vecrank.MetricsCollector) Option {
	return func(o *loadOptions) {
		if mc != nil {
			o.metricsCollector = mc
		}
	}
}

// Load reads the feature file name from store.
//
// Compression and format are derived from the name, e.g. "features.json.zst".
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (ds model.Dataset, err error) {
	o := loadOptions{
		codec:            codec.Default,
		validate:         true,
		logger:           vecrank.NoopLogger(),
		metricsCollector: vecrank.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}

	start := time.Now()
	defer func() {
		o.logger.LogLoad(ctx, name, len(ds), ds.Dimension(), err)
		o.metricsCollector.RecordLoad(len(ds), time.Since(start), err)
	}()

	r, err := blobstore.OpenReader(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer r.Close()

	comp, base := DetectCompression(name)
	format := o.format
	if format == FormatAuto {
		format = DetectFormat(base)
	}

	ds, err = Read(r, comp, format, o.codec)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	if o.validate {
		if err := ds.Validate(); err != nil {
			return nil, fmt.Errorf("validate %s: %w", name, err)
		}
	}
	return ds, nil
}

// Read decodes a feature stream. c is only used for FormatJSON.
func Read(r io.Reader, comp Compression, format Format, c codec.Codec) (model.Dataset, error) {
	dr, err := Decompress(r, comp)
	if err != nil {
		return nil, err
	}
	defer dr.Close()

	switch format {
	case FormatCSV, FormatAuto:
		return ReadCSV(dr)
	case FormatJSON:
		return ReadJSON(dr, c)
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// ReadJSON decodes an array of entries with c. An empty stream yields an
// empty dataset.
func ReadJSON(r io.Reader, c codec.Codec) (model.Dataset, error) {
	if c == nil {
		c = codec.Default
	}

	br := bufio.NewReader(r)
	if empty, err := blank(br); err != nil || empty {
		return nil, err
	}

	var ds model.Dataset
	if err := c.Decode(br, &ds); err != nil {
		return nil, &ParseError{Err: err}
	}
	for i := range ds {
		if ds[i].ID == "" {
			return nil, &ParseError{Err: fmt.Errorf("entry %d: %w", i, errEmptyID)}
		}
	}
	return ds, nil
}

var errEmptyID = errors.New("empty identifier")

// blank reports whether br holds nothing but whitespace.
func blank(br *bufio.Reader) (bool, error) {
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return false, br.UnreadByte()
	}
}
