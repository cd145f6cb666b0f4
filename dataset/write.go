package dataset

import (
	"fmt"
	"io"

	"github.com/hupe1980/vecrank/codec"
	"github.com/hupe1980/vecrank/model"
)

// Write encodes ds as CSV through the compression selected by comp.
func Write(w io.Writer, ds model.Dataset, comp Compression) error {
	return Encode(w, ds, comp, FormatCSV, nil)
}

// Encode writes ds in format through the compression selected by comp.
// c is only used for FormatJSON and defaults to codec.Default.
func Encode(w io.Writer, ds model.Dataset, comp Compression, format Format, c codec.Codec) error {
	cw, err := Compress(w, comp)
	if err != nil {
		return err
	}

	switch format {
	case FormatCSV, FormatAuto:
		err = WriteCSV(cw, ds)
	case FormatJSON:
		err = WriteJSON(cw, ds, c)
	default:
		err = fmt.Errorf("unsupported format: %v", format)
	}
	if err != nil {
		_ = cw.Close()
		return err
	}
	return cw.Close()
}

// WriteJSON writes ds as an array of entries encoded with c.
func WriteJSON(w io.Writer, ds model.Dataset, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}
	if ds == nil {
		ds = model.Dataset{}
	}
	return c.Encode(w, ds)
}
