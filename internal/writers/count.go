// internal/writers/count.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"fqgen/internal/jsonlutil"
	"fqgen/internal/jsonutil"
	"fqgen/pkg/api"
)

// CountTSVHeader is the column header for text output.
const CountTSVHeader = "file\trecords\tbases\tmin_len\tmax_len\tmean_len"

// WriteCountText writes per-file statistics as a TSV table.
func WriteCountText(w io.Writer, rows []api.CountV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, CountTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.2f\n",
			r.File, r.Records, r.Bases, r.MinLen, r.MaxLen, r.MeanLen); err != nil {
			return err
		}
	}
	return nil
}

// WriteCountJSON writes all statistics as one indented JSON array.
func WriteCountJSON(w io.Writer, rows []api.CountV1) error {
	return jsonutil.EncodePretty(w, rows)
}

// StartCountJSONLWriter streams each file's statistics as one JSON line (v1).
func StartCountJSONLWriter(out io.Writer, bufSize int) (chan<- api.CountV1, <-chan error) {
	return jsonlutil.Start[api.CountV1](out, bufSize,
		func(enc *json.Encoder, c api.CountV1) error {
			return enc.Encode(c)
		},
		IsBrokenPipe,
	)
}
