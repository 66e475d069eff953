// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"warnmap/internal/jsonlutil"
	"warnmap/internal/output"
	"warnmap/internal/warnmap"
)

// StartChannelJSONLWriter streams each merged record as one JSON line (v1).
func StartChannelJSONLWriter(out io.Writer, bufSize int) (chan<- warnmap.ChannelRecord, <-chan error) {
	return jsonlutil.Start[warnmap.ChannelRecord](out, bufSize,
		func(enc *json.Encoder, r warnmap.ChannelRecord) error {
			return enc.Encode(output.ToAPIChannel(r))
		},
		IsBrokenPipe,
	)
}

func writeMapJSONL(w io.Writer, p MapPayload) error {
	in, done := StartChannelJSONLWriter(w, 256)
	for _, r := range p.Map.Records {
		select {
		case in <- r:
		case err := <-done:
			// encoder gave up; it never reads from in again
			close(in)
			return err
		}
	}
	close(in)
	return <-done
}
