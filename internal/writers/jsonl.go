// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"strobemers/internal/jsonlutil"
	"strobemers/internal/output"
)

// StartStrobemerJSONLWriter streams each hit as one JSON line (v1).
func StartStrobemerJSONLWriter(out io.Writer, bufSize int) (chan<- output.Hit, <-chan error) {
	return jsonlutil.Start[output.Hit](out, bufSize,
		func(enc *json.Encoder, h output.Hit) error {
			return enc.Encode(output.ToAPIStrobemer(h))
		},
		IsBrokenPipe,
	)
}

// StartHashJSONLWriter streams each substring hash as one JSON line (v1).
func StartHashJSONLWriter(out io.Writer, bufSize int) (chan<- output.PosHash, <-chan error) {
	return jsonlutil.Start[output.PosHash](out, bufSize,
		func(enc *json.Encoder, p output.PosHash) error {
			return enc.Encode(output.ToAPIHash(p))
		},
		IsBrokenPipe,
	)
}
