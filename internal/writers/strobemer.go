// internal/writers/strobemer.go
package writers

import (
	"io"

	"strobemers/internal/output"
	"strobemers/internal/pretty"
)

func init() {
	RegisterStrobemer(output.FormatText, StartStrobemerTextWriter)
	RegisterStrobemer(output.FormatJSON, StartStrobemerJSONWriter)
	RegisterStrobemer(output.FormatJSONL, func(out io.Writer, _ bool, bufSize int) (chan<- output.Hit, <-chan error) {
		return StartStrobemerJSONLWriter(out, bufSize)
	})
	RegisterHash(output.FormatText, StartHashTextWriter)
	RegisterHash(output.FormatJSON, StartHashJSONWriter)
	RegisterHash(output.FormatJSONL, func(out io.Writer, _ bool, bufSize int) (chan<- output.PosHash, <-chan error) {
		return StartHashJSONLWriter(out, bufSize)
	})
}

// StartStrobemerTextWriter streams TSV rows as hits arrive.
func StartStrobemerTextWriter(out io.Writer, header bool, bufSize int) (chan<- output.Hit, <-chan error) {
	return startText(out, header, output.TSVHeader, bufSize, output.AppendRowTSV)
}

// StartStrobemerPrettyWriter streams TSV rows, each followed by its ASCII
// block. Hits must carry their record sequence.
func StartStrobemerPrettyWriter(out io.Writer, header bool, bufSize int, opt pretty.Options) (chan<- output.Hit, <-chan error) {
	return startText(out, header, output.TSVHeader, bufSize, func(dst []byte, h output.Hit) []byte {
		dst = output.AppendRowTSV(dst, h)
		return append(dst, pretty.RenderHitWithOptions(h, opt)...)
	})
}

// StartHashTextWriter streams substring-hash TSV rows.
func StartHashTextWriter(out io.Writer, header bool, bufSize int) (chan<- output.PosHash, <-chan error) {
	return startText(out, header, output.HashTSVHeader, bufSize, output.AppendHashRowTSV)
}

// StartStrobemerJSONWriter buffers every hit and writes one JSON array on close.
func StartStrobemerJSONWriter(out io.Writer, _ bool, bufSize int) (chan<- output.Hit, <-chan error) {
	return startBuffered(out, bufSize, output.WriteJSON)
}

// StartHashJSONWriter buffers every hash and writes one JSON array on close.
func StartHashJSONWriter(out io.Writer, _ bool, bufSize int) (chan<- output.PosHash, <-chan error) {
	return startBuffered(out, bufSize, output.WriteHashJSON)
}

func startText[T any](out io.Writer, header bool, hdr string, bufSize int, row func([]byte, T) []byte) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	if !header {
		hdr = ""
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- output.StreamText(out, in, hdr, row)
	}()
	return in, errCh
}

func startBuffered[T any](out io.Writer, bufSize int, write func(io.Writer, []T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var buf []T
		for v := range in {
			buf = append(buf, v)
		}
		errCh <- write(out, buf)
	}()
	return in, errCh
}
