// internal/output/text.go
package output

import (
	"io"
	"strconv"
)

// AppendRowTSV appends one strobemer row, newline included. The third
// column is empty for order 2.
func AppendRowTSV(dst []byte, h Hit) []byte {
	dst = append(dst, h.RecordID...)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(h.Index[0]), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(h.Index[1]), 10)
	dst = append(dst, '\t')
	if h.Order == 3 {
		dst = strconv.AppendInt(dst, int64(h.Index[2]), 10)
	}
	dst = append(dst, '\t')
	dst = strconv.AppendUint(dst, h.Hash, 10)
	return append(dst, '\n')
}

// AppendHashRowTSV appends one substring-hash row, newline included.
func AppendHashRowTSV(dst []byte, p PosHash) []byte {
	dst = append(dst, p.RecordID...)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(p.Pos), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendUint(dst, p.Hash, 10)
	return append(dst, '\n')
}

// StreamText writes TSV rows as they arrive on in, with an optional header.
// It keeps draining in after a write error so senders never block.
func StreamText[T any](w io.Writer, in <-chan T, header string, row func([]byte, T) []byte) error {
	var err error
	if header != "" {
		_, err = io.WriteString(w, header+"\n")
	}
	buf := make([]byte, 0, 128)
	for v := range in {
		if err != nil {
			continue
		}
		buf = row(buf[:0], v)
		_, err = w.Write(buf)
	}
	return err
}
