// internal/output/common.go
package output

import "strobemers/core/strobe"

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the header row of strobemer text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "record\tanchor\tsecond\tthird\thash"

// HashTSVHeader is the header row of substring-hash text output.
const HashTSVHeader = "record\tpos\thash"

// Hit is one strobemer found in a FASTA record. Seq is set only when a
// writer needs the record bases; it shares the record's backing array.
type Hit struct {
	RecordID   string
	SourceFile string
	Policy     strobe.Policy
	Order      int
	K          int
	Seq        []byte
	strobe.Strobemer
}

// PosHash is the hash of the substring starting at Pos.
type PosHash struct {
	RecordID   string
	SourceFile string
	Hasher     string
	K          int
	Pos        int
	Hash       uint64
}
