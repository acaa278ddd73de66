// pkg/api/products_v1.go
package api

// StrobemerV1 is the stable JSON/JSONL schema for one emitted strobemer.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StrobemerV1 struct {
	RecordID   string `json:"record_id"`
	SourceFile string `json:"source_file,omitempty"`
	Policy     string `json:"policy"` // "min" | "rand"
	Order      int    `json:"order"`
	I1         int    `json:"i1"`
	I2         int    `json:"i2"`
	I3         *int   `json:"i3,omitempty"` // order 3 only
	Hash       uint64 `json:"hash"`
}

// SubstringHashV1 is the stable schema for one per-position substring hash.
type SubstringHashV1 struct {
	RecordID   string `json:"record_id"`
	SourceFile string `json:"source_file,omitempty"`
	Hasher     string `json:"hasher"`
	Pos        int    `json:"pos"`
	K          int    `json:"k"`
	Hash       uint64 `json:"hash"`
}
