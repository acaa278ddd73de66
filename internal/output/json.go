// internal/output/json.go
package output

import (
	"io"

	"strobemers/internal/jsonutil"
	"strobemers/pkg/api"
)

// ToAPIStrobemer converts a Hit to the stable wire schema (v1).
func ToAPIStrobemer(h Hit) api.StrobemerV1 {
	v := api.StrobemerV1{
		RecordID:   h.RecordID,
		SourceFile: h.SourceFile,
		Policy:     h.Policy.String(),
		Order:      h.Order,
		I1:         h.Index[0],
		I2:         h.Index[1],
		Hash:       h.Hash,
	}
	if h.Order == 3 {
		i3 := h.Index[2]
		v.I3 = &i3
	}
	return v
}

// ToAPIHash converts a PosHash to the stable wire schema (v1).
func ToAPIHash(p PosHash) api.SubstringHashV1 {
	return api.SubstringHashV1{
		RecordID:   p.RecordID,
		SourceFile: p.SourceFile,
		Hasher:     p.Hasher,
		Pos:        p.Pos,
		K:          p.K,
		Hash:       p.Hash,
	}
}

// WriteJSON writes a single JSON array of v1 strobemers (pretty-indented).
func WriteJSON(w io.Writer, list []Hit) error {
	out := make([]api.StrobemerV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIStrobemer(h))
	}
	return jsonutil.EncodePretty(w, out)
}

// WriteHashJSON writes a single JSON array of v1 substring hashes.
func WriteHashJSON(w io.Writer, list []PosHash) error {
	out := make([]api.SubstringHashV1, 0, len(list))
	for _, p := range list {
		out = append(out, ToAPIHash(p))
	}
	return jsonutil.EncodePretty(w, out)
}
