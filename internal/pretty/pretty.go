// Package pretty renders a strobemer as an ASCII block over its record.
package pretty

import (
	"fmt"
	"strings"

	"strobemers/internal/output"
)

// Options control the ASCII rendering.
type Options struct {
	// Gaps longer than MaxGap bases are elided as "..(n)..". If <=0, no elision.
	MaxGap int

	// Mark strobe bases with their strobe number (1, 2, 3) instead of CaretGlyph.
	Numbered bool

	// Glyphs
	DotGlyph   string // default "."
	CaretGlyph string // default "^"
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	MaxGap:     40,
	Numbered:   true,
	DotGlyph:   ".",
	CaretGlyph: "^",
}

const linePrefix = "# "

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// RenderHitWithOptions returns a three-line block: a header, the span from
// the anchor to the end of the last strobe with strobe bases shown and gap
// bases dotted, and a marker row under the strobes. It returns "" when h
// carries no sequence.
func RenderHitWithOptions(h output.Hit, opt Options) string {
	order := h.Order
	if order != 3 {
		order = 2
	}
	k := h.K
	starts := h.Index[:order]
	lo, hi := starts[0], starts[order-1]+k
	if k <= 0 || lo < 0 || hi > len(h.Seq) {
		return ""
	}
	dot := opt.DotGlyph
	if dot == "" {
		dot = "."
	}
	caret := opt.CaretGlyph
	if caret == "" {
		caret = "^"
	}

	// strobe reports which strobe covers p (later strobes win), 0 for none.
	strobe := func(p int) int {
		for i := order - 1; i >= 0; i-- {
			if starts[i] <= p && p < starts[i]+k {
				return i + 1
			}
		}
		return 0
	}

	var seqLine, markLine strings.Builder
	for p := lo; p < hi; {
		if s := strobe(p); s != 0 {
			seqLine.WriteByte(upper(h.Seq[p]))
			if opt.Numbered {
				markLine.WriteByte(byte('0' + s))
			} else {
				markLine.WriteString(caret)
			}
			p++
			continue
		}
		q := p
		for q < hi && strobe(q) == 0 {
			q++
		}
		gap := q - p
		if opt.MaxGap > 0 && gap > opt.MaxGap {
			label := fmt.Sprintf("..(%d)..", gap)
			seqLine.WriteString(label)
			markLine.WriteString(strings.Repeat(" ", len(label)))
		} else {
			seqLine.WriteString(strings.Repeat(dot, gap))
			markLine.WriteString(strings.Repeat(" ", gap))
		}
		p = q
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s:%d-%d %s order %d hash %d\n", linePrefix, h.RecordID, lo, hi, h.Policy, order, h.Hash)
	b.WriteString(linePrefix + seqLine.String() + "\n")
	b.WriteString(linePrefix + strings.TrimRight(markLine.String(), " ") + "\n")
	return b.String()
}

// RenderHit renders h with DefaultOptions.
func RenderHit(h output.Hit) string {
	return RenderHitWithOptions(h, DefaultOptions)
}
