// internal/cli/options.go
package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/pflag"

	"strobemers/core/khash"
	"strobemers/core/strobe"
	"strobemers/internal/output"
	"strobemers/internal/runutil"
)

// Options holds all CLI flags and arguments.
type Options struct {
	SeqFiles []string

	// Strobemer parameters
	Order        int
	StrobeLength int
	WMin         int
	WMax         int
	Prime        uint64
	NoShrink     bool
	Unique       bool // drop repeated hashes within a record
	DedupeCap    int  // recently-seen hashes kept for --unique

	// Hashing
	Hash      string
	Blake3Key string // hex, blake3 only

	// Performance
	Threads int

	// Output
	Output          string
	Pretty          bool
	Sort            bool
	Header          bool // true unless --no-header
	NoMatchExitCode int
	Quiet           bool
}

// Defaults returns the option values used when no flag is given.
func Defaults() Options {
	return Options{
		Order:        2,
		StrobeLength: 31,
		WMin:         20,
		WMax:         50,
		Prime:        strobe.DefaultPrime,
		DedupeCap:    runutil.DefaultDedupeCap,
		Hash:         "nthash",
		Threads:      0,
		Output:       output.FormatText,
		Header:       true,
	}
}

// Flags is the parse-time view of Options: values that need post-processing
// (header inversion) are kept separately.
type Flags struct {
	noHeader bool
}

// RegisterCommon wires flags shared by every subcommand onto fs.
func RegisterCommon(fs *pflag.FlagSet, o *Options) *Flags {
	d := Defaults()
	f := &Flags{}

	fs.IntVarP(&o.StrobeLength, "strobe-length", "k", d.StrobeLength, "strobe (substring) length, 1..64")
	fs.StringVar(&o.Hash, "hash", d.Hash, fmt.Sprintf("substring hasher: %v", khash.Names()))
	fs.StringVar(&o.Blake3Key, "key", "", "hex-encoded 32-byte key for --hash blake3")

	fs.IntVarP(&o.Threads, "threads", "t", d.Threads, "number of worker threads (0 = all CPUs)")

	fs.StringVarP(&o.Output, "output", "o", d.Output, "output format: text | json | jsonl")
	fs.BoolVar(&o.Sort, "sort", false, "emit records in input order")
	fs.BoolVar(&f.noHeader, "no-header", false, "suppress header line in text/TSV")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 0, "exit code when nothing is emitted")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress warnings")
	return f
}

// RegisterStrobe wires the strobemer parameter flags onto fs.
func RegisterStrobe(fs *pflag.FlagSet, o *Options) {
	d := Defaults()
	fs.IntVarP(&o.Order, "order", "n", d.Order, "strobes per fingerprint: 2 or 3")
	fs.IntVar(&o.WMin, "w-min", d.WMin, "minimum offset of the next strobe")
	fs.IntVar(&o.WMax, "w-max", d.WMax, "maximum offset of the next strobe")
	fs.Uint64Var(&o.Prime, "prime", d.Prime, "selection mask, rounded up to 2^m-1 (>= 256)")
	fs.BoolVar(&o.NoShrink, "no-shrink", false, "stop instead of truncating windows at the sequence end")
	fs.BoolVar(&o.Unique, "unique", false, "emit each fingerprint hash at most once per record")
	fs.IntVar(&o.DedupeCap, "dedupe-cap", d.DedupeCap, "recently-seen hashes remembered by --unique")
	fs.BoolVar(&o.Pretty, "pretty", false, "draw each strobemer under its TSV row (text output)")
}

// Finish applies parse-time flags to o.
func (f *Flags) Finish(o *Options) {
	o.Header = !f.noHeader
}

// Validate checks option values that do not depend on the input.
// strobeMode enables the strobemer parameter checks.
func Validate(o *Options, strobeMode bool) error {
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one FASTA file (or '-') is required")
	}
	if o.StrobeLength < 1 || o.StrobeLength > khash.MaxStrobeLength {
		return fmt.Errorf("--strobe-length must be in 1..%d", khash.MaxStrobeLength)
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if _, err := khash.ByName(o.Hash); err != nil {
		return err
	}
	if o.Blake3Key != "" {
		if o.Hash != "blake3" {
			return errors.New("--key requires --hash blake3")
		}
		if _, err := blake3Key(o.Blake3Key); err != nil {
			return err
		}
	}
	if !strobeMode {
		return nil
	}
	if o.Order != 2 && o.Order != 3 {
		return fmt.Errorf("--order must be 2 or 3, got %d", o.Order)
	}
	if o.WMin < 1 || o.WMax < o.WMin {
		return fmt.Errorf("need 1 ≤ --w-min ≤ --w-max, got %d and %d", o.WMin, o.WMax)
	}
	if o.Prime < strobe.MinPrime {
		return fmt.Errorf("--prime must be ≥ %d", strobe.MinPrime)
	}
	if o.DedupeCap < 1 {
		return errors.New("--dedupe-cap must be ≥ 1")
	}
	if o.Pretty && o.Output != output.FormatText {
		return errors.New("--pretty requires --output text")
	}
	return nil
}

// Params returns the strobemer parameters selected by o.
func (o *Options) Params() strobe.Params {
	return strobe.Params{Order: o.Order, StrobeLength: o.StrobeLength, WMin: o.WMin, WMax: o.WMax}
}

// EffectiveThreads resolves --threads 0 to the CPU count.
func (o *Options) EffectiveThreads() int {
	if o.Threads > 0 {
		return o.Threads
	}
	return runtime.NumCPU()
}

// Hasher builds the substring hasher selected by --hash (and --key).
func (o *Options) Hasher() (khash.Hasher, error) {
	if o.Hash == "blake3" && o.Blake3Key != "" {
		key, err := blake3Key(o.Blake3Key)
		if err != nil {
			return nil, err
		}
		return khash.NewBlake3(key)
	}
	return khash.ByName(o.Hash)
}

func blake3Key(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("--key: %v", err)
	}
	if len(key) != khash.Blake3KeySize {
		return nil, fmt.Errorf("--key must be %d bytes (%d hex digits), got %d bytes",
			khash.Blake3KeySize, 2*khash.Blake3KeySize, len(key))
	}
	return key, nil
}
