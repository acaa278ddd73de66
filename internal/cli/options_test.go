package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"strobemers/core/khash"
	"strobemers/core/strobe"
)

func parse(t *testing.T, strobeMode bool, args ...string) (Options, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var o Options
	f := RegisterCommon(fs, &o)
	if strobeMode {
		RegisterStrobe(fs, &o)
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	f.Finish(&o)
	o.SeqFiles = fs.Args()
	return o, Validate(&o, strobeMode)
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := parse(t, true, args...)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return o
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "ref.fa")
	p := o.Params()
	if p != (strobe.Params{Order: 2, StrobeLength: 31, WMin: 20, WMax: 50}) {
		t.Errorf("default params = %+v", p)
	}
	if o.Prime != strobe.DefaultPrime || o.NoShrink || o.Hash != "nthash" || !o.Header || o.Output != "text" {
		t.Errorf("bad defaults %+v", o)
	}
	if o.EffectiveThreads() < 1 {
		t.Error("EffectiveThreads should be ≥ 1")
	}
}

func TestShortFlags(t *testing.T) {
	o := mustParse(t, "-n", "3", "-k", "15", "-t", "2", "-o", "jsonl", "-q", "a.fa", "b.fa")
	if o.Order != 3 || o.StrobeLength != 15 || o.Threads != 2 || o.Output != "jsonl" || !o.Quiet {
		t.Errorf("short flags parsed wrong: %+v", o)
	}
	if len(o.SeqFiles) != 2 || o.EffectiveThreads() != 2 {
		t.Errorf("positionals = %v", o.SeqFiles)
	}
}

func TestNoHeaderAndShrink(t *testing.T) {
	o := mustParse(t, "--no-header", "--no-shrink", "--prime", "300", "x.fa")
	if o.Header || !o.NoShrink || o.Prime != 300 {
		t.Errorf("got %+v", o)
	}
}

func TestUniqueAndPretty(t *testing.T) {
	o := mustParse(t, "--unique", "--dedupe-cap", "10", "--pretty", "x.fa")
	if !o.Unique || o.DedupeCap != 10 || !o.Pretty {
		t.Errorf("got %+v", o)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{}, "at least one FASTA"},
		{[]string{"-n", "4", "a.fa"}, "--order"},
		{[]string{"-k", "0", "a.fa"}, "--strobe-length"},
		{[]string{"-k", "65", "a.fa"}, "--strobe-length"},
		{[]string{"--w-min", "0", "a.fa"}, "--w-min"},
		{[]string{"--w-min", "30", "--w-max", "20", "a.fa"}, "--w-min"},
		{[]string{"--prime", "255", "a.fa"}, "--prime"},
		{[]string{"-t", "-1", "a.fa"}, "--threads"},
		{[]string{"-o", "fasta", "a.fa"}, "--output"},
		{[]string{"--hash", "md5", "a.fa"}, "unknown hasher"},
		{[]string{"--key", "00", "a.fa"}, "--key requires"},
		{[]string{"--hash", "blake3", "--key", "zz", "a.fa"}, "--key"},
		{[]string{"--hash", "blake3", "--key", "0011", "a.fa"}, "32 bytes"},
		{[]string{"--dedupe-cap", "0", "a.fa"}, "--dedupe-cap"},
		{[]string{"--pretty", "-o", "json", "a.fa"}, "--pretty"},
	}
	for _, tc := range cases {
		_, err := parse(t, true, tc.args...)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%v: err = %v, want %q", tc.args, err, tc.want)
		}
	}
}

func TestHashModeSkipsStrobeChecks(t *testing.T) {
	o, err := parse(t, false, "-k", "5", "a.fa")
	if err != nil {
		t.Fatalf("hash mode: %v", err)
	}
	if o.Order != 0 {
		t.Errorf("strobe flags should not be registered in hash mode")
	}
	if _, err := parse(t, false, "--order", "3", "a.fa"); err == nil {
		t.Error("--order should be unknown in hash mode")
	}
}

func TestHasher(t *testing.T) {
	o := mustParse(t, "--hash", "buzhash", "a.fa")
	h, err := o.Hasher()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := h.(khash.Buzhash); !ok {
		t.Errorf("hasher = %T, want khash.Buzhash", h)
	}
	key := strings.Repeat("ab", khash.Blake3KeySize)
	o = mustParse(t, "--hash", "blake3", "--key", key, "a.fa")
	h, err = o.Hasher()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := h.(*khash.Blake3); !ok {
		t.Errorf("hasher = %T, want *khash.Blake3", h)
	}
}
