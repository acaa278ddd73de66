package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 first record
ACGT
acgt
>seq2
NNnn

>empty
>seq3	tabbed
  GATTACA  
`

func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func collect(t *testing.T, r io.Reader) []Record {
	t.Helper()
	var recs []Record
	if err := Scan(context.Background(), r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	}); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return recs
}

func TestScan(t *testing.T) {
	recs := collect(t, strings.NewReader(plain))
	want := []Record{
		{ID: "seq1", Seq: []byte("ACGTacgt")},
		{ID: "seq2", Seq: []byte("NNnn")},
		{ID: "empty", Seq: []byte{}},
		{ID: "seq3", Seq: []byte("GATTACA")},
	}
	if len(recs) != len(want) {
		t.Fatalf("got %d records, want %d", len(recs), len(want))
	}
	for i := range want {
		if recs[i].ID != want[i].ID || string(recs[i].Seq) != string(want[i].Seq) {
			t.Errorf("record %d = %q %q, want %q %q", i, recs[i].ID, recs[i].Seq, want[i].ID, want[i].Seq)
		}
	}
}

func TestScan_DataBeforeHeader(t *testing.T) {
	err := Scan(context.Background(), strings.NewReader("ACGT\n>s\nA\n"), func(Record) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("err = %v, want line 1 error", err)
	}
}

func TestScan_EmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Scan(context.Background(), strings.NewReader(plain), func(Record) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("err = %v after %d records, want stop after 1", err, n)
	}
}

func TestScan_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := Scan(ctx, strings.NewReader(plain), func(Record) error { n++; return nil })
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Fatalf("err = %v, %d records; want canceled and 0", err, n)
	}
}

func TestReadAllGzip(t *testing.T) {
	recs, err := ReadAll(context.Background(), writeGz(t, plain))
	if err != nil {
		t.Fatalf("ReadAll gz: %v", err)
	}
	if len(recs) != 4 || recs[0].ID != "seq1" || recs[3].ID != "seq3" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestReadAllStdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	recs, err := ReadAll(context.Background(), "-")
	if err != nil {
		t.Fatalf("ReadAll stdin: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("expected 4 records from stdin, got %d", len(recs))
	}
}

func TestScanPath_Missing(t *testing.T) {
	err := ScanPath(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), func(Record) error { return nil })
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}
