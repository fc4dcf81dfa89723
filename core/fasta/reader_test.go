// core/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadAll(t *testing.T) {
	in := ">seq1 some description\nACGT\nACGT\n\n>seq2\nTTTT\n"
	recs, err := ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "seq1" || string(recs[0].Seq) != "ACGTACGT" {
		t.Errorf("record 0 = %q %q", recs[0].ID, recs[0].Seq)
	}
	if recs[1].ID != "seq2" || string(recs[1].Seq) != "TTTT" {
		t.Errorf("record 1 = %q %q", recs[1].ID, recs[1].Seq)
	}
}

func TestReadAllEmptyRecordKept(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(">empty\n>next\nAC\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || len(recs[0].Seq) != 0 || recs[1].ID != "next" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestReadAllTrimsWhitespace(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(">s\n  AC GT \r\n"))
	if err != nil {
		t.Fatal(err)
	}
	// leading/trailing space and CR go, inner bytes stay
	if string(recs[0].Seq) != "AC GT" {
		t.Errorf("seq = %q", recs[0].Seq)
	}
}

func TestReadAllCtxCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadAllCtx(ctx, strings.NewReader(">s\nACGT\n"))
	if err == nil {
		t.Fatalf("expected context error")
	}
}

func TestReadAllPathCtxGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aln.fa.gz")

	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(fh)
	if _, err := gz.Write([]byte(">a\nACGT\n>b\nAGGT\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	recs, err := ReadAllPathCtx(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[1].ID != "b" || string(recs[1].Seq) != "AGGT" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestReadAllPathCtxMissing(t *testing.T) {
	if _, err := ReadAllPathCtx(context.Background(), "does/not/exist.fa"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
