// Package fasta reads whole sequence records from (optionally
// gzipped) FASTA files. Unlike a scanning reader there is no
// windowing: aligned inputs are only meaningful as complete records.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// ReadAllCtx parses every record from r. Cancellation is honored
// between lines, which is enough granularity even for very long
// single-line sequences thanks to the scanner's line cap.
func ReadAllCtx(ctx context.Context, r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs []Record
		id   string
		seq  = make([]byte, 0, 1<<20)
		open bool
	)
	flush := func() {
		if !open {
			return
		}
		recs = append(recs, Record{ID: id, Seq: append([]byte(nil), seq...)})
		seq = seq[:0]
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id = parseHeaderID(line[1:])
			open = true
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return recs, nil
}

// ReadAll parses every record from r with a background context.
func ReadAll(r io.Reader) ([]Record, error) {
	return ReadAllCtx(context.Background(), r)
}

// ReadAllPathCtx opens path (gzip and "-" for stdin are handled) and
// parses every record.
func ReadAllPathCtx(ctx context.Context, path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadAllCtx(ctx, rc)
}

// parseHeaderID takes the first whitespace-delimited token after '>'.
func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

// multiReadCloser closes every wrapped closer, keeping the first error.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path, transparently decompressing gzip detected by
// magic number (1F 8B) or a .gz suffix. "-" means stdin.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
