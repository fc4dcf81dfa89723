// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/exp/rand"

	"dnadist-core/fasta"
	"dnadist-core/model"
	"dnadist/internal/cli"
	"dnadist/internal/pipeline"
	"dnadist/internal/version"
	"dnadist/internal/writers"
)

// lowCoverage is the fraction of counted positions below which a
// pairwise estimate is reported as unreliable (the classic andi
// threshold).
const lowCoverage = 0.2

func warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// RunContext parses argv, computes the pairwise distance matrix and
// writes it to stdout. Exit codes: 0 ok, 2 usage error, 3 runtime
// error, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dnadist")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dnadist version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	mod, err := model.ParseModel(opts.Model)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	recs, code := loadAlignment(parent, opts.SeqFiles, stderr)
	if code != 0 {
		return code
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	n := len(recs)
	mats := make([][]model.Matrix, n)
	for i := range mats {
		mats[i] = make([]model.Matrix, n)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	err = pipeline.ForEachPair(ctx, pipeline.Config{Threads: thr, Model: mod}, recs,
		func(r pipeline.PairResult) error {
			mats[r.I][r.J] = r.Matrix
			mats[r.J][r.I] = r.Matrix
			return nil
		})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	names := make([]string, n)
	for i, r := range recs {
		names[i] = r.ID
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cov := mats[i][j].Coverage(); cov < lowCoverage {
				warnf(stderr, opts.Quiet,
					"coverage of %s vs %s is %.3f; the distance estimate may be unreliable",
					names[i], names[j], cov)
			}
		}
	}

	matrixAt := func(i, j int) *model.Matrix { return &mats[i][j] }
	if err := writers.Write(opts.Output, outw, buildResult(0, mod, names, matrixAt), opts.Header); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	// Bootstrap replicates are drawn sequentially from one seeded
	// source and appended as whole matrices after the primary one.
	if opts.Bootstrap > 0 {
		seed := opts.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		src := rand.NewSource(seed)

		boot := make([][]model.Matrix, n)
		for i := range boot {
			boot[i] = make([]model.Matrix, n)
		}
		for rep := 1; rep <= opts.Bootstrap; rep++ {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					bm := mats[i][j].Bootstrap(src)
					boot[i][j] = bm
					boot[j][i] = bm
				}
			}
			bootAt := func(i, j int) *model.Matrix { return &boot[i][j] }
			if err := writers.Write(opts.Output, outw, buildResult(rep, mod, names, bootAt), opts.Header); err != nil {
				if writers.IsBrokenPipe(err) {
					return 0
				}
				_, _ = fmt.Fprintln(stderr, err)
				return 3
			}
		}
	}

	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadAlignment reads every record from every input and checks they
// form one alignment (equal lengths, at least two sequences).
func loadAlignment(ctx context.Context, paths []string, stderr io.Writer) ([]fasta.Record, int) {
	var recs []fasta.Record
	for _, path := range paths {
		rs, err := fasta.ReadAllPathCtx(ctx, path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return nil, 2
		}
		recs = append(recs, rs...)
	}
	if len(recs) < 2 {
		_, _ = fmt.Fprintln(stderr, "error: need at least two aligned sequences")
		return nil, 2
	}
	want := len(recs[0].Seq)
	for _, r := range recs[1:] {
		if len(r.Seq) != want {
			_, _ = fmt.Fprintf(stderr,
				"error: aligned records must share one length; %q has %d, want %d\n",
				r.ID, len(r.Seq), want)
			return nil, 2
		}
	}
	return recs, 0
}

// buildResult renders a matrix of estimates for one replicate.
func buildResult(rep int, mod model.Model, names []string, at func(i, j int) *model.Matrix) writers.MatrixResult {
	n := len(names)
	dist := make([][]float64, n)
	cov := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		cov[i] = make([]float64, n)
		cov[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mm := at(i, j)
			d := mm.Estimate(mod)
			dist[i][j], dist[j][i] = d, d
			c := mm.Coverage()
			cov[i][j], cov[j][i] = c, c
		}
	}
	return writers.MatrixResult{Replicate: rep, Names: names, Dist: dist, Coverage: cov}
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
