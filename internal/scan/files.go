// Package scan tokenizes files in bulk and re-tokenizes them on change.
package scan

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dfalex/lexer"
)

type Result struct {
	Path   string
	Tokens []lexer.Token
	Err    error
}

type Options struct {
	// Workers bounds concurrency; zero means runtime.NumCPU().
	Workers int
	// Progress receives a progress bar when non-nil.
	Progress io.Writer
}

// Collect expands directories in paths to the regular files beneath them.
// When exts is non-empty only files with one of those extensions are kept
// from directories; explicitly named files are always kept.
func Collect(paths []string, exts []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if len(exts) == 0 || slices.Contains(exts, filepath.Ext(path)) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// Files tokenizes every path with its own clone of lx. Results come back in
// the order of paths. A file that fails to read or lex records the error in
// its Result; only cancellation aborts the whole run.
func Files(ctx context.Context, logger *zap.Logger, lx *lexer.Lexer, paths []string, opts Options) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	out := opts.Progress
	if out == nil {
		out = io.Discard
	}
	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("lexing"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = File(lx.Clone(), path)
			if err := results[i].Err; err != nil {
				logger.Warn("lex failed", zap.String("file", path), zap.Error(err))
			} else {
				logger.Debug("lexed", zap.String("file", path), zap.Int("tokens", len(results[i].Tokens)))
			}
			_ = bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = bar.Finish()
	return results, nil
}

// File tokenizes a single file with l, which it resets.
func File(l *lexer.Lexer, path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	l.Reset(string(data))
	toks, err := l.All()
	return Result{Path: path, Tokens: toks, Err: err}
}
