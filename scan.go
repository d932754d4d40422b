// SPDX-License-Identifier: MIT
package tazza

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/tazza/lexer"
)

type (
	// Result holds the outcome of scanning one file.
	Result struct {
		Err    error
		Path   string
		Tokens []lexer.Token
	}
)

// Driver errors.
var (
	ErrReadSource = errors.New("failed to read source")
	ErrNoBackend  = errors.New("execution is not available")
	ErrPool       = errors.New("scan pool failure")
)

// ScanFile reads the whole file at path, then scans it.
func ScanFile(ctx context.Context, l *lexer.Lexer, path string) (tokens []lexer.Token, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrReadSource, path, err)
	}

	return l.Scan(ctx, path, string(data))
}

// ScanFiles scans each path on a pool of workers, a workers value < 1 uses runtime.NumCPU.
//
// Results follow the order of paths; each file fails independently. The returned error only
// reports pool failures.
func ScanFiles(ctx context.Context, l *lexer.Lexer, paths []string, workers int) (results []Result, err error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPool, err)
	}
	defer pool.Release()

	results = make([]Result, len(paths))
	wg := new(sync.WaitGroup)

	for index := range paths {
		index, path := index, paths[index]

		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()

			tokens, scanErr := ScanFile(ctx, l, path)
			results[index] = Result{Path: path, Tokens: tokens, Err: scanErr}
		}); err != nil {
			wg.Done()
			wg.Wait()

			return nil, fmt.Errorf("%w: %v", ErrPool, err)
		}
	}
	wg.Wait()

	if cfg := l.Config(); cfg.Debug {
		cfg.Logger.Debugf("scanned %d file(s) with %d worker(s)", len(paths), workers)
	}

	return
}

// Process scans the Invocation's source file & applies its command.
//
// Code generation & execution are not available: a C output request is reported as a warning,
// a run request fails with ErrNoBackend after a successful scan.
func Process(ctx context.Context, l *lexer.Lexer, inv *Invocation) (tokens []lexer.Token, err error) {
	logger := l.Config().Logger.WithField("file", inv.FilePath())

	if tokens, err = ScanFile(ctx, l, inv.FilePath()); err != nil {
		return
	}
	logger.WithField("tokens", len(tokens)).Debug("scan complete")

	if inv.GetC() {
		logger.Warn("C output is not available")
	}

	if inv.Execute() {
		err = fmt.Errorf("%w: %s", ErrNoBackend, inv.FilePath())
	}

	return
}
