// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/ryo1kato/mllgrep/pkg/boundary"
	"github.com/ryo1kato/mllgrep/pkg/fileio"
	"github.com/ryo1kato/mllgrep/pkg/recsearch"
	"github.com/ryo1kato/mllgrep/pkg/render"
	"github.com/ryo1kato/mllgrep/pkg/segment"
	"github.com/sirupsen/logrus"
)

// Exit statuses follow conventional search-tool semantics
const (
	ExitMatch   = 0
	ExitNoMatch = 1
)

// Config holds the compiled per-run engine pieces. The CLI layer builds
// it; the driver owns it for the duration of the run.
type Config struct {
	PatternSet *recsearch.PatternSet
	Separator  *boundary.Separator
	Mode       string
	Out        io.Writer
	ErrOut     io.Writer
}

// Run processes the named sources strictly sequentially, in argument
// order, pulling one record at a time. It returns the process exit
// status: ExitMatch if at least one record matched anywhere and no source
// failed, ExitNoMatch otherwise.
func Run(cfg Config, paths []string) int {
	if cfg.ErrOut == nil {
		cfg.ErrOut = os.Stderr
	}
	renderer := render.MakeRenderer(cfg.Out, cfg.Mode, cfg.PatternSet)
	multiSource := len(paths) > 1
	sourceFailed := false

	for _, path := range paths {
		src, err := fileio.Open(path)
		if err != nil {
			fmt.Fprintf(cfg.ErrOut, "mllgrep: %v\n", err)
			sourceFailed = true
			continue
		}
		err = runSource(cfg, renderer, src)
		src.Close()
		if err != nil {
			if isBrokenPipe(err) {
				// Downstream went away; this is a normal termination,
				// not a failure.
				return statusFor(renderer, sourceFailed)
			}
			fmt.Fprintf(cfg.ErrOut, "mllgrep: %s: %v\n", src.Name, err)
			renderer.AbortSource()
			sourceFailed = true
			continue
		}
		if err := renderer.FinishSource(src.Name, multiSource); err != nil {
			if isBrokenPipe(err) {
				return statusFor(renderer, sourceFailed)
			}
			fmt.Fprintf(cfg.ErrOut, "mllgrep: %v\n", err)
			sourceFailed = true
		}
	}

	logrus.Debugf("run finished: %d matching records, sourceFailed=%v",
		renderer.Counters().Total, sourceFailed)
	return statusFor(renderer, sourceFailed)
}

func statusFor(renderer *render.Renderer, sourceFailed bool) int {
	if sourceFailed {
		return ExitNoMatch
	}
	if renderer.Counters().Total > 0 {
		return ExitMatch
	}
	return ExitNoMatch
}

// runSource pulls records from one source until EOF
func runSource(cfg Config, renderer *render.Renderer, src *fileio.Source) error {
	seg := segment.New(src, cfg.Separator)
	records, matched := 0, 0
	for {
		rec, err := seg.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		records++
		if !cfg.PatternSet.Match(rec) {
			continue
		}
		matched++
		if err := renderer.EmitRecord(rec); err != nil {
			return err
		}
	}
	logrus.Debugf("%s: %d records, %d matched", src.Name, records, matched)
	return nil
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
