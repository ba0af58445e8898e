// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParseRequest names one source file to be translated into a unit and
// added to dst. It is the item a dispatcher posts to a [Pool]'s work
// queue, per spec.md §5's bounded work-queue deployment model: the core
// does not implement this queue itself, but a translator instance must
// be driveable by one, and Pool is the reference implementation.
type ParseRequest struct {
	Path     string
	Language Language

	// UnitAttrs lets the dispatcher pre-fill directory/version/etc.;
	// Filename is always taken from Path.
	Directory string
	Version   string
}

// Pool runs a bounded number of ParseRequests concurrently, each against
// its own translator instance, and adds the resulting units to dst in
// the order their translations finish, which is not necessarily
// submission order. The appends are made one at a time by Wait, since
// an Archive's Writer is explicitly not safe for concurrent writes.
type Pool struct {
	dst     *Archive
	group   *errgroup.Group
	ctx     context.Context
	results chan parseResult
	done    chan struct{}
}

type parseResult struct {
	req  ParseRequest
	unit Unit
	err  error
}

// NewPool returns a Pool bounded to concurrency simultaneous translations,
// all of whose successful results are appended to dst, in the order they
// finish, by the time Wait returns.
func NewPool(ctx context.Context, dst *Archive, concurrency int) *Pool {
	group, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		group.SetLimit(concurrency)
	}
	return &Pool{
		dst:     dst,
		group:   group,
		ctx:     gctx,
		results: make(chan parseResult, 64),
		done:    make(chan struct{}),
	}
}

// Submit queues one ParseRequest. It must not be called after Wait.
func (p *Pool) Submit(req ParseRequest) {
	p.group.Go(func() error {
		u, err := TranslateFile(p.ctx, req.Path, req.Language, p.dst.Options())
		if err != nil {
			p.results <- parseResult{req: req, err: err}
			return nil // a single unit's failure does not cancel the pool
		}
		if req.Directory != "" {
			u.Directory = req.Directory
		}
		if req.Version != "" {
			u.Version = req.Version
		}
		p.results <- parseResult{req: req, unit: u}
		return nil
	})
}

// Wait blocks until every submitted request has completed, appending
// each successfully translated unit to the destination archive (in the
// order results arrive, not necessarily submission order — callers
// needing strict ordering should not rely on Pool for that), and
// returns the first UnregisteredExtension/IoError/EncodingError
// encountered, if any, after every request has been drained.
func (p *Pool) Wait() error {
	go func() {
		p.group.Wait()
		close(p.results)
	}()
	var firstErr error
	for r := range p.results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		if err := p.dst.AddUnit(p.ctx, r.unit); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
