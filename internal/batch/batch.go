// Package batch designs many requests at once, read from a workbook or a
// JSON array, and writes the results back to a workbook.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gocivil/internal/engine"
)

// Item is one parsed input row.
type Item struct {
	Row     int // 1-based source row or array position
	Request engine.Request
	Err     error // parse error, if any
}

// Outcome is the design result for one item.
type Outcome struct {
	Row    int
	Name   string
	Result *engine.Result
	Err    error
}

// ReadJSON reads a JSON array of requests.
func ReadJSON(r io.Reader) ([]Item, error) {
	var reqs []engine.Request
	if err := json.NewDecoder(r).Decode(&reqs); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	items := make([]Item, len(reqs))
	for i, req := range reqs {
		items[i] = Item{Row: i + 1, Request: req}
	}
	return items, nil
}

// Runner designs items on a bounded pool of goroutines.
type Runner struct {
	Engine  *engine.Engine
	Workers int
	Log     *zap.Logger
}

// Run designs every item and returns the outcomes in input order. A failed
// design is recorded on its outcome and does not stop the others; only a
// cancelled context aborts the run.
func (r *Runner) Run(ctx context.Context, items []Item) ([]Outcome, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	eng := r.Engine
	if eng == nil {
		eng = engine.New(log)
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([]Outcome, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, it := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o := Outcome{Row: it.Row, Name: it.Request.Name, Err: it.Err}
			if o.Err == nil {
				o.Result, o.Err = eng.Design(it.Request)
			}
			if o.Err != nil {
				log.Warn("design failed", zap.Int("row", it.Row), zap.String("name", o.Name), zap.Error(o.Err))
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, o := range out {
		if o.Err != nil {
			failed++
		}
	}
	log.Info("batch complete", zap.Int("items", len(items)), zap.Int("failed", failed), zap.Int("workers", workers))
	return out, nil
}
