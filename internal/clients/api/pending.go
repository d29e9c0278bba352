package api

import (
	"context"

	"max.ks1230/slots-tracker/internal/entity/record"
)

// Pending is the handle of a request that is still in flight.
type Pending struct {
	done chan struct{}
	rec  record.Record
	err  error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Resolved returns an already settled handle.
func Resolved(rec record.Record, err error) *Pending {
	p := newPending()
	p.resolve(rec, err)
	return p
}

func (p *Pending) resolve(rec record.Record, err error) {
	p.rec, p.err = rec, err
	close(p.done)
}

// Done is closed once the response has been received.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the response arrives or ctx ends. Giving up on ctx does
// not cancel the request itself.
func (p *Pending) Wait(ctx context.Context) (record.Record, error) {
	select {
	case <-p.done:
		return p.rec, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
