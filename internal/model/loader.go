package model

import (
	"context"
	"sync"
)

// loader scopes background loads to a cancellable context. Each start bumps
// a generation so results from an earlier load can be told apart.
type loader struct {
	cancelFn context.CancelFunc
	gen      uint64
	mx       sync.Mutex
}

func (l *loader) start(ctx context.Context) (context.Context, uint64) {
	l.mx.Lock()
	defer l.mx.Unlock()

	if l.cancelFn != nil {
		l.cancelFn()
	}
	ctx, l.cancelFn = context.WithCancel(ctx)
	l.gen++

	return ctx, l.gen
}

func (l *loader) generation() uint64 {
	l.mx.Lock()
	defer l.mx.Unlock()
	return l.gen
}

// publish runs commit only if gen is still the live load. Stop and start
// wait for commit to return, so a result is either published before they
// return or never.
func (l *loader) publish(ctx context.Context, gen uint64, commit func()) bool {
	l.mx.Lock()
	defer l.mx.Unlock()
	if ctx.Err() != nil || gen != l.gen {
		return false
	}
	commit()

	return true
}

func (l *loader) stop() {
	l.mx.Lock()
	defer l.mx.Unlock()

	if l.cancelFn != nil {
		l.cancelFn()
		l.cancelFn = nil
	}
	l.gen++
}
