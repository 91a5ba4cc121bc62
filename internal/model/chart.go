package model

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/a1s/w1s/internal/dao"
	"github.com/a1s/w1s/internal/model1"
	"go.uber.org/zap"
)

// Chart fetches continent tags and aggregates them into tallies.
type Chart struct {
	loader

	rid       *dao.ResourceID
	factory   dao.Factory
	accessor  dao.Accessor
	tallies   model1.Tallies
	skipped   []*model1.MalformedRecordError
	listeners []ChartListener
	logger    *zap.Logger
	mx        sync.RWMutex
}

// NewChart returns a new chart model.
func NewChart(factory dao.Factory) *Chart {
	return &Chart{
		rid:     &dao.ContinentRID,
		factory: factory,
		logger:  zap.NewNop(),
	}
}

// Init resolves the chart accessor.
func (c *Chart) Init() error {
	acc, err := dao.AccessorFor(c.factory, c.rid)
	if err != nil {
		return err
	}

	c.mx.Lock()
	defer c.mx.Unlock()
	c.accessor = acc
	if l, ok := acc.(interface{ SetLogger(*zap.Logger) }); ok {
		l.SetLogger(c.logger)
	}

	return nil
}

// SetAccessor sets the DAO accessor.
func (c *Chart) SetAccessor(a dao.Accessor) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.accessor = a
}

// SetLogger sets the chart logger.
func (c *Chart) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.mx.Lock()
	defer c.mx.Unlock()
	c.logger = l
}

// SetCache sets the accessor object cache.
func (c *Chart) SetCache(rc *dao.ResourceCache) {
	c.mx.RLock()
	defer c.mx.RUnlock()
	if a, ok := c.accessor.(interface{ SetCache(*dao.ResourceCache) }); ok {
		a.SetCache(rc)
	}
}

// AddListener registers a chart listener.
func (c *Chart) AddListener(l ChartListener) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.listeners = append(c.listeners, l)
}

// RemoveListener unregisters a chart listener.
func (c *Chart) RemoveListener(l ChartListener) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for i, listener := range c.listeners {
		if listener == l {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// Peek returns the current tallies and skipped records.
func (c *Chart) Peek() (model1.Tallies, []*model1.MalformedRecordError) {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.tallies, c.skipped
}

// Watch loads the chart in the background. Results arriving after Stop or
// a later Watch are dropped.
func (c *Chart) Watch(ctx context.Context) error {
	c.mx.RLock()
	ready := c.accessor != nil
	c.mx.RUnlock()
	if !ready {
		return errors.New("chart model not initialized")
	}

	ctx, gen := c.start(ctx)
	go func() {
		if err := c.refresh(ctx, gen); err != nil {
			c.notifyLoadFailed(ctx, gen, err)
		}
	}()

	return nil
}

// Refresh fetches and aggregates immediately.
func (c *Chart) Refresh(ctx context.Context) error {
	return c.refresh(ctx, c.generation())
}

func (c *Chart) refresh(ctx context.Context, gen uint64) error {
	c.mx.RLock()
	accessor, logger := c.accessor, c.logger
	c.mx.RUnlock()

	if accessor == nil {
		return errors.New("no accessor configured")
	}
	oo, err := accessor.List(ctx)
	if err != nil {
		logger.Error("Chart load failed", zap.Error(err))
		return err
	}

	ll := make([]model1.Labeled, 0, len(oo))
	for _, o := range oo {
		if l, ok := o.(model1.Labeled); ok {
			ll = append(ll, l)
		}
	}
	tt, skipped := model1.Aggregate(ll)

	var listeners []ChartListener
	ok := c.publish(ctx, gen, func() {
		c.mx.Lock()
		defer c.mx.Unlock()
		c.tallies, c.skipped = tt, skipped
		listeners = slices.Clone(c.listeners)
	})
	if !ok {
		logger.Debug("Dropping stale chart load")
		return ctx.Err()
	}
	for _, s := range skipped {
		logger.Warn("Skipping continent record", zap.Error(s))
	}
	for _, l := range listeners {
		l.ChartDataChanged(tt, len(skipped))
	}

	return nil
}

// Stop cancels any pending load.
func (c *Chart) Stop() {
	c.stop()
}

func (c *Chart) notifyLoadFailed(ctx context.Context, gen uint64, err error) {
	var listeners []ChartListener
	ok := c.publish(ctx, gen, func() {
		c.mx.RLock()
		defer c.mx.RUnlock()
		listeners = slices.Clone(c.listeners)
	})
	if !ok {
		return
	}
	for _, l := range listeners {
		l.ChartLoadFailed(err)
	}
}
