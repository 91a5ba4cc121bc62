package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/a1s/w1s/internal/dao"
	"github.com/a1s/w1s/internal/model"
	"github.com/a1s/w1s/internal/model1"
	"github.com/a1s/w1s/internal/render"
	"github.com/a1s/w1s/internal/slogs"
	"github.com/a1s/w1s/internal/ui"
	"github.com/derailed/tview"
	"go.uber.org/zap"
)

const (
	tableWeight = 3
	chartWeight = 2
)

var _ ui.Component = (*Countries)(nil)

// Countries shows the country table next to the continent chart.
type Countries struct {
	*tview.Flex

	app     *App
	table   *ui.Table
	pager   *ui.Pager
	chart   *ui.Chart
	model   *model.Table
	tallies *model.Chart
	noChart bool
	ctx     context.Context
	mx      sync.RWMutex
}

// NewCountries returns a new countries view.
func NewCountries(app *App) *Countries {
	return &Countries{
		Flex:  tview.NewFlex(),
		app:   app,
		table: ui.NewTable(&dao.CountryRID),
		pager: ui.NewPager(),
		chart: ui.NewChart(),
	}
}

// Name returns the view name.
func (c *Countries) Name() string {
	return dao.CountryRID.String()
}

// Init wires the models to the widgets.
func (c *Countries) Init(ctx context.Context) error {
	c.ctx = ctx
	cfg := c.app.Config().W1s
	logger := c.app.Logger().With(zap.String(slogs.RIDKey, c.Name()))

	c.model = model.NewTable(&dao.CountryRID, c.app.GetFactory(), cfg.PageSize)
	c.model.SetLogger(logger)
	c.model.SetComparer(model1.NewComparer(cfg.Locale))
	if err := c.model.Init(); err != nil {
		return err
	}
	c.model.SetCache(c.app.Cache())
	c.model.AddListener(c)

	r, err := model.RendererFor(&dao.CountryRID)
	if err != nil {
		return err
	}
	c.table.Init()
	c.table.SetModel(c.model)
	c.table.SetColorerFn(r.ColorerFunc())
	c.table.SetSelectFn(c.showDetail)

	c.noChart = cfg.UI.NoChart
	if !c.noChart {
		c.tallies = model.NewChart(c.app.GetFactory())
		c.tallies.SetLogger(c.app.Logger().With(zap.String(slogs.RIDKey, dao.ContinentRID.String())))
		if err := c.tallies.Init(); err != nil {
			return err
		}
		c.tallies.SetCache(c.app.Cache())
		c.tallies.AddListener(c)
	}
	c.layout()

	return nil
}

func (c *Countries) layout() {
	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(c.table, 0, 1, true).
		AddItem(c.pager, 1, 0, false)

	c.SetDirection(tview.FlexColumn)
	c.AddItem(left, 0, tableWeight, true)
	if !c.noChart {
		c.AddItem(c.chart, 0, chartWeight, false)
	}
}

// Start loads both models.
func (c *Countries) Start() {
	if err := c.model.Watch(c.ctx); err != nil {
		c.app.Flash().Err(err)
	}
	if c.tallies == nil {
		return
	}
	if err := c.tallies.Watch(c.ctx); err != nil {
		c.app.Flash().Err(err)
	}
}

// Stop cancels pending loads. Late results are dropped.
func (c *Countries) Stop() {
	c.model.Stop()
	if c.tallies != nil {
		c.tallies.Stop()
	}
}

// Refresh drops cached data and reloads both models.
func (c *Countries) Refresh() {
	if conn := c.app.GetFactory().Client(); conn != nil {
		if i, ok := conn.(interface{ InvalidateCache() }); ok {
			i.InvalidateCache()
		}
	}
	if rc := c.app.Cache(); rc != nil {
		rc.Clear()
	}
	c.Start()
}

// Hints returns the view menu hints.
func (c *Countries) Hints() ui.MenuHints {
	return c.table.Hints()
}

// FilterActive returns true while the name filter is being edited.
func (c *Countries) FilterActive() bool {
	return c.table.FilterActive()
}

// Focus delegates focus to the table.
func (c *Countries) Focus(delegate func(p tview.Primitive)) {
	delegate(c.table)
}

func (c *Countries) showDetail(r model1.Record) {
	doc, err := render.Detail(r)
	if err != nil {
		c.model.SelectRecord(nil)
		c.app.Flash().Err(err)
		return
	}
	c.app.ShowDetail(render.SummaryTitle, render.HighlightYAML(doc), func() {
		c.model.SelectRecord(nil)
	})
}

// TableNoData implements model.TableListener.
func (c *Countries) TableNoData(data *model1.TableData) {
	c.TableDataChanged(data)
}

// TableDataChanged implements model.TableListener.
func (c *Countries) TableDataChanged(data *model1.TableData) {
	c.app.QueueUpdateDraw(func() {
		if c.table.UpdateUI(data) {
			c.pager.Update(data)
		}
	})
}

// TableLoadFailed implements model.TableListener.
func (c *Countries) TableLoadFailed(err error) {
	c.app.Logger().Error("Country load failed", zap.Error(err))
	c.app.QueueUpdateDraw(func() {
		c.table.ShowError(err)
		c.pager.SetText("")
	})
}

// ChartDataChanged implements model.ChartListener.
func (c *Countries) ChartDataChanged(tt model1.Tallies, skipped int) {
	c.app.QueueUpdateDraw(func() {
		c.chart.Update(tt, skipped)
	})
	if skipped > 0 {
		c.app.Flash().Warnf("Skipped %d malformed continent %s", skipped, plural(skipped, "record"))
	}
}

// ChartLoadFailed implements model.ChartListener.
func (c *Countries) ChartLoadFailed(err error) {
	c.app.Logger().Error("Continent load failed", zap.Error(err))
	c.app.QueueUpdateDraw(func() {
		c.chart.ShowError(err)
	})
}

func plural(n int, s string) string {
	if n == 1 {
		return s
	}
	return fmt.Sprintf("%ss", s)
}
