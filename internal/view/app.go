// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2024 a1s Contributors

package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/a1s/w1s/internal/config"
	"github.com/a1s/w1s/internal/dao"
	"github.com/a1s/w1s/internal/slogs"
	"github.com/a1s/w1s/internal/ui"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"go.uber.org/zap"
)

const (
	mainPage = "main"
	infoFmt  = " [aqua::b]%s[-::-] %s  [gray::]profile:[-::] %s  [gray::]endpoint:[-::] %s"
)

// App represents the main application container.
type App struct {
	*tview.Application

	version string
	config  *config.Config
	Main    *ui.Pages
	Content *ui.Pages
	factory dao.Factory
	cache   *dao.ResourceCache
	info    *tview.TextView
	menu    *ui.Menu
	flash   *Flash
	logger  *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	running bool
	mx      sync.RWMutex
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, version string) *App {
	a := App{
		Application: tview.NewApplication(),
		version:     version,
		config:      cfg,
		Main:        ui.NewPages(),
		Content:     ui.NewPages(),
		info:        tview.NewTextView(),
		menu:        ui.NewMenu(),
		logger:      zap.NewNop(),
	}
	a.flash = NewFlash(&a)
	a.ctx, a.cancel = context.WithCancel(context.Background())
	a.Application.SetInputCapture(a.keyboard)

	return &a
}

// SetLogger sets the application logger.
func (a *App) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	a.mx.Lock()
	defer a.mx.Unlock()
	a.logger = l
}

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger {
	a.mx.RLock()
	defer a.mx.RUnlock()
	return a.logger
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// GetFactory returns the resource factory.
func (a *App) GetFactory() dao.Factory {
	a.mx.RLock()
	defer a.mx.RUnlock()
	return a.factory
}

// SetFactory sets the resource factory.
func (a *App) SetFactory(f dao.Factory) {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.factory = f
}

// Cache returns the shared object cache.
func (a *App) Cache() *dao.ResourceCache {
	a.mx.RLock()
	defer a.mx.RUnlock()
	return a.cache
}

// SetCache sets the shared object cache.
func (a *App) SetCache(c *dao.ResourceCache) {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.cache = c
}

// Context returns the application context. It is canceled on Stop.
func (a *App) Context() context.Context {
	return a.ctx
}

// Flash returns the flash message handler.
func (a *App) Flash() *Flash {
	return a.flash
}

// Init builds the layout and the countries view.
func (a *App) Init() error {
	if a.GetFactory() == nil {
		return errors.New("factory not initialized")
	}
	if a.config == nil || a.config.W1s == nil {
		return errors.New("config not initialized")
	}

	a.info.SetDynamicColors(true)
	a.info.SetText(fmt.Sprintf(infoFmt,
		config.AppName,
		a.version,
		a.config.W1s.ActiveProfile(),
		a.config.W1s.ActiveEndpoint(),
	))

	v := NewCountries(a)
	if err := v.Init(a.ctx); err != nil {
		return fmt.Errorf("failed to initialize %s view: %w", v.Name(), err)
	}
	a.Content.Push(v.Name(), v)
	a.menu.HydrateMenu(append(v.Hints(), a.hints()...))

	a.Main.Push(mainPage, a.buildLayout())
	a.SetRoot(a.Main, true)
	a.EnableMouse(a.config.W1s.UI.EnableMouse)
	a.SetFocus(v)

	return nil
}

// Run starts the current view and the event loop.
func (a *App) Run() error {
	a.mx.Lock()
	a.running = true
	a.mx.Unlock()

	if c, ok := a.Content.CurrentPage().(ui.Component); ok {
		c.Start()
	}
	a.Logger().Info("Starting UI",
		zap.String(slogs.EndpointKey, a.config.W1s.ActiveEndpoint()),
		zap.String(slogs.ProfileKey, a.config.W1s.ActiveProfile()),
	)

	return a.Application.Run()
}

// Stop stops the current view, then the application.
func (a *App) Stop() {
	if c, ok := a.Content.CurrentPage().(ui.Component); ok {
		c.Stop()
	}
	a.cancel()

	a.mx.Lock()
	defer a.mx.Unlock()
	a.running = false
	a.Application.Stop()
}

// IsRunning returns whether the application is currently running.
func (a *App) IsRunning() bool {
	a.mx.RLock()
	defer a.mx.RUnlock()
	return a.running
}

// QueueUpdateDraw queues a function to be executed on the UI goroutine.
func (a *App) QueueUpdateDraw(fn func()) {
	go a.Application.QueueUpdateDraw(fn)
}

// ShowDetail overlays a dialog on the main page.
func (a *App) ShowDetail(title, body string, done func()) {
	d := ui.DetailDialog(a.Main, title, body, func() {
		if done != nil {
			done()
		}
		a.SetFocus(a.Content.CurrentPage())
	})
	d.Show()
	a.SetFocus(d)
}

func (a *App) hints() ui.MenuHints {
	return ui.MenuHints{
		{Mnemonic: "?", Description: "Help", Visible: true},
		{Mnemonic: "Ctrl-R", Description: "Refresh", Visible: true},
		{Mnemonic: "q", Description: "Quit", Visible: true},
	}
}

// buildLayout creates the main UI layout.
func (a *App) buildLayout() *tview.Flex {
	bottomBar := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.flash, 1, 0, false).
		AddItem(a.menu, ui.MenuRows, 0, false)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.info, 1, 0, false).
		AddItem(a.Content, 0, 1, true).
		AddItem(bottomBar, ui.MenuRows+1, 0, false)
}

// keyboard handles global keyboard events.
func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if a.Main.HasPage(ui.DetailPage) {
		return evt
	}
	if name, _ := a.Content.GetFrontPage(); name == helpPage {
		return evt
	}
	if f, ok := a.Content.CurrentPage().(interface{ FilterActive() bool }); ok && f.FilterActive() {
		return evt
	}

	switch evt.Key() {
	case tcell.KeyCtrlC:
		a.Stop()
		return nil
	case tcell.KeyCtrlR:
		a.refresh()
		return nil
	case tcell.KeyRune:
		switch evt.Rune() {
		case 'q':
			a.Stop()
			return nil
		case '?':
			a.showHelp()
			return nil
		}
	}

	return evt
}

// showHelp overlays the keybindings on the content area.
func (a *App) showHelp() {
	h, ok := a.Content.CurrentPage().(ui.Hinter)
	if !ok {
		return
	}
	help := NewHelp(h.Hints())
	help.SetCloseFn(func() {
		a.Content.RemovePage(helpPage)
		a.SetFocus(a.Content.CurrentPage())
	})
	a.Content.AddPage(helpPage, help, true, true)
	a.SetFocus(help)
}

// refresh reloads the current view.
func (a *App) refresh() {
	r, ok := a.Content.CurrentPage().(interface{ Refresh() })
	if !ok {
		return
	}
	a.flash.Info("Refreshing...")
	r.Refresh()
}
