package ui

import (
	"sync"

	"github.com/derailed/tview"
)

// Pages stacks named pages. Only the top page is visible.
type Pages struct {
	*tview.Pages

	stack   []string
	pageMap map[string]tview.Primitive
	mx      sync.RWMutex
}

// NewPages returns a new pages manager.
func NewPages() *Pages {
	return &Pages{
		Pages:   tview.NewPages(),
		pageMap: make(map[string]tview.Primitive),
	}
}

// Push adds a page on top of the stack.
func (p *Pages) Push(name string, page tview.Primitive) {
	p.mx.Lock()
	p.stack = append(p.stack, name)
	p.pageMap[name] = page
	p.mx.Unlock()

	p.AddPage(name, page, true, true)
	p.SwitchToPage(name)
}

// Pop removes the top page and returns the new top.
func (p *Pages) Pop() (string, bool) {
	p.mx.Lock()
	if len(p.stack) == 0 {
		p.mx.Unlock()
		return "", false
	}
	name := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	delete(p.pageMap, name)
	var top string
	if len(p.stack) > 0 {
		top = p.stack[len(p.stack)-1]
	}
	p.mx.Unlock()

	p.RemovePage(name)
	if top != "" {
		p.SwitchToPage(top)
	}

	return top, true
}

// Current returns the top page name.
func (p *Pages) Current() string {
	p.mx.RLock()
	defer p.mx.RUnlock()

	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

// CurrentPage returns the top page primitive.
func (p *Pages) CurrentPage() tview.Primitive {
	name := p.Current()

	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.pageMap[name]
}

// StackSize returns the stack depth.
func (p *Pages) StackSize() int {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return len(p.stack)
}
