// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of a1s

package ui

import (
	"sort"
	"sync"

	"github.com/derailed/tcell/v2"
)

// Rune keys. tcell reports printable keys as KeyRune, bindings use the rune as key.
const (
	Key1            = tcell.Key('1')
	Key2            = tcell.Key('2')
	Key3            = tcell.Key('3')
	Key4            = tcell.Key('4')
	KeyN            = tcell.Key('n')
	KeyP            = tcell.Key('p')
	KeyQ            = tcell.Key('q')
	KeySlash        = tcell.Key('/')
	KeyLeftBracket  = tcell.Key('[')
	KeyRightBracket = tcell.Key(']')
)

var keyNames = map[tcell.Key]string{
	KeySlash:        "/",
	KeyLeftBracket:  "[",
	KeyRightBracket: "]",
}

// ActionHandler handles a keyboard command.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, display bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: display}
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// KeyActions tracks mappings between keystrokes and actions.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns a new instance.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Add adds a new key action.
func (a *KeyActions) Add(k tcell.Key, ka KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.actions[k] = ka
}

// Bulk adds multiple actions.
func (a *KeyActions) Bulk(km KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()
	for k, v := range km {
		a.actions[k] = v
	}
}

// Get fetches an action for a key.
func (a *KeyActions) Get(k tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()
	v, ok := a.actions[k]
	return v, ok
}

// Delete removes actions.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()
	for _, k := range kk {
		delete(a.actions, k)
	}
}

// Len returns the number of bound keys.
func (a *KeyActions) Len() int {
	a.mx.RLock()
	defer a.mx.RUnlock()
	return len(a.actions)
}

// Hints returns the visible actions as sorted menu hints.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	hh := make(MenuHints, 0, len(a.actions))
	for k, v := range a.actions {
		if !v.Visible {
			continue
		}
		hh = append(hh, MenuHint{
			Mnemonic:    KeyName(k),
			Description: v.Description,
			Visible:     v.Visible,
		})
	}
	sort.Sort(hh)

	return hh
}

// KeyName returns the display name of a key.
func KeyName(k tcell.Key) string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if n, ok := tcell.KeyNames[k]; ok {
		return n
	}
	if k >= ' ' && k <= '~' {
		return string(rune(k))
	}
	return "?"
}
