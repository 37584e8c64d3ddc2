package app

import (
	"github.com/gdamore/tcell/v2"

	"valentine/internal/page"
)

// Action represents a user request from the keyboard.
type Action uint8

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionActivate
	ActionMusic
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyRight, tcell.KeyDown:
		return ActionNext
	case tcell.KeyBacktab, tcell.KeyLeft, tcell.KeyUp:
		return ActionPrev
	case tcell.KeyEnter:
		return ActionActivate
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'l', 'L', 'j', 'J':
		return ActionNext
	case 'h', 'H', 'k', 'K':
		return ActionPrev
	case ' ':
		return ActionActivate
	case 'm', 'M':
		return ActionMusic
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch keyToAction(ev) {
	case ActionNext:
		a.moveFocus(1)
	case ActionPrev:
		a.moveFocus(-1)
	case ActionActivate:
		if a.focus != "" {
			a.page.Activate(a.focus)
		}
	case ActionMusic:
		a.page.Activate(page.ElMusicToggle)
	case ActionQuit:
		a.quit = true
	}
}

// moveFocus steps the keyboard focus through the buttons drawn last frame.
// Focusing a button counts as the pointer coming near it.
func (a *App) moveFocus(step int) {
	buttons := a.renderer.Buttons()
	if len(buttons) == 0 {
		a.focus = ""
		return
	}
	next := 0
	if step < 0 {
		next = len(buttons) - 1
	}
	for i, id := range buttons {
		if id == a.focus {
			next = (i + step + len(buttons)) % len(buttons)
			break
		}
	}
	a.focus = buttons[next]
	a.page.PointerOver(a.focus)
}

// handleMouse treats every motion over a button as proximity and a
// primary-button press as a click. A control that runs away from the
// pointer does not receive the click.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	id, _ := a.renderer.ButtonAt(x, y)

	moved := a.page.PointerOver(id)
	if moved {
		id = ""
	}
	a.hover = id

	down := ev.Buttons()&tcell.Button1 != 0
	if down && !a.pressed && id != "" {
		a.focus = id
		a.page.Activate(id)
	}
	a.pressed = down
}
