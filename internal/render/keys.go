package render

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bark-log/bark/internal/input"
)

// translateKey converts a bubbletea key message into the dispatcher's
// backend-neutral Event, so internal/input never imports bubbletea.
func translateKey(msg tea.KeyMsg) input.Event {
	switch msg.Type {
	case tea.KeyEnter:
		return input.SpecialEvent(input.KeyEnter)
	case tea.KeyEsc:
		return input.SpecialEvent(input.KeyEsc)
	case tea.KeyTab:
		return input.SpecialEvent(input.KeyTab)
	case tea.KeyShiftTab:
		return input.SpecialEvent(input.KeyBacktab)
	case tea.KeyBackspace:
		return input.SpecialEvent(input.KeyBackspace)
	case tea.KeyUp:
		return input.SpecialEvent(input.KeyUp)
	case tea.KeyDown:
		return input.SpecialEvent(input.KeyDown)
	case tea.KeyLeft:
		return input.SpecialEvent(input.KeyLeft)
	case tea.KeyRight:
		return input.SpecialEvent(input.KeyRight)
	case tea.KeyPgUp:
		return input.SpecialEvent(input.KeyPgUp)
	case tea.KeyPgDown:
		return input.SpecialEvent(input.KeyPgDn)
	case tea.KeyCtrlU:
		return input.CtrlEvent('u')
	case tea.KeyCtrlD:
		return input.CtrlEvent('d')
	case tea.KeyCtrlR:
		return input.CtrlEvent('r')
	case tea.KeyCtrlW:
		return input.CtrlEvent('w')
	case tea.KeyRunes, tea.KeySpace:
		if len(msg.Runes) == 1 {
			return input.RuneEvent(msg.Runes[0])
		}
		if msg.Type == tea.KeySpace {
			return input.RuneEvent(' ')
		}
	}
	return input.Event{}
}

// translateMouse converts a bubbletea mouse message into an Event.
func translateMouse(msg tea.MouseMsg) input.Event {
	switch msg.Type {
	case tea.MouseWheelUp:
		return input.MouseEvent(input.Mouse{Kind: input.MouseWheelUp, Row: msg.Y, Col: msg.X})
	case tea.MouseWheelDown:
		return input.MouseEvent(input.Mouse{Kind: input.MouseWheelDown, Row: msg.Y, Col: msg.X})
	case tea.MouseLeft:
		return input.MouseEvent(input.Mouse{Kind: input.MouseLeftClick, Row: msg.Y, Col: msg.X})
	}
	return input.Event{}
}
