package winui

import "fmt"

// Event is an application-level event resolved from a raw message.
// One raw message classifies to zero, one or two Events.
type Event uint32

const (
	Unknown Event = iota
	MouseUp
	MouseDown
	Focus
	Click
	ValueChanged
	MaxValue
	Removed
	Resize
	MenuOpen
	MenuClose
	SelectionChanged
)

func (e Event) String() string {
	switch e {
	case MouseUp:
		return "mouseup"
	case MouseDown:
		return "mousedown"
	case Focus:
		return "focus"
	case Click:
		return "click"
	case ValueChanged:
		return "valuechanged"
	case MaxValue:
		return "maxvalue"
	case Removed:
		return "removed"
	case Resize:
		return "resize"
	case MenuOpen:
		return "menuopen"
	case MenuClose:
		return "menuclose"
	case SelectionChanged:
		return "selectionchanged"
	}
	return "unknown"
}

// Callback payload shapes. Every callback receives the transient Ui
// view and the identifier of the control the event fired on; the rest
// of the arguments depend on the event.
type (
	// PlainFunc handles Click, ValueChanged, MaxValue, Removed,
	// MenuOpen and MenuClose.
	PlainFunc func(ui *Ui, id Id)

	// MouseFunc handles MouseUp and MouseDown. buttons and modifiers
	// are ORed Btn* / Mod* masks.
	MouseFunc func(ui *Ui, id Id, x, y int32, buttons, modifiers uint32)

	// FocusFunc handles Focus. focused reports whether focus was
	// gained or lost.
	FocusFunc func(ui *Ui, id Id, focused bool)

	// ResizeFunc handles Resize with the window origin and size.
	ResizeFunc func(ui *Ui, id Id, x, y int32, w, h uint32)

	// SelectionFunc handles SelectionChanged with the selected index
	// and its label text.
	SelectionFunc func(ui *Ui, id Id, index uint32, text string)
)

// Callback pairs an Event with the handler shape that event
// guarantees. Construct values with the On* functions; the zero value
// is invalid.
type Callback struct {
	event     Event
	plain     PlainFunc
	mouse     MouseFunc
	focus     FocusFunc
	resize    ResizeFunc
	selection SelectionFunc
}

// Event returns the event this callback is registered for.
func (c Callback) Event() Event { return c.event }

func OnMouseUp(f MouseFunc) Callback   { return Callback{event: MouseUp, mouse: f} }
func OnMouseDown(f MouseFunc) Callback { return Callback{event: MouseDown, mouse: f} }
func OnFocus(f FocusFunc) Callback     { return Callback{event: Focus, focus: f} }
func OnResize(f ResizeFunc) Callback   { return Callback{event: Resize, resize: f} }

func OnClick(f PlainFunc) Callback        { return Callback{event: Click, plain: f} }
func OnValueChanged(f PlainFunc) Callback { return Callback{event: ValueChanged, plain: f} }
func OnMaxValue(f PlainFunc) Callback     { return Callback{event: MaxValue, plain: f} }
func OnRemoved(f PlainFunc) Callback      { return Callback{event: Removed, plain: f} }
func OnMenuOpen(f PlainFunc) Callback     { return Callback{event: MenuOpen, plain: f} }
func OnMenuClose(f PlainFunc) Callback    { return Callback{event: MenuClose, plain: f} }

func OnSelectionChanged(f SelectionFunc) Callback {
	return Callback{event: SelectionChanged, selection: f}
}

func (c Callback) valid() error {
	switch c.event {
	case MouseUp, MouseDown:
		if c.mouse == nil {
			return fmt.Errorf("winui: %s callback without mouse handler", c.event)
		}
	case Focus:
		if c.focus == nil {
			return fmt.Errorf("winui: focus callback without focus handler")
		}
	case Resize:
		if c.resize == nil {
			return fmt.Errorf("winui: resize callback without resize handler")
		}
	case SelectionChanged:
		if c.selection == nil {
			return fmt.Errorf("winui: selection callback without selection handler")
		}
	case Click, ValueChanged, MaxValue, Removed, MenuOpen, MenuClose:
		if c.plain == nil {
			return fmt.Errorf("winui: %s callback without handler", c.event)
		}
	default:
		return fmt.Errorf("winui: callback for unregistrable event %s", c.event)
	}
	return nil
}
