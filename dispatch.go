package winui

import "fmt"

// ProcessMessage is the entry trampoline core. It classifies raw,
// runs every matching callback, then forwards raw down the subclass
// chain and returns the native result. Dispatch outcome never
// suppresses default processing, so native behavior (text insertion,
// visual toggling) always proceeds.
func (r *Registry) ProcessMessage(raw RawMessage) uintptr {
	r.handleEvents(raw)
	return r.sys.Forward(raw)
}

// handleEvents resolves raw to events and runs the callbacks bound to
// them on the resolved control. Messages for windows this registry
// does not manage fall through silently; that is the normal case, not
// an error.
func (r *Registry) handleEvents(raw RawMessage) {
	events, target := classify(r, raw)

	data := r.lookup(target)
	if data == nil {
		return
	}

	ui := newUi(r)
	defer ui.detach()

	for _, event := range events {
		for _, b := range data.callbacks[event] {
			r.invoke(ui, data, b.cb, raw)
		}
	}
}

// invoke runs one callback with the payload its event guarantees. A
// variant mismatch here means the classification tables and the
// callback table disagree, which is a bug in this package, not a
// runtime condition.
func (r *Registry) invoke(ui *Ui, data *controlData, cb Callback, raw RawMessage) {
	switch cb.event {
	case MouseUp, MouseDown:
		x, y, buttons, modifiers := mouseArgs(raw)
		cb.mouse(ui, data.id, x, y, buttons, modifiers)
	case Click, ValueChanged, MaxValue, Removed, MenuOpen, MenuClose:
		cb.plain(ui, data.id)
	case Resize:
		x, y, w, h := sizeRect(r.sys, data.handle, raw)
		cb.resize(ui, data.id, x, y, w, h)
	case Focus:
		cb.focus(ui, data.id, focusFlag(raw))
	case SelectionChanged:
		if data.typ != ControlComboBox {
			panic(fmt.Sprintf("winui: selection payload for %s control %q", data.typ, data.id))
		}
		index, text := comboSelection(r.sys, data.handle)
		cb.selection(ui, data.id, index, text)
	default:
		panic(fmt.Sprintf("winui: callback bound to unresolvable event %s", cb.event))
	}
}
