package winui

// classify maps a raw message to its application events and to the
// handle dispatch should resolve callbacks on. Most messages map
// directly; WM_COMMAND is overloaded and needs the originating
// control's type to mean anything.
func classify(r *Registry, raw RawMessage) ([]Event, Handle) {
	switch raw.Msg {
	case wmCommand:
		return mapCommand(r, raw)
	case wmLButtonUp, wmRButtonUp, wmMButtonUp:
		return []Event{MouseUp}, raw.Hwnd
	case wmLButtonDown, wmRButtonDown, wmMButtonDown:
		return []Event{MouseDown}, raw.Hwnd
	case wmActivateApp:
		return []Event{Focus}, raw.Hwnd
	case wmSizing, wmSize:
		return []Event{Resize}, raw.Hwnd
	case DestroyNotice:
		return []Event{Removed}, raw.Hwnd
	}
	return []Event{Unknown}, raw.Hwnd
}

// mapCommand resolves an overloaded WM_COMMAND notification. The code
// sits in the high word of WParam and the LParam carries the handle of
// the control that sent it; the code is scoped to that control's
// family. Matched notifications resolve to the originating control,
// never to the window the message was nominally addressed to.
func mapCommand(r *Registry, raw RawMessage) ([]Event, Handle) {
	code := hiword(raw.WParam)
	owner := Handle(raw.LParam)

	data := r.lookup(owner)
	if data == nil {
		// Control data was never initialized or already freed; do not
		// guess at the meaning of the code.
		return []Event{Unknown}, raw.Hwnd
	}

	switch data.typ {
	case ControlButton, ControlCheckBox, ControlGroupBox, ControlRadioButton:
		switch code {
		case bnSetFocus, bnKillFocus:
			return []Event{Focus}, owner
		case bnClicked:
			return []Event{Click}, owner
		}
	case ControlTextInput:
		switch code {
		case enSetFocus, enKillFocus:
			return []Event{Focus}, owner
		case enChange:
			return []Event{ValueChanged}, owner
		case enMaxText:
			return []Event{MaxValue}, owner
		}
	case ControlComboBox:
		switch code {
		case cbnSetFocus, cbnKillFocus:
			return []Event{Focus}, owner
		case cbnCloseup:
			return []Event{MenuClose}, owner
		case cbnDropdown:
			return []Event{MenuOpen}, owner
		case cbnSelChange:
			return []Event{ValueChanged, SelectionChanged}, owner
		}
	case ControlLabel:
		if code == stnClicked {
			return []Event{Click}, owner
		}
	}
	return []Event{Unknown}, raw.Hwnd
}
