package winui

// Handle identifies a native window or control (HWND).
type Handle uintptr

// Id is the application-chosen identifier of a managed control.
type Id string

// ControlType tags the kind of native control behind a handle. The
// WM_COMMAND notification codes are only meaningful together with the
// type of the control that sent them.
type ControlType uint32

const (
	ControlUnknown ControlType = iota
	ControlWindow
	ControlButton
	ControlCheckBox
	ControlGroupBox
	ControlRadioButton
	ControlTextInput
	ControlComboBox
	ControlLabel
)

func (t ControlType) String() string {
	switch t {
	case ControlWindow:
		return "window"
	case ControlButton:
		return "button"
	case ControlCheckBox:
		return "checkbox"
	case ControlGroupBox:
		return "groupbox"
	case ControlRadioButton:
		return "radiobutton"
	case ControlTextInput:
		return "textinput"
	case ControlComboBox:
		return "combobox"
	case ControlLabel:
		return "label"
	}
	return "unknown"
}

// Rect is a native window rectangle in screen coordinates.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// System is the host window-system surface the dispatch core consumes.
// The windows build provides the real implementation, tests provide a
// scripted one.
type System interface {
	// SendMessage sends a raw message to a native control and returns
	// the native result.
	SendMessage(h Handle, msg uint32, wparam, lparam uintptr) uintptr

	// SendMessageBuf sends a raw message whose lparam points at buf.
	// Used for text exchanges that address their buffer through the
	// LParam (CB_GETLBTEXT, WM_GETTEXT, EM_SETCUEBANNER).
	SendMessageBuf(h Handle, msg uint32, wparam uintptr, buf []uint16) uintptr

	// SendMessageWBuf is SendMessageBuf for the few messages that
	// address their buffer through the WParam instead
	// (EM_GETCUEBANNER).
	SendMessageWBuf(h Handle, msg uint32, buf []uint16, lparam uintptr) uintptr

	// SendMessageOut sends a raw message whose WParam and LParam each
	// point at a 32-bit out value (EM_GETSEL).
	SendMessageOut(h Handle, msg uint32, wout, lout *uint32) uintptr

	// WindowRect returns the current window rectangle of h.
	WindowRect(h Handle) Rect

	// StyleBits returns the native style word of h (GWL_STYLE).
	StyleBits(h Handle) uintptr

	// Forward passes raw to the next handler in the subclass chain and
	// returns its result.
	Forward(raw RawMessage) uintptr
}
