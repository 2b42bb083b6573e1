package winui

import "fmt"

// mouseArgs decodes the payload of the six mouse button messages. The
// mask in WParam does not necessarily include the button the message
// itself is about (it reports held state), so the button implied by
// the message kind is ORed in.
func mouseArgs(raw RawMessage) (x, y int32, buttons, modifiers uint32) {
	x, y = xParam(raw.LParam), yParam(raw.LParam)
	modifiers = uint32(raw.WParam) & (ModCtrl | ModShift)
	buttons = uint32(raw.WParam) & (BtnLeft | BtnMiddle | BtnRight)
	switch raw.Msg {
	case wmLButtonUp, wmLButtonDown:
		buttons |= BtnLeft
	case wmRButtonUp, wmRButtonDown:
		buttons |= BtnRight
	case wmMButtonUp, wmMButtonDown:
		buttons |= BtnMiddle
	}
	return x, y, buttons, modifiers
}

// sizeRect decodes the payload of a resize event. WM_SIZING carries
// the in-progress rectangle in its LParam; WM_SIZE carries nothing
// useful, so the final rectangle is queried from the host. Any other
// message reaching here means the classification tables are broken.
func sizeRect(sys System, h Handle, raw RawMessage) (x, y int32, w, ht uint32) {
	var r Rect
	switch raw.Msg {
	case wmSizing:
		r = *rectParam(raw.LParam)
	case wmSize:
		r = sys.WindowRect(h)
	default:
		panic(fmt.Sprintf("winui: sizeRect on message %#x", raw.Msg))
	}
	return r.Left, r.Top, uint32(r.Right - r.Left), uint32(r.Bottom - r.Top)
}

// focusFlag decodes whether a Focus event is a gain or a loss. For
// command-sourced focus the set-focus codes differ per control family
// but never collide, so one membership test covers all three. For
// WM_ACTIVATEAPP the low bit of WParam is the activation flag.
func focusFlag(raw RawMessage) bool {
	switch raw.Msg {
	case wmCommand:
		code := hiword(raw.WParam)
		return code == bnSetFocus || code == enSetFocus || code == cbnSetFocus
	case wmActivateApp:
		return raw.WParam&1 == 1
	}
	panic(fmt.Sprintf("winui: focusFlag on message %#x", raw.Msg))
}

// comboSelection queries a combobox for its selected index and the
// label text at that index. The text length is queried first and the
// buffer sized exactly to it; the decoded string stops at the first
// NUL regardless.
func comboSelection(sys System, h Handle) (uint32, string) {
	selected := uint32(sys.SendMessage(h, cbGetCurSel, 0, 0))
	length := int(sys.SendMessage(h, cbGetLBTextLen, uintptr(selected), 0))
	if length <= 0 {
		return selected, ""
	}
	buf := make([]uint16, length)
	sys.SendMessageBuf(h, cbGetLBText, uintptr(selected), buf)
	return selected, decodeUTF16(buf)
}
