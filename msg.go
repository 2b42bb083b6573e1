package winui

import "unsafe"

// RawMessage is one notification delivered by the host window system
// to a subclassed control. It is only valid for the duration of a
// single dispatch.
type RawMessage struct {
	Hwnd   Handle
	Msg    uint32
	WParam uintptr
	LParam uintptr
}

// Window messages handled by the classifier.
const (
	wmSize        = 0x0005
	wmActivateApp = 0x001C
	wmCommand     = 0x0111
	wmSizing      = 0x0214
	wmUser        = 0x0400

	wmSetText       = 0x000C
	wmGetText       = 0x000D
	wmGetTextLength = 0x000E

	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
)

// DestroyNotice is sent through the subclass hook right before a
// managed control is destroyed. It triggers the Removed event; by the
// time callbacks observe it the native resources may already be on
// their way out.
const DestroyNotice = wmUser

// WM_COMMAND notification codes. The values are not unique across
// control families, which is why classification needs the control
// type.
const (
	bnClicked   = 0
	bnSetFocus  = 6
	bnKillFocus = 7

	enSetFocus  = 0x0100
	enKillFocus = 0x0200
	enChange    = 0x0300
	enMaxText   = 0x0501

	cbnSelChange = 1
	cbnSetFocus  = 3
	cbnKillFocus = 4
	cbnDropdown  = 7
	cbnCloseup   = 8

	stnClicked = 0
)

// Combobox query messages used by the selection extractor.
const (
	cbGetCurSel    = 0x0147
	cbGetLBText    = 0x0148
	cbGetLBTextLen = 0x0149
)

// Edit control messages used by the TextInput actions.
const (
	emGetSel       = 0x00B0
	emSetSel       = 0x00B1
	emLimitText    = 0x00C5
	emSetReadOnly  = 0x00CF
	emGetLimitText = 0x00D5
	emSetCueBanner = 0x1501
	emGetCueBanner = 0x1502
	wmUndo         = 0x0304
)

// Mouse state masks carried in the WParam of button messages. These
// are the native MK_* values.
const (
	BtnLeft   = 0x0001
	BtnRight  = 0x0002
	ModShift  = 0x0004
	ModCtrl   = 0x0008
	BtnMiddle = 0x0010
)

func loword(v uintptr) uint16 { return uint16(v) }
func hiword(v uintptr) uint16 { return uint16(v >> 16) }

// xParam and yParam extract signed screen coordinates from a packed
// LParam (GET_X_LPARAM / GET_Y_LPARAM).
func xParam(l uintptr) int32 { return int32(int16(loword(l))) }
func yParam(l uintptr) int32 { return int32(int16(hiword(l))) }

// packWords builds a packed parameter word from two 16-bit halves.
// The inverse of loword/hiword, used when synthesizing messages.
func packWords(lo, hi uint16) uintptr {
	return uintptr(lo) | uintptr(hi)<<16
}

// commandParams builds the WParam/LParam pair of a WM_COMMAND
// notification: code in the high word, originating control handle as
// the LParam.
func commandParams(code uint16, owner Handle) (wparam, lparam uintptr) {
	return packWords(0, code), uintptr(owner)
}

// rectParam reinterprets an LParam as the RECT it points at. Only
// valid for messages documented to carry one (WM_SIZING).
func rectParam(l uintptr) *Rect {
	return (*Rect)(unsafe.Pointer(l))
}
