package winui

import (
	"testing"
	"unsafe"
)

// The button implied by the message kind must always be present in
// the decoded mask, even when the generic WParam state is zero.
func TestMouseArgsImpliedButton(t *testing.T) {
	tests := []struct {
		name string
		msg  uint32
		want uint32
	}{
		{"lbuttonup", wmLButtonUp, BtnLeft},
		{"lbuttondown", wmLButtonDown, BtnLeft},
		{"rbuttonup", wmRButtonUp, BtnRight},
		{"rbuttondown", wmRButtonDown, BtnRight},
		{"mbuttonup", wmMButtonUp, BtnMiddle},
		{"mbuttondown", wmMButtonDown, BtnMiddle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, buttons, _ := mouseArgs(RawMessage{Msg: tt.msg, WParam: 0})
			if buttons&tt.want == 0 {
				t.Errorf("buttons = %#x, missing implied %#x", buttons, tt.want)
			}
		})
	}
}

func TestMouseArgs(t *testing.T) {
	raw := RawMessage{
		Msg:    wmLButtonDown,
		WParam: ModCtrl | BtnRight,
		LParam: packWords(0xFFEC, 35), // x = -20 as int16
	}
	x, y, buttons, modifiers := mouseArgs(raw)
	if x != -20 || y != 35 {
		t.Errorf("coords = (%d, %d), want (-20, 35)", x, y)
	}
	if buttons != BtnLeft|BtnRight {
		t.Errorf("buttons = %#x, want left|right", buttons)
	}
	if modifiers != ModCtrl {
		t.Errorf("modifiers = %#x, want ctrl", modifiers)
	}
}

func TestSizeRect(t *testing.T) {
	final := Rect{Left: 10, Top: 10, Right: 110, Bottom: 60}

	sys := newFakeSystem()
	sys.rect = final

	// In-progress resize carries the rectangle in the message.
	sizing := RawMessage{Msg: wmSizing, LParam: uintptr(unsafe.Pointer(&final))}
	x1, y1, w1, h1 := sizeRect(sys, 1, sizing)

	// Completed resize queries the host for the same geometry.
	x2, y2, w2, h2 := sizeRect(sys, 1, RawMessage{Msg: wmSize})

	if x1 != x2 || y1 != y2 || w1 != w2 || h1 != h2 {
		t.Errorf("WM_SIZING (%d,%d,%d,%d) != WM_SIZE (%d,%d,%d,%d)",
			x1, y1, w1, h1, x2, y2, w2, h2)
	}
	if x1 != 10 || y1 != 10 || w1 != 100 || h1 != 50 {
		t.Errorf("payload = (%d,%d,%d,%d), want (10,10,100,50)", x1, y1, w1, h1)
	}
}

func TestSizeRectContractViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("sizeRect on a non-resize message did not panic")
		}
	}()
	sizeRect(newFakeSystem(), 1, RawMessage{Msg: wmCommand})
}

func TestFocusFlag(t *testing.T) {
	cmd := func(code uint16) RawMessage {
		w, l := commandParams(code, 1)
		return RawMessage{Msg: wmCommand, WParam: w, LParam: l}
	}
	tests := []struct {
		name string
		raw  RawMessage
		want bool
	}{
		{"bn setfocus", cmd(bnSetFocus), true},
		{"bn killfocus", cmd(bnKillFocus), false},
		{"en setfocus", cmd(enSetFocus), true},
		{"en killfocus", cmd(enKillFocus), false},
		{"cbn setfocus", cmd(cbnSetFocus), true},
		{"cbn killfocus", cmd(cbnKillFocus), false},
		{"app activated", RawMessage{Msg: wmActivateApp, WParam: 1}, true},
		{"app deactivated", RawMessage{Msg: wmActivateApp, WParam: 0}, false},
		{"activation flag low bit only", RawMessage{Msg: wmActivateApp, WParam: 0xFF01}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := focusFlag(tt.raw); got != tt.want {
				t.Errorf("focusFlag = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFocusFlagContractViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("focusFlag on a mouse message did not panic")
		}
	}()
	focusFlag(RawMessage{Msg: wmLButtonUp})
}

func TestComboSelection(t *testing.T) {
	sys := newFakeSystem()
	sys.replies[cbGetCurSel] = 2
	sys.replies[cbGetLBTextLen] = 9
	sys.texts[cbGetLBText] = encodeUTF16("pistachio")

	index, text := comboSelection(sys, 5)
	if index != 2 {
		t.Errorf("index = %d, want 2", index)
	}
	if text != "pistachio" {
		t.Errorf("text = %q, want %q", text, "pistachio")
	}

	got, ok := sys.lastSent(cbGetLBTextLen)
	if !ok || got.wparam != 2 {
		t.Errorf("text length queried with wparam %d, want selected index 2", got.wparam)
	}
}

// An empty selected label is an empty string, not a decode error.
func TestComboSelectionEmptyLabel(t *testing.T) {
	sys := newFakeSystem()
	sys.replies[cbGetCurSel] = 0
	sys.replies[cbGetLBTextLen] = 0

	index, text := comboSelection(sys, 5)
	if index != 0 || text != "" {
		t.Errorf("selection = (%d, %q), want (0, \"\")", index, text)
	}
	if _, queried := sys.lastSent(cbGetLBText); queried {
		t.Error("queried label text despite zero length")
	}
}

func TestComboSelectionDecodeFailure(t *testing.T) {
	sys := newFakeSystem()
	sys.replies[cbGetCurSel] = 1
	sys.replies[cbGetLBTextLen] = 2
	sys.texts[cbGetLBText] = []uint16{0xD800, 'x'}

	_, text := comboSelection(sys, 5)
	if text != decodeError {
		t.Errorf("text = %q, want placeholder %q", text, decodeError)
	}
}
