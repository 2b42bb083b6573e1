package winui

import "testing"

func newTestInput() (*TextInput, *fakeSystem) {
	sys := newFakeSystem()
	return &TextInput{handle: 0x40, sys: sys}, sys
}

func TestTextInputLimit(t *testing.T) {
	input, sys := newTestInput()
	sys.replies[emGetLimitText] = 64

	if got := input.TextLimit(); got != 64 {
		t.Errorf("TextLimit = %d, want 64", got)
	}

	input.SetTextLimit(128)
	sent, ok := sys.lastSent(emLimitText)
	if !ok || sent.wparam != 128 {
		t.Errorf("EM_LIMITTEXT wparam = %d, want 128", sent.wparam)
	}
}

func TestTextInputSelection(t *testing.T) {
	input, sys := newTestInput()
	sys.outs[emGetSel] = [2]uint32{3, 9}

	first, last := input.Selection()
	if first != 3 || last != 9 {
		t.Errorf("Selection = (%d, %d), want (3, 9)", first, last)
	}

	// Positions past 64K survive; the packed word form would clip them.
	sys.outs[emGetSel] = [2]uint32{70000, 81234}
	first, last = input.Selection()
	if first != 70000 || last != 81234 {
		t.Errorf("Selection = (%d, %d), want (70000, 81234)", first, last)
	}

	input.SetSelection(1, 4)
	sent, ok := sys.lastSent(emSetSel)
	if !ok || sent.wparam != 1 || sent.lparam != 4 {
		t.Errorf("EM_SETSEL = (%d, %d), want (1, 4)", sent.wparam, sent.lparam)
	}
}

func TestTextInputReadOnly(t *testing.T) {
	input, sys := newTestInput()

	sys.style = esReadOnly | esAutoHScroll
	if !input.ReadOnly() {
		t.Error("ReadOnly = false with ES_READONLY style set")
	}
	sys.style = esAutoHScroll
	if input.ReadOnly() {
		t.Error("ReadOnly = true without ES_READONLY style")
	}

	input.SetReadOnly(true)
	sent, ok := sys.lastSent(emSetReadOnly)
	if !ok || sent.wparam != 1 {
		t.Errorf("EM_SETREADONLY wparam = %d, want 1", sent.wparam)
	}
}

func TestTextInputUndo(t *testing.T) {
	input, sys := newTestInput()
	input.Undo()
	if _, ok := sys.lastSent(wmUndo); !ok {
		t.Error("Undo did not send WM_UNDO")
	}
}

func TestTextInputPlaceholder(t *testing.T) {
	input, sys := newTestInput()
	sys.texts[emGetCueBanner] = encodeUTF16("type here")

	if got := input.Placeholder(); got != "type here" {
		t.Errorf("Placeholder = %q, want %q", got, "type here")
	}

	input.SetPlaceholder("name")
	if _, ok := sys.lastSent(emSetCueBanner); !ok {
		t.Error("SetPlaceholder did not send EM_SETCUEBANNER")
	}
}

func TestTextInputText(t *testing.T) {
	input, sys := newTestInput()
	sys.replies[wmGetTextLength] = 2
	sys.texts[wmGetText] = encodeUTF16("hi")

	if got := input.Text(); got != "hi" {
		t.Errorf("Text = %q, want %q", got, "hi")
	}

	input.SetText("bye")
	if _, ok := sys.lastSent(wmSetText); !ok {
		t.Error("SetText did not send WM_SETTEXT")
	}
}

func TestComboBoxActions(t *testing.T) {
	sys := newFakeSystem()
	combo := &ComboBox{handle: 0x50, sys: sys}

	combo.AddChoice("one")
	if _, ok := sys.lastSent(cbAddString); !ok {
		t.Error("AddChoice did not send CB_ADDSTRING")
	}

	combo.SetSelection(2)
	sent, ok := sys.lastSent(cbSetCurSel)
	if !ok || sent.wparam != 2 {
		t.Errorf("CB_SETCURSEL wparam = %d, want 2", sent.wparam)
	}

	sys.replies[cbGetCount] = 3
	if got := combo.Count(); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	combo.RemoveChoice(1)
	sent, ok = sys.lastSent(cbDeleteString)
	if !ok || sent.wparam != 1 {
		t.Errorf("CB_DELETESTRING wparam = %d, want 1", sent.wparam)
	}

	combo.Clear()
	if _, ok := sys.lastSent(cbResetContent); !ok {
		t.Error("Clear did not send CB_RESETCONTENT")
	}
}

func TestButtonChecked(t *testing.T) {
	sys := newFakeSystem()
	btn := &Button{handle: 0x60, sys: sys}

	sys.replies[bmGetCheck] = bstChecked
	if !btn.Checked() {
		t.Error("Checked = false with BST_CHECKED reply")
	}

	btn.SetChecked(true)
	sent, ok := sys.lastSent(bmSetCheck)
	if !ok || sent.wparam != bstChecked {
		t.Errorf("BM_SETCHECK wparam = %d, want %d", sent.wparam, bstChecked)
	}
}
