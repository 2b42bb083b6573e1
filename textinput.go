package winui

// HTextAlign positions the text of a control horizontally.
type HTextAlign uint32

const (
	AlignLeft HTextAlign = iota
	AlignCenter
	AlignRight
)

// Edit control style bits used by the text input template.
const (
	esLeft        = 0x0000
	esCenter      = 0x0001
	esRight       = 0x0002
	esPassword    = 0x0020
	esAutoHScroll = 0x0080
	esNoHideSel   = 0x0100
	esReadOnly    = 0x0800
)

// TextInputOptions configures a text input control at creation.
type TextInputOptions struct {
	Text        string
	Size        [2]uint32
	Position    [2]int32
	Parent      Id
	Placeholder string
	TextAlign   HTextAlign
	Password    bool
	ReadOnly    bool
}

// TextInput drives a native single-line edit control. The zero value
// is not usable; obtain one from Ui.TextInput or from CreateTextInput.
type TextInput struct {
	handle Handle
	sys    System
}

func (t *TextInput) Handle() Handle { return t.handle }

func (t *TextInput) Text() string     { return windowText(t.sys, t.handle) }
func (t *TextInput) SetText(s string) { setWindowText(t.sys, t.handle, s) }

// TextLimit returns the maximum number of characters the control
// accepts.
func (t *TextInput) TextLimit() uint32 {
	return uint32(t.sys.SendMessage(t.handle, emGetLimitText, 0, 0))
}

func (t *TextInput) SetTextLimit(limit uint32) {
	t.sys.SendMessage(t.handle, emLimitText, uintptr(limit), 0)
}

// Selection returns the bounds of the current text selection as
// (first, last) character positions. The out-pointer form keeps the
// full 32-bit positions; the packed return value would clip past 64K.
func (t *TextInput) Selection() (uint32, uint32) {
	var first, last uint32
	t.sys.SendMessageOut(t.handle, emGetSel, &first, &last)
	return first, last
}

func (t *TextInput) SetSelection(first, last uint32) {
	t.sys.SendMessage(t.handle, emSetSel, uintptr(first), uintptr(last))
}

// ReadOnly reports whether the control rejects user edits.
func (t *TextInput) ReadOnly() bool {
	return t.sys.StyleBits(t.handle)&esReadOnly == esReadOnly
}

func (t *TextInput) SetReadOnly(readonly bool) {
	var w uintptr
	if readonly {
		w = 1
	}
	t.sys.SendMessage(t.handle, emSetReadOnly, w, 0)
}

// Undo reverts the last edit.
func (t *TextInput) Undo() {
	t.sys.SendMessage(t.handle, wmUndo, 0, 0)
}

func (t *TextInput) SetPlaceholder(s string) {
	t.sys.SendMessageBuf(t.handle, emSetCueBanner, 0, encodeUTF16(s))
}

// Placeholder returns the cue banner text. The native side offers no
// way to query its length, so a fixed 256 character buffer has to do.
func (t *TextInput) Placeholder() string {
	var buf [256]uint16
	t.sys.SendMessageWBuf(t.handle, emGetCueBanner, buf[:], uintptr(len(buf)))
	return decodeUTF16(buf[:])
}
