package winui

// Button messages and check states.
const (
	bmGetCheck = 0x00F0
	bmSetCheck = 0x00F1

	bstUnchecked = 0
	bstChecked   = 1
)

// ButtonOptions configures a push button, checkbox, radio button or
// group box at creation.
type ButtonOptions struct {
	Text     string
	Size     [2]uint32
	Position [2]int32
	Parent   Id
}

// Button drives a native control of the button family.
type Button struct {
	handle Handle
	sys    System
}

func (b *Button) Handle() Handle { return b.handle }

func (b *Button) Text() string     { return windowText(b.sys, b.handle) }
func (b *Button) SetText(s string) { setWindowText(b.sys, b.handle, s) }

// Checked reports the check state. Only meaningful for checkboxes and
// radio buttons; push buttons always read unchecked.
func (b *Button) Checked() bool {
	return b.sys.SendMessage(b.handle, bmGetCheck, 0, 0) == bstChecked
}

func (b *Button) SetChecked(checked bool) {
	w := uintptr(bstUnchecked)
	if checked {
		w = bstChecked
	}
	b.sys.SendMessage(b.handle, bmSetCheck, w, 0)
}
