package winui

// Combobox messages beyond the selection queries in msg.go.
const (
	cbAddString    = 0x0143
	cbDeleteString = 0x0144
	cbResetContent = 0x014B
	cbSetCurSel    = 0x014E
	cbGetCount     = 0x0146
)

// ComboBoxOptions configures a combobox control at creation.
type ComboBoxOptions struct {
	Choices  []string
	Size     [2]uint32
	Position [2]int32
	Parent   Id
}

// ComboBox drives a native dropdown list control. Obtain one from
// Ui.ComboBox or from CreateComboBox.
type ComboBox struct {
	handle Handle
	sys    System
}

func (c *ComboBox) Handle() Handle { return c.handle }

// Selection returns the selected index and its label text. With no
// selection the index is the native CB_ERR value truncated to uint32.
func (c *ComboBox) Selection() (uint32, string) {
	return comboSelection(c.sys, c.handle)
}

func (c *ComboBox) SetSelection(index uint32) {
	c.sys.SendMessage(c.handle, cbSetCurSel, uintptr(index), 0)
}

// Count returns the number of entries in the list.
func (c *ComboBox) Count() uint32 {
	return uint32(c.sys.SendMessage(c.handle, cbGetCount, 0, 0))
}

func (c *ComboBox) AddChoice(s string) {
	c.sys.SendMessageBuf(c.handle, cbAddString, 0, encodeUTF16(s))
}

func (c *ComboBox) RemoveChoice(index uint32) {
	c.sys.SendMessage(c.handle, cbDeleteString, uintptr(index), 0)
}

func (c *ComboBox) Clear() {
	c.sys.SendMessage(c.handle, cbResetContent, 0, 0)
}
