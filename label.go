package winui

// LabelOptions configures a static text control at creation.
type LabelOptions struct {
	Text     string
	Size     [2]uint32
	Position [2]int32
	Parent   Id
}

// Label drives a native static text control.
type Label struct {
	handle Handle
	sys    System
}

func (l *Label) Handle() Handle { return l.handle }

func (l *Label) Text() string     { return windowText(l.sys, l.handle) }
func (l *Label) SetText(s string) { setWindowText(l.sys, l.handle, s) }
