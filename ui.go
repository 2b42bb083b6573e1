package winui

// Ui is the view of the control tree handed to callbacks. It aliases
// the registry's own state and lives for exactly one dispatch: the
// dispatcher builds it before the first callback and detaches it after
// the last one. Detaching only severs the alias; the registry and its
// control records are untouched.
//
// A callback that squirrels the view away observes ErrDetached-style
// nil results afterward instead of stale control state.
type Ui struct {
	reg *Registry
}

func newUi(r *Registry) *Ui {
	return &Ui{reg: r}
}

// detach severs the alias to the registry. Infallible, releases
// nothing.
func (u *Ui) detach() {
	u.reg = nil
}

// Attached reports whether the view still aliases the control tree,
// which is only true while the dispatch that created it is running.
func (u *Ui) Attached() bool { return u.reg != nil }

// Handle returns the native handle of the control id.
func (u *Ui) Handle(id Id) (Handle, bool) {
	if u.reg == nil {
		return 0, false
	}
	data := u.reg.lookupId(id)
	if data == nil {
		return 0, false
	}
	return data.handle, true
}

// Type returns the control type of id.
func (u *Ui) Type(id Id) (ControlType, bool) {
	if u.reg == nil {
		return ControlUnknown, false
	}
	data := u.reg.lookupId(id)
	if data == nil {
		return ControlUnknown, false
	}
	return data.typ, true
}

// TextInput returns an action wrapper for the text input id.
func (u *Ui) TextInput(id Id) (*TextInput, bool) {
	if u.reg == nil {
		return nil, false
	}
	data := u.reg.lookupId(id)
	if data == nil || data.typ != ControlTextInput {
		return nil, false
	}
	return &TextInput{handle: data.handle, sys: u.reg.sys}, true
}

// Button returns an action wrapper for the button-family control id.
func (u *Ui) Button(id Id) (*Button, bool) {
	if u.reg == nil {
		return nil, false
	}
	data := u.reg.lookupId(id)
	if data == nil {
		return nil, false
	}
	switch data.typ {
	case ControlButton, ControlCheckBox, ControlGroupBox, ControlRadioButton:
		return &Button{handle: data.handle, sys: u.reg.sys}, true
	}
	return nil, false
}

// Label returns an action wrapper for the label id.
func (u *Ui) Label(id Id) (*Label, bool) {
	if u.reg == nil {
		return nil, false
	}
	data := u.reg.lookupId(id)
	if data == nil || data.typ != ControlLabel {
		return nil, false
	}
	return &Label{handle: data.handle, sys: u.reg.sys}, true
}

// ComboBox returns an action wrapper for the combobox id.
func (u *Ui) ComboBox(id Id) (*ComboBox, bool) {
	if u.reg == nil {
		return nil, false
	}
	data := u.reg.lookupId(id)
	if data == nil || data.typ != ControlComboBox {
		return nil, false
	}
	return &ComboBox{handle: data.handle, sys: u.reg.sys}, true
}
