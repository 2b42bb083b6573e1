//go:build windows

package winui

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Window styles used by the control templates.
const (
	wsOverlappedWindow = 0x00CF0000
	wsClipChildren     = 0x02000000
	wsVisible          = 0x10000000
	wsChild            = 0x40000000
	wsBorder           = 0x00800000
	wsVScroll          = 0x00200000

	bsPushButton      = 0x0000
	bsGroupBox        = 0x0007
	bsAutoCheckBox    = 0x0003
	bsAutoRadioButton = 0x0009

	cbsDropDownList = 0x0003
	cbsHasStrings   = 0x0200

	ssNotify = 0x0100

	swShow       = 5
	cwUseDefault = 0x80000000

	idcArrow      = 32512
	colorWindowBg = 5 // COLOR_WINDOW, +1 when used as a class brush
)

const windowClass = "winui_window"

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     uintptr
	hIcon         uintptr
	hCursor       uintptr
	hbrBackground uintptr
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       uintptr
}

var classOnce sync.Once

// registerWindowClass registers the top-level window class once. The
// class proc is plain DefWindowProcW; application behavior comes from
// the subclass hook installed on every managed window.
func registerWindowClass() {
	classOnce.Do(func() {
		instance, _, _ := procGetModuleHandle.Call(0)
		cursor, _, _ := procLoadCursor.Call(0, idcArrow)
		name, _ := windows.UTF16PtrFromString(windowClass)
		wc := wndClassEx{
			style:         0,
			lpfnWndProc:   procDefWindowProc.Addr(),
			hInstance:     instance,
			hCursor:       cursor,
			hbrBackground: colorWindowBg + 1,
			lpszClassName: name,
		}
		wc.cbSize = uint32(unsafe.Sizeof(wc))
		procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc)))
	})
}

// WindowOptions configures a top-level window at creation.
type WindowOptions struct {
	Title     string
	Size      [2]uint32
	Position  [2]int32
	Resizable bool
}

func createNative(class, text string, style uint32, x, y uintptr, w, h uint32, parent Handle) (Handle, error) {
	className, err := windows.UTF16PtrFromString(class)
	if err != nil {
		return 0, err
	}
	caption, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return 0, err
	}
	instance, _, _ := procGetModuleHandle.Call(0)
	ret, _, callErr := procCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(caption)),
		uintptr(style),
		x, y,
		uintptr(w), uintptr(h),
		uintptr(parent),
		0,
		instance,
		0,
	)
	if ret == 0 {
		return 0, fmt.Errorf("winui: CreateWindowEx %s failed: %v", class, callErr)
	}
	return Handle(ret), nil
}

// register wires a freshly created native control into the registry
// and the subclass chain. On any failure the native window is torn
// down again.
func register(r *Registry, id Id, typ ControlType, h Handle) error {
	if err := r.Register(id, typ, h); err != nil {
		procDestroyWindow.Call(uintptr(h))
		return err
	}
	if err := hookControl(r, h); err != nil {
		r.Unregister(h)
		procDestroyWindow.Call(uintptr(h))
		return err
	}
	return nil
}

func parentHandle(r *Registry, id Id) (Handle, error) {
	data := r.lookupId(id)
	if data == nil {
		return 0, fmt.Errorf("winui: no parent control %q", id)
	}
	return data.handle, nil
}

// CreateWindow creates a managed top-level window.
func CreateWindow(r *Registry, id Id, o WindowOptions) (Handle, error) {
	registerWindowClass()
	style := uint32(wsOverlappedWindow | wsClipChildren)
	if !o.Resizable {
		const wsThickFrame = 0x00040000
		const wsMaximizeBox = 0x00010000
		style &^= wsThickFrame | wsMaximizeBox
	}
	x, y := uintptr(o.Position[0]), uintptr(o.Position[1])
	if o.Position == [2]int32{} {
		x, y = cwUseDefault, cwUseDefault
	}
	h, err := createNative(windowClass, o.Title, style, x, y, o.Size[0], o.Size[1], 0)
	if err != nil {
		return 0, err
	}
	if err := register(r, id, ControlWindow, h); err != nil {
		return 0, err
	}
	procShowWindow.Call(uintptr(h), swShow)
	return h, nil
}

// CreateButton creates a managed push button.
func CreateButton(r *Registry, id Id, o ButtonOptions) (*Button, error) {
	return createButtonFamily(r, id, ControlButton, bsPushButton, o)
}

// CreateCheckBox creates a managed checkbox.
func CreateCheckBox(r *Registry, id Id, o ButtonOptions) (*Button, error) {
	return createButtonFamily(r, id, ControlCheckBox, bsAutoCheckBox, o)
}

// CreateRadioButton creates a managed radio button.
func CreateRadioButton(r *Registry, id Id, o ButtonOptions) (*Button, error) {
	return createButtonFamily(r, id, ControlRadioButton, bsAutoRadioButton, o)
}

// CreateGroupBox creates a managed group box.
func CreateGroupBox(r *Registry, id Id, o ButtonOptions) (*Button, error) {
	return createButtonFamily(r, id, ControlGroupBox, bsGroupBox, o)
}

func createButtonFamily(r *Registry, id Id, typ ControlType, style uint32, o ButtonOptions) (*Button, error) {
	parent, err := parentHandle(r, o.Parent)
	if err != nil {
		return nil, err
	}
	h, err := createNative("BUTTON", o.Text, wsChild|wsVisible|style,
		uintptr(o.Position[0]), uintptr(o.Position[1]), o.Size[0], o.Size[1], parent)
	if err != nil {
		return nil, err
	}
	if err := register(r, id, typ, h); err != nil {
		return nil, err
	}
	return &Button{handle: h, sys: r.sys}, nil
}

// CreateLabel creates a managed static text control. SS_NOTIFY makes
// the native side raise STN_CLICKED at all.
func CreateLabel(r *Registry, id Id, o LabelOptions) (*Label, error) {
	parent, err := parentHandle(r, o.Parent)
	if err != nil {
		return nil, err
	}
	h, err := createNative("STATIC", o.Text, wsChild|wsVisible|ssNotify,
		uintptr(o.Position[0]), uintptr(o.Position[1]), o.Size[0], o.Size[1], parent)
	if err != nil {
		return nil, err
	}
	if err := register(r, id, ControlLabel, h); err != nil {
		return nil, err
	}
	return &Label{handle: h, sys: r.sys}, nil
}

// CreateTextInput creates a managed single-line edit control.
func CreateTextInput(r *Registry, id Id, o TextInputOptions) (*TextInput, error) {
	parent, err := parentHandle(r, o.Parent)
	if err != nil {
		return nil, err
	}
	style := uint32(wsChild | wsVisible | wsBorder | esAutoHScroll | esNoHideSel)
	switch o.TextAlign {
	case AlignCenter:
		style |= esCenter
	case AlignRight:
		style |= esRight
	default:
		style |= esLeft
	}
	if o.Password {
		style |= esPassword
	}
	if o.ReadOnly {
		style |= esReadOnly
	}
	h, err := createNative("EDIT", o.Text, style,
		uintptr(o.Position[0]), uintptr(o.Position[1]), o.Size[0], o.Size[1], parent)
	if err != nil {
		return nil, err
	}
	if err := register(r, id, ControlTextInput, h); err != nil {
		return nil, err
	}
	input := &TextInput{handle: h, sys: r.sys}
	if o.Placeholder != "" {
		input.SetPlaceholder(o.Placeholder)
	}
	return input, nil
}

// CreateComboBox creates a managed dropdown list.
func CreateComboBox(r *Registry, id Id, o ComboBoxOptions) (*ComboBox, error) {
	parent, err := parentHandle(r, o.Parent)
	if err != nil {
		return nil, err
	}
	style := uint32(wsChild | wsVisible | wsVScroll | cbsDropDownList | cbsHasStrings)
	h, err := createNative("COMBOBOX", "", style,
		uintptr(o.Position[0]), uintptr(o.Position[1]), o.Size[0], o.Size[1], parent)
	if err != nil {
		return nil, err
	}
	if err := register(r, id, ControlComboBox, h); err != nil {
		return nil, err
	}
	combo := &ComboBox{handle: h, sys: r.sys}
	for _, choice := range o.Choices {
		combo.AddChoice(choice)
	}
	return combo, nil
}

// DestroyControl routes the destroy notice through the subclass hook
// so Removed callbacks observe the control one last time, then tears
// the native window down and drops the registration.
func DestroyControl(r *Registry, id Id) error {
	data := r.lookupId(id)
	if data == nil {
		return fmt.Errorf("winui: no control %q", id)
	}
	r.sys.SendMessage(data.handle, DestroyNotice, 0, 0)
	unhookControl(data.handle)
	procDestroyWindow.Call(uintptr(data.handle))
	r.Unregister(data.handle)
	return nil
}
