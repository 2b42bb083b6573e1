//go:build windows

package winui

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	comctl32 = windows.NewLazySystemDLL("comctl32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSendMessage      = user32.NewProc("SendMessageW")
	procGetWindowRect    = user32.NewProc("GetWindowRect")
	procGetWindowLongPtr = user32.NewProc("GetWindowLongPtrW")
	procGetWindowLong    = user32.NewProc("GetWindowLongW")
	procCreateWindowEx   = user32.NewProc("CreateWindowExW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
	procRegisterClassEx  = user32.NewProc("RegisterClassExW")
	procDefWindowProc    = user32.NewProc("DefWindowProcW")
	procGetMessage       = user32.NewProc("GetMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessage  = user32.NewProc("DispatchMessageW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")
	procLoadCursor       = user32.NewProc("LoadCursorW")

	procSetWindowSubclass    = comctl32.NewProc("SetWindowSubclass")
	procRemoveWindowSubclass = comctl32.NewProc("RemoveWindowSubclass")
	procDefSubclassProc      = comctl32.NewProc("DefSubclassProc")

	procGetModuleHandle = kernel32.NewProc("GetModuleHandleW")
)

// GWL_STYLE as the two's complement uintptr of -16, which is what the
// native call expects.
const gwlStyle = ^uintptr(15)

// nativeSystem is the real Win32 implementation of System.
type nativeSystem struct{}

// NativeSystem returns the host system surface backed by user32 and
// comctl32.
func NativeSystem() System { return nativeSystem{} }

func (nativeSystem) SendMessage(h Handle, msg uint32, wparam, lparam uintptr) uintptr {
	ret, _, _ := procSendMessage.Call(uintptr(h), uintptr(msg), wparam, lparam)
	return ret
}

func (nativeSystem) SendMessageBuf(h Handle, msg uint32, wparam uintptr, buf []uint16) uintptr {
	var p unsafe.Pointer
	if len(buf) > 0 {
		p = unsafe.Pointer(&buf[0])
	}
	ret, _, _ := procSendMessage.Call(uintptr(h), uintptr(msg), wparam, uintptr(p))
	return ret
}

func (nativeSystem) SendMessageWBuf(h Handle, msg uint32, buf []uint16, lparam uintptr) uintptr {
	var p unsafe.Pointer
	if len(buf) > 0 {
		p = unsafe.Pointer(&buf[0])
	}
	ret, _, _ := procSendMessage.Call(uintptr(h), uintptr(msg), uintptr(p), lparam)
	return ret
}

func (nativeSystem) SendMessageOut(h Handle, msg uint32, wout, lout *uint32) uintptr {
	ret, _, _ := procSendMessage.Call(uintptr(h), uintptr(msg),
		uintptr(unsafe.Pointer(wout)), uintptr(unsafe.Pointer(lout)))
	return ret
}

func (nativeSystem) WindowRect(h Handle) Rect {
	var r Rect
	procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	return r
}

func (nativeSystem) StyleBits(h Handle) uintptr {
	// 32-bit user32 has no GetWindowLongPtrW export; the plain variant
	// is equivalent there since handles and styles fit 32 bits.
	proc := procGetWindowLongPtr
	if proc.Find() != nil {
		proc = procGetWindowLong
	}
	ret, _, _ := proc.Call(uintptr(h), gwlStyle)
	return ret
}

func (nativeSystem) Forward(raw RawMessage) uintptr {
	ret, _, _ := procDefSubclassProc.Call(uintptr(raw.Hwnd), uintptr(raw.Msg), raw.WParam, raw.LParam)
	return ret
}

// The subclass procedure has to be a single C-callable function, so
// registries are handed to it through the subclass reference data as
// opaque tokens.
var (
	subclassOnce sync.Once
	subclassPtr  uintptr

	tokenMu   sync.Mutex
	tokens    = make(map[uintptr]*Registry)
	regTokens = make(map[*Registry]uintptr)
	nextToken uintptr
)

const subclassID = 1

func registryToken(r *Registry) uintptr {
	tokenMu.Lock()
	defer tokenMu.Unlock()
	if tok, ok := regTokens[r]; ok {
		return tok
	}
	nextToken++
	tokens[nextToken] = r
	regTokens[r] = nextToken
	return nextToken
}

func tokenRegistry(tok uintptr) *Registry {
	tokenMu.Lock()
	defer tokenMu.Unlock()
	return tokens[tok]
}

// subclassProc is the one hook wired into the native subclass chain
// for every managed control.
func subclassProc(hwnd, msg, wparam, lparam, _, refData uintptr) uintptr {
	raw := RawMessage{Hwnd: Handle(hwnd), Msg: uint32(msg), WParam: wparam, LParam: lparam}
	r := tokenRegistry(refData)
	if r == nil {
		return nativeSystem{}.Forward(raw)
	}
	return r.ProcessMessage(raw)
}

// hookControl installs the subclass hook on a freshly created control.
func hookControl(r *Registry, h Handle) error {
	subclassOnce.Do(func() {
		subclassPtr = syscall.NewCallback(subclassProc)
	})
	ret, _, _ := procSetWindowSubclass.Call(uintptr(h), subclassPtr, subclassID, registryToken(r))
	if ret == 0 {
		return fmt.Errorf("winui: SetWindowSubclass failed for %#x", uintptr(h))
	}
	return nil
}

func unhookControl(h Handle) {
	procRemoveWindowSubclass.Call(uintptr(h), subclassPtr, subclassID)
}

// nativeMsg mirrors the Win32 MSG structure.
type nativeMsg struct {
	hwnd    uintptr
	message uint32
	wparam  uintptr
	lparam  uintptr
	time    uint32
	pt      [2]int32
}

// Run pumps messages on the calling goroutine until PostQuitMessage.
// Every dispatch runs synchronously to completion before the next
// message is fetched.
func Run() {
	var m nativeMsg
	for {
		ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if ret == 0 || int32(ret) == -1 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// Quit asks the message pump to exit.
func Quit() {
	procPostQuitMessage.Call(0)
}
