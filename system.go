package winui

import "unicode/utf16"

// decodeError is substituted when native text fails to decode, rather
// than failing the dispatch that asked for it.
const decodeError = "ERROR!"

// decodeUTF16 converts a native UTF-16 buffer to a string, truncating
// at the first NUL. A buffer holding unpaired surrogates is not valid
// native text; it decodes to the error placeholder instead.
func decodeUTF16(buf []uint16) string {
	end := len(buf)
	for i, u := range buf {
		if u == 0 {
			end = i
			break
		}
	}
	buf = buf[:end]
	for i := 0; i < len(buf); i++ {
		u := buf[i]
		switch {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 >= len(buf) || buf[i+1] < 0xDC00 || buf[i+1] >= 0xE000 {
				return decodeError
			}
			i++
		case u >= 0xDC00 && u < 0xE000:
			return decodeError
		}
	}
	return string(utf16.Decode(buf))
}

// encodeUTF16 converts s to a NUL-terminated native UTF-16 buffer.
func encodeUTF16(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

// windowText reads the native caption of h through WM_GETTEXT. The
// length is queried first; the terminating NUL needs one extra slot.
func windowText(sys System, h Handle) string {
	length := int(sys.SendMessage(h, wmGetTextLength, 0, 0))
	if length <= 0 {
		return ""
	}
	buf := make([]uint16, length+1)
	sys.SendMessageBuf(h, wmGetText, uintptr(len(buf)), buf)
	return decodeUTF16(buf)
}

// setWindowText replaces the native caption of h through WM_SETTEXT.
func setWindowText(sys System, h Handle, s string) {
	sys.SendMessageBuf(h, wmSetText, 0, encodeUTF16(s))
}
