package native

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unsafe"
)

var (
	// ErrNullArray is returned when a non-empty array is described by a nil
	// pointer.
	ErrNullArray = errors.New("native: null array with non-zero count")

	// ErrNullPointer is returned when a required structure pointer is nil.
	ErrNullPointer = errors.New("native: null pointer")

	// ErrInvalidUTF16 is returned for strings containing unpaired surrogates.
	ErrInvalidUTF16 = errors.New("native: invalid UTF-16")

	// ErrEmbeddedNUL is returned when a Go string cannot be passed as a
	// NUL-terminated wide string.
	ErrEmbeddedNUL = errors.New("native: string contains NUL")
)

// maxWideString bounds the scan for a terminator so that a corrupt pointer
// produces an error instead of walking unbounded memory.
const maxWideString = 1 << 20

// Slice returns a view over count elements starting at first. The view
// aliases native memory and is valid only while the owning result object is
// alive.
func Slice[T any](first *T, count uint32) ([]T, error) {
	if count == 0 {
		return nil, nil
	}
	if first == nil {
		return nil, ErrNullArray
	}
	return unsafe.Slice(first, count), nil
}

// UTF16PtrToString copies the NUL-terminated UTF-16 string at p. A nil
// pointer yields the empty string.
func UTF16PtrToString(p *uint16) (string, error) {
	if p == nil {
		return "", nil
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; n++ {
		if n == maxWideString {
			return "", fmt.Errorf("%w: no terminator within %d code units", ErrInvalidUTF16, maxWideString)
		}
		ptr = unsafe.Add(ptr, 2)
	}
	return UTF16ToString(unsafe.Slice(p, n))
}

// UTF16ToString decodes s, stopping at the first NUL. Unpaired surrogates
// are reported as ErrInvalidUTF16 rather than replaced.
func UTF16ToString(s []uint16) (string, error) {
	for i, c := range s {
		if c == 0 {
			s = s[:i]
			break
		}
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 0xD800 && c < 0xDC00:
			if i+1 >= len(s) || s[i+1] < 0xDC00 || s[i+1] >= 0xE000 {
				return "", fmt.Errorf("%w: unpaired high surrogate at %d", ErrInvalidUTF16, i)
			}
			i++
		case c >= 0xDC00 && c < 0xE000:
			return "", fmt.Errorf("%w: unpaired low surrogate at %d", ErrInvalidUTF16, i)
		}
	}
	return string(utf16.Decode(s)), nil
}

// UTF16FromString returns the NUL-terminated UTF-16 encoding of s.
func UTF16FromString(s string) ([]uint16, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return nil, fmt.Errorf("%w at offset %d", ErrEmbeddedNUL, i)
		}
	}
	return utf16.Encode([]rune(s + "\x00")), nil
}

// UTF16PtrFromString returns a pointer to the NUL-terminated UTF-16 encoding
// of s. The caller keeps the pointer alive for as long as native code may
// read it.
func UTF16PtrFromString(s string) (*uint16, error) {
	a, err := UTF16FromString(s)
	if err != nil {
		return nil, err
	}
	return &a[0], nil
}
