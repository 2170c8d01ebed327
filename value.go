package memtab

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindReal
	KindString
	KindBinary

	kindCount
)

var kindNames = [...]string{
	KindNull:   "null",
	KindInt8:   "int8",
	KindInt16:  "int16",
	KindInt32:  "int32",
	KindInt64:  "int64",
	KindReal:   "real",
	KindString: "string",
	KindBinary: "binary",
}

func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// fixedSize returns the payload size of inline kinds, or -1 for kinds
// that own a buffer.
func (k Kind) fixedSize() int {
	switch k {
	case KindNull:
		return 0
	case KindInt8:
		return 1
	case KindInt16:
		return 2
	case KindInt32:
		return 4
	case KindInt64, KindReal:
		return 8
	default:
		return -1
	}
}

// Value is a single typed datum stored in one record slot. The zero Value
// is Null.
//
// Numeric kinds keep their payload inline in num (sign-extended integers,
// IEEE-754 bits for Real). String and Binary own buf exclusively; for
// strings buf carries one trailing zero byte that is part of the stored
// size but never part of the text.
//
// Go copies of a Value share buf. Nothing in this package mutates buf in
// place, so sharing is safe to read; use Clone when an independent buffer
// is required and Take to move ownership.
type Value struct {
	kind Kind
	num  uint64
	buf  []byte
}

func Null() Value {
	return Value{}
}

func Int8(v int8) Value {
	return Value{kind: KindInt8, num: uint64(int64(v))}
}

func Int16(v int16) Value {
	return Value{kind: KindInt16, num: uint64(int64(v))}
}

func Int32(v int32) Value {
	return Value{kind: KindInt32, num: uint64(int64(v))}
}

func Int64(v int64) Value {
	return Value{kind: KindInt64, num: uint64(v)}
}

func Real(v float64) Value {
	return Value{kind: KindReal, num: math.Float64bits(v)}
}

func String(s string) Value {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return Value{kind: KindString, buf: buf}
}

// Binary copies b into a buffer owned by the returned Value.
func Binary(b []byte) Value {
	buf := make([]byte, len(b))
	copy(buf, b)
	return Value{kind: KindBinary, buf: buf}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Size returns the byte length of the payload. For strings this includes
// the reserved terminator byte.
func (v Value) Size() int {
	if n := v.kind.fixedSize(); n >= 0 {
		return n
	}
	return len(v.buf)
}

// Int returns the value of any integer kind widened to int64.
func (v Value) Int() (int64, bool) {
	switch v.kind {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return int64(v.num), true
	default:
		return 0, false
	}
}

func (v Value) Float() (float64, bool) {
	if v.kind != KindReal {
		return 0, false
	}
	return math.Float64frombits(v.num), true
}

func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return string(v.text()), true
}

// Bytes returns a copy of a Binary payload.
func (v Value) Bytes() ([]byte, bool) {
	if v.kind != KindBinary {
		return nil, false
	}
	return bytes.Clone(v.buf), true
}

func (v Value) text() []byte {
	if len(v.buf) == 0 {
		return nil
	}
	return v.buf[:len(v.buf)-1]
}

// String renders the value as text: decimal for integers, six fixed
// decimals for Real, the text itself for String, lowercase hex for Binary
// and an empty string for Null.
func (v Value) String() string {
	switch v.kind {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.FormatInt(int64(v.num), 10)
	case KindReal:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'f', 6, 64)
	case KindString:
		return string(v.text())
	case KindBinary:
		return hex.EncodeToString(v.buf)
	default:
		return ""
	}
}

// GoString makes %#v output readable in test failures.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "Null()"
	case KindString:
		return fmt.Sprintf("String(%q)", v.text())
	case KindBinary:
		return fmt.Sprintf("Binary(%s)", hexstr(v.buf))
	default:
		return fmt.Sprintf("%s(%s)", v.kind, v.String())
	}
}

// Clone returns a deep copy; the result never shares a buffer with v.
func (v Value) Clone() Value {
	if v.buf != nil {
		v.buf = bytes.Clone(v.buf)
	}
	return v
}

// Assign deep-copies src into v. It fails with ErrInvalidVariant, leaving
// v untouched, when src carries a kind outside the closed set.
func (v *Value) Assign(src Value) error {
	switch src.kind {
	case KindNull:
		*v = Value{}
	case KindInt8, KindInt16, KindInt32, KindInt64, KindReal:
		*v = Value{kind: src.kind, num: src.num}
	case KindString, KindBinary:
		*v = Value{kind: src.kind, buf: bytes.Clone(src.buf)}
	default:
		return fmt.Errorf("%w: cannot assign %v", ErrInvalidVariant, src.kind)
	}
	return nil
}

// Take moves the value out of v, leaving v Null. The buffer handle is
// transferred, never copied.
func (v *Value) Take() Value {
	out := *v
	*v = Value{}
	return out
}

// Equal reports whether both values have the same kind and payload. Real
// values compare by bit pattern, matching Hash.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString, KindBinary:
		return bytes.Equal(v.buf, o.buf)
	default:
		return v.num == o.num
	}
}
