package memtab

import "encoding/binary"

const binHashMul = 0x9e3779b1

// Hash returns the bucket hash of the value.
//
// Numeric kinds and Binary hash their raw little-endian payload bytes with
// h = (h + b) * 0x9e3779b1. Strings use the h*65599 + c recurrence over the
// stored bytes (terminator included), treating each byte as a signed char.
// Null hashes to 0, which is also the hash of every zero-valued number, of
// the empty string and of the empty binary.
func (v Value) Hash() uint64 {
	switch v.kind {
	case KindString:
		return strHash(v.buf)
	case KindBinary:
		return binHash(v.buf)
	case KindInt8, KindInt16, KindInt32, KindInt64, KindReal:
		var raw [8]byte
		binary.LittleEndian.PutUint64(raw[:], v.num)
		return binHash(raw[:v.kind.fixedSize()])
	default:
		return 0
	}
}

func binHash(data []byte) uint64 {
	var h uint64
	for _, b := range data {
		h += uint64(b)
		h *= binHashMul
	}
	return h
}

func strHash(data []byte) uint64 {
	var h uint64
	for _, b := range data {
		ch := uint64(int64(int8(b)))
		h = ch + (h << 6) + (h << 16) - h
	}
	return h
}
