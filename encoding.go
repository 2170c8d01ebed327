package memtab

import (
	"bytes"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// Wire form: a Value is a msgpack array [kind, payload] where payload is
// nil, a fixed-width int, a float64, a str or a bin; a Record is an array
// of Values. The string terminator byte is never encoded.

var (
	_ msgpack.CustomEncoder = Value{}
	_ msgpack.CustomDecoder = (*Value)(nil)
	_ msgpack.CustomEncoder = (*Record)(nil)
	_ msgpack.CustomDecoder = (*Record)(nil)
)

func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !v.kind.Valid() {
		return fmt.Errorf("%w: cannot encode %v", ErrInvalidVariant, v.kind)
	}
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint8(uint8(v.kind)); err != nil {
		return err
	}
	switch v.kind {
	case KindInt8:
		return enc.EncodeInt8(int8(v.num))
	case KindInt16:
		return enc.EncodeInt16(int16(v.num))
	case KindInt32:
		return enc.EncodeInt32(int32(v.num))
	case KindInt64:
		return enc.EncodeInt64(int64(v.num))
	case KindReal:
		return enc.EncodeFloat64(math.Float64frombits(v.num))
	case KindString:
		return enc.EncodeString(string(v.text()))
	case KindBinary:
		return enc.EncodeBytes(v.buf)
	default:
		return enc.EncodeNil()
	}
}

func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("value: got %d-element array, wanted 2", n)
	}
	k, err := dec.DecodeUint8()
	if err != nil {
		return err
	}

	var out Value
	switch kind := Kind(k); kind {
	case KindNull:
		err = dec.DecodeNil()
	case KindInt8:
		var x int8
		x, err = dec.DecodeInt8()
		out = Int8(x)
	case KindInt16:
		var x int16
		x, err = dec.DecodeInt16()
		out = Int16(x)
	case KindInt32:
		var x int32
		x, err = dec.DecodeInt32()
		out = Int32(x)
	case KindInt64:
		var x int64
		x, err = dec.DecodeInt64()
		out = Int64(x)
	case KindReal:
		var x float64
		x, err = dec.DecodeFloat64()
		out = Real(x)
	case KindString:
		var s string
		s, err = dec.DecodeString()
		out = String(s)
	case KindBinary:
		var b []byte
		b, err = dec.DecodeBytes()
		if b == nil {
			b = []byte{}
		}
		out = Value{kind: KindBinary, buf: b}
	default:
		return fmt.Errorf("%w: cannot decode %v", ErrInvalidVariant, kind)
	}
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func (r *Record) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(len(r.values)); err != nil {
		return err
	}
	for _, v := range r.values {
		if err := v.EncodeMsgpack(enc); err != nil {
			return err
		}
	}
	return nil
}

func (r *Record) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	values := make([]Value, n)
	for i := range values {
		if err := values[i].DecodeMsgpack(dec); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	r.values = values
	return nil
}

// EncodeRecord appends the msgpack form of rec to buf.
func EncodeRecord(buf []byte, rec *Record) []byte {
	bb := bytesBuilder{buf}
	enc := msgpack.GetEncoder()
	enc.Reset(&bb)
	err := rec.EncodeMsgpack(enc)
	msgpack.PutEncoder(enc)
	if err != nil {
		panic(fmt.Errorf("failed to encode record using MsgPack: %w", err))
	}
	return bb.Buf
}

// DecodeRecord parses a record produced by EncodeRecord. The result is
// not stored in any table.
func DecodeRecord(buf []byte) (*Record, error) {
	var r bytes.Reader
	r.Reset(buf)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	rec := &Record{}
	err := rec.DecodeMsgpack(dec)
	msgpack.PutDecoder(dec)
	if err != nil {
		return nil, dataErrf(buf, len(buf)-r.Len(), err, "failed to decode msgpack record")
	}
	if r.Len() != 0 {
		return nil, dataErrf(buf, len(buf)-r.Len(), nil, "%d trailing bytes after record", r.Len())
	}
	return rec, nil
}

// EncodeValue appends the msgpack form of v to buf.
func EncodeValue(buf []byte, v Value) []byte {
	bb := bytesBuilder{buf}
	enc := msgpack.GetEncoder()
	enc.Reset(&bb)
	err := v.EncodeMsgpack(enc)
	msgpack.PutEncoder(enc)
	if err != nil {
		panic(fmt.Errorf("failed to encode value using MsgPack: %w", err))
	}
	return bb.Buf
}

func DecodeValue(buf []byte) (Value, error) {
	var r bytes.Reader
	r.Reset(buf)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	var v Value
	err := v.DecodeMsgpack(dec)
	msgpack.PutDecoder(dec)
	if err != nil {
		return Value{}, dataErrf(buf, len(buf)-r.Len(), err, "failed to decode msgpack value")
	}
	return v, nil
}
