package wire

import (
	"fmt"
	"reflect"

	"github.com/wippyai/splice/errors"
)

// Encoder is implemented by types with a generated EncodeWire method.
type Encoder interface {
	EncodeWire(w *Writer) error
}

// Decoder is implemented by pointers to types with a generated
// DecodeWire method.
type Decoder interface {
	DecodeWire(r *Reader) error
}

// Decode reads one T from r. Types whose pointer implements Decoder
// decode themselves, basic kinds use the fixed format and anything else
// is read as a length-prefixed CBOR blob.
func Decode[T any](r *Reader) (T, error) {
	var v T
	err := decodeInto(r, &v)
	return v, err
}

// Encode writes v to w. It mirrors Decode.
func Encode[T any](w *Writer, v T) error {
	return encodeValue(w, v)
}

// Marshal encodes v into a fresh buffer.
func Marshal[T any](v T) ([]byte, error) {
	w := NewWriter()
	if err := Encode(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes one T from data, which must be consumed entirely.
func Unmarshal[T any](data []byte) (T, error) {
	r := NewBytesReader(data)
	v, err := Decode[T](r)
	if err != nil {
		return v, err
	}
	if rem := r.Remaining(); rem > 0 {
		err := errors.InvalidData(errors.PhaseDecode, nil, fmt.Sprintf("%d trailing bytes after position %d", rem, r.Position()))
		err.GoType = fmt.Sprintf("%T", v)
		return v, err
	}
	return v, nil
}

func decodeInto(r *Reader, dst any) error {
	var err error
	switch p := dst.(type) {
	case Decoder:
		return p.DecodeWire(r)
	case *bool:
		*p, err = r.ReadBool()
	case *int8:
		var b byte
		b, err = r.ReadByte()
		*p = int8(b)
	case *uint8:
		*p, err = r.ReadByte()
	case *int16:
		var u uint16
		u, err = r.ReadU16()
		*p = int16(u)
	case *uint16:
		*p, err = r.ReadU16()
	case *int32:
		var u uint32
		u, err = r.ReadU32()
		*p = int32(u)
	case *uint32:
		*p, err = r.ReadU32()
	case *int64:
		var u uint64
		u, err = r.ReadU64()
		*p = int64(u)
	case *uint64:
		*p, err = r.ReadU64()
	case *float32:
		*p, err = r.ReadF32()
	case *float64:
		*p, err = r.ReadF64()
	case *string:
		*p, err = r.ReadString()
	case *[]byte:
		*p, err = r.ReadBlob()
	default:
		return decodeReflect(r, reflect.ValueOf(dst).Elem())
	}
	return err
}

// decodeReflect handles named types over basic kinds, so `type ID uint32`
// keeps the fixed format, and int/uint, which are always 64-bit on the
// wire.
func decodeReflect(r *Reader, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		b, err := r.ReadBool()
		v.SetBool(b)
		return err
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		u, err := readFixed(r, v.Type().Size(), v.Kind() == reflect.Int)
		if err != nil {
			return err
		}
		n := int64(u)
		if k := v.Kind(); k != reflect.Int64 && k != reflect.Int {
			n = signExtend(u, v.Type().Size())
		}
		if v.OverflowInt(n) {
			return errors.Overflow(errors.PhaseDecode, nil, n, v.Type().String())
		}
		v.SetInt(n)
		return nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		u, err := readFixed(r, v.Type().Size(), v.Kind() == reflect.Uint || v.Kind() == reflect.Uintptr)
		if err != nil {
			return err
		}
		if v.OverflowUint(u) {
			return errors.Overflow(errors.PhaseDecode, nil, u, v.Type().String())
		}
		v.SetUint(u)
		return nil
	case reflect.Float32:
		f, err := r.ReadF32()
		v.SetFloat(float64(f))
		return err
	case reflect.Float64:
		f, err := r.ReadF64()
		v.SetFloat(f)
		return err
	case reflect.String:
		s, err := r.ReadString()
		v.SetString(s)
		return err
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := r.ReadBlob()
			v.SetBytes(b)
			return err
		}
	}
	return decodeCBOR(r, v.Addr().Interface())
}

// readFixed reads a little-endian integer of size bytes; platform sized
// integers are always read as 8 bytes.
func readFixed(r *Reader, size uintptr, platform bool) (uint64, error) {
	if platform {
		size = 8
	}
	switch size {
	case 1:
		b, err := r.ReadByte()
		return uint64(b), err
	case 2:
		u, err := r.ReadU16()
		return uint64(u), err
	case 4:
		u, err := r.ReadU32()
		return uint64(u), err
	}
	return r.ReadU64()
}

func signExtend(u uint64, size uintptr) int64 {
	switch size {
	case 1:
		return int64(int8(u))
	case 2:
		return int64(int16(u))
	case 4:
		return int64(int32(u))
	}
	return int64(u)
}

func encodeValue(w *Writer, v any) error {
	switch x := v.(type) {
	case bool:
		w.WriteBool(x)
	case int8:
		w.Byte(byte(x))
	case uint8:
		w.Byte(x)
	case int16:
		w.WriteU16(uint16(x))
	case uint16:
		w.WriteU16(x)
	case int32:
		w.WriteU32(uint32(x))
	case uint32:
		w.WriteU32(x)
	case int64:
		w.WriteU64(uint64(x))
	case uint64:
		w.WriteU64(x)
	case int:
		w.WriteU64(uint64(x))
	case uint:
		w.WriteU64(uint64(x))
	case float32:
		w.WriteF32(x)
	case float64:
		w.WriteF64(x)
	case string:
		w.WriteString(x)
	case []byte:
		w.WriteBlob(x)
	default:
		return encodeReflect(w, v)
	}
	return nil
}

func encodeReflect(w *Writer, v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return encodeCBOR(w, v)
	}
	// Pointers go through CBOR on both sides: Decode[*T] never sees a
	// Decoder, so a pointer must not take the Encoder path either.
	if rv.Kind() == reflect.Pointer {
		return encodeCBOR(w, v)
	}
	if e, ok := v.(Encoder); ok {
		return e.EncodeWire(w)
	}
	switch rv.Kind() {
	case reflect.Bool:
		w.WriteBool(rv.Bool())
		return nil
	case reflect.Int8:
		w.Byte(byte(rv.Int()))
		return nil
	case reflect.Int16:
		w.WriteU16(uint16(rv.Int()))
		return nil
	case reflect.Int32:
		w.WriteU32(uint32(rv.Int()))
		return nil
	case reflect.Int64, reflect.Int:
		w.WriteU64(uint64(rv.Int()))
		return nil
	case reflect.Uint8:
		w.Byte(byte(rv.Uint()))
		return nil
	case reflect.Uint16:
		w.WriteU16(uint16(rv.Uint()))
		return nil
	case reflect.Uint32:
		w.WriteU32(uint32(rv.Uint()))
		return nil
	case reflect.Uint64, reflect.Uint, reflect.Uintptr:
		w.WriteU64(rv.Uint())
		return nil
	case reflect.Float32:
		w.WriteF32(float32(rv.Float()))
		return nil
	case reflect.Float64:
		w.WriteF64(rv.Float())
		return nil
	case reflect.String:
		w.WriteString(rv.String())
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			w.WriteBlob(rv.Bytes())
			return nil
		}
	}
	return encodeCBOR(w, v)
}
