package wire

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	serrors "github.com/wippyai/splice/errors"
)

type userID uint32

type level int8

type label string

type point struct {
	X, Y int
}

func roundTrip[T any](t *testing.T, v T) T {
	t.Helper()
	data, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal(%v): %v", v, err)
	}
	got, err := Unmarshal[T](data)
	if err != nil {
		t.Fatalf("Unmarshal(%x): %v", data, err)
	}
	return got
}

func TestRoundTrip(t *testing.T) {
	if got := roundTrip(t, true); !got {
		t.Error("bool")
	}
	if got := roundTrip(t, int8(-5)); got != -5 {
		t.Errorf("int8: %d", got)
	}
	if got := roundTrip(t, int16(-300)); got != -300 {
		t.Errorf("int16: %d", got)
	}
	if got := roundTrip(t, int32(-70000)); got != -70000 {
		t.Errorf("int32: %d", got)
	}
	if got := roundTrip(t, -1<<40); got != -1<<40 {
		t.Errorf("int: %d", got)
	}
	if got := roundTrip(t, uint(1<<40)); got != 1<<40 {
		t.Errorf("uint: %d", got)
	}
	if got := roundTrip(t, "héllo"); got != "héllo" {
		t.Errorf("string: %q", got)
	}
	if got := roundTrip(t, []byte{1, 2, 3}); !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("bytes: %v", got)
	}
	if got := roundTrip(t, userID(42)); got != 42 {
		t.Errorf("named uint32: %d", got)
	}
	if got := roundTrip(t, level(-3)); got != -3 {
		t.Errorf("named int8: %d", got)
	}
	if got := roundTrip(t, label("x")); got != "x" {
		t.Errorf("named string: %q", got)
	}
	if got := roundTrip(t, point{X: 1, Y: -2}); got != (point{X: 1, Y: -2}) {
		t.Errorf("struct via CBOR: %+v", got)
	}
	m := map[string]int{"a": 1, "b": 2}
	if got := roundTrip(t, m); !reflect.DeepEqual(got, m) {
		t.Errorf("map via CBOR: %v", got)
	}
	p := &point{X: 3}
	if got := roundTrip(t, p); got == nil || *got != *p {
		t.Errorf("pointer via CBOR: %v", got)
	}
}

func TestFixedLayout(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want []byte
	}{
		{"bool", true, []byte{1}},
		{"uint8", uint8(0xab), []byte{0xab}},
		{"int16", int16(-2), []byte{0xfe, 0xff}},
		{"int is 64-bit", 1, []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{"named uint32", userID(1), []byte{1, 0, 0, 0}},
		{"string", "ab", []byte{2, 'a', 'b'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			if err := Encode(w, tt.v); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(w.Bytes(), tt.want) {
				t.Errorf("got %x, want %x", w.Bytes(), tt.want)
			}
		})
	}
}

func TestUnmarshal_TrailingBytes(t *testing.T) {
	_, err := Unmarshal[uint8]([]byte{1, 2})
	if !errors.Is(err, &serrors.Error{Phase: serrors.PhaseDecode, Kind: serrors.KindInvalidData}) {
		t.Errorf("got %v, want decode/invalid_data", err)
	}
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.GoType != "uint8" {
		t.Errorf("GoType = %q, want uint8", serr.GoType)
	}
}

func TestUnmarshal_Short(t *testing.T) {
	if _, err := Unmarshal[uint32]([]byte{1, 2}); err == nil {
		t.Error("expected error for short input")
	}
}

func TestDecode_BadCBOR(t *testing.T) {
	w := NewWriter()
	w.WriteBlob([]byte{0xff})
	_, err := Unmarshal[point](w.Bytes())
	if !errors.Is(err, &serrors.Error{Phase: serrors.PhaseDecode, Kind: serrors.KindInvalidData}) {
		t.Errorf("got %v, want decode/invalid_data", err)
	}
}

func TestEncode_Unsupported(t *testing.T) {
	w := NewWriter()
	err := Encode(w, make(chan int))
	if !errors.Is(err, &serrors.Error{Phase: serrors.PhaseEncode, Kind: serrors.KindUnsupported}) {
		t.Errorf("got %v, want encode/unsupported", err)
	}
}

func TestFieldError(t *testing.T) {
	inner := serrors.InvalidUTF8(serrors.PhaseDecode, nil, []byte{0xff})
	err := DecodeError("Pair", "Key", inner)

	var serr *serrors.Error
	if !errors.As(err, &serr) {
		t.Fatalf("got %T", err)
	}
	if serr.Kind != serrors.KindInvalidUTF8 || !reflect.DeepEqual(serr.Path, []string{"Pair", "Key"}) {
		t.Errorf("got kind %s path %v", serr.Kind, serr.Path)
	}
	if !errors.Is(err, inner) {
		t.Error("cause not kept")
	}

	if err := EncodeError("Pair", "Key", errors.New("boom")); !errors.Is(err, &serrors.Error{Phase: serrors.PhaseEncode, Kind: serrors.KindInvalidData}) {
		t.Errorf("plain cause: got %v", err)
	}
}

func TestVariantErrors(t *testing.T) {
	err := UnknownVariant("Shape", 5, 2)
	if !errors.Is(err, &serrors.Error{Phase: serrors.PhaseDecode, Kind: serrors.KindInvalidVariant}) {
		t.Errorf("UnknownVariant: got %v", err)
	}
	err = NoVariant("Shape")
	if !errors.Is(err, &serrors.Error{Phase: serrors.PhaseEncode, Kind: serrors.KindInvalidVariant}) {
		t.Errorf("NoVariant: got %v", err)
	}
}
