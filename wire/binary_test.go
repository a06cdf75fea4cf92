package wire

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(bytes.NewReader(data))

	for i, want := range data {
		if r.Position() != i {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), i)
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	_, err := r.ReadByte()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestReaderReadBytes(t *testing.T) {
	r := NewBytesReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

	got, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadBytes: got %v, want [1 2 3]", got)
	}
	if r.Remaining() != 2 {
		t.Errorf("Remaining: got %d, want 2", r.Remaining())
	}

	_, err = r.ReadBytes(10)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestReaderReadBytes_UnknownLength(t *testing.T) {
	// bufio-like sources cannot report a length up front.
	r := NewReader(&byteSource{data: []byte{1, 2}})
	if r.Remaining() != -1 {
		t.Errorf("Remaining: got %d, want -1", r.Remaining())
	}
	_, err := r.ReadBytes(1 << 30)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

type byteSource struct {
	data []byte
}

func (s *byteSource) ReadByte() (byte, error) {
	if len(s.data) == 0 {
		return 0, io.EOF
	}
	b := s.data[0]
	s.data = s.data[1:]
	return b, nil
}

func TestReaderReadUvarint(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xff, 0x01}, 255},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, math.MaxUint64},
	}

	for _, tt := range tests {
		r := NewBytesReader(tt.encoded)
		got, err := r.ReadUvarint()
		if err != nil {
			t.Errorf("ReadUvarint(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadUvarint(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadUvarintOverflow(t *testing.T) {
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x02}
	_, err := NewBytesReader(data).ReadUvarint()
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestReaderReadUvarintTruncated(t *testing.T) {
	_, err := NewBytesReader([]byte{0x80}).ReadUvarint()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestWriterUvarint(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{624485, []byte{0xe5, 0x8e, 0x26}},
	}
	for _, tt := range tests {
		w := NewWriter()
		w.WriteUvarint(tt.value)
		if !bytes.Equal(w.Bytes(), tt.want) {
			t.Errorf("WriteUvarint(%d): got %x, want %x", tt.value, w.Bytes(), tt.want)
		}
	}
}

func TestFixedWidthLittleEndian(t *testing.T) {
	w := NewWriter()
	w.WriteU16(0x0102)
	w.WriteU32(0x01020304)
	w.WriteU64(0x0102030405060708)
	want := []byte{
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got %x, want %x", w.Bytes(), want)
	}

	r := NewBytesReader(w.Bytes())
	if v, _ := r.ReadU16(); v != 0x0102 {
		t.Errorf("ReadU16: got %#x", v)
	}
	if v, _ := r.ReadU32(); v != 0x01020304 {
		t.Errorf("ReadU32: got %#x", v)
	}
	if v, _ := r.ReadU64(); v != 0x0102030405060708 {
		t.Errorf("ReadU64: got %#x", v)
	}
}

func TestFloats(t *testing.T) {
	w := NewWriter()
	w.WriteF32(1.5)
	w.WriteF64(-2.25)
	r := NewBytesReader(w.Bytes())
	if f, err := r.ReadF32(); err != nil || f != 1.5 {
		t.Errorf("ReadF32: %v, %v", f, err)
	}
	if f, err := r.ReadF64(); err != nil || f != -2.25 {
		t.Errorf("ReadF64: %v, %v", f, err)
	}
}

func TestReaderReadBool(t *testing.T) {
	r := NewBytesReader([]byte{0, 1, 2})
	if b, err := r.ReadBool(); err != nil || b {
		t.Errorf("ReadBool(0) = %v, %v", b, err)
	}
	if b, err := r.ReadBool(); err != nil || !b {
		t.Errorf("ReadBool(1) = %v, %v", b, err)
	}
	if _, err := r.ReadBool(); err == nil {
		t.Error("expected error for bool byte 2")
	}
}

func TestReaderReadString(t *testing.T) {
	w := NewWriter()
	w.WriteString("hello")
	if !bytes.Equal(w.Bytes(), []byte{5, 'h', 'e', 'l', 'l', 'o'}) {
		t.Fatalf("WriteString: got %x", w.Bytes())
	}
	got, err := NewBytesReader(w.Bytes()).ReadString()
	if err != nil || got != "hello" {
		t.Errorf("ReadString: got %q, %v", got, err)
	}
}

func TestReaderReadStringInvalidUTF8(t *testing.T) {
	_, err := NewBytesReader([]byte{0x02, 0xff, 0xfe}).ReadString()
	if err == nil {
		t.Error("expected error for invalid UTF-8")
	}
}

func TestWriterWriteTo(t *testing.T) {
	w := NewWriter()
	w.Byte(7)
	w.WriteBytes([]byte{8, 9})
	var out bytes.Buffer
	n, err := w.WriteTo(&out)
	if err != nil || n != 3 {
		t.Fatalf("WriteTo: %d, %v", n, err)
	}
	if !bytes.Equal(out.Bytes(), []byte{7, 8, 9}) {
		t.Errorf("WriteTo: got %v", out.Bytes())
	}
}
