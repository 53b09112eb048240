package binenc

import (
	"errors"
	"testing"
)

func TestNewReader(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})
	if r.Position() != 0 {
		t.Errorf("expected position 0, got %d", r.Position())
	}
	if r.Remaining() != 3 {
		t.Errorf("expected remaining 3, got %d", r.Remaining())
	}
	if r.Err() != nil {
		t.Errorf("expected no error, got %v", r.Err())
	}
}

func TestReaderReadUint16(t *testing.T) {
	// BE encoding of 0x0102
	r := NewReader([]byte{0x01, 0x02})
	v := r.ReadUint16()
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
	if v != 0x0102 {
		t.Errorf("expected 0x0102, got 0x%04X", v)
	}
	if r.Remaining() != 0 {
		t.Errorf("expected remaining 0, got %d", r.Remaining())
	}
}

func TestReaderReadUint32(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00, 0x01, 0x00})
	v := r.ReadUint32()
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
	if v != 256 {
		t.Errorf("expected 256, got %d", v)
	}
	if r.Position() != 4 {
		t.Errorf("expected position 4, got %d", r.Position())
	}
}

func TestReaderViewAliasesBuffer(t *testing.T) {
	data := []byte{'T', 'E', 'X', 'T', 0xFF}
	r := NewReader(data)
	v := r.View(4)
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
	if string(v) != "TEXT" {
		t.Errorf("expected TEXT, got %q", v)
	}
	if &v[0] != &data[0] {
		t.Error("expected View to alias the wrapped buffer")
	}
	if cap(v) != 4 {
		t.Errorf("expected capped view, got cap %d", cap(v))
	}
}

func TestReaderReadInto(t *testing.T) {
	r := NewReader([]byte{'A', 'P', 'P', 'L', 0x01})
	var code [4]byte
	r.ReadInto(code[:])
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
	if string(code[:]) != "APPL" {
		t.Errorf("expected APPL, got %q", code)
	}
	if r.ReadUint8() != 0x01 {
		t.Error("expected trailing byte 0x01")
	}
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader([]byte{0x01})
	if v := r.ReadUint16(); v != 0 {
		t.Errorf("expected 0 on short read, got %d", v)
	}
	if !errors.Is(r.Err(), ErrShortRead) {
		t.Errorf("expected ErrShortRead, got %v", r.Err())
	}
}

func TestReaderShortView(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if v := r.View(3); v != nil {
		t.Errorf("expected nil view, got %v", v)
	}
	if !errors.Is(r.Err(), ErrShortRead) {
		t.Errorf("expected ErrShortRead, got %v", r.Err())
	}
}

func TestReaderNegativeView(t *testing.T) {
	r := NewReader([]byte{0x01})
	r.View(-1)
	if !errors.Is(r.Err(), ErrShortRead) {
		t.Errorf("expected ErrShortRead, got %v", r.Err())
	}
}

func TestReaderErrorAccumulation(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})
	_ = r.ReadUint32() // fails
	first := r.Err()
	if first == nil {
		t.Fatal("expected error after short read")
	}

	// Subsequent reads are no-ops and keep the first error.
	if v := r.ReadUint8(); v != 0 {
		t.Errorf("expected 0 after error, got %d", v)
	}
	r.Skip(1)
	if r.Err() != first {
		t.Errorf("expected first error to be preserved, got %v", r.Err())
	}
	if r.Position() != 0 {
		t.Errorf("expected position unchanged at 0, got %d", r.Position())
	}
}

func TestReaderExpectUint8(t *testing.T) {
	r := NewReader([]byte{0x00, 0x07})
	r.ExpectUint8(0x00)
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
	r.ExpectUint8(0x00)
	if !errors.Is(r.Err(), ErrExpectMismatch) {
		t.Errorf("expected ErrExpectMismatch, got %v", r.Err())
	}
}

func TestReaderEmptyData(t *testing.T) {
	r := NewReader(nil)
	if r.Remaining() != 0 {
		t.Errorf("expected remaining 0, got %d", r.Remaining())
	}
	_ = r.ReadUint8()
	if !errors.Is(r.Err(), ErrShortRead) {
		t.Errorf("expected ErrShortRead, got %v", r.Err())
	}
}
