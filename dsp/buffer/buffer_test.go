package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
	if New(-3).Len() != 0 {
		t.Fatal("negative length should give an empty buffer")
	}
}

func TestFromSliceSharesMemory(t *testing.T) {
	s := []complex64{1, 2i, 3}
	FromSlice(s).Samples()[0] = 9i
	if s[0] != 9i {
		t.Fatal("FromSlice should share underlying memory")
	}
}

func TestResizeZeroesExposedTail(t *testing.T) {
	b := New(4)
	copy(b.Samples(), []complex64{1, 2, 3, 4})

	b.Resize(2)
	if b.Len() != 2 || b.Cap() != 4 {
		t.Fatalf("Len/Cap = %d/%d, want 2/4", b.Len(), b.Cap())
	}
	b.Resize(4)
	want := []complex64{1, 2, 0, 0}
	for i, v := range b.Samples() {
		if v != want[i] {
			t.Fatalf("Samples()[%d] = %v, want %v", i, v, want[i])
		}
	}

	b.Resize(10)
	if b.Len() != 10 || b.Samples()[1] != 2 || b.Samples()[9] != 0 {
		t.Fatalf("grow lost data: %v", b.Samples())
	}
}

func TestLoad(t *testing.T) {
	b := FromSlice([]complex64{7, 7, 7, 7})
	if n := b.Load([]complex64{1i, 2i}); n != 2 {
		t.Fatalf("Load() = %d, want 2", n)
	}
	want := []complex64{1i, 2i, 0, 0}
	for i, v := range b.Samples() {
		if v != want[i] {
			t.Fatalf("Samples()[%d] = %v, want %v", i, v, want[i])
		}
	}

	if n := b.Load([]complex64{1, 2, 3, 4, 5, 6}); n != 4 {
		t.Fatalf("Load() of long source = %d, want 4", n)
	}
}

func TestCopyIsDeep(t *testing.T) {
	b := FromSlice([]complex64{1, 2})
	c := b.Copy()
	c.Samples()[0] = 5
	if b.Samples()[0] != 1 {
		t.Fatal("Copy shares memory with the original")
	}
}
