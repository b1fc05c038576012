package text

import (
	"errors"
	"testing"
)

func TestNew_CopiesText(t *testing.T) {
	tr := NewTracker(nil)

	b, err := New(tr, "PUMP")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if b.String() != "PUMP" || b.Len() != 4 {
		t.Errorf("got %q (len %d), want PUMP", b.String(), b.Len())
	}
	if tr.Allocations() != 1 || tr.LiveBytes() != 4 {
		t.Errorf("allocations=%d liveBytes=%d, want 1 and 4", tr.Allocations(), tr.LiveBytes())
	}
}

func TestNew_EmptyDoesNotAllocate(t *testing.T) {
	tr := NewTracker(nil)

	b, err := New(tr, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !b.IsEmpty() || b.Handle() != NoHandle {
		t.Errorf("empty buffer should have no handle, got %d", b.Handle())
	}
	if tr.Allocations() != 0 {
		t.Errorf("allocations = %d, want 0", tr.Allocations())
	}

	b.Release()
	if tr.Releases() != 0 || tr.DoubleReleases() != 0 {
		t.Error("releasing an empty buffer must not touch the allocator")
	}
}

func TestNew_NilAllocator(t *testing.T) {
	if _, err := New(nil, "x"); !errors.Is(err, ErrNoAllocator) {
		t.Errorf("expected ErrNoAllocator, got %v", err)
	}
}

func TestReplace_ReleasesPrevious(t *testing.T) {
	tr := NewTracker(nil)
	b, _ := New(tr, "OLD")

	if err := b.Replace("NEWER"); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if b.String() != "NEWER" {
		t.Errorf("got %q, want NEWER", b.String())
	}
	if tr.Live() != 1 || tr.Releases() != 1 {
		t.Errorf("live=%d releases=%d, want 1 and 1", tr.Live(), tr.Releases())
	}
	if tr.DoubleReleases() != 0 {
		t.Errorf("double releases = %d", tr.DoubleReleases())
	}
}

func TestReplace_FailureKeepsOldText(t *testing.T) {
	arena := NewArena(5)
	b, err := New(arena, "ABC")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = b.Replace("TOO LONG")
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if b.String() != "ABC" {
		t.Errorf("failed Replace must keep old text, got %q", b.String())
	}
	if arena.Stats().Used != 3 {
		t.Errorf("arena used = %d, want 3", arena.Stats().Used)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	tr := NewTracker(nil)
	orig, _ := New(tr, "LIGHT")

	cp, err := orig.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	if cp.Handle() == orig.Handle() {
		t.Fatal("clone must own a distinct handle")
	}

	if err := cp.Replace("FAN"); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if orig.String() != "LIGHT" {
		t.Errorf("original changed to %q", orig.String())
	}

	cp.Release()
	orig.Release()
	if tr.Live() != 0 || tr.DoubleReleases() != 0 {
		t.Errorf("live=%d double=%d, want 0 and 0", tr.Live(), tr.DoubleReleases())
	}
}

func TestRelease_Idempotent(t *testing.T) {
	tr := NewTracker(nil)
	b, _ := New(tr, "ON")

	b.Release()
	b.Release()

	if tr.Releases() != 1 {
		t.Errorf("releases = %d, want 1", tr.Releases())
	}
	if tr.DoubleReleases() != 0 {
		t.Errorf("double releases = %d, want 0", tr.DoubleReleases())
	}
	if !b.IsEmpty() {
		t.Error("buffer should be empty after Release")
	}

	// 释放后仍可复用
	if err := b.Replace("OFF"); err != nil {
		t.Fatalf("Replace after Release failed: %v", err)
	}
	if b.String() != "OFF" {
		t.Errorf("got %q, want OFF", b.String())
	}
}
