package pfunc

import (
	"errors"
	"testing"

	verr "github.com/go-relang/relang/error"
)

func intLess(a, b int) bool { return a < b }

func TestFuncInsertApply(t *testing.T) {
	f := New[int, string](intLess)
	f.Insert(2, "two")
	f.Insert(1, "one")
	f.Insert(2, "TWO") // overwrite

	v, err := f.Apply(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "TWO" {
		t.Fatalf("want TWO, got %v", v)
	}

	if !f.InDomain(1) {
		t.Fatal("want 1 in domain")
	}
	if f.InDomain(3) {
		t.Fatal("want 3 not in domain")
	}

	if _, err := f.Apply(3); !errors.Is(err, verr.OutOfDomain) {
		t.Fatalf("want OutOfDomain, got %v", err)
	}
}

func TestFuncErase(t *testing.T) {
	f := New[int, string](intLess)
	f.Insert(1, "one")
	f.Erase(1)
	if f.InDomain(1) {
		t.Fatal("want 1 erased from domain")
	}
	f.Erase(1) // no-op, must not panic
}

func TestFuncKeysOrdered(t *testing.T) {
	f := New[int, string](intLess)
	for _, k := range []int{5, 1, 4, 2, 3} {
		f.Insert(k, "")
	}
	want := []int{1, 2, 3, 4, 5}
	got := f.Keys()
	if len(got) != len(want) {
		t.Fatalf("want %v keys, got %v", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key order mismatch at %v; want %v, got %v", i, want, got)
		}
	}
}

func TestFuncApplySetFailsOnFirstAbsence(t *testing.T) {
	f := New[int, string](intLess)
	f.Insert(1, "one")
	f.Insert(2, "two")

	if _, err := f.ApplySet([]int{1, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.ApplySet([]int{1, 3, 2}); !errors.Is(err, verr.OutOfDomain) {
		t.Fatalf("want OutOfDomain, got %v", err)
	}
}

func TestFuncEachVisitsInOrder(t *testing.T) {
	f := New[int, string](intLess)
	f.Insert(3, "c")
	f.Insert(1, "a")
	f.Insert(2, "b")

	var seen []int
	f.Each(func(k int, v string) {
		seen = append(seen, k)
	})
	want := []int{1, 2, 3}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("visit order mismatch; want %v, got %v", want, seen)
		}
	}
}

func TestFuncClone(t *testing.T) {
	f := New[int, string](intLess)
	f.Insert(1, "one")
	g := f.Clone()
	g.Insert(2, "two")

	if f.InDomain(2) {
		t.Fatal("mutating the clone must not affect the original")
	}
	if !g.InDomain(1) || !g.InDomain(2) {
		t.Fatal("clone must carry over the original's entries")
	}
}
