package utils

import (
	"strings"
	"testing"
)

func TestOrderedSetNoDuplicates(t *testing.T) {
	s := NewOrderedSet()

	added := s.Add("ep 1")
	if !added {
		t.Error("first Add should return true")
	}

	added = s.Add("ep 1")
	if added {
		t.Error("second Add of same value should return false")
	}

	if n := len(s.Items()); n != 1 {
		t.Errorf("size: got %d, want 1", n)
	}
}

func TestOrderedSetKeepsDiscoveryOrder(t *testing.T) {
	s := NewOrderedSet()
	for _, v := range []string{"c", "a", "c", "b", "a"} {
		s.Add(v)
	}

	got := strings.Join(s.Items(), ",")
	if got != "c,a,b" {
		t.Errorf("items: got %q, want %q", got, "c,a,b")
	}
	if s.Position("b") != 2 {
		t.Errorf("position of b: got %d, want 2", s.Position("b"))
	}
	if s.Position("zzz") != -1 {
		t.Errorf("position of missing value: got %d, want -1", s.Position("zzz"))
	}
}

func TestOrderedSetItemsIsCopy(t *testing.T) {
	s := NewOrderedSet()
	s.Add("x")
	items := s.Items()
	items[0] = "mutated"

	if s.Items()[0] != "x" {
		t.Error("Items should not expose internal storage")
	}
}
