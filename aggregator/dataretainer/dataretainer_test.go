package dataretainer

import (
	"reflect"
	"testing"
)

// helper: extracts the Values of []Entry[int]
func valuesOf(entries []Entry[int]) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

func keysOf[V int | float64](entries []Entry[V]) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

var inputs = []Entry[int]{
	{Key: "a", Value: 7},
	{Key: "b", Value: 1},
	{Key: "c", Value: 5},
	{Key: "d", Value: 3},
	{Key: "e", Value: 12},
	{Key: "f", Value: 9},
	{Key: "g", Value: 20},
	{Key: "h", Value: 2},
	{Key: "i", Value: 15},
}

func TestTopN_FiveLargest(t *testing.T) {
	top := NewTopN[int](5, true)
	for _, e := range inputs {
		top.Insert(e)
	}
	got := valuesOf(top.Values())
	want := []int{20, 15, 12, 9, 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FiveLargest: got %v, want %v", got, want)
	}
}

func TestTopN_ThreeSmallest(t *testing.T) {
	top := NewTopN[int](3, false)
	for _, e := range inputs {
		top.Insert(e)
	}
	got := valuesOf(top.Values())
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ThreeSmallest: got %v, want %v", got, want)
	}
}

func TestTopN_CapacityLargerThanInput(t *testing.T) {
	top := NewTopN[int](15, true)
	top.Insert(Entry[int]{Key: "x", Value: 1})
	top.Insert(Entry[int]{Key: "y", Value: 2})
	if top.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", top.Len())
	}
	got := valuesOf(top.Values())
	if !reflect.DeepEqual(got, []int{2, 1}) {
		t.Fatalf("got %v", got)
	}
}

func TestTopN_TiesResolveByKey(t *testing.T) {
	top := NewTopN[float64](2, true)
	for _, key := range []string{"s3", "s1", "s4", "s2"} {
		top.Insert(Entry[float64]{Key: key, Value: 5})
	}
	got := keysOf(top.Values())
	want := []string{"s1", "s2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TiesResolveByKey: got %v, want %v", got, want)
	}
}

func TestSorted(t *testing.T) {
	got := valuesOf(Sorted(inputs, false))
	want := []int{1, 2, 3, 5, 7, 9, 12, 15, 20}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sorted: got %v, want %v", got, want)
	}
}
