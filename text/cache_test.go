package text

import (
	"fmt"
	"testing"
)

func TestMeasureCacheHit(t *testing.T) {
	c := newMeasureCache()
	if _, ok := c.get("1.5"); ok {
		t.Fatal("empty cache reported a hit")
	}
	c.put("1.5", 21)
	w, ok := c.get("1.5")
	if !ok || w != 21 {
		t.Errorf("get(\"1.5\") = (%d, %v), want (21, true)", w, ok)
	}
}

func TestMeasureCacheResetAtCapacity(t *testing.T) {
	c := newMeasureCache()
	for i := range measureCacheCap {
		c.put(fmt.Sprintf("label-%d", i), i)
	}
	c.put("overflow", 1)
	if _, ok := c.get("label-0"); ok {
		t.Error("cache kept old entries past capacity")
	}
	if w, ok := c.get("overflow"); !ok || w != 1 {
		t.Error("cache dropped the entry that triggered the reset")
	}
}

func TestMeasureMemoized(t *testing.T) {
	f := Builtin()
	first := f.Measure("420")
	if first <= 0 {
		t.Fatalf("Measure(\"420\") = %d, want positive", first)
	}
	if got := f.Measure("420"); got != first {
		t.Errorf("memoized Measure = %d, want %d", got, first)
	}
	if w, ok := f.widths.get("420"); !ok || w != first {
		t.Errorf("cache entry = (%d, %v), want (%d, true)", w, ok, first)
	}
}
