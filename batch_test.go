package popbench

import (
	"maps"
	"testing"
)

func TestNewBatch_Length(t *testing.T) {
	for _, n := range []int{0, 1, 5, 1000} {
		if got := len(NewBatch(Mapping{"a": 1}, n)); got != n {
			t.Errorf("len(NewBatch(_, %d)) = %d; want %d", n, got, n)
		}
	}
}

func TestNewBatch_CopiesNotAliases(t *testing.T) {
	tmpl := Mapping{"a": 1, "b": 2}
	batch := NewBatch(tmpl, 3)

	delete(batch[0], "a")
	batch[1]["c"] = 3

	if !maps.Equal(tmpl, Mapping{"a": 1, "b": 2}) {
		t.Errorf("template mutated: %v", tmpl)
	}
	if !maps.Equal(batch[2], tmpl) {
		t.Errorf("batch[2] = %v; want %v", batch[2], tmpl)
	}
	if _, ok := batch[1]["a"]; !ok {
		t.Error("delete on batch[0] reached batch[1]")
	}
	if _, ok := batch[0]["c"]; ok {
		t.Error("insert on batch[1] reached batch[0]")
	}
}

func TestNewBatch_NilTemplate(t *testing.T) {
	batch := NewBatch(nil, 2)
	for i, m := range batch {
		if m == nil {
			t.Fatalf("batch[%d] is nil; want empty mapping", i)
		}
		if len(m) != 0 {
			t.Errorf("batch[%d] = %v; want empty", i, m)
		}
	}

	// Each empty mapping is its own.
	batch[0]["x"] = 1
	if _, ok := batch[1]["x"]; ok {
		t.Error("empty mappings share storage")
	}
}
