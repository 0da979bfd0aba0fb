package whale

import (
	"encoding/json"
	"testing"
)

func TestJSONObjectWriterKeepsOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 1)
	w.Append("a", "x")
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":1,"a":"x"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriterOptional(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1)
	w.Optional("empty", "")
	w.Optional("zero", 0)
	w.Optional("kept", "v")
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"kept":"v"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriterEmbedFrom(t *testing.T) {
	var w jsonObjectWriter
	w.EmbedFrom(map[string]int{"a": 1})
	w.Append("b", 2)
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	// still a valid object with both fields.
	var m map[string]int
	if err := json.Unmarshal(got, &m); err != nil {
		t.Fatalf("invalid json %s: %v", got, err)
	}
	if m["a"] != 1 || m["b"] != 2 {
		t.Errorf("got %s, want fields a=1 and b=2", got)
	}
}
