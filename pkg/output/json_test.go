package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestJSONFormatter_Format(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})
	var buf bytes.Buffer

	if err := f.Format(context.Background(), sampleReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if decoded.Days != 2 {
		t.Errorf("Days = %d, want 2", decoded.Days)
	}
	if len(decoded.Entries) != 2 {
		t.Fatalf("Got %d entries, want 2", len(decoded.Entries))
	}
	if decoded.Entries[1].Date != "2024-01-02" || decoded.Entries[1].Offset != 26 {
		t.Errorf("Entries[1] = %+v, want 2024-01-02 at 26", decoded.Entries[1])
	}
}

func TestJSONFormatter_QuietOmitsEntries(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{Quiet: true})
	var buf bytes.Buffer

	if err := f.Format(context.Background(), sampleReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if _, ok := decoded["entries"]; ok {
		t.Error("Quiet output should not include entries")
	}
	if decoded["days"] != float64(2) {
		t.Errorf("days = %v, want 2", decoded["days"])
	}
}

func TestJSONFormatter_Name(t *testing.T) {
	if name := NewJSONFormatter(FormatOptions{}).Name(); name != "json" {
		t.Errorf("Name() = %q, want json", name)
	}
}
