package whale

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-15", NewDate(2024, 1, 15), false},
		{"2024-1-5", NewDate(2024, 1, 5), false},
		{"2024-01-15T10:30:00Z", NewDate(2024, 1, 15), false},
		{" 2024-01-15 ", NewDate(2024, 1, 15), false},
		{"not a date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, 1, 15)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-01-15"` {
		t.Errorf("marshal = %s, want \"2024-01-15\"", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, 5, 9, 23, 59, 0, 0, time.UTC)
	if got := DateOf(ts); got != NewDate(2024, 5, 9) {
		t.Errorf("DateOf = %s, want 2024-05-09", got)
	}
}
