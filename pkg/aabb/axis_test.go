package aabb

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Axis
		wantErr bool
	}{
		{name: "lowercase x", input: "x", want: AxisX},
		{name: "lowercase y", input: "y", want: AxisY},
		{name: "lowercase z", input: "z", want: AxisZ},
		{name: "uppercase", input: "Z", want: AxisZ},
		{name: "padded", input: " y ", want: AxisY},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "w", wantErr: true},
		{name: "numeric", input: "2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAxis(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAxis(%q) error = nil, want error", tt.input)
				}
				if !errors.Is(err, ErrInvalidAxis) {
					t.Errorf("ParseAxis(%q) error = %v, want ErrInvalidAxis", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAxis(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAxisString(t *testing.T) {
	tests := []struct {
		axis Axis
		want string
	}{
		{AxisX, "x"},
		{AxisY, "y"},
		{AxisZ, "z"},
		{Axis(7), "axis(7)"},
	}
	for _, tt := range tests {
		if got := tt.axis.String(); got != tt.want {
			t.Errorf("Axis(%d).String() = %q, want %q", int(tt.axis), got, tt.want)
		}
	}
}

func TestAxisOthers(t *testing.T) {
	tests := []struct {
		axis Axis
		want [2]Axis
	}{
		{AxisX, [2]Axis{AxisY, AxisZ}},
		{AxisY, [2]Axis{AxisX, AxisZ}},
		{AxisZ, [2]Axis{AxisX, AxisY}},
	}
	for _, tt := range tests {
		if got := tt.axis.Others(); got != tt.want {
			t.Errorf("Axis(%v).Others() = %v, want %v", tt.axis, got, tt.want)
		}
	}
}

func TestAxisJSONRoundTrip(t *testing.T) {
	type doc struct {
		Axis Axis `json:"axis"`
	}

	data, err := json.Marshal(doc{Axis: AxisY})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"axis":"y"}` {
		t.Errorf("Marshal() = %s, want {\"axis\":\"y\"}", data)
	}

	var decoded doc
	if err := json.Unmarshal([]byte(`{"axis":"Z"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Axis != AxisZ {
		t.Errorf("Unmarshal() axis = %v, want z", decoded.Axis)
	}

	if err := json.Unmarshal([]byte(`{"axis":"up"}`), &decoded); err == nil {
		t.Error("Unmarshal() with bad axis: error = nil, want error")
	}
}
