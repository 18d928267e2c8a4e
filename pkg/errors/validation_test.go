package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		height  float64
		wantErr bool
	}{
		{name: "valid unit square", width: 1, height: 1, wantErr: false},
		{name: "valid fractional", width: 0.25, height: 3.5, wantErr: false},
		{name: "zero width", width: 0, height: 1, wantErr: true},
		{name: "zero height", width: 1, height: 0, wantErr: true},
		{name: "negative width", width: -1, height: 1, wantErr: true},
		{name: "negative height", width: 1, height: -0.5, wantErr: true},
		{name: "NaN width", width: math.NaN(), height: 1, wantErr: true},
		{name: "infinite height", width: 1, height: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize(%v, %v) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidSize {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidSize)
			}
		})
	}
}

func TestValidateAttributeKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "simple key", key: "label", wantErr: false},
		{name: "spaced key", key: "display name", wantErr: false},
		{name: "empty", key: "", wantErr: true},
		{name: "control character", key: "a\x00b", wantErr: true},
		{name: "newline", key: "a\nb", wantErr: true},
		{name: "too long", key: strings.Repeat("k", 257), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttributeKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAttributeKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSplineParam(t *testing.T) {
	tests := []struct {
		name    string
		param   float64
		wantErr bool
	}{
		{name: "zero", param: 0, wantErr: false},
		{name: "one", param: 1, wantErr: false},
		{name: "interior", param: 0.5, wantErr: false},
		{name: "below range", param: -1, wantErr: true},
		{name: "above range", param: 1.1, wantErr: true},
		{name: "NaN", param: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSplineParam(tt.param)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSplineParam(%v) error = %v, wantErr %v", tt.param, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLayoutName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "demo", wantErr: false},
		{name: "dotted", input: "team.graph-v2", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "traversal", input: "../etc/passwd", wantErr: true},
		{name: "slash", input: "a/b", wantErr: true},
		{name: "backslash", input: "a\\b", wantErr: true},
		{name: "leading dash", input: "-x", wantErr: true},
		{name: "too long", input: strings.Repeat("n", 129), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayoutName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayoutName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
