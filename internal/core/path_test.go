package core

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"technologies", "/technologies"},
		{"/technologies/", "/technologies"},
		{"/technologies/plain", "/technologies/plain"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateRoutePath(t *testing.T) {
	valid := []string{"/", "/technologies", "/technologies/plain"}
	for _, p := range valid {
		if err := ValidateRoutePath(p); err != nil {
			t.Errorf("ValidateRoutePath(%q) unexpected error: %v", p, err)
		}
	}

	invalid := []string{"", "technologies", "/a?b=1", "/a#top", "/../etc", "/a/*", "/{id}", "/about us", "/tech\tx", "/tech\nx"}
	for _, p := range invalid {
		err := ValidateRoutePath(p)
		if err == nil {
			t.Errorf("ValidateRoutePath(%q) expected error", p)
			continue
		}
		if !errors.Is(err, ErrInvalidRoute) {
			t.Errorf("ValidateRoutePath(%q) error %v does not wrap ErrInvalidRoute", p, err)
		}
	}
}

func TestExportFilePath(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/", filepath.Join("dist", "index.html")},
		{"/technologies", filepath.Join("dist", "technologies", "index.html")},
		{"/technologies/plain/", filepath.Join("dist", "technologies", "plain", "index.html")},
	}

	for _, tt := range tests {
		if got := ExportFilePath("dist", tt.route); got != tt.want {
			t.Errorf("ExportFilePath(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}
