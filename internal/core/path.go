package core

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

var ErrInvalidRoute = errors.New("invalid route")

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidRoute)
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: path must start with /", ErrInvalidRoute)
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("%w: path cannot contain query string", ErrInvalidRoute)
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("%w: path cannot contain fragment", ErrInvalidRoute)
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("%w: path cannot contain parent directory references", ErrInvalidRoute)
	}

	if strings.ContainsAny(p, " \t\r\n") {
		return fmt.Errorf("%w: path cannot contain whitespace", ErrInvalidRoute)
	}

	if strings.ContainsAny(p, "*{}") {
		return fmt.Errorf("%w: path cannot contain wildcards", ErrInvalidRoute)
	}

	return nil
}

// ExportFilePath maps a route to the index.html it is written to under outDir.
func ExportFilePath(outDir, route string) string {
	route = NormalizePath(route)
	rel := path.Join(strings.TrimPrefix(route, "/"), "index.html")
	return filepath.Join(outDir, filepath.FromSlash(rel))
}
