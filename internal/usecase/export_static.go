package usecase

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/3-lines-studio/techpage/internal/core"
	"golang.org/x/sync/errgroup"
)

const exportConcurrency = 4

type ExportInput struct {
	OutDir string
	Routes []PageRoute
}

type FileStatus int

const (
	FileCreated FileStatus = iota
	FileUpdated
	FileUnchanged
)

func (s FileStatus) String() string {
	switch s {
	case FileUpdated:
		return "updated"
	case FileUnchanged:
		return "unchanged"
	default:
		return "created"
	}
}

type ExportedFile struct {
	Path   string
	Status FileStatus
}

type ExportOutput struct {
	Files []ExportedFile
	Error error
}

type ExportService struct {
	pages *PageService
	fs    FileSystem
}

func NewExportService(pages *PageService, fs FileSystem) *ExportService {
	return &ExportService{
		pages: pages,
		fs:    fs,
	}
}

func (s *ExportService) ExportStatic(ctx context.Context, input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: fmt.Errorf("export directory cannot be empty")}
	}

	files := make([]ExportedFile, len(input.Routes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)

	for i, route := range input.Routes {
		i, route := i, route
		g.Go(func() error {
			out := s.pages.ServePage(ctx, ServePageInput{Route: route})
			if out.Error != nil {
				return fmt.Errorf("failed to render %s: %w", route.Path, out.Error)
			}

			target := core.ExportFilePath(input.OutDir, route.Path)
			if err := s.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", route.Path, err)
			}

			status, err := s.writePage(target, out.Page.HTML)
			if err != nil {
				return err
			}

			files[i] = ExportedFile{Path: target, Status: status}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ExportOutput{Error: err}
	}

	return ExportOutput{Files: files}
}

// writePage leaves a file alone when it already holds the rendered bytes.
func (s *ExportService) writePage(target string, html []byte) (FileStatus, error) {
	status := FileCreated
	if s.fs.FileExists(target) {
		status = FileUpdated
		existing, err := s.fs.ReadFile(target)
		if err == nil && bytes.Equal(existing, html) {
			return FileUnchanged, nil
		}
	}

	if err := s.fs.WriteFile(target, html, 0o644); err != nil {
		return status, fmt.Errorf("failed to write %s: %w", target, err)
	}
	return status, nil
}
