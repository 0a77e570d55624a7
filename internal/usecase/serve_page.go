package usecase

import (
	"context"
	"sync"

	"github.com/3-lines-studio/techpage/internal/core"
)

type PageRoute struct {
	Path    string
	Config  core.PageConfig
	Catalog core.Catalog
}

type RenderedPage struct {
	HTML []byte
	ETag string
}

type ServePageInput struct {
	Route PageRoute
}

type ServePageOutput struct {
	Page  RenderedPage
	Error error
}

type renderEntry struct {
	once sync.Once
	page RenderedPage
	err  error
}

// PageService renders each route once and keeps the result; page content
// never changes for the lifetime of the process.
type PageService struct {
	mu      sync.Mutex
	entries map[string]*renderEntry
}

func NewPageService() *PageService {
	return &PageService{
		entries: make(map[string]*renderEntry),
	}
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	if err := ctx.Err(); err != nil {
		return ServePageOutput{Error: err}
	}

	entry := s.entry(core.NormalizePath(input.Route.Path))
	entry.once.Do(func() {
		html, err := core.RenderPage(input.Route.Config, input.Route.Catalog)
		if err != nil {
			entry.err = err
			return
		}
		entry.page = RenderedPage{
			HTML: []byte(html),
			ETag: core.ETag([]byte(html)),
		}
	})

	return ServePageOutput{
		Page:  entry.page,
		Error: entry.err,
	}
}

func (s *PageService) entry(key string) *renderEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &renderEntry{}
		s.entries[key] = e
	}
	return e
}
