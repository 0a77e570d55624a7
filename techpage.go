package techpage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/3-lines-studio/techpage/internal/adapters/env"
	"github.com/3-lines-studio/techpage/internal/adapters/fs"
	httpadapter "github.com/3-lines-studio/techpage/internal/adapters/http"
	"github.com/3-lines-studio/techpage/internal/core"
	"github.com/3-lines-studio/techpage/internal/usecase"
	"go.uber.org/zap"
)

var ErrDuplicateRoute = errors.New("duplicate route")

type (
	Technology = core.Technology
	Catalog    = core.Catalog
	PageMeta   = core.PageMeta
	Variant    = core.Variant
	Mode       = core.Mode

	ExportedFile = usecase.ExportedFile
	FileStatus   = usecase.FileStatus
)

const (
	VariantLinked = core.VariantLinked
	VariantPlain  = core.VariantPlain

	ModeProd = core.ModeProd
	ModeDev  = core.ModeDev

	FileCreated   = usecase.FileCreated
	FileUpdated   = usecase.FileUpdated
	FileUnchanged = usecase.FileUnchanged
)

func DefaultCatalog() Catalog {
	return core.DefaultCatalog()
}

type PageOption func(*core.PageConfig, *core.Catalog)

type Route struct {
	Pattern string
	Options []PageOption
}

func Page(pattern string, opts ...PageOption) Route {
	return Route{
		Pattern: pattern,
		Options: opts,
	}
}

func WithVariant(v Variant) PageOption {
	return func(c *core.PageConfig, _ *core.Catalog) {
		c.Variant = v
	}
}

func WithMeta(meta PageMeta) PageOption {
	return func(c *core.PageConfig, _ *core.Catalog) {
		c.Meta = meta
	}
}

func WithHeading(heading, subtitle string) PageOption {
	return func(c *core.PageConfig, _ *core.Catalog) {
		c.Heading = heading
		c.Subtitle = subtitle
	}
}

func WithCatalog(catalog Catalog) PageOption {
	return func(_ *core.PageConfig, c *core.Catalog) {
		*c = catalog
	}
}

func DefaultRoutes() []Route {
	return []Route{
		Page("/technologies", WithVariant(VariantLinked)),
		Page("/technologies/plain", WithVariant(VariantPlain)),
	}
}

type Option func(*App)

func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

func WithMode(mode Mode) Option {
	return func(a *App) {
		a.isDev = mode == core.ModeDev
	}
}

type App struct {
	routes []usecase.PageRoute
	pages  *usecase.PageService
	isDev  bool
	logger *zap.Logger
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

func New(routes []Route, opts ...Option) (*App, error) {
	if len(routes) == 0 {
		routes = DefaultRoutes()
	}

	app := &App{
		pages:  usecase.NewPageService(),
		isDev:  env.DetectMode() == core.ModeDev,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(app)
	}

	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		if err := core.ValidateRoutePath(route.Pattern); err != nil {
			return nil, fmt.Errorf("route %q: %w", route.Pattern, err)
		}

		path := core.NormalizePath(route.Pattern)
		if seen[path] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, path)
		}
		seen[path] = true

		config := core.DefaultPageConfig()
		catalog := core.DefaultCatalog()
		for _, opt := range route.Options {
			opt(&config, &catalog)
		}

		app.routes = append(app.routes, usecase.PageRoute{
			Path:    path,
			Config:  config,
			Catalog: catalog,
		})
	}

	return app, nil
}

func (a *App) Routes() []string {
	paths := make([]string, len(a.routes))
	for i, route := range a.routes {
		paths[i] = route.Path
	}
	return paths
}

func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("techpage: nil router passed to Wrap; use app.Handler()")
	}

	for _, route := range a.routes {
		handler := httpadapter.NewPageHandler(a.pages, route, a.isDev, a.logger)
		api.Handle(route.Path, handler)
	}

	return httpadapter.LogRequests(api, a.logger)
}

func (a *App) Handler() http.Handler {
	return a.Wrap(http.NewServeMux())
}

func (a *App) Export(ctx context.Context, outDir string) ([]ExportedFile, error) {
	service := usecase.NewExportService(a.pages, fs.NewOSFileSystem())
	output := service.ExportStatic(ctx, usecase.ExportInput{
		OutDir: outDir,
		Routes: a.routes,
	})
	if output.Error != nil {
		return nil, fmt.Errorf("export failed: %w", output.Error)
	}
	return output.Files, nil
}
