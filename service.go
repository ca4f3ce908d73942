package tombolos

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// AssetStore is the read-only view of the static asset tree.
//
// Implementations must reject paths escaping the root and should respect
// context cancellation. The caller is responsible for closing the returned
// ReadSeekCloser.
type AssetStore interface {
	// Get opens an asset for reading and returns its metadata.
	// Returns ErrNotFound if no file exists at the path.
	Get(ctx context.Context, path string) (Asset, io.ReadSeekCloser, error)

	// List walks the whole asset tree and returns every file's metadata.
	List(ctx context.Context) ([]Asset, error)
}

// Gateway resolves request paths to asset reads with the gateway's fallback
// rules: the root path maps to index.html, /favicon.ico falls back to
// favicon.svg, and the named routes carry declared media types.
//
// A Gateway holds no mutable state and is safe for concurrent use.
type Gateway struct {
	store   AssetStore
	routes  map[string]Route
	appName string
}

// NewGateway creates a Gateway over the given store. An empty appName
// defaults to DefaultAppName.
func NewGateway(store AssetStore, appName string) *Gateway {
	if appName == "" {
		appName = DefaultAppName
	}

	routes := make(map[string]Route)
	for _, rt := range NamedRoutes() {
		routes[rt.Pattern] = rt
	}

	return &Gateway{
		store:   store,
		routes:  routes,
		appName: appName,
	}
}

// Health reports the constant health payload.
func (g *Gateway) Health() Health {
	return Health{Status: "healthy", App: g.appName}
}

// Routes returns the table of explicit per-file routes served by Named.
func (g *Gateway) Routes() []Route {
	return NamedRoutes()
}

// Index opens index.html from the asset root.
// Returns ErrNotFound when the file is absent; the HTTP layer degrades to a
// placeholder page rather than a 404.
func (g *Gateway) Index(ctx context.Context) (Asset, io.ReadSeekCloser, error) {
	return g.open(ctx, "index.html", "text/html; charset=utf-8")
}

// Named resolves one of the fixed per-file routes by its URL path.
func (g *Gateway) Named(ctx context.Context, pattern string) (Asset, io.ReadSeekCloser, error) {
	rt, ok := g.routes[pattern]
	if !ok {
		return Asset{}, nil, fmt.Errorf("named route %s: %w", pattern, ErrNotFound)
	}
	return g.open(ctx, rt.File, rt.ContentType)
}

// FaviconSVG opens favicon.svg from the asset root.
func (g *Gateway) FaviconSVG(ctx context.Context) (Asset, io.ReadSeekCloser, error) {
	return g.open(ctx, "favicon.svg", "image/svg+xml")
}

// Favicon opens favicon.ico, falling back silently to favicon.svg with its
// SVG media type when no .ico file is deployed.
func (g *Gateway) Favicon(ctx context.Context) (Asset, io.ReadSeekCloser, error) {
	asset, content, err := g.open(ctx, "favicon.ico", "image/x-icon")
	if errors.Is(err, ErrNotFound) {
		return g.FaviconSVG(ctx)
	}
	return asset, content, err
}

// Static opens an arbitrary asset by its path relative to the asset root,
// with the media type detected from the file extension. Traversal attempts
// fail with ErrInvalidInput before any filesystem access.
func (g *Gateway) Static(ctx context.Context, path string) (Asset, io.ReadSeekCloser, error) {
	if !IsValidPath(path) {
		return Asset{}, nil, fmt.Errorf("static asset %q: %w", path, ErrInvalidInput)
	}
	return g.open(ctx, path, "")
}

// Assets lists every file currently deployed under the asset root.
func (g *Gateway) Assets(ctx context.Context) ([]Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	assets, err := g.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	return assets, nil
}

// open reads one asset, overriding the detected media type when the route
// declares one.
func (g *Gateway) open(ctx context.Context, file, contentType string) (Asset, io.ReadSeekCloser, error) {
	if err := ctx.Err(); err != nil {
		return Asset{}, nil, fmt.Errorf("get asset: %w", err)
	}

	asset, content, err := g.store.Get(ctx, file)
	if err != nil {
		return Asset{}, nil, fmt.Errorf("get asset %s: %w", file, err)
	}

	if contentType != "" {
		asset.ContentType = contentType
	}

	return asset, content, nil
}
