package tombolos

// Route binds a URL path to a named file in the asset root with a fixed
// media type. The declared type wins over extension detection so the routes
// keep their content-type guarantees regardless of the host's mime tables.
type Route struct {
	Pattern     string
	File        string
	ContentType string
}

// NamedRoutes returns the table of explicit per-file routes. The served HTML
// references these assets by absolute path, so each gets its own route
// instead of going through the /static mount.
func NamedRoutes() []Route {
	return []Route{
		{Pattern: "/styles.css", File: "styles.css", ContentType: "text/css"},
		{Pattern: "/app.js", File: "app.js", ContentType: "application/javascript"},
		{Pattern: "/config.js", File: "config.js", ContentType: "application/javascript"},
		{Pattern: "/auth.js", File: "auth.js", ContentType: "application/javascript"},
		{Pattern: "/simple-dropdown-limit.js", File: "simple-dropdown-limit.js", ContentType: "application/javascript"},
		{Pattern: "/measurement-tool.js", File: "measurement-tool.js", ContentType: "application/javascript"},
	}
}
