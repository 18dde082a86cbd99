package rest

import (
	"log/slog"
	"net/http"

	"go-courses-api/internal/core/ports"
)

// NewRouter initializes the HTTP router and registers routes.
func NewRouter(courseH *CourseHandler, userH *UserHandler, authenticator ports.Authenticator, logger *slog.Logger, mws ...Middleware) http.Handler {
	mux := http.NewServeMux()

	auth := BasicAuth(authenticator, logger)

	// Users
	mux.HandleFunc("POST /users", userH.Create)
	mux.Handle("GET /users", auth(http.HandlerFunc(userH.GetCurrent)))

	// Courses (reads are public, mutations require credentials)
	mux.HandleFunc("GET /courses", courseH.List)
	mux.HandleFunc("GET /courses/{id}", courseH.Get)
	mux.Handle("POST /courses", auth(http.HandlerFunc(courseH.Create)))
	mux.Handle("PUT /courses/{id}", auth(http.HandlerFunc(courseH.Update)))
	mux.Handle("DELETE /courses/{id}", auth(http.HandlerFunc(courseH.Delete)))

	// Documentation
	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "api/openapi.yaml")
	})

	mux.HandleFunc("GET /api-docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		html := `<!DOCTYPE html>
				<html lang="en">
				<head>
					<meta charset="utf-8" />
					<meta name="viewport" content="width=device-width, initial-scale=1" />
					<meta name="description" content="SwaggerUI" />
					<title>SwaggerUI</title>
					<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
				</head>
				<body>
				<div id="swagger-ui"></div>
				<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
				<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-standalone-preset.js" crossorigin></script>
				<script>
					window.onload = () => {
						window.ui = SwaggerUIBundle({
							url: '/openapi.yaml',
							dom_id: '#swagger-ui',
							presets: [
								SwaggerUIBundle.presets.apis,
								SwaggerUIStandalonePreset
							],
							layout: "StandaloneLayout",
						});
					};
				</script>
				</body>
				</html>`
		_, _ = w.Write([]byte(html))
	})

	// Wrap with middleware
	return Chain(mux, mws...)
}
