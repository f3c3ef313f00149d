package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// searchDocsAnchor is where /docs opens when no deep link is given.
const searchDocsAnchor = "#/search/search"

// swaggerUIHTML lists operations by tag with the search tag expanded and
// the schema panel hidden; most readers come here for /v1/search.
const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Stayfinder API</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
  <style>body{margin:0}.swagger-ui .topbar{display:none}</style>
</head>
<body>
  <div id="stayfinder-docs"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    if (!window.location.hash) {
      window.location.hash = '` + searchDocsAnchor + `';
    }
    window.ui = SwaggerUIBundle({
      url: '/docs/openapi.yaml',
      dom_id: '#stayfinder-docs',
      deepLinking: true,
      docExpansion: 'none',
      defaultModelsExpandDepth: -1,
      filter: true,
      tagsSorter: (a, b) => (a === 'search' ? -1 : b === 'search' ? 1 : a.localeCompare(b)),
      tryItOutEnabled: true,
    });
  </script>
</body>
</html>`

// SetupDocs registers Swagger UI at /docs and the OpenAPI document at
// /docs/openapi.yaml, read from specPath on each request.
func SetupDocs(app *fiber.App, specPath string) {
	app.Get("/docs", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(swaggerUIHTML)
	})

	app.Get("/docs/openapi.yaml", func(c *fiber.Ctx) error {
		data, err := os.ReadFile(specPath)
		if err != nil {
			return errNotFound(c, "openapi.yaml not found")
		}
		c.Set(fiber.HeaderContentType, "application/yaml")
		return c.Send(data)
	})
}
