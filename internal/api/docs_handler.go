package api

import (
	"log/slog"
	"net/http"
)

// docsHTML is the static documentation page served on / and /docs.
const docsHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Tasks API</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .endpoint { background: #f5f5f5; padding: 15px; margin: 10px 0; border-radius: 5px; }
        .method { font-weight: bold; color: #2196F3; }
        code { background: #e8e8e8; padding: 2px 4px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Tasks API</h1>
    <p>In-memory task management service</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <div class="method">GET /health</div>
        <p>Health check endpoint - returns server status</p>
    </div>

    <div class="endpoint">
        <div class="method">GET /tasks</div>
        <p>List tasks with optional filtering</p>
        <p>Query parameters: <code>status</code>, <code>priority</code>, <code>limit</code>, <code>offset</code></p>
    </div>

    <div class="endpoint">
        <div class="method">POST /tasks</div>
        <p>Create a new task</p>
        <p>Body: <code>{"title": "string", "description": "string", "priority": "low|medium|high"}</code></p>
    </div>

    <div class="endpoint">
        <div class="method">GET /tasks/{id}</div>
        <p>Get a specific task by ID</p>
    </div>

    <div class="endpoint">
        <div class="method">PUT /tasks/{id}</div>
        <p>Update a specific task</p>
        <p>Body: <code>{"title": "string", "status": "pending|in_progress|completed", ...}</code></p>
    </div>

    <div class="endpoint">
        <div class="method">DELETE /tasks/{id}</div>
        <p>Delete a specific task</p>
    </div>

    <div class="endpoint">
        <div class="method">GET /tasks/stats</div>
        <p>Get task statistics</p>
    </div>

    <h2>Example Usage</h2>
    <pre><code>
# Create a task
curl -X POST http://localhost:8080/tasks \
  -H "Content-Type: application/json" \
  -d '{"title": "Deploy to production", "priority": "high"}'

# List all tasks
curl http://localhost:8080/tasks

# Check health
curl http://localhost:8080/health
    </code></pre>
</body>
</html>`

// DocsHandler serves the static API documentation page.
type DocsHandler struct {
	logger *slog.Logger
}

// NewDocsHandler creates a DocsHandler.
func NewDocsHandler(logger *slog.Logger) *DocsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DocsHandler")
	}

	return &DocsHandler{logger: logger.With(slog.String("component", "docs_handler"))}
}

// Docs handles GET / and GET /docs requests.
func (h *DocsHandler) Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(docsHTML)); err != nil {
		h.logger.Error("failed to write documentation response", "error", err)
	}
}
