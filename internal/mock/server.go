// README: Shared scaffolding for the stand-in backend servers.
package mock

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ToolFunc implements one tool of a backend. The returned payload is
// serialized as the response body verbatim.
type ToolFunc func(parameters map[string]any) (any, error)

// Server is a stand-in backend speaking the {tool, parameters} call protocol.
// Real deployments would replace these with actual provider integrations; the
// wire contract stays the same.
type Server struct {
	name  string
	tools map[string]ToolFunc
	log   *zap.Logger
}

func NewServer(name string, tools map[string]ToolFunc, log *zap.Logger) *Server {
	return &Server{name: name, tools: tools, log: log}
}

type callRequest struct {
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters"`
}

// Router builds the gin engine exposing GET /health and POST /call.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": s.name,
		})
	})

	r.POST("/call", func(c *gin.Context) {
		var req callRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}

		tool, ok := s.tools[req.Tool]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Unknown tool: " + req.Tool})
			return
		}

		payload, err := tool(req.Parameters)
		if err != nil {
			s.log.Warn("tool call failed",
				zap.String("service", s.name),
				zap.String("tool", req.Tool),
				zap.Error(err),
			)
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, payload)
	})

	return r
}

// stringParam reads a string parameter with a fallback.
func stringParam(params map[string]any, key, fallback string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
