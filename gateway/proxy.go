package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Proxy forwards /api/<service>/** requests to the registered backend,
// preserving the full path, query string, and Authorization header. The
// gateway performs no authentication itself; every downstream service
// verifies the bearer token independently.
type Proxy struct {
	registry *Registry
	logger   *zap.Logger
}

// NewProxy builds a proxy over the given registry.
func NewProxy(registry *Registry, logger *zap.Logger) *Proxy {
	return &Proxy{registry: registry, logger: logger}
}

// Handle serves everything under /api/, resolving the first path segment
// against the registry. It is registered as the engine's NoRoute handler
// rather than a wildcard route, so bare prefix paths like POST /api/bookings
// match directly instead of going through a trailing-slash redirect.
func (p *Proxy) Handle(c *gin.Context) {
	name, ok := serviceName(c.Request.URL.Path)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
		return
	}
	target, ok := p.registry.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
		return
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		p.logger.Error("backend unreachable",
			zap.String("service", name),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(gin.H{"success": false, "error": "Bad gateway: " + name + " service unreachable"})
	}

	// The inbound path and headers (including Authorization) pass through
	// unchanged; only the host is rewritten.
	proxy.ServeHTTP(c.Writer, c.Request)
}

// serviceName extracts the first path segment after /api/.
func serviceName(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/api/")
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}
