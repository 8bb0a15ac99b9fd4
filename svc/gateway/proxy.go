package gateway

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/flashsale/platform/pkg/apierror"
	"github.com/flashsale/platform/pkg/correlation"
	"github.com/flashsale/platform/pkg/logger"
)

// newProxy builds a reverse proxy to one upstream service. Upstream
// failures surface as the standard error envelope rather than a bare 502, so
// edge clients see one rejection shape regardless of which stage failed.
func newProxy(upstream *url.URL, log *slog.Logger) *httputil.ReverseProxy {
	proxy := httputil.NewSingleHostReverseProxy(upstream)

	// The edge is where correlation IDs are minted; make sure a generated one
	// reaches the upstream even when the client sent none.
	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		if id := correlation.FromContext(req.Context()); id != "" {
			req.Header.Set(correlation.Header, id)
		}
	}

	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "Upstream request failed",
			slog.String("upstream", upstream.Host), logger.Error(err))
		apierror.Write(w, r, http.StatusBadGateway, apierror.CodeUpstreamDown, "Upstream service is unavailable")
	}
	return proxy
}
