package server

import (
	"net/http"
	"strings"

	"github.com/factorlab/craftbench/pkg/version"
)

const (
	// DefaultAPIVersion is the default API version if none is negotiated
	DefaultAPIVersion = "v1"

	// vendorMIMEPrefix is the custom vendor MIME type prefix used for API
	// version negotiation via the Accept header, e.g.
	// Accept: application/vnd.factorlab.craftbench.v1+json
	vendorMIMEPrefix = "application/vnd.factorlab.craftbench.v"
)

// supportedAPIVersion is the newest API version this server speaks.
var supportedAPIVersion = version.Version{Major: 1, Precision: 1}

// negotiateAPIVersion extracts the API version from the Accept header.
// If no version is specified or the requested version is not supported,
// it returns the default version (v1).
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return DefaultAPIVersion
	}

	idx := strings.Index(accept, vendorMIMEPrefix)
	if idx < 0 {
		return DefaultAPIVersion
	}

	// Extract the version token, e.g. "v1+json" -> "v1".
	rest := accept[idx+len(vendorMIMEPrefix)-1:]
	token := strings.SplitN(rest, "+", 2)[0]
	token = strings.TrimRight(token, " ;,")

	if isValidAPIVersion(token) {
		return token
	}
	return DefaultAPIVersion
}

// isValidAPIVersion checks whether the provided version string names an API
// version this server can serve. A coarse request like "v1" matches any
// server 1.x.
func isValidAPIVersion(v string) bool {
	parsed, err := version.ParseVersion(v)
	if err != nil {
		return false
	}
	return parsed.Compare(supportedAPIVersion) == 0
}

// SetAPIVersionHeader sets the negotiated API version header in the response.
func SetAPIVersionHeader(w http.ResponseWriter, v string) {
	w.Header().Set("X-API-Version", v)
}
