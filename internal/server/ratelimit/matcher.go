package ratelimit

import "strings"

// MatchEndpoint resolves the budget rule for a request path and method.
// Exact path matches win over prefix rules; a rule whose path ends in "/"
// acts as a prefix so "/results/" covers "/results/{id}" without covering
// the "/results" listing. /health is always exempt so readiness probes are
// never throttled. Returns nil when no rule applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	var prefix *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if prefix == nil && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			prefix = c
		}
	}
	return prefix
}
