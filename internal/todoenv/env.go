// Package todoenv reads todo store defaults from the environment.
package todoenv

import (
	"os"
	"strings"
)

const (
	// ScopeEnvVar selects the todo scope when --scope is not given.
	ScopeEnvVar = "CL_SCOPE"

	// BackendEnvVar selects the storage backend when --backend is not given.
	BackendEnvVar = "CL_BACKEND"
)

// Scope returns the scope implied by the environment, or "".
func Scope() string {
	return strings.TrimSpace(os.Getenv(ScopeEnvVar))
}

// Backend returns the lowercased backend implied by the environment, or "".
func Backend() string {
	return strings.ToLower(strings.TrimSpace(os.Getenv(BackendEnvVar)))
}
