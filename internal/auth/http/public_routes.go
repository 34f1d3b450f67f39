package http

import "strings"

// isPublicRoute reports whether the request path is reachable without
// credentials. Only the sign-up and sign-in endpoints qualify, at any API
// version: /api/{version}/auth/sign-up and /api/{version}/auth/sign-in,
// where {version} is exactly one non-empty path segment.
//
// The match is structural, segment by segment. Substring tricks like
// /api/v1/auth/sign-upx or /api/v1/x/auth/sign-up stay protected.
func isPublicRoute(path string) bool {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) != 4 {
		return false
	}
	if segments[0] != "api" || segments[1] == "" || segments[2] != "auth" {
		return false
	}
	return segments[3] == "sign-up" || segments[3] == "sign-in"
}
