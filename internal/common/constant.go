// Package common contains constants shared by the client, the session store
// and the CLI.
package common

// Keys under which the session is persisted in the metadata store.
const (
	AccessTokenKey = "accessToken"
	UserRoleKey    = "userRole"
)

// HTTP header names set on every outbound API request.
const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"
	BearerScheme        = "Bearer"
)
