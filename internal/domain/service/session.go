package service

// Session is the explicit token holder threaded into every upstream call.
// Login starts it, logout clears it, and all dependents read it through the
// same accessor; nothing else in the codebase stores the bearer token.
type Session interface {
	// Start installs a bearer token obtained from the upstream.
	Start(token string) error

	// Clear tears the session down.
	Clear()

	// Token returns the current bearer token, or "" when unauthenticated.
	Token() string

	// Authenticated reports whether a non-expired token is present.
	Authenticated() bool

	// Subject returns the token's subject claim when one is present.
	Subject() string
}
