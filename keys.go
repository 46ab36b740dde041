package reply

// A Key stashes module-owned values in a context.Context.
type Key string

const (
	// CurrentUserKey stashes the user owning the session for an HTTP request.
	CurrentUserKey Key = "CurrentUserKey"

	// IpAddrKey stashes the IP address of an HTTP request.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// SessionKey stashes the session associated with an HTTP request.
	SessionKey Key = "SessionKey"
)

// Key returns the key as in a key-value pair.
func (k Key) Key() string { return string(k) }

// String formats the stringified key with additional contextual information.
func (k Key) String() string {
	return "reply context key: " + string(k)
}
