package types

// Cookie is a minimal snapshot of a browser cookie. Only the attributes
// needed to persist and replay a session marker are kept.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain,omitempty"`
}

// Session is the persisted per-domain authentication artifact. At most one
// Session exists per domain; successful re-authentication overwrites it,
// sessions are never merged.
type Session struct {
	Domain   string `json:"domain"`
	Username string `json:"username"`
	Cookie   Cookie `json:"cookie"`
}
