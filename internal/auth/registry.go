package auth

// KnownSite describes the fixed login recipe for one recognized job site.
// The registry is an immutable table passed in at construction, matched by
// domain substring in order.
type KnownSite struct {
	// DomainKeyword selects this entry when it is a substring of the
	// target domain.
	DomainKeyword string

	LoginURL         string
	UsernameSelector string
	PasswordSelector string
	SubmitSelector   string

	// LoggedInSelector must become visible after a successful submit.
	LoggedInSelector string

	// SessionCookie is the name of the cookie captured into the Session.
	SessionCookie string
}

// DefaultRegistry returns the built-in known-site table.
func DefaultRegistry() []KnownSite {
	return []KnownSite{
		{
			DomainKeyword:    "linkedin",
			LoginURL:         "https://www.linkedin.com/login",
			UsernameSelector: "#username",
			PasswordSelector: "#password",
			SubmitSelector:   `button[type="submit"]`,
			LoggedInSelector: ".global-nav__me",
			SessionCookie:    "li_at",
		},
		{
			DomainKeyword:    "indeed",
			LoginURL:         "https://secure.indeed.com/account/login",
			UsernameSelector: `input[type="email"]`,
			PasswordSelector: `input[type="password"]`,
			SubmitSelector:   `button[type="submit"]`,
			LoggedInSelector: `[data-gnav-element-name="AccountMenu"]`,
			SessionCookie:    "PPID",
		},
		{
			DomainKeyword:    "glassdoor",
			LoginURL:         "https://www.glassdoor.com/profile/login_input.htm",
			UsernameSelector: `input[name="username"]`,
			PasswordSelector: `input[name="password"]`,
			SubmitSelector:   `button[type="submit"]`,
			LoggedInSelector: `[data-test="profile-icon"]`,
			SessionCookie:    "GSESSIONID",
		},
	}
}
