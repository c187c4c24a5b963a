package auth

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// State of one authentication attempt.
type State string

// Authentication states. Failed is terminal for the attempt.
const (
	StateNotRequired   State = "not_required"
	StateAuthenticated State = "authenticated"
	StateFailed        State = "failed"
)

// Result is the outcome of one authentication attempt.
type Result struct {
	State    State
	Strategy string
	Session  *types.Session
}

var (
	// loginIndicatorSelectors detect that a page requires login: sign-in
	// links or buttons, or a password input inside a visible form.
	loginIndicatorSelectors = []string{
		`a[href*="login"]`,
		`a[href*="signin"]`,
		`a[href*="sign-in"]`,
		`button[class*="login"]`,
		`button[class*="sign-in"]`,
		`form input[type="password"]`,
	}

	// loggedOutIndicatorSelectors invalidate a stored session when a
	// login button or link is still visible.
	loggedOutIndicatorSelectors = []string{
		`a[href*="login"]`,
		`a[href*="signin"]`,
		`a[href*="sign-in"]`,
		`button[class*="login"]`,
		`button[class*="sign-in"]`,
	}

	// loggedInIndicatorSelectors detect an already authenticated page.
	loggedInIndicatorSelectors = []string{
		`a[href*="logout"]`,
		`a[href*="signout"]`,
		`[class*="avatar"]`,
		`[class*="account-menu"]`,
		`[class*="profile-menu"]`,
	}

	// Generic-flow descriptor patterns, in priority order. All three must
	// resolve to a visible element or the flow fails with no partial fill.
	genericUsernameSelectors = []string{
		`input[type="email"]`,
		`input[name*="user"]`,
		`input[name*="email"]`,
		`input[id*="user"]`,
		`input[id*="email"]`,
	}
	genericPasswordSelectors = []string{
		`input[type="password"]`,
	}
	genericSubmitSelectors = []string{
		`button[type="submit"]`,
		`input[type="submit"]`,
		`button[id*="login"]`,
		`button[class*="login"]`,
	}
)

// Authenticator runs the per-site authentication state machine. It is
// sequential per page context; one attempt at a time.
type Authenticator struct {
	page        Page
	sessions    SessionStore
	credentials map[string]types.Credential
	registry    []KnownSite
	log         *zap.Logger
}

// New creates an Authenticator. A nil registry selects the default
// known-site table; a nil logger disables logging.
func New(page Page, sessions SessionStore, credentials map[string]types.Credential, registry []KnownSite, log *zap.Logger) *Authenticator {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Authenticator{
		page:        page,
		sessions:    sessions,
		credentials: credentials,
		registry:    registry,
		log:         log,
	}
}

// Authenticate runs one authentication attempt for the page at pageURL.
// Failure is terminal for the attempt: no retries happen inside, and the
// caller decides whether to retry the surrounding operation.
func (a *Authenticator) Authenticate(ctx context.Context, pageURL string) (*Result, error) {
	domain := DomainOf(pageURL)

	required, err := a.loginRequired(ctx)
	if err != nil {
		return a.fail(domain, "login detection failed", err)
	}
	if !required {
		a.log.Debug("login not required", zap.String("domain", domain))
		return &Result{State: StateNotRequired}, nil
	}

	if session, ok := a.sessions.Session(domain); ok {
		valid, err := a.sessionStillValid(ctx)
		if err != nil {
			return a.fail(domain, "session probe failed", err)
		}
		if valid {
			a.log.Info("existing session still valid", zap.String("domain", domain))
			return &Result{State: StateAuthenticated, Strategy: "session", Session: &session}, nil
		}
		a.log.Debug("existing session invalid, re-authenticating", zap.String("domain", domain))
	}

	if site, ok := a.selectStrategy(domain); ok {
		return a.knownSiteFlow(ctx, domain, site)
	}
	return a.genericFlow(ctx, domain)
}

// loginRequired checks the fixed set of login-indicator descriptors.
func (a *Authenticator) loginRequired(ctx context.Context) (bool, error) {
	_, found, err := a.page.QueryVisible(ctx, loginIndicatorSelectors)
	return found, err
}

// sessionStillValid probes the current page. A visible login indicator
// means logged out; a visible logged-in marker means valid; absence of
// either signal defaults to invalid — never assume authenticated.
func (a *Authenticator) sessionStillValid(ctx context.Context) (bool, error) {
	if _, loggedOut, err := a.page.QueryVisible(ctx, loggedOutIndicatorSelectors); err != nil {
		return false, err
	} else if loggedOut {
		return false, nil
	}
	_, loggedIn, err := a.page.QueryVisible(ctx, loggedInIndicatorSelectors)
	if err != nil {
		return false, err
	}
	return loggedIn, nil
}

// selectStrategy picks the first registry entry whose keyword is a
// substring of the domain.
func (a *Authenticator) selectStrategy(domain string) (KnownSite, bool) {
	for _, site := range a.registry {
		if strings.Contains(domain, site.DomainKeyword) {
			return site, true
		}
	}
	return KnownSite{}, false
}

// knownSiteFlow logs in using the registry's fixed recipe.
func (a *Authenticator) knownSiteFlow(ctx context.Context, domain string, site KnownSite) (*Result, error) {
	credential, ok := a.credentialFor(domain, site.DomainKeyword)
	if !ok {
		return a.fail(domain, "no credential registered", nil)
	}

	current, err := a.page.CurrentURL(ctx)
	if err != nil {
		return a.fail(domain, "could not read current url", err)
	}
	if !strings.HasPrefix(current, site.LoginURL) {
		if err := a.page.Navigate(ctx, site.LoginURL); err != nil {
			return a.fail(domain, "could not open login page", err)
		}
		if err := a.page.WaitForLoad(ctx); err != nil {
			return a.fail(domain, "login page did not load", err)
		}
	}

	if err := a.page.Fill(ctx, site.UsernameSelector, credential.Username); err != nil {
		return a.fail(domain, "could not fill username", err)
	}
	if err := a.page.Fill(ctx, site.PasswordSelector, credential.Password); err != nil {
		return a.fail(domain, "could not fill password", err)
	}
	if err := a.page.Click(ctx, site.SubmitSelector); err != nil {
		return a.fail(domain, "could not submit login form", err)
	}
	if err := a.page.WaitForLoad(ctx); err != nil {
		return a.fail(domain, "page did not settle after submit", err)
	}

	if _, loggedIn, err := a.page.QueryVisible(ctx, []string{site.LoggedInSelector}); err != nil {
		return a.fail(domain, "logged-in probe failed", err)
	} else if !loggedIn {
		return a.fail(domain, "logged-in marker not visible after submit", nil)
	}

	cookie, ok, err := a.findCookie(ctx, site.SessionCookie)
	if err != nil {
		return a.fail(domain, "could not read cookies", err)
	}
	if !ok {
		return a.fail(domain, "session cookie "+site.SessionCookie+" not present", nil)
	}

	return a.succeed(domain, "known:"+site.DomainKeyword, credential.Username, cookie)
}

// genericFlow logs in on an unrecognized site. It requires a
// pre-registered credential for the domain and all three of a visible
// username field, password field and submit control; otherwise it fails
// immediately with no partial fill.
func (a *Authenticator) genericFlow(ctx context.Context, domain string) (*Result, error) {
	credential, ok := a.credentialFor(domain, "")
	if !ok {
		return a.fail(domain, "no credential registered", nil)
	}

	usernameSel, found, err := a.page.QueryVisible(ctx, genericUsernameSelectors)
	if err != nil || !found {
		return a.fail(domain, "no visible username field", err)
	}
	passwordSel, found, err := a.page.QueryVisible(ctx, genericPasswordSelectors)
	if err != nil || !found {
		return a.fail(domain, "no visible password field", err)
	}
	submitSel, found, err := a.page.QueryVisible(ctx, genericSubmitSelectors)
	if err != nil || !found {
		return a.fail(domain, "no visible submit control", err)
	}

	if err := a.page.Fill(ctx, usernameSel, credential.Username); err != nil {
		return a.fail(domain, "could not fill username", err)
	}
	if err := a.page.Fill(ctx, passwordSel, credential.Password); err != nil {
		return a.fail(domain, "could not fill password", err)
	}
	if err := a.page.Click(ctx, submitSel); err != nil {
		return a.fail(domain, "could not submit login form", err)
	}
	if err := a.page.WaitForLoad(ctx); err != nil {
		return a.fail(domain, "page did not settle after submit", err)
	}

	cookies, err := a.page.Cookies(ctx)
	if err != nil {
		return a.fail(domain, "could not read cookies", err)
	}
	if len(cookies) == 0 {
		return a.fail(domain, "no cookies present after login", nil)
	}

	// The first cookie stands in for the session marker. This is a known
	// low-confidence heuristic and may pick the wrong cookie.
	a.log.Debug("capturing first cookie as session marker",
		zap.String("domain", domain), zap.String("cookie", cookies[0].Name))

	return a.succeed(domain, "generic", credential.Username, cookies[0])
}

// credentialFor resolves a credential by exact domain, then by keyword,
// then by any registered key contained in the domain.
func (a *Authenticator) credentialFor(domain, keyword string) (types.Credential, bool) {
	if c, ok := a.credentials[domain]; ok {
		return c, true
	}
	if keyword != "" {
		if c, ok := a.credentials[keyword]; ok {
			return c, true
		}
	}
	for key, c := range a.credentials {
		if key != "" && strings.Contains(domain, key) {
			return c, true
		}
	}
	return types.Credential{}, false
}

func (a *Authenticator) findCookie(ctx context.Context, name string) (types.Cookie, bool, error) {
	cookies, err := a.page.Cookies(ctx)
	if err != nil {
		return types.Cookie{}, false, err
	}
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie, true, nil
		}
	}
	return types.Cookie{}, false, nil
}

func (a *Authenticator) succeed(domain, strategy, username string, cookie types.Cookie) (*Result, error) {
	session := types.Session{Domain: domain, Username: username, Cookie: cookie}
	if err := a.sessions.SaveSession(session); err != nil {
		return a.fail(domain, "could not persist session", err)
	}
	a.log.Info("authenticated", zap.String("domain", domain), zap.String("strategy", strategy))
	return &Result{State: StateAuthenticated, Strategy: strategy, Session: &session}, nil
}

func (a *Authenticator) fail(domain, message string, cause error) (*Result, error) {
	return &Result{State: StateFailed}, &AuthenticationError{
		Domain:  domain,
		Message: message,
		Cause:   cause,
	}
}

// DomainOf extracts the host part of a URL, without any www prefix.
func DomainOf(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err == nil && parsed.Host != "" {
		return strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	}
	return strings.TrimPrefix(strings.ToLower(pageURL), "www.")
}
