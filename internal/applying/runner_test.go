package applying

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/auth"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

type fakePage struct {
	html        string
	fills       map[string]string
	navigations []string
	navErr      error
}

func newFakePage(html string) *fakePage {
	return &fakePage{html: html, fills: make(map[string]string)}
}

func (p *fakePage) Navigate(_ context.Context, url string) error {
	p.navigations = append(p.navigations, url)
	return p.navErr
}

func (p *fakePage) WaitForLoad(context.Context) error { return nil }

func (p *fakePage) CurrentURL(context.Context) (string, error) { return "", nil }

func (p *fakePage) QueryVisible(context.Context, []string) (string, bool, error) {
	return "", false, nil
}

func (p *fakePage) Fill(_ context.Context, selector, value string) error {
	p.fills[selector] = value
	return nil
}

func (p *fakePage) Click(context.Context, string) error { return nil }

func (p *fakePage) Cookies(context.Context) ([]types.Cookie, error) { return nil, nil }

func (p *fakePage) HTML(context.Context) (string, error) { return p.html, nil }

type fakeAuthenticator struct {
	results map[string]*auth.Result
	errs    map[string]error
}

func (a *fakeAuthenticator) Authenticate(_ context.Context, url string) (*auth.Result, error) {
	if err, ok := a.errs[url]; ok {
		return &auth.Result{State: auth.StateFailed}, err
	}
	if result, ok := a.results[url]; ok {
		return result, nil
	}
	return &auth.Result{State: auth.StateNotRequired}, nil
}

const postingHTML = `<html><body><form>
	<input type="text" name="first_name" placeholder="First name">
	<input type="email" name="email">
	<input type="tel" name="phone">
	<input type="text" name="favorite_color">
</form></body></html>`

func testProfile() *types.Profile {
	return &types.Profile{
		PersonalInfo: types.PersonalInfo{
			FullName: "John Smith",
			Email:    "john@example.com",
			Phone:    "+1 555 123 4567",
		},
	}
}

func TestApplyFillsClassifiedFields(t *testing.T) {
	page := newFakePage(postingHTML)
	runner := NewRunner(page, &fakeAuthenticator{}, 0, nil)

	results := runner.Apply(context.Background(), testProfile(), []string{"https://jobs.example.com/1"})

	require.Len(t, results, 1)
	result := results[0]
	assert.NotEmpty(t, result.ID)
	assert.Empty(t, result.Error)
	assert.Equal(t, auth.StateNotRequired, result.AuthState)

	assert.Equal(t, "John", page.fills[`input[name="first_name"]`])
	assert.Equal(t, "john@example.com", page.fills[`input[name="email"]`])
	assert.Equal(t, "+1 555 123 4567", page.fills[`input[name="phone"]`])

	// Unrecognized fields are never touched.
	_, touched := page.fills[`input[name="favorite_color"]`]
	assert.False(t, touched)

	require.NotNil(t, result.Report)
	assert.Equal(t, 3, result.Report.FilledCount())
}

func TestApplyContinuesAfterAuthFailure(t *testing.T) {
	page := newFakePage(postingHTML)
	authenticator := &fakeAuthenticator{
		errs: map[string]error{
			"https://a.example.com": errors.New("no credential registered"),
		},
	}
	runner := NewRunner(page, authenticator, 0, nil)

	results := runner.Apply(context.Background(), testProfile(),
		[]string{"https://a.example.com", "https://b.example.com"})

	require.Len(t, results, 2)
	assert.Equal(t, auth.StateFailed, results[0].AuthState)
	assert.Contains(t, results[0].Error, "no credential")
	assert.Nil(t, results[0].Report)

	assert.Empty(t, results[1].Error)
	require.NotNil(t, results[1].Report)
	assert.Equal(t, 3, results[1].Report.FilledCount())
}

func TestApplyRecordsNavigationError(t *testing.T) {
	page := newFakePage(postingHTML)
	page.navErr = errors.New("net::ERR_NAME_NOT_RESOLVED")
	runner := NewRunner(page, &fakeAuthenticator{}, 0, nil)

	results := runner.Apply(context.Background(), testProfile(), []string{"https://bad.example"})

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Error, "ERR_NAME_NOT_RESOLVED")
	assert.Empty(t, page.fills)
}

func TestApplyVisitsURLsInOrder(t *testing.T) {
	page := newFakePage(postingHTML)
	runner := NewRunner(page, &fakeAuthenticator{}, 0, nil)

	urls := []string{"https://a.example.com", "https://b.example.com", "https://c.example.com"}
	results := runner.Apply(context.Background(), testProfile(), urls)

	assert.Equal(t, urls, page.navigations)
	require.Len(t, results, 3)
	for i, result := range results {
		assert.Equal(t, urls[i], result.URL)
	}
}
