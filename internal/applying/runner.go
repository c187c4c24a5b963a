// Package applying orchestrates one autofill pass over a list of job
// posting URLs: authenticate, snapshot the form, classify, map profile
// values and fill. Submission is always left to the user.
package applying

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/auth"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/forms"
	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// Page is the page-driving surface the runner needs: everything the
// authenticator uses plus rendered-markup capture.
type Page interface {
	auth.Page
	HTML(ctx context.Context) (string, error)
}

// Authenticator runs the login state machine for the current page.
type Authenticator interface {
	Authenticate(ctx context.Context, pageURL string) (*auth.Result, error)
}

// Result records the outcome of one application attempt.
type Result struct {
	ID        string            `json:"id"`
	URL       string            `json:"url"`
	AuthState auth.State        `json:"auth_state"`
	Report    *forms.FillReport `json:"report,omitempty"`
	// FillErrors lists selectors the browser refused to fill.
	FillErrors []string `json:"fill_errors,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Runner applies a profile to job postings one at a time. A failed
// attempt is recorded and the run continues with the next URL.
type Runner struct {
	page          Page
	authenticator Authenticator
	classifier    *forms.Classifier
	// delay separates consecutive applications.
	delay time.Duration
	log   *zap.Logger
}

// NewRunner wires a runner. A nil logger disables logging.
func NewRunner(page Page, authenticator Authenticator, delay time.Duration, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		page:          page,
		authenticator: authenticator,
		classifier:    forms.NewClassifier(),
		delay:         delay,
		log:           log,
	}
}

// Apply processes the URLs sequentially and returns one result per URL.
func (r *Runner) Apply(ctx context.Context, profile *types.Profile, urls []string) []Result {
	results := make([]Result, 0, len(urls))
	for i, url := range urls {
		if i > 0 && r.delay > 0 {
			select {
			case <-time.After(r.delay):
			case <-ctx.Done():
				results = append(results, Result{
					ID:    uuid.NewString(),
					URL:   url,
					Error: ctx.Err().Error(),
				})
				continue
			}
		}
		results = append(results, r.applyOne(ctx, profile, url))
	}
	return results
}

func (r *Runner) applyOne(ctx context.Context, profile *types.Profile, url string) Result {
	result := Result{ID: uuid.NewString(), URL: url}
	log := r.log.With(zap.String("attempt", result.ID), zap.String("url", url))

	if err := r.page.Navigate(ctx, url); err != nil {
		result.Error = err.Error()
		return result
	}
	if err := r.page.WaitForLoad(ctx); err != nil {
		result.Error = err.Error()
		return result
	}

	authResult, err := r.authenticator.Authenticate(ctx, url)
	if authResult != nil {
		result.AuthState = authResult.State
	}
	if err != nil {
		log.Warn("authentication failed, skipping posting", zap.Error(err))
		result.Error = err.Error()
		return result
	}

	html, err := r.page.HTML(ctx)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	descriptors, err := forms.SnapshotHTML(html)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	classifications := r.classifier.ClassifyAll(descriptors)
	report := forms.MapValues(profile, classifications)
	result.Report = report

	for _, filled := range report.Filled {
		if filled.Descriptor.Selector == "" {
			log.Debug("field has no stable selector, skipping fill",
				zap.String("category", string(filled.Category)))
			continue
		}
		if err := r.page.Fill(ctx, filled.Descriptor.Selector, filled.Value); err != nil {
			log.Warn("fill failed", zap.String("selector", filled.Descriptor.Selector), zap.Error(err))
			result.FillErrors = append(result.FillErrors, filled.Descriptor.Selector)
		}
	}

	log.Info("application form filled",
		zap.Int("filled", report.FilledCount()),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("fill_errors", len(result.FillErrors)))
	return result
}
