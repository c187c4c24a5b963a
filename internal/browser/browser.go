// Package browser drives a headless Chrome instance via chromedp and
// exposes the small page-driving surface the rest of the system needs.
// Requires Chrome/Chromium to be installed on the system.
package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// Options configures the browser instance.
type Options struct {
	Headless bool
	// SettleDelay is the extra wait after load for JavaScript rendering.
	SettleDelay time.Duration
}

// Browser wraps one chromedp browser context. It is sequential: one page,
// one operation at a time. Close releases the underlying Chrome process.
type Browser struct {
	ctx         context.Context
	cancels     []context.CancelFunc
	settleDelay time.Duration
	log         *zap.Logger
}

// New launches a browser. A nil logger disables logging.
func New(ctx context.Context, opts Options, log *zap.Logger) (*Browser, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.SettleDelay == 0 {
		opts.SettleDelay = 2 * time.Second
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", opts.Headless),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	browserCtx, ctxCancel := chromedp.NewContext(allocCtx)

	// Start the browser process eagerly so launch failures surface here
	// instead of on the first navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		ctxCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	log.Debug("browser started", zap.Bool("headless", opts.Headless))
	return &Browser{
		ctx:         browserCtx,
		cancels:     []context.CancelFunc{ctxCancel, allocCancel},
		settleDelay: opts.SettleDelay,
		log:         log,
	}, nil
}

// Close shuts the browser down.
func (b *Browser) Close() {
	for _, cancel := range b.cancels {
		cancel()
	}
}

func (b *Browser) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx := b.ctx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithDeadline(b.ctx, deadline)
		defer cancel()
	}
	return chromedp.Run(runCtx, actions...)
}

// Navigate opens a URL in the page.
func (b *Browser) Navigate(ctx context.Context, url string) error {
	b.log.Debug("navigating", zap.String("url", url))
	if err := b.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	return nil
}

// WaitForLoad waits for the document body plus a settle delay for
// JavaScript-rendered content.
func (b *Browser) WaitForLoad(ctx context.Context) error {
	if err := b.run(ctx,
		chromedp.WaitReady("body"),
		chromedp.Sleep(b.settleDelay),
	); err != nil {
		return fmt.Errorf("page load wait failed: %w", err)
	}
	return nil
}

// CurrentURL returns the page's current location.
func (b *Browser) CurrentURL(ctx context.Context) (string, error) {
	var url string
	if err := b.run(ctx, chromedp.Location(&url)); err != nil {
		return "", fmt.Errorf("failed to read location: %w", err)
	}
	return url, nil
}

// QueryVisible returns the first selector of the set that matches a
// visible element, or false when none does.
func (b *Browser) QueryVisible(ctx context.Context, selectors []string) (string, bool, error) {
	encoded, err := json.Marshal(selectors)
	if err != nil {
		return "", false, fmt.Errorf("failed to encode selectors: %w", err)
	}

	script := fmt.Sprintf(`(() => {
		for (const sel of %s) {
			let el;
			try { el = document.querySelector(sel); } catch (e) { continue; }
			if (el && el.getClientRects().length > 0) {
				return sel;
			}
		}
		return "";
	})()`, encoded)

	var matched string
	if err := b.run(ctx, chromedp.Evaluate(script, &matched)); err != nil {
		return "", false, fmt.Errorf("visibility query failed: %w", err)
	}
	return matched, matched != "", nil
}

// Fill sets the value of an input, textarea or select and fires the input
// and change events so script-driven forms notice the update.
func (b *Browser) Fill(ctx context.Context, selector, value string) error {
	encodedSel, err := json.Marshal(selector)
	if err != nil {
		return fmt.Errorf("failed to encode selector: %w", err)
	}
	encodedVal, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}

	script := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) { return false; }
		el.focus();
		el.value = %s;
		el.dispatchEvent(new Event("input", { bubbles: true }));
		el.dispatchEvent(new Event("change", { bubbles: true }));
		return true;
	})()`, encodedSel, encodedVal)

	var ok bool
	if err := b.run(ctx, chromedp.Evaluate(script, &ok)); err != nil {
		return fmt.Errorf("fill of %s failed: %w", selector, err)
	}
	if !ok {
		return fmt.Errorf("fill of %s failed: element not found", selector)
	}
	return nil
}

// Click clicks the first element matching the selector.
func (b *Browser) Click(ctx context.Context, selector string) error {
	if err := b.run(ctx, chromedp.Click(selector, chromedp.ByQuery, chromedp.NodeVisible)); err != nil {
		return fmt.Errorf("click on %s failed: %w", selector, err)
	}
	return nil
}

// Cookies returns the cookies visible to the current page.
func (b *Browser) Cookies(ctx context.Context) ([]types.Cookie, error) {
	var cookies []types.Cookie
	err := b.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		raw, err := network.GetCookies().Do(ctx)
		if err != nil {
			return err
		}
		cookies = make([]types.Cookie, 0, len(raw))
		for _, c := range raw {
			cookies = append(cookies, types.Cookie{
				Name:   c.Name,
				Value:  c.Value,
				Domain: c.Domain,
			})
		}
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to read cookies: %w", err)
	}
	return cookies, nil
}

// HTML returns the full rendered markup of the current page.
func (b *Browser) HTML(ctx context.Context) (string, error) {
	var html string
	if err := b.run(ctx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", fmt.Errorf("failed to capture page html: %w", err)
	}
	return html, nil
}
