// Package fetch - browser.go renders JavaScript-heavy job boards in a
// headless browser when the static HTML carries no posting text.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the shortest extracted text accepted as a real job
// description. Anything shorter is treated as an unrendered SPA shell.
const MinContentLength = 500

const (
	// defaultRenderTimeout bounds one headless page render.
	defaultRenderTimeout = 30 * time.Second

	// renderSettle is how long the page gets to run its scripts after the
	// DOM is ready. SPA job boards populate the posting well within this.
	renderSettle = 3 * time.Second
)

// ShouldUseBrowser reports whether the statically fetched text is too short
// to be a posting, signalling a client-side rendered page.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser loads the URL in headless Chrome and returns the rendered
// HTML. Chrome or Chromium must be installed on the host.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[browser] rendering %s", url)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
		chromedp.ActionFunc(dismissConsentBanner),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[browser] rendered %d bytes", len(html))
	}
	return html, nil
}

// dismissConsentBanner clicks through common cookie prompts so the consent
// overlay does not end up in the extracted text. A missing button is not
// an error.
func dismissConsentBanner(ctx context.Context) error {
	_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
	return nil
}

// BrowserSimple renders the URL with the default timeout.
func BrowserSimple(ctx context.Context, url string, verbose bool) (string, error) {
	return WithBrowser(ctx, url, defaultRenderTimeout, verbose)
}
