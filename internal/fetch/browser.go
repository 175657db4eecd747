package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chromedp/chromedp"
)

// MinPostingChars is the shortest extracted text accepted from a plain fetch.
// Job boards that render client-side usually serve only a shell below this.
const MinPostingChars = 500

// selectorWait bounds how long rendering waits for a posting selector to appear.
const selectorWait = 5 * time.Second

// NeedsRendering reports whether text from a plain fetch is too short to be a posting.
func NeedsRendering(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < MinPostingChars
}

// RenderPosting loads a posting page in headless Chrome and returns its HTML
// once the body is ready and, if possible, one of waitFor has appeared.
// Requires Chrome/Chromium on the host.
func RenderPosting(ctx context.Context, url string, waitFor []string, timeout time.Duration, verbose bool) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if verbose {
		log.Printf("[BROWSER] Rendering posting: %s", url)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.UserAgent(DefaultUserAgent),
		)...,
	)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, timeout)
	defer cancelTimeout()

	if err := chromedp.Run(tabCtx, chromedp.Navigate(url), chromedp.WaitReady("body")); err != nil {
		return "", &Error{URL: url, Message: "browser navigation failed", Cause: err}
	}

	// Boards hydrate the description after load; a missing selector is not fatal.
	if len(waitFor) > 0 {
		waitCtx, cancelWait := context.WithTimeout(tabCtx, selectorWait)
		err := chromedp.Run(waitCtx, chromedp.WaitVisible(strings.Join(waitFor, ", "), chromedp.ByQuery))
		cancelWait()
		if err != nil && verbose {
			log.Printf("[BROWSER] No posting selector became visible: %v", err)
		}
	}

	var html string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", &Error{URL: url, Message: "browser rendering failed", Cause: fmt.Errorf("read html: %w", err)}
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}
	return html, nil
}
