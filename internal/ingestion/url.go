package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jonathan/interview-coach/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the posting page cannot be fetched
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text can be extracted from the page
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// IngestFromURL fetches a job posting page, extracts its main text using
// board-specific selectors and returns the prepared description with metadata.
// If useBrowser is true, pages whose plain fetch yields too little text are
// re-rendered in a headless browser.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, verbose bool) (string, *Metadata, error) {
	board := fetch.DetectBoard(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected board: %s", board)
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	contentSelectors, noiseSelectors := fetch.BoardSelectors(board)
	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(textContent))
	}

	if useBrowser && fetch.NeedsRendering(textContent) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering...",
				len(textContent), fetch.MinPostingChars)
		}
		browserHTML, browserErr := fetch.RenderPosting(ctx, urlStr, contentSelectors, fetch.DefaultTimeout, verbose)
		switch {
		case browserErr != nil:
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		default:
			if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
				textContent = rendered
			} else if verbose {
				log.Printf("[VERBOSE] Browser content extraction failed: %v", extractErr)
			}
		}
	}

	prepared, err := PrepareDescription(textContent)
	if err != nil {
		return "", nil, err
	}

	return prepared, NewMetadata(prepared, urlStr), nil
}
