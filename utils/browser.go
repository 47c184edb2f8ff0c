package utils

import (
	"context"

	"github.com/chromedp/chromedp"
)

// NewBrowserContext creates the browser session for one run: a Chrome exec
// allocator plus a single tab context. The returned cancel func releases
// both and must always be called, even when a scrape fails.
func NewBrowserContext(parent context.Context, headless bool) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1400, 1080),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	return tabCtx, func() {
		cancelTab()
		cancelAlloc()
	}
}
