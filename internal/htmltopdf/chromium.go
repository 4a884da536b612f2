// Package htmltopdf provides the external HTML-to-PDF rendering engine
// backed by a headless Chromium browser.
package htmltopdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches for page.PrintToPDF.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// browserCandidates are the binaries probed when no explicit path is
// configured.
var browserCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
}

// Chromium renders HTML to PDF through a headless Chrome/Chromium instance
// driven by chromedp. Each Render call runs in its own browser context, so
// concurrent calls are independent.
type Chromium struct {
	// BrowserPath optionally pins the browser binary. When empty,
	// well-known names are probed on PATH.
	BrowserPath string
}

// NewChromium creates a Chromium engine. browserPath may be empty.
func NewChromium(browserPath string) *Chromium {
	if browserPath == "" {
		browserPath = os.Getenv("CHROME_PATH")
	}
	return &Chromium{BrowserPath: browserPath}
}

// Available reports whether a browser binary can be located. It is checked
// before every render so a missing browser surfaces as an explicit
// condition instead of a deferred chromedp failure.
func (e *Chromium) Available() error {
	if e.BrowserPath != "" {
		if _, err := os.Stat(e.BrowserPath); err != nil {
			return fmt.Errorf("configured browser %s not usable: %w", e.BrowserPath, err)
		}
		return nil
	}
	for _, name := range browserCandidates {
		if _, err := exec.LookPath(name); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no chrome or chromium binary found on PATH")
}

// Render loads the HTML into a fresh page and prints it to PDF on A4
// portrait paper. The caller bounds the call with a context timeout.
func (e *Chromium) Render(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.BrowserPath != "" {
		opts = append(opts, chromedp.ExecPath(e.BrowserPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromium pdf render failed: %w", err)
	}
	return pdf, nil
}
