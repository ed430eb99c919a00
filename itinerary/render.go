package itinerary

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultRenderTimeout bounds both the content-load and the print step
// of one attempt. There is no cancellation path for an in-flight print
// beyond this timeout.
const DefaultRenderTimeout = 60 * time.Second

// ChromeRenderer prints documents through a headless Chrome instance.
// The first attempt launches with the full option set; if Chrome fails
// to launch or print, one retry is made with a minimal,
// maximally-compatible set. Browser and allocator contexts are scoped
// to each attempt and cancelled on every exit path.
type ChromeRenderer struct {
	Timeout time.Duration
}

func NewChromeRenderer(timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}
	return &ChromeRenderer{Timeout: timeout}
}

func (r *ChromeRenderer) RenderPDF(ctx context.Context, htmlContent, lang string) ([]byte, error) {
	pdf, firstErr := r.print(ctx, htmlContent, fullPrintParams(lang), true)
	if firstErr == nil {
		return pdf, nil
	}
	log.Printf("⚠️ PDF render failed, retrying with minimal options: %v", firstErr)

	pdf, retryErr := r.print(ctx, htmlContent, minimalPrintParams(), false)
	if retryErr != nil {
		return nil, &RenderError{Stage: "print", Err: errors.Join(firstErr, retryErr)}
	}
	return pdf, nil
}

func (r *ChromeRenderer) print(parent context.Context, htmlContent string, params *page.PrintToPDFParams, full bool) ([]byte, error) {
	ctx, cancel := context.WithTimeout(parent, r.Timeout)
	defer cancel()

	if full {
		allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, append(
			chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("font-render-hinting", "none"),
		)...)
		defer cancelAlloc()
		ctx = allocCtx
	}

	tabCtx, cancelTab := chromedp.NewContext(ctx)
	defer cancelTab()

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := params.Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, errors.New("rendering process produced no output")
	}
	return pdf, nil
}

func fullPrintParams(lang string) *page.PrintToPDFParams {
	footer := `<div style="font-size:8px;width:100%;text-align:center;">` +
		`<span class="pageNumber"></span> / <span class="totalPages"></span></div>`
	if lang == LangAR {
		footer = `<div style="font-size:8px;width:100%;text-align:center;direction:rtl;">` +
			`<span class="pageNumber"></span> / <span class="totalPages"></span></div>`
	}

	return page.PrintToPDF().
		WithPrintBackground(true).
		WithPreferCSSPageSize(true).
		WithMarginTop(0.4).
		WithMarginBottom(0.5).
		WithMarginLeft(0.4).
		WithMarginRight(0.4).
		WithDisplayHeaderFooter(true).
		WithHeaderTemplate(`<span></span>`).
		WithFooterTemplate(footer)
}

func minimalPrintParams() *page.PrintToPDFParams {
	return page.PrintToPDF().WithPrintBackground(true)
}
