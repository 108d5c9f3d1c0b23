/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: capture.go
Description: Headless-browser PNG capture for the SLG Learner. Navigates the
rendered graph page with chromedp, waits for the force layout to settle, and
saves a full-page screenshot next to the HTML. Used only by the full variant;
lite mode never touches the browser.
*/

package visualization

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// ScreenshotRenderer wraps an HTMLRenderer and additionally captures the
// page to PNG with a headless browser
type ScreenshotRenderer struct {
	inner   *HTMLRenderer
	logger  *logrus.Logger
	timeout time.Duration
	width   int64
	height  int64
}

// compile-time interface check
var _ interfaces.Renderer = (*ScreenshotRenderer)(nil)

// NewScreenshotRenderer creates the capturing renderer
func NewScreenshotRenderer(inner *HTMLRenderer, logger *logrus.Logger) *ScreenshotRenderer {
	if logger == nil {
		logger = logrus.New()
	}
	return &ScreenshotRenderer{
		inner:   inner,
		logger:  logger,
		timeout: 60 * time.Second,
		width:   1920,
		height:  1080,
	}
}

// Render writes the HTML artifacts, then captures them to PNG
func (r *ScreenshotRenderer) Render(ctx context.Context, outputDir string) ([]string, error) {
	paths, err := r.inner.Render(ctx, outputDir)
	if err != nil {
		return nil, err
	}

	htmlPath, err := filepath.Abs(r.inner.HTMLPath(outputDir))
	if err != nil {
		return paths, fmt.Errorf("failed to resolve graph page path: %w", err)
	}
	pngPath := strings.TrimSuffix(htmlPath, ".html") + ".png"
	if err := r.capture(ctx, htmlPath, pngPath); err != nil {
		return paths, fmt.Errorf("failed to capture graph screenshot: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"path": pngPath,
	}).Info("Visualization captured")

	return append(paths, pngPath), nil
}

// capture drives the headless browser over the rendered page
func (r *ScreenshotRenderer) capture(ctx context.Context, htmlPath, pngPath string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer allocCancel()
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var buf []byte
	tasks := chromedp.Tasks{
		emulation.SetDeviceMetricsOverride(r.width, r.height, 1, false),
		chromedp.Navigate("file://" + htmlPath),
		// Let the force simulation settle before capturing
		chromedp.Sleep(3 * time.Second),
		chromedp.FullScreenshot(&buf, 100),
	}
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return err
	}

	return os.WriteFile(pngPath, buf, 0644)
}
