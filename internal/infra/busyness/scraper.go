package busyness

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

const popularTimesMarker = "Popular times"

var (
	livePercentPattern = regexp.MustCompile(`(?s)Live.*?(\d+)%`)
	percentPattern     = regexp.MustCompile(`(\d+)%`)
)

// pageScraper fetches the visible text of a maps search for a place.
type pageScraper interface {
	PageText(ctx context.Context, placeName, cityName string) (string, error)
}

type chromeScraper struct {
	searchURL    string
	pageLoadWait time.Duration
	timeout      time.Duration
}

func (s *chromeScraper) searchAddress(placeName, cityName string) string {
	return s.searchURL + url.QueryEscape(placeName+" "+cityName)
}

// PageText renders the search page in headless Chrome and returns the body text.
func (s *chromeScraper) PageText(ctx context.Context, placeName, cityName string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var body string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(s.searchAddress(placeName, cityName)),
		chromedp.Sleep(s.pageLoadWait),
		chromedp.Text("body", &body, chromedp.ByQuery),
	)
	if err != nil {
		return "", errors.Wrap(err, "headless browser scrape failed")
	}

	return body, nil
}

// parsePopularity extracts the current crowd percentage from a rendered maps page.
// A "Live" reading wins over the first plausible percentage on the page.
func parsePopularity(content string) (int, bool) {
	if !strings.Contains(content, popularTimesMarker) {
		return 0, false
	}

	if match := livePercentPattern.FindStringSubmatch(content); match != nil {
		if v, err := strconv.Atoi(match[1]); err == nil && v <= 100 {
			return v, true
		}
	}

	for _, match := range percentPattern.FindAllStringSubmatch(content, -1) {
		v, err := strconv.Atoi(match[1])
		if err != nil || v > 100 {
			continue
		}

		return v, true
	}

	return 0, false
}
