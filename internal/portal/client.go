// Package portal implements the recruiting-portal client: member login,
// AJAX listing pagination, detail pages and attachment downloads. All
// session state lives in the client's cookie jar; callers construct one
// client per run and log in once.
package portal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

const (
	loginPath       = "/membres/login/"
	loginActionPath = "/wp-admin/admin-post.php"
	listPath        = "/membres/ofertes-vigents"
	ajaxPath        = "/wp-admin/admin-ajax.php"
	memberAreaPath  = "/membres/"
)

var nonceFieldRe = regexp.MustCompile(`(?i)(security|nonce)`)

type Config struct {
	BaseURL   string
	MemberID  string
	Password  string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	httpClient *http.Client
	// noRedirect shares the jar but stops at the first response, used
	// where the login protocol inspects the 302 itself.
	noRedirect *http.Client
	baseURL    string
	apexHost   string
	memberID   string
	password   string
	userAgent  string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	httpClient := &http.Client{
		Jar:     jar,
		Timeout: cfg.Timeout,
	}
	noRedirect := &http.Client{
		Jar:     jar,
		Timeout: cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &Client{
		httpClient: httpClient,
		noRedirect: noRedirect,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apexHost:   strings.TrimPrefix(base.Hostname(), "www."),
		memberID:   cfg.MemberID,
		password:   cfg.Password,
		userAgent:  cfg.UserAgent,
		logger:     logger.With("component", "portal"),
	}, nil
}

// Login runs the member login protocol: scrape the nonce from the login
// page, post the member form, and require a 302 back into the member
// area. Any other outcome is an authentication failure.
func (c *Client) Login(ctx context.Context) error {
	loginHTML, err := c.get(ctx, c.baseURL+loginPath)
	if err != nil {
		return fmt.Errorf("fetch login page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(loginHTML))
	if err != nil {
		return fmt.Errorf("parse login page: %w", err)
	}

	nonce := ""
	doc.Find("input").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name, _ := sel.Attr("name")
		if !nonceFieldRe.MatchString(name) {
			return true
		}
		nonce, _ = sel.Attr("value")
		return false
	})

	form := url.Values{
		"action":       {"login_colegiat"},
		"redirect":     {listPath},
		"num_colegiat": {c.memberID},
		"password":     {c.password},
	}
	if nonce != "" {
		form.Set("security", nonce)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+loginActionPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", c.baseURL+loginPath)

	resp, err := c.noRedirect.Do(req)
	if err != nil {
		return fmt.Errorf("post login form: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	loc := resp.Header.Get("Location")
	if resp.StatusCode != http.StatusFound || !strings.HasPrefix(loc, memberAreaPath) {
		return fmt.Errorf("login not accepted (status %d, location %q)", resp.StatusCode, loc)
	}

	// Follow the redirect so the jar picks up the member-area cookies.
	if _, err := c.get(ctx, c.baseURL+loc); err != nil {
		return fmt.Errorf("follow login redirect: %w", err)
	}

	c.logger.Info("logged in", "member_id", c.memberID)
	return nil
}

// FetchListingPage posts the portal's AJAX pagination action and returns
// the raw listing markup for page n.
func (c *Client) FetchListingPage(ctx context.Context, n int) (string, error) {
	form := url.Values{
		"action": {"get_offers_page"},
		"page":   {strconv.Itoa(n)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+ajaxPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create listing request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Referer", c.baseURL+listPath+"/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch listing page %d: %w", n, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("listing page %d: unexpected status %d", n, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read listing page %d: %w", n, err)
	}
	return string(body), nil
}

// FetchDetail returns the raw markup of one offer detail page.
func (c *Client) FetchDetail(ctx context.Context, detailURL string) (string, error) {
	return c.get(ctx, detailURL)
}

// ParseListing delegates to the package-level parser. A method so the
// orchestrator can swap the whole portal behind one interface.
func (c *Client) ParseListing(markup string, scrapedAt time.Time) ([]domain.ListedOffer, error) {
	return ParseListing(markup, scrapedAt)
}

// ParseDetail delegates to the package-level parser.
func (c *Client) ParseDetail(markup, detailURL string, scrapedAt time.Time) (*domain.OfferDetail, *ApplicationForm, error) {
	return ParseDetail(markup, detailURL, scrapedAt)
}

// FetchAttachment downloads an external attachment and reports the
// response content type alongside the raw bytes.
func (c *Client) FetchAttachment(ctx context.Context, attachmentURL string) (string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, attachmentURL, nil)
	if err != nil {
		return "", nil, fmt.Errorf("create attachment request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("fetch attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("attachment: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("read attachment: %w", err)
	}
	return resp.Header.Get("Content-Type"), body, nil
}

// ResolveApplicationLink posts an offer's application form and follows
// the redirect chain. A final URL still on the portal means the offer
// requires the on-portal application flow, which is reported as an empty
// link rather than an error.
func (c *Client) ResolveApplicationLink(ctx context.Context, form *ApplicationForm) (string, error) {
	if form == nil {
		return "", nil
	}

	actionURL, err := c.resolveURL(form.Action)
	if err != nil {
		return "", fmt.Errorf("resolve form action: %w", err)
	}

	values := url.Values{}
	for name, value := range form.Fields {
		values.Set(name, value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		actionURL, strings.NewReader(values.Encode()))
	if err != nil {
		return "", fmt.Errorf("create application request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post application form: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	final := resp.Request.URL
	if strings.HasSuffix(final.Hostname(), c.apexHost) {
		c.logger.Debug("application stays on portal", "final_url", final.String())
		return "", nil
	}
	return final.String(), nil
}

func (c *Client) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(body), nil
}

func (c *Client) resolveURL(ref string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(refURL).String(), nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("Accept", "*/*")
}
