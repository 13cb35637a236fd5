// Package extract turns raw attachment bytes into plain text. Extraction
// is best-effort: every method degrades to an empty result instead of
// returning an error, so a broken document never aborts a batch.
package extract

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
)

var (
	emailRe      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w{2,}`)
	spaceRunRe   = regexp.MustCompile(`[ \t]{2,}`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// fileSharingHosts are harvested alongside mailto:/tel: links because
// offers often hide the real application channel behind them.
var fileSharingHosts = []string{"drive.google", "dropbox", "wetransfer"}

type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger.With("component", "extract")}
}

// HTMLText extracts the readable main content of an HTML document and
// returns it as cleaned plain text. When readability cannot identify a
// main block the whole document is cleaned instead.
func (e *Extractor) HTMLText(raw string) string {
	content := raw
	article, err := readability.FromReader(strings.NewReader(raw), nil)
	if err == nil && article.Content != "" {
		content = article.Content
	} else if err != nil {
		e.logger.Debug("readability fallback to full document", "error", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	doc.Find("script,style,noscript,template,svg").Remove()
	doc.Find("br").Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithHtml("\n")
	})

	text := doc.Text()
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Contacts harvests the critical contact channels of a raw HTML page:
// mailto: and tel: links, known file-sharing hosts, and any email-looking
// substrings in the visible text. Order is preserved, duplicates dropped.
func (e *Extractor) Contacts(raw string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
			links = append(links, href)
			return
		}
		for _, host := range fileSharingHosts {
			if strings.Contains(href, host) {
				links = append(links, href)
				return
			}
		}
	})

	for _, email := range emailRe.FindAllString(doc.Text(), -1) {
		links = append(links, "mailto:"+email)
	}

	seen := make(map[string]struct{}, len(links))
	var unique []string
	for _, link := range links {
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		unique = append(unique, link)
	}
	return unique
}

// PDFText extracts the text layer of a PDF. Returns "" when the bytes
// are not a readable PDF.
func (e *Extractor) PDFText(data []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.logger.Warn("pdf open failed", "error", err)
		return ""
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		e.logger.Warn("pdf text extraction failed", "error", err)
		return ""
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return ""
	}
	return strings.TrimSpace(buf.String())
}

// FileText reads a CV file from disk, extracting the text layer for
// PDFs and reading anything else as UTF-8 text.
func (e *Extractor) FileText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		e.logger.Warn("cv file unreadable", "path", path, "error", err)
		return ""
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return e.PDFText(data)
	}
	return strings.TrimSpace(string(data))
}
