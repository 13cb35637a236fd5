package portal

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

var (
	offerIDRe   = regexp.MustCompile(`/oferta/(\d+)$`)
	lastSegment = regexp.MustCompile(`/([^/?#]+)$`)
)

// ApplicationForm is the offer-application form found on a detail page.
// Posting it reveals whether the offer links out of the portal.
type ApplicationForm struct {
	Action string
	Fields map[string]string
}

// ParseListing extracts the offer boxes from one listing page. Offers
// without a recognizable id are kept (their dates still drive the
// pagination stop) but can never be persisted.
func ParseListing(markup string, scrapedAt time.Time) ([]domain.ListedOffer, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse listing markup: %w", err)
	}

	var offers []domain.ListedOffer
	doc.Find("div.offer").Each(func(_ int, box *goquery.Selection) {
		anchor := box.Find("a.title-wrapper").First()
		if anchor.Length() == 0 {
			return
		}

		link := strings.TrimSpace(anchor.AttrOr("href", ""))
		title := strings.TrimSpace(anchor.Find("h1.title").Text())

		offerDate := labeledDate(box, "Data de l'oferta")
		deadline := labeledDate(box, "Data límit de CV")

		id := ""
		if m := offerIDRe.FindStringSubmatch(link); m != nil {
			id = m[1]
		}

		offers = append(offers, domain.ListedOffer{
			ID:               id,
			Title:            title,
			DetailLink:       link,
			OfferDateDisplay: offerDate,
			DeadlineDisplay:  deadline,
			OfferDateISO:     domain.ToISO(offerDate),
			DeadlineISO:      domain.ToISO(deadline),
			ScrapedAt:        scrapedAt,
		})
	})

	return offers, nil
}

// labeledDate finds the div.data row whose text carries the given label
// and returns the value after the colon.
func labeledDate(box *goquery.Selection, label string) string {
	value := ""
	box.Find("div.data").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		text := row.Text()
		if !strings.Contains(text, label) {
			return true
		}
		if _, after, found := strings.Cut(text, ":"); found {
			value = strings.TrimSpace(after)
		}
		return false
	})
	return value
}

// ParseDetail extracts the labeled fields of a detail page plus its
// application form. A missing label degrades to an empty value; only a
// page without the leading entity heading is treated as unparsable.
func ParseDetail(markup, detailURL string, scrapedAt time.Time) (*domain.OfferDetail, *ApplicationForm, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, nil, fmt.Errorf("parse detail markup: %w", err)
	}

	m := lastSegment.FindStringSubmatch(detailURL)
	if m == nil {
		return nil, nil, fmt.Errorf("no offer id in url %q", detailURL)
	}
	id := m[1]

	entityHeading := doc.Find("h3").First()
	if entityHeading.Length() == 0 {
		return nil, nil, fmt.Errorf("offer %s: entity heading not found", id)
	}

	detail := &domain.OfferDetail{
		ID:               id,
		Entity:           strings.TrimSpace(entityHeading.Text()),
		Activity:         boldPair(doc, "ACTIVITAT"),
		Sector:           boldPair(doc, "SECTOR"),
		Role:             strings.TrimSpace(doc.Find("h3 + hr + h3").First().Text()),
		Schedule:         boldPair(doc, "Tipus de jornada"),
		Compensation:     boldPair(doc, "REMUNERACIÓ"),
		Location:         boldPair(doc, "Ubicació lloc de treball"),
		ProfileHTML:      headingBlock(doc, "PERFIL"),
		TasksHTML:        headingBlock(doc, "Tasques"),
		ObservationsHTML: observationsBlock(doc),
		CVDeadlineISO:    domain.ToISO(boldPair(doc, "Data límit")),
		ScrapedAt:        scrapedAt,
	}

	return detail, applicationForm(doc), nil
}

// boldPair locates a <b>LABEL</b> tag by case-insensitive match and
// returns the text node that follows it, stripped of separators. Missing
// labels yield an empty value, never an error.
func boldPair(doc *goquery.Document, label string) string {
	needle := strings.ToLower(label)
	value := ""
	doc.Find("b").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(sel.Text()), needle) {
			return true
		}
		node := sel.Get(0).NextSibling
		if node != nil && node.Type == html.TextNode {
			value = strings.Trim(node.Data, " : \t\n")
		}
		return false
	})
	return value
}

// headingBlock returns the outer HTML of the first <div> following an
// <h4> whose text matches, or "" when the section is absent.
func headingBlock(doc *goquery.Document, heading string) string {
	needle := strings.ToLower(heading)
	blockHTML := ""
	doc.Find("h4").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(sel.Text()), needle) {
			return true
		}
		block := sel.NextAllFiltered("div").First()
		if block.Length() > 0 {
			blockHTML, _ = goquery.OuterHtml(block)
		}
		return false
	})
	return blockHTML
}

func observationsBlock(doc *goquery.Document) string {
	blockHTML := ""
	doc.Find("b").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.TrimSpace(sel.Text()) != "Observacions:" {
			return true
		}
		blockHTML, _ = goquery.OuterHtml(sel.Parent())
		return false
	})
	return blockHTML
}

func applicationForm(doc *goquery.Document) *ApplicationForm {
	form := doc.Find("form#formOffer").First()
	if form.Length() == 0 {
		return nil
	}
	action, ok := form.Attr("action")
	if !ok {
		return nil
	}

	fields := make(map[string]string)
	form.Find("input[name]").Each(func(_ int, input *goquery.Selection) {
		name := input.AttrOr("name", "")
		fields[name] = input.AttrOr("value", "")
	})

	return &ApplicationForm{Action: action, Fields: fields}
}
