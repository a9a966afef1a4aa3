package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rjoshi/ecourts"
)

// Order anchors carry no href; the download path hides inside the onclick
// payload as a filename query parameter.
var filenameParam = regexp.MustCompile(`filename=([^&'"]+)`)

// OrderLinks recovers final-order download links from a status page's order
// table. The caption is the anchor's visible text; paths resolve against
// baseURL. Anchors without a filename payload are skipped. No order table in
// the page yields no links, not an error.
func OrderLinks(html, baseURL string) ([]*ecourts.OrderLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, ecourts.Errorf(ecourts.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ecourts.Errorf(ecourts.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []*ecourts.OrderLink
	doc.Find(ecourts.MarkerOrders + " a").Each(func(_ int, sel *goquery.Selection) {
		onclick, exists := sel.Attr("onclick")
		if !exists {
			return
		}
		m := filenameParam.FindStringSubmatch(onclick)
		if m == nil {
			return
		}
		ref, err := url.Parse(m[1])
		if err != nil {
			return
		}
		links = append(links, &ecourts.OrderLink{
			Caption: collapseWhitespace(sel.Text()),
			URL:     base.ResolveReference(ref).String(),
		})
	})
	return links, nil
}
