package section

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"resume-composer/internal/markup"
	"resume-composer/internal/model"
)

// Contact-field patterns. Phone patterns are tried most-specific first; the
// first match of at least minPhoneLen characters wins.
var (
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneNARe    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	phonePairRe  = regexp.MustCompile(`(?:\+\d{1,3}[ .-])?\d{1,4}(?:[ .-]\d{2,4}){2,5}`)
	phoneLooseRe = regexp.MustCompile(`\+?\(?\d[\d\s().-]{4,}\d`)
	urlTokenRe   = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+|[a-z0-9-]+\.[a-z]{2,}(?:/[^\s,;|]*)?)`)
	postalCARe   = regexp.MustCompile(`(?i)\b[a-z]\d[a-z][ -]?\d[a-z]\d\b`)
	zipUSRe      = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
	apartmentRe  = regexp.MustCompile(`(?i)\b(apt\.?|apartment|suite|unit|étage)\b|#\s?\d`)
)

const (
	minPhoneLen = 6
	maxTitleLen = 100
)

// cityTokens is a coarse allowlist used only as an address hint when no
// marker or postal code is present.
var cityTokens = []string{
	"montreal", "montréal", "toronto", "vancouver", "ottawa", "quebec", "québec",
	"calgary", "new york", "san francisco", "boston", "chicago", "seattle",
	"austin", "paris", "london", "lyon", "berlin",
}

// ExtractHeader decomposes the header section's content into structured
// contact fields. Each field is independent: marker-tagged elements win, then
// heuristic text scanning, then the zero value. Extraction never fails — a
// malformed header degrades to defaults.
func ExtractHeader(content string) model.HeaderInfo {
	t := markup.Parse(content)
	root := t.Root()
	info := model.HeaderInfo{Name: model.DefaultName}

	blks := blocks(root)

	nameIdx := -1
	for i, b := range blks {
		if markup.HeadingLevel(b) == 0 {
			continue
		}
		text := strings.TrimSpace(textWithoutIcons(b))
		if text == "" || isHeaderLabel(text) {
			continue
		}
		info.Name = text
		nameIdx = i
		break
	}

	info.Title = extractTitle(blks, nameIdx)
	info.Phone = extractPhone(root)
	info.Email = extractEmail(root)
	info.LinkedIn = extractKeywordLink(root, []string{LinkedInClass, SocialClass}, []string{"linkedin", "github"})
	info.Portfolio = extractKeywordLink(root, []string{LinkClass, PortfolioClass}, []string{"portfolio", "website"})
	info.Address = extractAddress(root)

	return info
}

// extractTitle takes the element immediately following the name heading,
// rejecting contact-looking or overlong text, and falls back to the first
// unmarked h2/h3.
func extractTitle(blks []*html.Node, nameIdx int) string {
	if nameIdx >= 0 && nameIdx+1 < len(blks) {
		text := strings.TrimSpace(textWithoutIcons(blks[nameIdx+1]))
		if text != "" && !looksLikeContact(text) && len([]rune(text)) < maxTitleLen {
			return text
		}
	}
	for i, b := range blks {
		if i == nameIdx {
			continue
		}
		if l := markup.HeadingLevel(b); (l == 2 || l == 3) && !markup.HasClass(b, TitleClass) {
			if text := strings.TrimSpace(textWithoutIcons(b)); text != "" {
				return text
			}
		}
	}
	return ""
}

func extractPhone(root *html.Node) string {
	if text := markedText(root, PhoneClass); text != "" {
		return text
	}
	all := markup.Text(root)
	for _, re := range []*regexp.Regexp{phoneNARe, phonePairRe, phoneLooseRe} {
		if m := strings.TrimSpace(re.FindString(all)); len(m) >= minPhoneLen {
			return m
		}
	}
	return ""
}

func extractEmail(root *html.Node) string {
	if text := markedText(root, EmailClass); text != "" {
		return text
	}
	return emailRe.FindString(markup.Text(root))
}

// extractKeywordLink prefers a marker-tagged element, then scans paragraphs
// for a keyword and returns either a URL-like token following it or the
// keyword-bearing clause verbatim.
func extractKeywordLink(root *html.Node, markerClasses, keywords []string) string {
	for _, class := range markerClasses {
		if text := markedText(root, class); text != "" {
			return text
		}
	}
	for _, p := range markup.FindAll(root, func(n *html.Node) bool { return markup.IsElement(n, "p", "li", "span") }) {
		text := markup.Text(p)
		lower := strings.ToLower(text)
		for _, kw := range keywords {
			idx := strings.Index(lower, kw)
			if idx < 0 {
				continue
			}
			if tok := urlTokenRe.FindString(text[idx:]); tok != "" {
				return strings.TrimRight(tok, ".,;")
			}
			return clauseAround(text, idx)
		}
	}
	return ""
}

// clauseAround returns the comma/pipe/bullet-delimited clause containing the
// byte offset.
func clauseAround(text string, offset int) string {
	start := 0
	for _, sep := range []string{",", "|", "•", ";"} {
		if i := strings.LastIndex(text[:offset], sep); i+len(sep) > start {
			start = i + len(sep)
		}
	}
	end := len(text)
	for _, sep := range []string{",", "|", "•", ";"} {
		if i := strings.Index(text[offset:], sep); i >= 0 && offset+i < end {
			end = offset + i
		}
	}
	return strings.TrimSpace(text[start:end])
}

// extractAddress prefers a marker-tagged element with line breaks normalized
// to newlines, then scans paragraphs for postal codes, known city tokens,
// apartment indicators or comma density, excluding contact-looking text.
func extractAddress(root *html.Node) string {
	if n := markup.FindFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && markup.HasClass(n, AddressClass)
	}); n != nil {
		return strings.TrimSpace(textWithBreaks(n))
	}
	for _, p := range markup.FindAll(root, func(n *html.Node) bool { return markup.IsElement(n, "p", "li", "span") }) {
		text := strings.TrimSpace(markup.Text(p))
		if text == "" || looksLikeContact(text) {
			continue
		}
		if looksLikeAddress(text) {
			return text
		}
	}
	return ""
}

// isHeaderLabel reports whether heading text is the header section's own
// label ("Contact", "Coordonnées") rather than a person's name. Synthesized
// header sections carry such a heading and must not leak it into the name.
func isHeaderLabel(text string) bool {
	for lang := range keywordTables {
		if id, ok := Classify(text, lang); ok && id == model.IDHeader {
			return true
		}
	}
	return false
}

// looksLikeContact reports whether text contains an email address or a
// phone-shaped number, which disqualifies it as a title or address candidate.
func looksLikeContact(text string) bool {
	if emailRe.MatchString(text) {
		return true
	}
	for _, re := range []*regexp.Regexp{phoneNARe, phonePairRe} {
		if len(re.FindString(text)) >= minPhoneLen {
			return true
		}
	}
	return false
}

func looksLikeAddress(text string) bool {
	if postalCARe.MatchString(text) || zipUSRe.MatchString(text) || apartmentRe.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	for _, city := range cityTokens {
		if strings.Contains(lower, city) {
			return true
		}
	}
	return strings.Count(text, ",") >= 2
}

// markedText returns the text of the first element carrying the marker class.
func markedText(root *html.Node, class string) string {
	if n := markup.FindFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && markup.HasClass(n, class)
	}); n != nil {
		return strings.TrimSpace(markup.Text(n))
	}
	return ""
}

// textWithBreaks is markup.Text with <br> preserved as newlines.
func textWithBreaks(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	lines := strings.Split(b.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.Join(lines, "\n")
}
