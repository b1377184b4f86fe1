package highlight

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// overlayProperties are the CSS properties the rule table emits.
var overlayProperties = []string{
	"color",
	"background",
	"font-weight",
	"font-style",
	"font-family",
	"text-decoration",
	"padding",
	"border-radius",
}

// safeStyleValue rejects anything that could reference a resource or
// escape the declaration, such as url(...), expression(...) or javascript:.
var safeStyleValue = regexp.MustCompile(`^[#a-zA-Z0-9(),.%\s-]*$`)

var unsafeStyleFunc = regexp.MustCompile(`(?i)(url|expression|image-set)\s*\(`)

// overlayPolicy admits styled spans and nothing else. Script, event
// handler attributes and javascript: URLs cannot survive it.
var overlayPolicy = newOverlayPolicy()

func newOverlayPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("style").OnElements("span")
	p.AllowStyles(overlayProperties...).MatchingHandler(func(v string) bool {
		return safeStyleValue.MatchString(v) && !unsafeStyleFunc.MatchString(v)
	}).OnElements("span")
	return p
}

// Sanitize strips everything but styled spans and text from markup.
func Sanitize(markup string) string {
	return overlayPolicy.Sanitize(markup)
}

// PlainText returns the text content of markup with entities decoded.
// For any valid UTF-8 input t, PlainText(Highlight(t, nil)) == t. Invalid
// byte sequences come back as U+FFFD, since HTML text cannot carry them.
func PlainText(markup string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
