package preview

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	classNames = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)
	digits     = regexp.MustCompile(`^[0-9]+$`)
	checkbox   = regexp.MustCompile(`^checkbox$`)
	alignment  = regexp.MustCompile(`^text-align:\s*(left|right|center);?$`)
)

// Policy returns the sanitizer applied to rendered previews: bluemonday's
// user-generated-content policy, plus class attributes for styling, table
// cell alignment, and read-only task checkboxes. Links to other sites open
// in a new tab with noopener and noreferrer.
func Policy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(classNames).Globally()

	p.AllowAttrs("type").Matching(checkbox).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	p.AllowAttrs(taskIndexAttr).Matching(digits).OnElements("input")

	p.AllowAttrs("align").Matching(bluemonday.CellAlign).OnElements("th", "td")
	p.AllowAttrs("style").Matching(alignment).OnElements("th", "td")

	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnFullyQualifiedLinks(true)
	return p
}
