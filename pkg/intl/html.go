package intl

import (
	"fmt"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	markupPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

func initPolicies() {
	policyOnce.Do(func() {
		// Substitution values are plain text.
		strictPolicy = bluemonday.StrictPolicy()

		// Message templates may carry basic inline formatting.
		markupPolicy = bluemonday.NewPolicy()
		markupPolicy.AllowStandardURLs()
		markupPolicy.AllowElements(
			"p", "br", "span",
			"strong", "b", "em", "i", "u", "small",
			"code",
		)
		markupPolicy.AllowAttrs("href").OnElements("a")
		markupPolicy.RequireNoFollowOnLinks(true)
	})
}

// FormatHTMLMessage renders a message that contains markup. String values are
// stripped of all HTML before substitution, and the rendered message is
// sanitized down to basic inline formatting and links.
func (i *Intl) FormatHTMLMessage(message any, values Options) (template.HTML, error) {
	initPolicies()

	escaped := make(Options, len(values))
	for k, v := range values {
		if s, ok := v.(string); ok {
			v = strictPolicy.Sanitize(s)
		}
		escaped[k] = v
	}

	out, err := i.FormatMessage(message, escaped)
	if err != nil {
		return "", fmt.Errorf("format html message: %w", err)
	}
	return template.HTML(markupPolicy.Sanitize(out)), nil //nolint:gosec // sanitized above
}
