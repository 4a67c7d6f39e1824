// Package theme holds the static design tokens of the purchase page.
package theme

import (
	"fmt"
	"html/template"
	"strings"
)

// Palette is the set of named colors used by the layout.
type Palette struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Card       string
	Border     string
	Error      string
}

// Token is one named color.
type Token struct {
	Name  string
	Value string
}

// Default is the Rehoboth Exchange palette.
var Default = Palette{
	Primary:    "#4F46E5",
	Secondary:  "#64748B",
	Accent:     "#10B981",
	Background: "#F9FAFB",
	Card:       "#FFFFFF",
	Border:     "#E5E7EB",
	Error:      "#EF4444",
}

// Tokens returns the palette in a stable order.
func (p Palette) Tokens() []Token {
	return []Token{
		{Name: "primary", Value: p.Primary},
		{Name: "secondary", Value: p.Secondary},
		{Name: "accent", Value: p.Accent},
		{Name: "background", Value: p.Background},
		{Name: "card", Value: p.Card},
		{Name: "border", Value: p.Border},
		{Name: "error", Value: p.Error},
	}
}

// CSSVariables renders the palette as CSS custom property declarations,
// e.g. "--color-primary: #4F46E5;".
func (p Palette) CSSVariables() template.CSS {
	var b strings.Builder
	for _, t := range p.Tokens() {
		fmt.Fprintf(&b, "--color-%s: %s;", t.Name, t.Value)
	}
	return template.CSS(b.String())
}
