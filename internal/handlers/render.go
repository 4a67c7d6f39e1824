package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
	"github.com/sbilibin2017/gw-coin-purchase/internal/services"
	"github.com/sbilibin2017/gw-coin-purchase/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page metadata
const (
	siteTitle       = "Rehoboth Exchange"
	siteDescription = "Buy cryptocurrencies easily and securely"
)

// Renderer renders the purchase page into the layout shell.
type Renderer struct {
	tmpl    *template.Template
	palette theme.Palette
}

type pageView struct {
	Title       string
	Description string
	Theme       template.CSS
	FiatOptions []models.Option
	Page        *models.PageData
}

// NewRenderer parses the embedded templates.
func NewRenderer(palette theme.Palette) (*Renderer, error) {
	tmpl, err := template.New("layout.html").
		Funcs(template.FuncMap{
			"amount": formatOptionalAmount,
		}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{tmpl: tmpl, palette: palette}, nil
}

// Render writes the full HTML page for data to w.
// Output is buffered, so nothing is written to w when a template fails.
func (r *Renderer) Render(w io.Writer, data *models.PageData) error {
	view := pageView{
		Title:       siteTitle,
		Description: siteDescription,
		Theme:       r.palette.CSSVariables(),
		FiatOptions: models.FiatOptions,
		Page:        data,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", view); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func formatOptionalAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return services.FormatAmount(*v)
}
