// Package specimport turns a product specification page into a catalog
// component draft. Only the spec sheet is read; prices on the page are
// ignored and have to be entered by hand before the draft is saved.
package specimport

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
	"github.com/gofiber/fiber/v2/log"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/internal/utils"
)

var ErrInvalidURL = errors.New("invalid product URL")

// ErrUnknownType is returned when the page does not say which kind of part
// it describes and the caller did not pass one.
var ErrUnknownType = errors.New("could not determine the part type")

type Importer struct {
	Collector       *colly.Collector
	Headers         map[string]string
	randomUserAgent bool
}

// Draft is an imported, unpriced component plus the raw sheet it came from.
type Draft struct {
	Component models.Component `json:"component" yaml:"component"`
	Sheet     []models.PartSpec `json:"sheet" yaml:"sheet"`
	Images    []string          `json:"images,omitempty" yaml:"images,omitempty"`
	SourceURL string            `json:"sourceUrl" yaml:"sourceUrl"`
}

func linkURL(parts ...string) string {
	last := parts[len(parts)-1]
	if last == "" {
		return ""
	} else if strings.HasPrefix(last, "http") {
		return last
	}
	return strings.Join(parts, "")
}

// NewImporter creates an importer with a collector that may revisit pages.
// Every Import call works on a clone of Collector, so callbacks never pile up.
func NewImporter() Importer {
	col := colly.NewCollector()
	col.AllowURLRevisit = true

	return Importer{
		Collector: col,
		Headers:   map[string]string{},
	}
}

func (imp *Importer) RandomizeUserAgent() {
	imp.randomUserAgent = true
}

func (imp *Importer) collector() *colly.Collector {
	col := imp.Collector.Clone()
	if imp.randomUserAgent {
		extensions.RandomUserAgent(col)
	}
	col.OnRequest(func(r *colly.Request) {
		for k, v := range imp.Headers {
			if len(k) > 0 && len(v) > 0 {
				r.Headers.Set(k, v)
			}
		}
		log.Debugw("spec import request", "url", r.URL.String(), "user_agent", r.Headers.Get("User-Agent"))
	})
	return col
}

// Import reads the spec sheet at URL. When t is empty the part type is taken
// from the page breadcrumb.
func (imp *Importer) Import(URL string, t models.ComponentType) (*Draft, error) {
	if !utils.MatchHTTPURL(URL) {
		return nil, ErrInvalidURL
	}

	col := imp.collector()

	var (
		name       string
		breadcrumb []string
		images     []string
		sheet      []models.PartSpec
		rating     float64
	)

	col.OnHTML(".pageTitle", func(title *colly.HTMLElement) {
		if name == "" {
			name = strings.TrimSpace(title.Text)
		}
	})

	col.OnHTML(".breadcrumb a", func(crumb *colly.HTMLElement) {
		breadcrumb = append(breadcrumb, strings.TrimSpace(crumb.Text))
	})

	col.OnHTML(".single_image_gallery_box", func(image *colly.HTMLElement) {
		images = append(images, linkURL("https:", image.ChildAttr("a img", "src")))
	})

	col.OnHTML("script", func(script *colly.HTMLElement) {
		images = utils.FindScriptImages(script, images)
	})

	col.OnHTML(".product--rating", func(stars *colly.HTMLElement) {
		var count float64
		stars.ForEach("li", func(int, *colly.HTMLElement) {
			count++
		})
		rating = count
	})

	col.OnHTML(".specs", func(specsContainer *colly.HTMLElement) {
		if len(sheet) > 0 {
			return
		}
		specsContainer.ForEach(".group", func(_ int, spec *colly.HTMLElement) {
			var values []string

			spec.ForEach(".group__content li", func(_ int, specValue *colly.HTMLElement) {
				values = append(values, strings.TrimSpace(specValue.Text))
			})

			if len(values) == 0 {
				values = []string{strings.TrimSpace(spec.ChildText(".group__content"))}
			}

			sheet = append(sheet, models.PartSpec{
				Name:   strings.TrimSpace(spec.ChildText(".group__title")),
				Values: values,
			})
		})
	})

	err := col.Visit(URL)
	col.Wait()

	if err != nil {
		return nil, err
	}

	if t == "" {
		t = typeFromBreadcrumb(breadcrumb)
	}
	if !t.Valid() {
		return nil, ErrUnknownType
	}

	draft := &Draft{
		Component: Convert(name, t, sheet),
		Sheet:     sheet,
		Images:    images,
		SourceURL: URL,
	}
	draft.Component.Rating = rating
	if len(images) > 0 {
		draft.Component.Image = images[0]
	}
	return draft, nil
}

// Breadcrumbs read like "Products > Video Card"; the most specific entry
// that names a category wins.
func typeFromBreadcrumb(crumbs []string) models.ComponentType {
	for i := len(crumbs) - 1; i >= 0; i-- {
		if t, ok := models.ParseComponentType(crumbs[i]); ok {
			return t
		}
	}
	return ""
}

// specKey turns a sheet label such as "Core Count" into "coreCount".
func specKey(label string) string {
	words := strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		r := []rune(w)
		b.WriteString(strings.ToUpper(string(r[0])))
		b.WriteString(strings.ToLower(string(r[1:])))
	}
	return b.String()
}
