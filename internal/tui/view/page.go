package view

import (
	"strings"

	"github.com/Iron-Ham/archives/internal/assets"
	"github.com/Iron-Ham/archives/internal/catalog"
	"github.com/Iron-Ham/archives/internal/tabs"
)

// ImageSource resolves image references. *assets.Resolver satisfies it.
type ImageSource interface {
	Resolve(ref string) assets.Image
}

// Page is the component tree of the dossier.
type Page struct {
	Hero   Hero
	Cards  []Card
	Footer Footer
}

// Hero is the banner at the top of the dossier.
type Hero struct {
	Stamp        string
	Title        []TitleWord
	Subtitle     string
	Designations []Designation
	Indicator    string
}

// TitleWord is one word of the hero title; Accent words use the accent color.
type TitleWord struct {
	Text   string
	Accent bool
}

// Designation pairs an aircraft name with its alternate designation.
type Designation struct {
	Code  string
	Label string
}

// Card is the dossier for one catalog entry.
type Card struct {
	Index        int
	Entry        catalog.Entry
	Image        assets.Image
	ProfileImage assets.Image
	Bars         []Bar
	Tabs         []TabHeader
}

// Bar is one rating bar of a card.
type Bar struct {
	Index int
	Key   string
	Label string
	Value int
}

// TabHeader is one button of a card's tab header.
type TabHeader struct {
	Tab   tabs.Tab
	Title string
}

// Rows returns the specification rows of the card in sheet order.
func (c Card) Rows() []catalog.SpecRow {
	return c.Entry.Specs.Rows()
}

// Footer is the closing block of the dossier.
type Footer struct {
	Logo           string
	Lines          []string
	Classification string
}

// Fixed copy of the dossier.
const (
	stampText          = "СЕКРЕТНО • CLASSIFIED"
	subtitleText       = "Cold War Aviation Archives"
	indicatorText      = "Scroll to Declassify"
	sectionTitle       = "Aircraft Dossiers"
	footerLogo         = "☆ SOVIET ARCHIVES ☆"
	footerRepository   = "Aviation Documentation Repository"
	footerRelease      = "DECLASSIFIED • FOR PUBLIC RELEASE"
	loadingTitle       = "SOVIET ARCHIVES"
	profileHeading     = "War Thunder Profile"
	battleRatingPrefix = "BR "
)

// BuildPage assembles the component tree for entries. Images are resolved
// once here; a nil source hides every image.
func BuildPage(entries []catalog.Entry, images ImageSource) Page {
	page := Page{
		Hero: Hero{
			Stamp: stampText,
			Title: []TitleWord{
				{Text: "Soviet"},
				{Text: "Jet", Accent: true},
				{Text: "Interceptors"},
			},
			Subtitle:  subtitleText,
			Indicator: indicatorText,
		},
	}

	names := make([]string, 0, len(entries))
	for i, e := range entries {
		page.Hero.Designations = append(page.Hero.Designations, Designation{Code: e.Name, Label: e.Designation})
		names = append(names, e.Name)

		card := Card{
			Index:        i,
			Entry:        e,
			Image:        resolve(images, e.Image),
			ProfileImage: resolve(images, e.ProfileImage),
		}
		for j, r := range e.Ratings.List() {
			card.Bars = append(card.Bars, Bar{Index: j, Key: r.Key, Label: r.Label, Value: r.Value})
		}
		for _, t := range tabs.All() {
			card.Tabs = append(card.Tabs, TabHeader{Tab: t, Title: t.Title()})
		}
		page.Cards = append(page.Cards, card)
	}

	page.Footer = Footer{
		Logo:           footerLogo,
		Lines:          []string{footerRepository, filesLine(names)},
		Classification: footerRelease,
	}
	return page
}

func resolve(images ImageSource, ref string) assets.Image {
	if images == nil || ref == "" {
		return assets.Image{Ref: ref}
	}
	return images.Resolve(ref)
}

// filesLine names the aircraft on file, e.g. "MiG-21PD & MiG-25BP Interceptor Files".
func filesLine(names []string) string {
	switch len(names) {
	case 0:
		return "Interceptor Files"
	case 1:
		return names[0] + " Interceptor Files"
	}
	return strings.Join(names[:len(names)-1], ", ") + " & " + names[len(names)-1] + " Interceptor Files"
}

// Keys of observed elements.
const SectionKey = "section"

// CardKey is the observer key of a whole card.
func CardKey(id string) string { return "card:" + id }

// ImageKey is the observer key of a card's image block.
func ImageKey(id string) string { return "card:" + id + ":image" }

// DescriptionKey is the observer key of a card's description block.
func DescriptionKey(id string) string { return "card:" + id + ":description" }

// BarKey is the observer key of one rating bar.
func BarKey(id, rating string) string { return "card:" + id + ":bar:" + rating }
