package marsnap

import "time"

// Default pacing between gallery sub-page visits.
const DefaultPacing = 1 * time.Second

// Targets is the selector table for every site visited by a run.
type Targets struct {
	News    NewsTarget    `yaml:"news"`
	Image   ImageTarget   `yaml:"image"`
	Facts   FactsTarget   `yaml:"facts"`
	Gallery GalleryTarget `yaml:"gallery"`
}

// Validate returns an error if any target is missing a URL or selector.
func (t *Targets) Validate() error {
	if err := t.News.Validate(); err != nil {
		return err
	}
	if err := t.Image.Validate(); err != nil {
		return err
	}
	if err := t.Facts.Validate(); err != nil {
		return err
	}
	return t.Gallery.Validate()
}

// NewsTarget locates the latest headline and its teaser.
type NewsTarget struct {
	URL  string        `yaml:"url"`
	Wait WaitCondition `yaml:"wait"`

	// Container selects the first news slide; Title and Summary are
	// looked up inside it.
	Container string `yaml:"container"`
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
}

// Validate returns an error if the target is incomplete.
func (t *NewsTarget) Validate() error {
	switch {
	case t.URL == "":
		return Errorf(EINVALID, "news URL required")
	case t.Container == "" || t.Title == "" || t.Summary == "":
		return Errorf(EINVALID, "news selectors required")
	}
	return nil
}

// ImageTarget locates the featured image revealed by clicking a control.
type ImageTarget struct {
	URL  string        `yaml:"url"`
	Wait WaitCondition `yaml:"wait"`

	// Button and ButtonIndex pick the control to activate.
	Button      string        `yaml:"button"`
	ButtonIndex int           `yaml:"button_index"`
	ClickWait   WaitCondition `yaml:"click_wait"`

	// Image selects the expanded image whose src is reported.
	Image string `yaml:"image"`
}

// Validate returns an error if the target is incomplete.
func (t *ImageTarget) Validate() error {
	switch {
	case t.URL == "":
		return Errorf(EINVALID, "image URL required")
	case t.Button == "" || t.Image == "":
		return Errorf(EINVALID, "image selectors required")
	case t.ButtonIndex < 0:
		return Errorf(EINVALID, "image button index must not be negative")
	}
	return nil
}

// FactsTarget locates the Mars/Earth comparison table.
type FactsTarget struct {
	URL   string `yaml:"url"`
	Table string `yaml:"table"`

	// ExpectedHeaders guards against upstream column reordering. When the
	// table has a header row, header cell i must contain ExpectedHeaders[i]
	// (case-insensitive). An empty entry matches anything.
	ExpectedHeaders []string `yaml:"expected_headers"`
}

// Validate returns an error if the target is incomplete.
func (t *FactsTarget) Validate() error {
	switch {
	case t.URL == "":
		return Errorf(EINVALID, "facts URL required")
	case t.Table == "":
		return Errorf(EINVALID, "facts table selector required")
	case len(t.ExpectedHeaders) > len(FactsColumns):
		return Errorf(EINVALID, "facts expects at most %d headers", len(FactsColumns))
	}
	return nil
}

// GalleryTarget locates the hemisphere index and its linked sub-pages.
type GalleryTarget struct {
	URL  string        `yaml:"url"`
	Wait WaitCondition `yaml:"wait"`

	// Index page.
	Container string `yaml:"container"`
	Item      string `yaml:"item"`
	Link      string `yaml:"link"`

	// Sub-pages.
	ItemWait WaitCondition `yaml:"item_wait"`
	Image    string        `yaml:"image"`
	Title    string        `yaml:"title"`

	// TitleQualifier is cut from the title along with everything after it.
	TitleQualifier string `yaml:"title_qualifier"`

	// Pacing is the minimum interval between sub-page visits.
	Pacing time.Duration `yaml:"pacing"`
}

// Validate returns an error if the target is incomplete.
func (t *GalleryTarget) Validate() error {
	switch {
	case t.URL == "":
		return Errorf(EINVALID, "gallery URL required")
	case t.Container == "" || t.Item == "" || t.Link == "":
		return Errorf(EINVALID, "gallery index selectors required")
	case t.Image == "" || t.Title == "":
		return Errorf(EINVALID, "gallery item selectors required")
	case t.Pacing < 0:
		return Errorf(EINVALID, "gallery pacing must not be negative")
	}
	return nil
}

// DefaultTargets returns the built-in selector table.
func DefaultTargets() Targets {
	return Targets{
		News: NewsTarget{
			URL:       "https://redplanetscience.com/",
			Wait:      WaitFor("div.list_text", 1*time.Second),
			Container: "div.list_text",
			Title:     "div.content_title",
			Summary:   "div.article_teaser_body",
		},
		Image: ImageTarget{
			URL:         "https://spaceimages-mars.com/",
			Button:      "button",
			ButtonIndex: 1,
			ClickWait:   WaitFor("img.fancybox-image", 1*time.Second),
			Image:       "img.fancybox-image",
		},
		Facts: FactsTarget{
			URL:             "https://galaxyfacts-mars.com/",
			Table:           "table",
			ExpectedHeaders: []string{"", "Mars", "Earth"},
		},
		Gallery: GalleryTarget{
			URL:            "https://marshemispheres.com/",
			Container:      "div.results",
			Item:           "div.item",
			Link:           "a.itemLink",
			Image:          "img.wide-image",
			Title:          "h2.title",
			TitleQualifier: "Enhanced",
			Pacing:         DefaultPacing,
		},
	}
}
