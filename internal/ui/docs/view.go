// Package docs renders the API documentation: a navigation sidebar next to
// one long scrollable page whose sections are tracked by a scroll spy.
package docs

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/featuredesk/internal/model"
)

// Section ids, in page order.
const (
	SectionOverview  = "overview"
	SectionEndpoints = "endpoints"
	SectionExamples  = "examples"
	SectionTester    = "tester"
)

// Page is one titled section of the documentation.
type Page struct {
	ID      string
	Title   string
	Content fyne.CanvasObject
}

// View shows the navigation sidebar and the scrollable sections.
type View struct {
	widget.BaseWidget

	pages    []Page
	wrappers []fyne.CanvasObject // heading + content per page, positioned inside body
	nav      map[string]*widget.Button
	navBox   *fyne.Container
	body     *fyne.Container
	scroll   *container.Scroll

	spy    model.ScrollSpy
	active binding.String
	logger *slog.Logger
}

// NewView builds the documentation view. active receives the highlighted
// section id.
func NewView(pages []Page, active binding.String, logger *slog.Logger) *View {
	v := &View{
		pages:  pages,
		nav:    make(map[string]*widget.Button, len(pages)),
		navBox: container.NewVBox(),
		body:   container.NewVBox(),
		active: active,
		logger: logger,
	}

	for _, p := range pages {
		id := p.ID
		btn := widget.NewButton(p.Title, func() { v.ScrollTo(id) })
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		v.nav[id] = btn
		v.navBox.Add(btn)

		heading := widget.NewLabelWithStyle(p.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		heading.SizeName = theme.SizeNameSubHeadingText
		wrapper := container.NewVBox(heading, p.Content, widget.NewSeparator())
		v.wrappers = append(v.wrappers, wrapper)
		v.body.Add(wrapper)
	}

	v.scroll = container.NewVScroll(v.body)
	v.scroll.OnScrolled = v.onScrolled

	if len(pages) > 0 {
		v.highlight(pages[0].ID)
	}

	v.ExtendBaseWidget(v)
	return v
}

// Sections returns the current vertical extent of every page.
func (v *View) Sections() []model.Section {
	out := make([]model.Section, len(v.pages))
	for i, p := range v.pages {
		w := v.wrappers[i]
		out[i] = model.Section{
			ID:     p.ID,
			Top:    w.Position().Y,
			Height: w.Size().Height,
		}
	}
	return out
}

func (v *View) onScrolled(offset fyne.Position) {
	if v.spy.Update(v.Sections(), offset.Y) {
		v.highlight(v.spy.Active())
	}
}

// ScrollTo brings the section with id under the top edge, leaving the
// navbar offset above it.
func (v *View) ScrollTo(id string) {
	for _, sec := range v.Sections() {
		if sec.ID != id {
			continue
		}
		v.logger.Debug("scrolling to section", slog.String("section", id))
		v.scroll.Offset = fyne.NewPos(0, model.ScrollTarget(sec))
		v.scroll.Refresh()
		v.onScrolled(v.scroll.Offset)
		return
	}
}

// Active returns the highlighted section id.
func (v *View) Active() string {
	id, _ := v.active.Get()
	return id
}

func (v *View) highlight(id string) {
	for navID, btn := range v.nav {
		if navID == id {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}
	_ = v.active.Set(id)
}

// CreateRenderer implements fyne.Widget.
func (v *View) CreateRenderer() fyne.WidgetRenderer {
	sidebar := container.NewBorder(
		widget.NewLabelWithStyle("Contents", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		v.navBox,
	)
	split := container.NewHSplit(sidebar, v.scroll)
	split.SetOffset(0.18)
	return widget.NewSimpleRenderer(split)
}
