package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/featuredesk/internal/model"
)

// TabPane is one named page of a Tabs widget.
type TabPane struct {
	Name    string
	Content fyne.CanvasObject
}

// Tabs shows a row of mutually exclusive tab buttons above the content of
// the active pane. Selection is held by a model.TabSet so exactly one pane
// is ever shown.
type Tabs struct {
	widget.BaseWidget

	set          *model.TabSet
	panes        map[string]fyne.CanvasObject
	selector     *widget.RadioGroup
	contentStack *fyne.Container // holds the active pane

	onChange func(name string)
}

// NewTabs creates a Tabs widget with the first pane active.
func NewTabs(panes ...TabPane) (*Tabs, error) {
	names := make([]string, len(panes))
	byName := make(map[string]fyne.CanvasObject, len(panes))
	for i, p := range panes {
		names[i] = p.Name
		byName[p.Name] = p.Content
	}

	set, err := model.NewTabSet(names...)
	if err != nil {
		return nil, err
	}

	t := &Tabs{
		set:   set,
		panes: byName,
	}
	t.selector = widget.NewRadioGroup(names, func(selected string) {
		if selected == "" {
			// RadioGroup allows deselecting; keep the current pane.
			t.selector.Selected = t.set.Active()
			t.selector.Refresh()
			return
		}
		t.Select(selected)
	})
	t.selector.Horizontal = true
	t.selector.Required = true
	t.selector.Selected = set.Active()

	t.contentStack = container.NewStack(byName[set.Active()])

	t.ExtendBaseWidget(t)
	return t, nil
}

// SetOnChange sets the callback invoked after the active pane changes.
func (t *Tabs) SetOnChange(fn func(name string)) {
	t.onChange = fn
}

// Select activates the named pane. Unknown names are ignored.
func (t *Tabs) Select(name string) {
	if t.set.IsActive(name) {
		return
	}
	if err := t.set.Activate(name); err != nil {
		return
	}

	if t.selector.Selected != name {
		t.selector.SetSelected(name)
	}
	t.contentStack.Objects = []fyne.CanvasObject{t.panes[name]}
	t.contentStack.Refresh()

	if t.onChange != nil {
		t.onChange(name)
	}
}

// Active returns the name of the visible pane.
func (t *Tabs) Active() string {
	return t.set.Active()
}

// Current returns the content currently shown.
func (t *Tabs) Current() fyne.CanvasObject {
	if len(t.contentStack.Objects) == 0 {
		return nil
	}
	return t.contentStack.Objects[0]
}

// CreateRenderer implements fyne.Widget.
func (t *Tabs) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(t.selector, nil, nil, nil, t.contentStack)
	return widget.NewSimpleRenderer(content)
}
