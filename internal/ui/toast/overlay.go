// Package toast renders notification center snapshots as a stack of
// toasts in the top-right corner of the window.
package toast

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/featuredesk/internal/notify"
)

// Overlay shows the active notifications.
type Overlay struct {
	widget.BaseWidget

	list *fyne.Container

	mu    sync.Mutex
	shown []notify.Notification
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	o := &Overlay{
		list: container.NewVBox(),
	}
	o.ExtendBaseWidget(o)
	return o
}

// Bind subscribes the overlay to center. Snapshots arrive on timer
// goroutines and are applied on the UI goroutine.
func (o *Overlay) Bind(center *notify.Center) {
	center.SetOnChange(func(active []notify.Notification) {
		fyne.Do(func() {
			o.Update(active)
		})
	})
}

// Update replaces the displayed toasts with a snapshot. Entering toasts are
// not drawn yet; leaving toasts are drawn subdued.
func (o *Overlay) Update(active []notify.Notification) {
	shown := make([]notify.Notification, 0, len(active))
	objects := make([]fyne.CanvasObject, 0, len(active))
	for _, n := range active {
		if n.Phase == notify.PhaseEntering {
			continue
		}
		shown = append(shown, n)
		objects = append(objects, newToast(n))
	}

	o.mu.Lock()
	o.shown = shown
	o.mu.Unlock()

	o.list.Objects = objects
	o.list.Refresh()
}

// Shown returns the notifications currently drawn.
func (o *Overlay) Shown() []notify.Notification {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]notify.Notification(nil), o.shown...)
}

func newToast(n notify.Notification) fyne.CanvasObject {
	label := widget.NewLabel(n.Message)
	label.TextStyle = fyne.TextStyle{Bold: true}

	var icon fyne.Resource
	switch n.Kind {
	case notify.KindSuccess:
		icon = theme.ConfirmIcon()
		label.Importance = widget.SuccessImportance
	case notify.KindError:
		icon = theme.ErrorIcon()
		label.Importance = widget.DangerImportance
	default:
		icon = theme.InfoIcon()
	}
	if n.Phase == notify.PhaseLeaving {
		label.Importance = widget.LowImportance
	}

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	bg.CornerRadius = theme.InputRadiusSize()
	bg.StrokeColor = theme.Color(theme.ColorNameShadow)
	bg.StrokeWidth = 1
	return container.NewStack(bg, container.NewPadded(container.NewHBox(widget.NewIcon(icon), label)))
}

// CreateRenderer implements fyne.Widget.
func (o *Overlay) CreateRenderer() fyne.WidgetRenderer {
	// Pin the stack to the top-right corner
	content := container.NewVBox(
		container.NewHBox(layout.NewSpacer(), o.list),
		layout.NewSpacer(),
	)
	return widget.NewSimpleRenderer(content)
}
