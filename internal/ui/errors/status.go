package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/featuredesk/internal/domain"
	"github.com/shhac/featuredesk/internal/model"
)

// StatusBar displays the API server status with a shape-changing icon
// indicator. Each state uses a distinct icon shape for accessibility (not
// color-only):
//   - Checking: view-refresh icon (circular arrows)
//   - Online: confirm icon (checkmark)
//   - Offline or erroring: error icon (X shape)
type StatusBar struct {
	widget.BaseWidget

	state       *model.ServerState
	statusLabel *widget.Label
	indicator   *widget.Icon
	refreshBtn  *widget.Button

	onRefresh func()
}

// NewStatusBar creates a new status bar bound to the given server state.
func NewStatusBar(state *model.ServerState) *StatusBar {
	label := widget.NewLabel(domain.StatusMessageChecking)
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		indicator:   widget.NewIcon(theme.ViewRefreshIcon()),
	}
	s.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		if s.onRefresh != nil {
			s.onRefresh()
		}
	})
	s.refreshBtn.Importance = widget.LowImportance
	s.ExtendBaseWidget(s)

	// Listen to state changes
	state.Online.AddListener(binding.NewDataListener(s.updateStatus))
	state.Message.AddListener(binding.NewDataListener(s.updateStatus))

	// Set initial state
	s.updateStatus()

	return s
}

// SetOnRefresh sets the callback for the manual re-check button.
func (s *StatusBar) SetOnRefresh(fn func()) {
	s.onRefresh = fn
}

// updateStatus refreshes the status bar based on current state.
func (s *StatusBar) updateStatus() {
	online, _ := s.state.Online.Get()
	message, _ := s.state.Message.Get()

	switch {
	case online:
		s.indicator.SetResource(theme.ConfirmIcon())
		s.statusLabel.Importance = widget.SuccessImportance
	case message == "" || message == domain.StatusMessageChecking:
		s.indicator.SetResource(theme.ViewRefreshIcon())
		s.statusLabel.Importance = widget.MediumImportance
		if message == "" {
			message = domain.StatusMessageChecking
		}
	default:
		s.indicator.SetResource(theme.ErrorIcon())
		s.statusLabel.Importance = widget.DangerImportance
	}

	s.statusLabel.SetText(message)
}

// Text returns the displayed status message.
func (s *StatusBar) Text() string {
	return s.statusLabel.Text
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	statusContainer := container.NewHBox(
		s.indicator,
		s.statusLabel,
		s.refreshBtn,
	)

	return widget.NewSimpleRenderer(statusContainer)
}
