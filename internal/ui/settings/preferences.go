package settings

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/featuredesk/internal/app"
	apperrors "github.com/shhac/featuredesk/internal/errors"
	uierrors "github.com/shhac/featuredesk/internal/ui/errors"
)

// Theme modes stored under app.PrefTheme.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

var themeLabels = map[string]string{
	ThemeSystem: "System Default",
	ThemeLight:  "Light",
	ThemeDark:   "Dark",
}

// ThemeModeForLabel maps a selector label back to its stored mode.
func ThemeModeForLabel(label string) string {
	for mode, l := range themeLabels {
		if l == label {
			return mode
		}
	}
	return ThemeSystem
}

// ThemeLabel returns the selector label for a stored mode.
func ThemeLabel(mode string) string {
	if l, ok := themeLabels[mode]; ok {
		return l
	}
	return themeLabels[ThemeSystem]
}

// ParseTimeout validates the timeout entry text (seconds).
func ParseTimeout(text string) (float64, error) {
	val, err := strconv.ParseFloat(text, 64)
	if err != nil || val <= 0 {
		return 0, apperrors.ValidationError{
			Field:   "Request timeout",
			Message: fmt.Sprintf("%q is not a positive number of seconds", text),
		}
	}
	return val, nil
}

// PreferencesCallbacks provides hooks for the preferences dialog to apply changes.
type PreferencesCallbacks struct {
	OnThemeChange func(mode string) // Called with "system", "dark", or "light"
	OnSaved       func()            // Called after preferences were written
}

// ShowPreferencesDialog displays the preferences dialog with General and Appearance tabs.
func ShowPreferencesDialog(a fyne.App, window fyne.Window, callbacks PreferencesCallbacks) {
	prefs := a.Preferences()

	// --- General tab ---

	currentTimeout := prefs.FloatWithFallback(app.PrefRequestTimeout, 30)
	timeoutEntry := widget.NewEntry()
	timeoutEntry.SetText(strconv.FormatFloat(currentTimeout, 'f', -1, 64))

	generalTab := container.NewTabItem("General", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Request Timeout (seconds)", timeoutEntry),
		),
		widget.NewLabel("Applies to tester requests and health checks."),
	))

	// --- Appearance tab ---

	themeSelector := widget.NewSelect(
		[]string{themeLabels[ThemeSystem], themeLabels[ThemeLight], themeLabels[ThemeDark]},
		nil,
	)
	themeSelector.SetSelected(ThemeLabel(prefs.StringWithFallback(app.PrefTheme, ThemeSystem)))

	appearanceTab := container.NewTabItem("Appearance", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Theme", themeSelector),
		),
	))

	// --- Build dialog ---

	tabs := container.NewAppTabs(generalTab, appearanceTab)

	dlg := dialog.NewCustomConfirm("Preferences", "Save", "Cancel", tabs, func(save bool) {
		if !save {
			return
		}

		if val, err := ParseTimeout(timeoutEntry.Text); err != nil {
			uierrors.ShowError(err, window)
		} else {
			prefs.SetFloat(app.PrefRequestTimeout, val)
		}

		mode := ThemeModeForLabel(themeSelector.Selected)
		prefs.SetString(app.PrefTheme, mode)
		if callbacks.OnThemeChange != nil {
			callbacks.OnThemeChange(mode)
		}
		if callbacks.OnSaved != nil {
			callbacks.OnSaved()
		}
	}, window)

	dlg.Resize(fyne.NewSize(500, 350))
	dlg.Show()
}
