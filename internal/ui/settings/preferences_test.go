package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shhac/featuredesk/internal/errors"
)

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"30", 30, false},
		{"2.5", 2.5, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"soon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeout(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				var ve apperrors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Equal(t, "Request timeout", ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeLabels(t *testing.T) {
	for _, mode := range []string{ThemeSystem, ThemeLight, ThemeDark} {
		assert.Equal(t, mode, ThemeModeForLabel(ThemeLabel(mode)))
	}
	assert.Equal(t, "System Default", ThemeLabel("sepia"))
	assert.Equal(t, ThemeSystem, ThemeModeForLabel("Sepia"))
}
