package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	tests := []struct {
		set     string
		want    string
		wantErr bool
	}{
		{"", "0.0.1-dev", false},
		{"v1.4.0", "1.4.0", false},
		{"1.4.0-dirty", "1.4.0-dirty", false},
		{"nightly", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.set, func(t *testing.T) {
			Version = tt.set
			got, err := Get()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.set, String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, String())
		})
	}
}
