package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid config",
			config: Config{DataDir: "/tmp/bookclub-data", LogLevel: "info"},
		},
		{
			name:   "log level optional",
			config: Config{DataDir: "/tmp/bookclub-data"},
		},
		{
			name:    "empty data dir rejected",
			config:  Config{LogLevel: "debug"},
			wantErr: ErrDataDirEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
