package cmdutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevanssp/avm/internal/config"
)

func TestRegistryPath(t *testing.T) {
	settings := func(s *config.Settings, err error) func() (*config.Settings, error) {
		return func() (*config.Settings, error) { return s, err }
	}

	tests := []struct {
		name string
		f    *Factory
		want string
	}{
		{
			name: "flag wins",
			f: &Factory{
				RegistryPath: "/flag/reg.xml",
				Settings:     settings(&config.Settings{Registry: "/settings/reg.xml"}, nil),
			},
			want: "/flag/reg.xml",
		},
		{
			name: "settings when no flag",
			f: &Factory{
				Settings: settings(&config.Settings{Registry: "/settings/reg.xml"}, nil),
			},
			want: "/settings/reg.xml",
		},
		{
			name: "empty falls through to platform default",
			f: &Factory{
				Settings: settings(&config.Settings{}, nil),
			},
			want: "",
		},
		{
			name: "unreadable settings ignored",
			f: &Factory{
				Settings: settings(nil, errors.New("boom")),
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RegistryPath(tt.f))
		})
	}
}
