package config

import (
	"math"
	"testing"

	"github.com/gonewx/uikit/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultEaseSettings(t *testing.T) {
	s := DefaultEaseSettings()
	assert.Equal(t, 1.0, s.Duration)
	assert.Equal(t, utils.InOutQuad, s.Function)
	assert.NoError(t, s.Validate())
}

func TestEaseSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       EaseSettings
		wantErr error
	}{
		{"合法配置", EaseSettings{Duration: 0.3, Function: utils.OutCubic}, nil},
		{"零时长快速路径", EaseSettings{Duration: 0, Function: utils.Linear}, nil},
		{"负时长", EaseSettings{Duration: -1, Function: utils.Linear}, ErrInvalidDuration},
		{"NaN 时长", EaseSettings{Duration: math.NaN(), Function: utils.Linear}, ErrInvalidDuration},
		{"无穷时长", EaseSettings{Duration: math.Inf(1), Function: utils.Linear}, ErrInvalidDuration},
		{"未知缓动", EaseSettings{Duration: 1, Function: utils.Ease(77)}, utils.ErrUnknownEase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewEaseSettings(t *testing.T) {
	s, err := NewEaseSettings(0.25, utils.OutBack)
	require.NoError(t, err)
	assert.Equal(t, EaseSettings{Duration: 0.25, Function: utils.OutBack}, s)

	_, err = NewEaseSettings(-0.25, utils.OutBack)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestEaseSettingsYAML(t *testing.T) {
	var full EaseSettings
	require.NoError(t, yaml.Unmarshal([]byte("duration: 0.25\nfunction: EaseOutCubic\n"), &full))
	assert.Equal(t, EaseSettings{Duration: 0.25, Function: utils.OutCubic}, full)

	var partial EaseSettings
	require.NoError(t, yaml.Unmarshal([]byte("function: linear\n"), &partial))
	assert.Equal(t, EaseSettings{Duration: 1.0, Function: utils.Linear}, partial, "缺省时长使用默认值")

	var onlyDuration EaseSettings
	require.NoError(t, yaml.Unmarshal([]byte("duration: 2\n"), &onlyDuration))
	assert.Equal(t, utils.InOutQuad, onlyDuration.Function, "缺省缓动使用默认值")

	var bad EaseSettings
	err := yaml.Unmarshal([]byte("duration: -1\n"), &bad)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
