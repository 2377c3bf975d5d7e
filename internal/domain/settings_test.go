package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 60, s.FullUnitMinutes)
	assert.Equal(t, 30, s.HalfWindow.Start)
	assert.Equal(t, 59, s.HalfWindow.End)
	require.NoError(t, s.Validate())
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{"default", DefaultSettings(), false},
		{"tight window", Settings{FullUnitMinutes: 90, HalfWindow: HalfWindow{Start: 45, End: 45}}, false},
		{"zero full unit", Settings{FullUnitMinutes: 0, HalfWindow: HalfWindow{Start: 0, End: 0}}, true},
		{"negative full unit", Settings{FullUnitMinutes: -60, HalfWindow: HalfWindow{Start: 30, End: 59}}, true},
		{"negative window start", Settings{FullUnitMinutes: 60, HalfWindow: HalfWindow{Start: -1, End: 59}}, true},
		{"end before start", Settings{FullUnitMinutes: 60, HalfWindow: HalfWindow{Start: 40, End: 30}}, true},
		{"window past full unit", Settings{FullUnitMinutes: 60, HalfWindow: HalfWindow{Start: 30, End: 60}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptionsSetGet(t *testing.T) {
	var o Options
	for _, opt := range AllOptions() {
		assert.False(t, o.Get(opt))
		require.NoError(t, o.Set(opt, true))
		assert.True(t, o.Get(opt))
	}
	assert.Error(t, o.Set("bogus", true))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("pro")
	require.NoError(t, err)
	assert.Equal(t, ModePro, m)
	assert.Equal(t, CollectionResults, m.Collection())

	m, err = ParseMode("simple")
	require.NoError(t, err)
	assert.Equal(t, CollectionResultsSimple, m.Collection())

	_, err = ParseMode("turbo")
	assert.Error(t, err)
}

func TestParseOption(t *testing.T) {
	for _, name := range []string{"transportFee", "nomination", "noShow"} {
		opt, err := ParseOption(name)
		require.NoError(t, err)
		assert.Equal(t, Option(name), opt)
	}
	_, err := ParseOption("vip")
	assert.Error(t, err)
}
