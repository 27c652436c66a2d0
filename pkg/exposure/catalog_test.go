package exposure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HumanExposure/cloet/pkg/exposure"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

func TestRoutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []model.Route{model.RouteInhalation, model.RouteDermal}, exposure.Routes())
}

func TestModels(t *testing.T) {
	t.Parallel()

	inhalation := exposure.Models(model.RouteInhalation)
	assert.Len(t, inhalation, 11)
	assert.Contains(t, inhalation, "automobile_spray_coating")
	assert.Contains(t, inhalation, "mass_balance")

	dermal := exposure.Models(model.RouteDermal)
	assert.Len(t, dermal, 6)
	assert.Contains(t, dermal, "two_hand_liquid_immersion")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	def, err := exposure.Lookup(model.RouteInhalation, "automobile_spray_coating")
	require.NoError(t, err)
	assert.Equal(t, "automobile_spray_coating", def.Name)

	// Lookup is case-insensitive and tolerates surrounding whitespace.
	def, err = exposure.Lookup(model.RouteInhalation, " Automobile_Spray_Coating ")
	require.NoError(t, err)
	assert.Equal(t, "automobile_spray_coating", def.Name)
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		route model.Route
		name  string
	}{
		"unknown name": {route: model.RouteInhalation, name: "volcano"},
		"wrong route":  {route: model.RouteDermal, name: "mass_balance"},
		"empty name":   {route: model.RouteInhalation, name: ""},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			def, err := exposure.Lookup(tc.route, tc.name)
			assert.Nil(t, def)
			assert.ErrorIs(t, err, exposure.ErrUnknownModel)
		})
	}
}

func TestEval(t *testing.T) {
	t.Parallel()

	res, err := exposure.Eval(model.RouteInhalation, "automobile_spray_coating")
	require.NoError(t, err)

	got, ok := res.Output("I")
	require.True(t, ok)
	assert.Equal(t, 184.0, got)

	_, err = exposure.Eval(model.RouteDermal, "volcano")
	assert.ErrorIs(t, err, exposure.ErrUnknownModel)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	defaults, err := exposure.Defaults(model.RouteInhalation, "automobile_spray_coating")
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"ED": 1, "NWexp": 3, "NS": 1, "EY": 40, "BW": 70, "ATc": 70, "AT": 40,
		"KCk": 18.4, "b": 1.25, "h": 8,
	}, defaults)

	_, err = exposure.Defaults(model.RouteInhalation, "volcano")
	assert.ErrorIs(t, err, exposure.ErrUnknownModel)
}

func TestEveryModelHasUserDocumentation(t *testing.T) {
	t.Parallel()

	for _, route := range exposure.Routes() {
		for _, name := range exposure.Models(route) {
			def, err := exposure.Lookup(route, name)
			require.NoError(t, err)

			assert.NotEmpty(t, def.Title, name)
			assert.NotEmpty(t, def.ScenarioNames(), name)
			assert.Contains(t, def.ScenarioNames(), def.DefaultScenario, name)
			assert.NotEmpty(t, def.Outputs, name)
			assert.NotEmpty(t, def.Equations, name)
		}
	}
}
