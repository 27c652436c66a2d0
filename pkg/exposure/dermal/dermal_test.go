package dermal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HumanExposure/cloet/pkg/exposure/dermal"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

func TestDefinitions(t *testing.T) {
	t.Parallel()

	defs := dermal.Definitions()

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		assert.Equal(t, model.RouteDermal, def.Route)
		names = append(names, def.Name)
	}

	assert.Equal(t, []string{
		"one_hand_liquid_contact",
		"two_hand_liquid_contact",
		"two_hand_liquid_immersion",
		"two_hand_solids_contact",
		"two_hand_container_surface_contact",
		"user_defined_dermal",
	}, names)
}

func TestTwoHandLiquidContact(t *testing.T) {
	t.Parallel()

	res, err := dermal.TwoHandLiquidContact(model.WithParam("Yderm", 0.5))
	require.NoError(t, err)

	assert.Equal(t, "high", res.Scenario())
	assert.Equal(t, map[string]float64{
		"NW":   1,
		"LADD": 0.02512720156555773,
		"ADD":  0.04397260273972603,
		"APDR": 16.05,
		"Dexp": 1123.5,
	}, res.Outputs())
}

func TestLiquidContactScenarios(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		eval     func(...model.Option) (*model.Result, error)
		scenario string
		want     float64
	}{
		"one hand low": {
			eval:     dermal.OneHandLiquidContact,
			scenario: "low",
			want:     187.25,
		},
		"immersion high": {
			eval:     dermal.TwoHandLiquidImmersion,
			scenario: "high",
			want:     5510.5,
		},
		"immersion low": {
			eval:     dermal.TwoHandLiquidImmersion,
			scenario: "low",
			want:     695.5,
		},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := tc.eval(model.WithScenario(tc.scenario), model.WithParam("Yderm", 0.5))
			require.NoError(t, err)

			got, ok := res.Output("Dexp")
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSolidsContact(t *testing.T) {
	t.Parallel()

	solids, err := dermal.TwoHandSolidsContact(model.WithParam("Yderm", 0.4))
	require.NoError(t, err)

	got, ok := solids.Output("Dexp")
	require.True(t, ok)
	assert.Equal(t, 1240.0, got)

	container, err := dermal.TwoHandContainerSurfaceContact(model.WithParam("Yderm", 0.4))
	require.NoError(t, err)

	got, ok = container.Output("Dexp")
	require.True(t, ok)
	assert.Equal(t, 440.0, got)
}

func TestUserDefined(t *testing.T) {
	t.Parallel()

	res, err := dermal.UserDefined(model.WithScenario("low"), model.WithParam("Yderm", 1))
	require.NoError(t, err)

	gotS, ok := res.Input("S")
	require.True(t, ok)
	assert.Equal(t, 535.0, gotS)

	got, ok := res.Output("Dexp")
	require.True(t, ok)
	assert.Equal(t, 374.5, got)
}

func TestYdermDomain(t *testing.T) {
	t.Parallel()

	res, err := dermal.OneHandLiquidContact(model.WithParam("Yderm", 1.5))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)

	res, err = dermal.OneHandLiquidContact()
	assert.Nil(t, res)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestAveragingTimeOverride(t *testing.T) {
	t.Parallel()

	// ADD averages over AT, so halving AT doubles it while LADD is
	// untouched.
	base, err := dermal.TwoHandLiquidContact(model.WithParam("Yderm", 0.5))
	require.NoError(t, err)

	halved, err := dermal.TwoHandLiquidContact(
		model.WithParam("Yderm", 0.5), model.WithParam("AT", 20))
	require.NoError(t, err)

	baseADD, ok := base.Output("ADD")
	require.True(t, ok)

	halvedADD, ok := halved.Output("ADD")
	require.True(t, ok)
	assert.InDelta(t, 2*baseADD, halvedADD, 1e-12)

	baseLADD, _ := base.Output("LADD")
	halvedLADD, _ := halved.Output("LADD")
	assert.Equal(t, baseLADD, halvedLADD)
}
