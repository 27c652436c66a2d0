package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

func testDefinition() *model.Definition {
	return &model.Definition{
		Name:            "vented_tank",
		Title:           "Vented Tank",
		Route:           model.RouteInhalation,
		DefaultScenario: "typical",
		Scenarios: []model.Scenario{
			{Name: "typical", Preset: map[string]float64{"Q": 10}},
			{Name: "worst,case", Preset: map[string]float64{"Q": 2}},
			{Name: "derived", Derive: map[string]func(model.Inputs) float64{
				"Q": func(in model.Inputs) float64 { return in["G"] * 4 },
			}},
			{Name: "user"},
		},
		Params: []model.Param{
			{Name: "G", Units: "g/s", Default: 5, Check: model.AtLeast(0)},
			{Name: "Q", Units: "m3/s", Required: true, Check: model.AtLeast(0)},
			{
				Name:   "Y",
				Units:  "dimensionless",
				Derive: func(in model.Inputs) float64 { return 1 / in["Q"] },
				Check:  model.Within(0, 1),
			},
		},
		Outputs:   []model.Output{{Name: "C", Units: "g/m3"}},
		Equations: []model.Equation{{Name: "C", Expr: "(G / Q) * Y"}},
		Compute: func(in model.Inputs) map[string]float64 {
			return map[string]float64{"C": in["G"] / in["Q"] * in["Y"]}
		},
	}
}

func TestEvalDefaults(t *testing.T) {
	t.Parallel()

	res, err := testDefinition().Eval()
	require.NoError(t, err)

	assert.Equal(t, "vented_tank", res.Model())
	assert.Equal(t, "typical", res.Scenario())
	assert.Equal(t, map[string]float64{"G": 5, "Q": 10, "Y": 0.1}, res.Inputs())
	assert.Equal(t, map[string]float64{"C": 0.05}, res.Outputs())
}

func TestEvalOverridePrecedence(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts []model.Option
		want map[string]float64
	}{
		"override beats scenario preset": {
			opts: []model.Option{model.WithParam("Q", 2)},
			want: map[string]float64{"G": 5, "Q": 2, "Y": 0.5},
		},
		"override beats derived default": {
			opts: []model.Option{model.WithParam("Y", 0.5)},
			want: map[string]float64{"G": 5, "Q": 10, "Y": 0.5},
		},
		"override beats scenario derive": {
			opts: []model.Option{model.WithScenario("derived"), model.WithParam("Q", 4)},
			want: map[string]float64{"G": 5, "Q": 4, "Y": 0.25},
		},
		"several overrides at once": {
			opts: []model.Option{model.WithParams(map[string]float64{"G": 8, "Q": 4})},
			want: map[string]float64{"G": 8, "Q": 4, "Y": 0.25},
		},
		"last override wins": {
			opts: []model.Option{model.WithParam("G", 1), model.WithParam("G", 3)},
			want: map[string]float64{"G": 3, "Q": 10, "Y": 0.1},
		},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := testDefinition().Eval(tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Inputs())
		})
	}
}

func TestEvalScenarios(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		scenario string
		wantQ    float64
	}{
		"exact name":           {scenario: "worst,case", wantQ: 2},
		"case insensitive":     {scenario: "Worst,Case", wantQ: 2},
		"comma space variant":  {scenario: "worst, case", wantQ: 2},
		"derived from earlier": {scenario: "derived", wantQ: 20},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := testDefinition().Eval(model.WithScenario(tc.scenario))
			require.NoError(t, err)

			got, ok := res.Input("Q")
			require.True(t, ok)
			assert.Equal(t, tc.wantQ, got)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts    []model.Option
		wantErr error
	}{
		"unknown parameter": {
			opts:    []model.Option{model.WithParam("Z", 1)},
			wantErr: model.ErrUnknownParameter,
		},
		"unknown scenario": {
			opts:    []model.Option{model.WithScenario("best case")},
			wantErr: model.ErrUnknownScenario,
		},
		"required parameter missing": {
			opts:    []model.Option{model.WithScenario("user")},
			wantErr: model.ErrInvalidParameter,
		},
		"value below domain": {
			opts:    []model.Option{model.WithParam("G", -1)},
			wantErr: model.ErrInvalidParameter,
		},
		"value above domain": {
			opts:    []model.Option{model.WithParam("Y", 2)},
			wantErr: model.ErrInvalidParameter,
		},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := testDefinition().Eval(tc.opts...)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestEvalRequiredSupplied(t *testing.T) {
	t.Parallel()

	res, err := testDefinition().Eval(model.WithScenario("user"), model.WithParam("Q", 4))
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"G": 5, "Q": 4, "Y": 0.25}, res.Inputs())
	assert.Equal(t, map[string]float64{"C": 0.3125}, res.Outputs())
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	// Required and derived parameters have no static default; the
	// scenario preset supplies Q.
	assert.Equal(t, map[string]float64{"G": 5, "Q": 10}, testDefinition().Defaults())
}

func TestScenarioNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"typical", "worst,case", "derived", "user"},
		testDefinition().ScenarioNames())
}

func TestUnits(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		"G": "g/s",
		"Q": "m3/s",
		"Y": "dimensionless",
		"C": "g/m3",
	}
	assert.Equal(t, want, testDefinition().Units())
}

func TestResultIsImmutable(t *testing.T) {
	t.Parallel()

	res, err := testDefinition().Eval()
	require.NoError(t, err)

	res.Inputs()["G"] = -99
	res.Outputs()["C"] = -99
	res.InputNames()[0] = "corrupted"
	res.Equations()[0].Expr = "corrupted"

	got, ok := res.Input("G")
	require.True(t, ok)
	assert.Equal(t, 5.0, got)

	gotOut, ok := res.Output("C")
	require.True(t, ok)
	assert.Equal(t, 0.05, gotOut)

	assert.Equal(t, []string{"G", "Q", "Y"}, res.InputNames())
	assert.Equal(t, "(G / Q) * Y", res.Equations()[0].Expr)
}

func TestWithinPositive(t *testing.T) {
	t.Parallel()

	check := model.WithinPositive(1)

	assert.NoError(t, check("Ysf", 0.25))
	assert.NoError(t, check("Ysf", 1))
	assert.ErrorIs(t, check("Ysf", 0), model.ErrInvalidParameter)
	assert.ErrorIs(t, check("Ysf", -0.1), model.ErrInvalidParameter)
	assert.ErrorIs(t, check("Ysf", 1.1), model.ErrInvalidParameter)
}

func TestCommonParams(t *testing.T) {
	t.Parallel()

	params := model.CommonParams(3)

	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{"ED", "NWexp", "NS", "EY", "BW", "ATc", "AT"}, names)
	assert.Equal(t, 3.0, params[1].Default)

	// Exposure days are bounded by the calendar year.
	assert.Error(t, params[0].Check("ED", 366))
	assert.NoError(t, params[0].Check("ED", 365))
}
