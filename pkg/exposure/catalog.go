package exposure

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/HumanExposure/cloet/pkg/exposure/dermal"
	"github.com/HumanExposure/cloet/pkg/exposure/inhalation"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

var (
	catalogOrder []*model.Definition
	catalogIndex map[string]*model.Definition
)

func init() {
	catalogIndex = make(map[string]*model.Definition)

	for _, def := range inhalation.Definitions() {
		register(def)
	}

	for _, def := range dermal.Definitions() {
		register(def)
	}
}

func register(def *model.Definition) {
	catalogOrder = append(catalogOrder, def)
	catalogIndex[catalogKey(def.Route, def.Name)] = def
}

func catalogKey(route model.Route, name string) string {
	return string(route) + "." + strings.ToLower(strings.TrimSpace(name))
}

// Routes lists the exposure routes covered by the catalog.
func Routes() []model.Route {
	return []model.Route{model.RouteInhalation, model.RouteDermal}
}

// Models lists the model names available on the given route, in catalog
// order.
func Models(route model.Route) []string {
	var names []string

	for _, def := range catalogOrder {
		if def.Route == route {
			names = append(names, def.Name)
		}
	}

	return names
}

// Lookup resolves a model definition by route and name. The name match is
// case-insensitive.
func Lookup(route model.Route, name string) (*model.Definition, error) {
	def, ok := catalogIndex[catalogKey(route, name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownModel, "%s model %s", route, name)
	}

	return def, nil
}

// Eval resolves a model and evaluates it in one step.
func Eval(route model.Route, name string, opts ...model.Option) (*model.Result, error) {
	def, err := Lookup(route, name)
	if err != nil {
		return nil, err
	}

	return def.Eval(opts...)
}

// Defaults reports the static parameter defaults of a model under its
// default scenario.
func Defaults(route model.Route, name string) (map[string]float64, error) {
	def, err := Lookup(route, name)
	if err != nil {
		return nil, err
	}

	return def.Defaults(), nil
}
