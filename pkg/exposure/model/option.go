package model

// Option overrides part of a model's default input set for one evaluation.
type Option func(*settings)

type settings struct {
	scenario  string
	overrides map[string]float64
}

// WithParam overrides a single parameter by its exact, case-sensitive name.
// Overrides take precedence over scenario presets and defaults. Names the
// model does not declare are rejected at evaluation time.
func WithParam(name string, value float64) Option {
	return func(s *settings) {
		s.overrides[name] = value
	}
}

// WithParams overrides several parameters at once.
func WithParams(params map[string]float64) Option {
	return func(s *settings) {
		for name, value := range params {
			s.overrides[name] = value
		}
	}
}

// WithScenario selects a documented scenario preset instead of the model's
// default one. Names are case-insensitive and a ", " separator is
// normalised to ",".
func WithScenario(name string) Option {
	return func(s *settings) {
		s.scenario = name
	}
}
