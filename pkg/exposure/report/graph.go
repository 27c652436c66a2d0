package report

import (
	"io"
	"strings"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/HumanExposure/cloet/internal/graphstore"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

const maxRGB = 240

// Graph renders the model's equation dependency graph as DOT: one vertex
// per input and per computed quantity, one edge per term referenced by an
// equation. Inputs are blue; computed quantities shade from blue to red in
// equation order. The rendering is deterministic because the backing store
// preserves insertion order.
func Graph(res *model.Result, wrt io.Writer) error {
	store := graphstore.New[string, string]()
	g := graph.NewWithStore[string, string](graph.StringHash, store, graph.Directed())

	inputHex, err := hexColor(0, maxRGB)
	if err != nil {
		return err
	}

	for _, name := range res.InputNames() {
		err = g.AddVertex(name, graph.VertexAttribute("color", inputHex))
		if err != nil {
			return errors.Wrapf(err, "unable to add input vertex %s", name)
		}
	}

	equations := res.Equations()
	known := knownNames(res)

	for idx, eq := range equations {
		fraction := 0.0
		if len(equations) > 1 {
			fraction = float64(idx) / float64(len(equations)-1)
		}

		hex, err := hexColor(maxRGB*fraction, maxRGB-maxRGB*fraction)
		if err != nil {
			return err
		}

		err = g.AddVertex(eq.Name, graph.VertexAttribute("color", hex))
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return errors.Wrapf(err, "unable to add equation vertex %s", eq.Name)
		}
	}

	for _, eq := range equations {
		for _, term := range equationTerms(eq, known) {
			err = g.AddEdge(term, eq.Name)
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return errors.Wrapf(err, "unable to add edge from %s to %s", term, eq.Name)
			}
		}
	}

	return renderDOT(store, wrt)
}

func hexColor(red, blue float64) (string, error) {
	rgb, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return rgb.ToHEX().String(), nil
}

func knownNames(res *model.Result) map[string]struct{} {
	known := make(map[string]struct{})

	for _, name := range res.InputNames() {
		known[name] = struct{}{}
	}

	for _, eq := range res.Equations() {
		known[eq.Name] = struct{}{}
	}

	return known
}

// equationTerms extracts the referenced parameter and quantity names from
// the documented expression, in order of first appearance.
func equationTerms(eq model.Equation, known map[string]struct{}) []string {
	fields := strings.FieldsFunc(eq.Expr, func(r rune) bool {
		return !(r == '_' ||
			r >= 'a' && r <= 'z' ||
			r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9')
	})

	seen := make(map[string]struct{}, len(fields))
	terms := make([]string, 0, len(fields))

	for _, field := range fields {
		if field == eq.Name {
			continue
		}

		if _, ok := known[field]; !ok {
			continue
		}

		if _, ok := seen[field]; ok {
			continue
		}

		seen[field] = struct{}{}
		terms = append(terms, field)
	}

	return terms
}

type dotVertex struct {
	Name       string
	Attributes map[string]string
}

type dotEdge struct {
	Source string
	Target string
}

type dotDescription struct {
	Vertices []dotVertex
	Edges    []dotEdge
}

const dotTemplate = `strict digraph {
{{- range .Vertices}}
	"{{.Name}}" [ {{range $k, $v := .Attributes}}{{$k}}="{{$v}}", {{end}}];
{{- end}}
{{- range .Edges}}
	"{{.Source}}" -> "{{.Target}}";
{{- end}}
}
`

func renderDOT(store *graphstore.Store[string, string], wrt io.Writer) error {
	desc := dotDescription{}

	hashes, err := store.ListVertices()
	if err != nil {
		return errors.Wrap(err, "unable to list vertices")
	}

	for _, hash := range hashes {
		_, properties, err := store.Vertex(hash)
		if err != nil {
			return errors.Wrapf(err, "unable to get vertex %s", hash)
		}

		desc.Vertices = append(desc.Vertices, dotVertex{Name: hash, Attributes: properties.Attributes})
	}

	edges, err := store.ListEdges()
	if err != nil {
		return errors.Wrap(err, "unable to list edges")
	}

	for _, edge := range edges {
		desc.Edges = append(desc.Edges, dotEdge{Source: edge.Source, Target: edge.Target})
	}

	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}
