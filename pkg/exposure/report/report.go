package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// reportWidth is the total width of a boxed text report line.
const reportWidth = 90

// Text renders the result into the boxed report block: model identity,
// documented equations, then every input and output with its unit. Values
// are printed with full float64 precision, so a report can be parsed back
// into numerically identical values.
func Text(res *model.Result) string {
	var b strings.Builder

	keyWidth := keyWidth(res)

	rule(&b)
	line(&b, "Exposure Route: "+string(res.Route()))
	line(&b, "Exposure Model: "+res.Title())
	line(&b, "Exposure Scenario: "+res.Scenario())

	rule(&b)
	line(&b, "Model Equations:")

	for _, eq := range res.Equations() {
		line(&b, fmt.Sprintf("    %*s = %s", keyWidth, eq.Name, eq.Expr))
	}

	rule(&b)
	line(&b, "Model Inputs:")

	inputs := res.Inputs()
	for _, name := range res.InputNames() {
		line(&b, fmt.Sprintf("    %*s = %s %s", keyWidth, name, formatValue(inputs[name]), res.Unit(name)))
	}

	rule(&b)
	line(&b, "Model Results:")

	outputs := res.Outputs()
	for _, name := range res.OutputNames() {
		line(&b, fmt.Sprintf("    %*s = %s %s", keyWidth, name, formatValue(outputs[name]), res.Unit(name)))
	}

	rule(&b)

	return b.String()
}

// JSON renders the result into an indented JSON document carrying the model
// identity, equations, inputs and outputs.
func JSON(res *model.Result) ([]byte, error) {
	equations := make(map[string]string, len(res.Equations()))
	for _, eq := range res.Equations() {
		equations[eq.Name] = eq.Expr
	}

	doc := jsonReport{
		Route:     string(res.Route()),
		Model:     res.Model(),
		Title:     res.Title(),
		Scenario:  res.Scenario(),
		Equations: equations,
		Inputs:    res.Inputs(),
		Outputs:   res.Outputs(),
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "unable to marshal report for model %s", res.Model())
	}

	return out, nil
}

type jsonReport struct {
	Route     string             `json:"route"`
	Model     string             `json:"model"`
	Title     string             `json:"model_name"`
	Scenario  string             `json:"scenario"`
	Equations map[string]string  `json:"equations"`
	Inputs    map[string]float64 `json:"inputs"`
	Outputs   map[string]float64 `json:"outputs"`
}

func rule(b *strings.Builder) {
	b.WriteString("|")
	b.WriteString(strings.Repeat("-", reportWidth-2))
	b.WriteString("|\n")
}

func line(b *strings.Builder, content string) {
	width := reportWidth - 3
	if len(content) > width {
		width = len(content)
	}

	fmt.Fprintf(b, "| %-*s|\n", width, content)
}

func keyWidth(res *model.Result) int {
	width := 0

	for _, eq := range res.Equations() {
		if len(eq.Name) > width {
			width = len(eq.Name)
		}
	}

	for _, name := range res.InputNames() {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, name := range res.OutputNames() {
		if len(name) > width {
			width = len(name)
		}
	}

	return width
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
