// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmath/linear"
	"github.com/katalvlaran/lvmath/scalar"
)

// Output formats selectable with --output.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// row is a list of provider-formatted scalars, emitted as a flow sequence of
// plain YAML scalars so decimals keep all their digits.
type row []string

// MarshalYAML implements yaml.Marshaler.
func (r row) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, s := range r {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: s})
	}

	return n, nil
}

// report is the rendered result of a job.
type report struct {
	Scalar string `yaml:"scalar"`
	Matrix []row  `yaml:"matrix"`
	Vector row    `yaml:"vector,omitempty"`

	matrixText string
	vectorText string
}

func components[T any, M scalar.Math[T]](v linear.Vector3[T, M]) row {
	return row{v.X().String(), v.Y().String(), v.Z().String()}
}

func matrixReport[T any, M scalar.Math[T]](m linear.Matrix33[T, M]) report {
	return report{
		Matrix:     []row{components(m.Right()), components(m.Up()), components(m.Into())},
		matrixText: m.String(),
	}
}

// setVector attaches a transformed vector to r.
func setVector[T any, M scalar.Math[T]](r *report, v linear.Vector3[T, M]) {
	r.Vector = components(v)
	r.vectorText = v.String()
}

// write renders r in the given format.
func (r report) write(w io.Writer, format string) error {
	switch format {
	case outputText:
		if _, err := fmt.Fprintln(w, r.matrixText); err != nil {
			return err
		}
		if r.vectorText != "" {
			_, err := fmt.Fprintf(w, "vector: %s\n", r.vectorText)
			return err
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, format)
	}
}
