// Package graphio reads and writes graph fixture documents in YAML and JSON
// and turns them into core.Graph values.
//
// A document lists vertices (name plus an optional free-form payload) and
// weighted edges by endpoint name. Directed defaults to true when omitted.
//
//	name: triangle
//	directed: false
//	vertices:
//	  - name: A
//	  - name: B
//	edges:
//	  - {from: A, to: B, weight: 1}
//
// Weights in a document must be finite; +Inf edges are expressed by
// leaving the edge out (or by an InfEdgeThreshold at query time).
package graphio

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/heapath/core"
)

// Sentinel errors for decoding and validating documents.
var (
	// ErrUnknownFormat indicates a format (or file extension) other than YAML or JSON.
	ErrUnknownFormat = errors.New("graphio: unknown document format")

	// ErrInvalidDocument indicates a document that fails validation or cannot
	// be turned into a graph.
	ErrInvalidDocument = errors.New("graphio: invalid document")
)

// Document is the serialized form of a graph.
//
// Duplicate vertex names fail the unique=Name rule in Validate, so they
// surface as ErrInvalidDocument and never reach core.NewGraph.
// Dangling edge endpoints pass validation and are reported by Graph with
// core.ErrUnknownVertex wrapped inside ErrInvalidDocument.
type Document struct {
	Name     string       `json:"name" yaml:"name" validate:"required"`
	Directed *bool        `json:"directed,omitempty" yaml:"directed,omitempty"`
	Vertices []VertexSpec `json:"vertices" yaml:"vertices" validate:"required,min=1,unique=Name,dive"`
	Edges    []EdgeSpec   `json:"edges,omitempty" yaml:"edges,omitempty" validate:"omitempty,dive"`
}

// VertexSpec is one vertex of a Document.
type VertexSpec struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Payload any    `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// EdgeSpec is one directed edge of a Document.
type EdgeSpec struct {
	From   string  `json:"from" yaml:"from" validate:"required"`
	To     string  `json:"to" yaml:"to" validate:"required"`
	Weight float64 `json:"weight" yaml:"weight" validate:"finite"`
}

// IsDirected reports the effective direction flag (true when unset).
func (d Document) IsDirected() bool { return d.Directed == nil || *d.Directed }

var (
	validateOnce sync.Once
	validate     *validator.Validate
	trans        ut.Translator
)

// documentValidator returns the shared validator with English translations
// and the "finite" rule registered.
func documentValidator() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate = validator.New()
		english := en.New()
		uni := ut.New(english, english)
		trans, _ = uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)

		_ = validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})
		_ = validate.RegisterTranslation("finite", trans, func(t ut.Translator) error {
			return t.Add("finite", "{0} must be a finite number", true)
		}, func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("finite", fe.Field())
			return msg
		})
	})

	return validate, trans
}

// Validate checks the document shape: a name, at least one vertex, unique
// non-empty vertex names, non-empty edge endpoints and finite weights.
// Endpoint existence is checked by Graph.
func (d Document) Validate() error {
	v, t := documentValidator()
	err := v.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Translate(t)))
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// Graph validates d and builds the corresponding core.Graph. Construction
// errors from core (unknown endpoint and so on) are wrapped in
// ErrInvalidDocument and still match their core sentinel with errors.Is.
func (d Document) Graph() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	vertices := make([]core.Vertex, len(d.Vertices))
	for i, v := range d.Vertices {
		vertices[i] = core.Vertex{Name: v.Name, Payload: v.Payload}
	}
	edges := make([]core.Edge, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = core.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	var opts []core.GraphOption
	if !d.IsDirected() {
		opts = append(opts, core.WithUndirected())
	}
	g, err := core.NewGraph(vertices, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDocument, d.Name, err)
	}

	return g, nil
}

// FromGraph serializes g under name. For an undirected graph only the
// edges as originally added are written; their mirrors are implied by
// directed: false. Graphs holding non-finite weights cannot be written.
func FromGraph(name string, g *core.Graph) (Document, error) {
	directed := g.Directed()
	doc := Document{Name: name, Directed: &directed}

	for _, v := range g.Vertices() {
		doc.Vertices = append(doc.Vertices, VertexSpec{Name: v.Name, Payload: v.Payload})
	}

	edges := g.Edges()
	for i := 0; i < len(edges); i++ {
		e := edges[i]
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return Document{}, fmt.Errorf("%w: edge %s→%s weight=%g is not finite", ErrInvalidDocument, e.From, e.To, e.Weight)
		}
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
		if !directed && e.From != e.To {
			i++ // skip the mirror stored right after it
		}
	}

	return doc, nil
}
