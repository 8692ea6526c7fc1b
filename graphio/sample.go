package graphio

import (
	"bytes"
	_ "embed"
)

//go:embed sample.yaml
var sampleYAML []byte

// Sample returns the built-in demo document: ten people "Persona 0" …
// "Persona 9" with an age payload, directed relationships including a
// zero-weight edge and a self-loop, and five people nobody is related to.
func Sample() Document {
	doc, err := Decode(bytes.NewReader(sampleYAML), YAML)
	if err != nil {
		panic(err)
	}

	return doc
}
