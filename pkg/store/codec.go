package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/movies"
)

// Codec translates between a collection and its on-disk bytes.
type Codec interface {
	// Name identifies the format in logs and errors.
	Name() string

	// Marshal encodes a collection.
	Marshal(c movies.Collection) ([]byte, error)

	// Decode parses data into untyped values so that record shape can be
	// checked before conversion.
	Decode(data []byte) (any, error)
}

var (
	// JSON stores the collection as an indented JSON array.
	JSON Codec = jsonCodec{}

	// YAML stores the collection as a YAML sequence.
	YAML Codec = yamlCodec{}
)

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(c movies.Collection) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", constants.JSONIndent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Marshal(c movies.Collection) ([]byte, error) {
	return yaml.MarshalWithOptions(c,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
}

func (yamlCodec) Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
