package shape

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when decoding a shape of a kind that this
// package doesn't know about.
var ErrUnknownKind = errors.New("unknown shape kind")

func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
	return []byte(name), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, text)
}

// envelope is the encoded form of a Shape whose concrete type isn't
// known statically.
type envelope struct {
	Kind  Kind            `json:"kind"`
	Shape json.RawMessage `json:"shape"`
}

// MarshalShape encodes s as JSON, tagged with its kind so that
// UnmarshalShape can recover the concrete type.
func MarshalShape(s Shape) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal %v: %w", s.Kind(), err)
	}
	return json.Marshal(envelope{Kind: s.Kind(), Shape: data})
}

// UnmarshalShape decodes a shape encoded by MarshalShape.
func UnmarshalShape(data []byte) (Shape, error) {
	var env envelope
	err := json.Unmarshal(data, &env)
	if err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	switch env.Kind {
	case KindRectangle:
		return unmarshalAs[Rectangle](env)
	case KindCircle:
		return unmarshalAs[Circle](env)
	case KindEllipse:
		return unmarshalAs[Ellipse](env)
	case KindTriangle:
		return unmarshalAs[Triangle](env)
	case KindCollection:
		return unmarshalAs[Collection](env)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, env.Kind)
	}
}

func unmarshalAs[S Shape](env envelope) (Shape, error) {
	var s S
	err := json.Unmarshal(env.Shape, &s)
	if err != nil {
		return nil, fmt.Errorf("unmarshal %v: %w", env.Kind, err)
	}
	return s, nil
}

type collectionJSON struct {
	Shapes []json.RawMessage `json:"shapes"`
}

func (c Collection) MarshalJSON() ([]byte, error) {
	shapes := make([]json.RawMessage, 0, len(c.Shapes))
	for _, s := range c.Shapes {
		data, err := MarshalShape(s)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, data)
	}
	return json.Marshal(collectionJSON{Shapes: shapes})
}

func (c *Collection) UnmarshalJSON(data []byte) error {
	var raw collectionJSON
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	shapes := make([]Shape, 0, len(raw.Shapes))
	for i, data := range raw.Shapes {
		s, err := UnmarshalShape(data)
		if err != nil {
			return fmt.Errorf("shape %v: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	c.Shapes = shapes
	return nil
}
