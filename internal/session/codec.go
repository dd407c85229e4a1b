package session

import (
	"encoding/json"
	"time"
)

// JSONCodec serializes scs session payloads as JSON so rows in the session
// table stay inspectable. Session values must round-trip through JSON:
// handlers store only strings and bools.
type JSONCodec struct{}

type payload struct {
	Deadline time.Time      `json:"deadline"`
	Values   map[string]any `json:"values"`
}

func (JSONCodec) Encode(deadline time.Time, values map[string]any) ([]byte, error) {
	return json.Marshal(payload{Deadline: deadline, Values: values})
}

func (JSONCodec) Decode(b []byte) (time.Time, map[string]any, error) {
	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		return time.Time{}, nil, err
	}
	if p.Values == nil {
		p.Values = map[string]any{}
	}
	return p.Deadline, p.Values, nil
}
