package codec

import (
	"encoding/json"
)

// JSON encodes batch documents with encoding/json.
// Its output is byte-compatible with GoJSON.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns "json".
func (JSON) Name() string { return "json" }
