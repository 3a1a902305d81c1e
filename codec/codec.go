// Package codec reads and writes batch files.
//
// A batch file is a JSON document {"rows", "cols", "data"} holding either a
// model.Batch of triplets or a model.Scalars of distances. Files ending in
// .zst or .lz4 are compressed, so they stay readable with the standard zstd
// and lz4 tools.
package codec

// Codec turns batch documents into bytes and back.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is used whenever a nil Codec is passed.
var Default Codec = GoJSON{}

var builtin = []Codec{JSON{}, GoJSON{}}

// ByName looks up a built-in codec, as selected by the CLI -codec flag.
func ByName(name string) (Codec, bool) {
	for _, c := range builtin {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Names lists the built-in codec names.
func Names() []string {
	names := make([]string, len(builtin))
	for i, c := range builtin {
		names[i] = c.Name()
	}
	return names
}
