package codec

import (
	"fmt"
	"os"
)

// Encode marshals v with c and compresses the result.
// If c is nil, Default is used.
func Encode(v any, c Codec, comp Compression) ([]byte, error) {
	if c == nil {
		c = Default
	}
	data, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec %s marshal: %w", c.Name(), err)
	}
	return Compress(data, comp)
}

// Decode decompresses data and unmarshals it into v with c.
// If c is nil, Default is used.
func Decode(data []byte, v any, c Codec, comp Compression) error {
	if c == nil {
		c = Default
	}
	raw, err := Decompress(data, comp)
	if err != nil {
		return err
	}
	if err := c.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("codec %s unmarshal: %w", c.Name(), err)
	}
	return nil
}

// WriteFile encodes v into path. The compression follows the extension.
func WriteFile(path string, v any, c Codec) error {
	data, err := Encode(v, c, CompressionForPath(path))
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes path into v. The compression follows the extension.
func ReadFile(path string, v any, c Codec) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := Decode(data, v, c, CompressionForPath(path)); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
