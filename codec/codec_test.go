package codec

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/deltae/model"
	"github.com/hupe1980/deltae/testutil"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)

	assert.Equal(t, "go-json", Default.Name())
	assert.Equal(t, []string{"json", "go-json"}, Names())

	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}
}

func TestCodecsInterchangeable(t *testing.T) {
	b, err := model.BatchFromRows([][]model.Triplet{{{50, 2.6772, -79.7751}, {50, 0, -82.7485}}})
	require.NoError(t, err)

	data, err := JSON{}.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows":1,"cols":2,"data":[[50,2.6772,-79.7751],[50,0,-82.7485]]}`, string(data))

	var got model.Batch
	require.NoError(t, GoJSON{}.Unmarshal(data, &got))
	assert.Equal(t, b, got)
}

func TestCompressionForPath(t *testing.T) {
	tests := []struct {
		path string
		want Compression
	}{
		{"batch.json", CompressionNone},
		{"batch.json.zst", CompressionZSTD},
		{"batch.json.ZSTD", CompressionZSTD},
		{"dir/batch.lz4", CompressionLZ4},
		{"batch", CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, CompressionForPath(tt.path))
		})
	}
}

func TestCompression(t *testing.T) {
	data := []byte(`{"rows":2,"cols":2,"data":[[1,2,3],[1,2,3],[1,2,3],[1,2,3]]}`)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			compressed, err := Compress(data, c)
			require.NoError(t, err)

			got, err := Decompress(compressed, c)
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		_, err := Compress(data, Compression(9))
		assert.Error(t, err)
		_, err = Decompress(data, Compression(9))
		assert.Error(t, err)
		assert.Equal(t, "Unknown(9)", Compression(9).String())
	})

	t.Run("Limit", func(t *testing.T) {
		big := bytes.Repeat([]byte("0"), 4096)
		for _, c := range []Compression{CompressionLZ4, CompressionZSTD} {
			compressed, err := Compress(big, c)
			require.NoError(t, err)

			_, err = decompress(compressed, c, 1024)
			assert.ErrorIs(t, err, ErrTooLarge, c.String())

			got, err := decompress(compressed, c, int64(len(big)))
			require.NoError(t, err)
			assert.Equal(t, big, got)
		}
	})

	t.Run("Corrupt", func(t *testing.T) {
		_, err := Decompress([]byte("not compressed"), CompressionZSTD)
		assert.Error(t, err)
		_, err = Decompress([]byte("not compressed"), CompressionLZ4)
		assert.Error(t, err)
	})
}

func TestFiles(t *testing.T) {
	rng := testutil.NewRNG(4711)
	batch := rng.LabBatch(16, 9)
	dir := t.TempDir()

	for _, name := range []string{"batch.json", "batch.json.zst", "batch.json.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(path, batch, nil))

			var got model.Batch
			require.NoError(t, ReadFile(path, &got, JSON{}))
			assert.Equal(t, batch, got)
		})
	}

	t.Run("Scalars", func(t *testing.T) {
		path := filepath.Join(dir, "out.json.zst")
		s := model.Scalars{Rows: 1, Cols: 3, Data: []float64{0, 1.5, 2.0425}}
		require.NoError(t, WriteFile(path, s, GoJSON{}))

		var got model.Scalars
		require.NoError(t, ReadFile(path, &got, nil))
		assert.Equal(t, s, got)
	})

	t.Run("Missing", func(t *testing.T) {
		var got model.Batch
		err := ReadFile(filepath.Join(dir, "missing.json"), &got, nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("OverflowingShape", func(t *testing.T) {
		if strconv.IntSize < 64 {
			t.Skip("dimensions do not fit into int")
		}
		path := filepath.Join(dir, "wrapped.json.zst")
		doc := []byte(`{"rows":4294967296,"cols":4294967296,"data":[]}`)
		compressed, err := Compress(doc, CompressionZSTD)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, compressed, 0o644))

		var got model.Batch
		require.NoError(t, ReadFile(path, &got, nil))
		assert.Equal(t, 0, got.Shape().Len())
		assert.ErrorIs(t, got.Validate(), model.ErrInvalidShape)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

		var got model.Batch
		assert.Error(t, ReadFile(path, &got, nil))
	})
}
