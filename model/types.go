package model

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrInvalidArgument is the kind shared by all argument errors in deltae.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRaggedRows is returned when nested rows have differing lengths.
	ErrRaggedRows = fmt.Errorf("%w: rows have differing lengths", ErrInvalidArgument)

	// ErrInvalidShape is returned when a collection's data does not match its shape.
	ErrInvalidShape = fmt.Errorf("%w: invalid shape", ErrInvalidArgument)
)

// Triplet is a 3-component color sample.
//
// For Lab metrics the components are (L, a, b). The RGB and RGBL metric
// identifiers interpret them as (R, G, B). No range validation is performed.
type Triplet [3]float64

// L returns the lightness component.
func (t Triplet) L() float64 { return t[0] }

// A returns the green-red component.
func (t Triplet) A() float64 { return t[1] }

// B returns the blue-yellow component.
func (t Triplet) B() float64 { return t[2] }

// Shape holds the row and column dimensions of a 2D collection.
type Shape struct {
	Rows int
	Cols int
}

// Len returns the number of cells.
func (s Shape) Len() int { return s.Rows * s.Cols }

// String returns a string representation of the Shape.
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

func (s Shape) validate(n int) error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("%w: negative dimensions %s", ErrInvalidShape, s)
	}
	if s.Cols != 0 && s.Rows > math.MaxInt/s.Cols {
		return fmt.Errorf("%w: %s overflows the cell count", ErrInvalidShape, s)
	}
	if n != s.Len() {
		return fmt.Errorf("%w: %s needs %d cells, got %d", ErrInvalidShape, s, s.Len(), n)
	}
	return nil
}

// Batch is a row-major 2D collection of color triplets.
type Batch struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []Triplet `json:"data"`
}

// NewBatch allocates a zeroed batch with the given shape.
func NewBatch(rows, cols int) Batch {
	return Batch{Rows: rows, Cols: cols, Data: make([]Triplet, rows*cols)}
}

// BatchFromRows builds a batch from nested rows.
// All rows must have the same length.
func BatchFromRows(rows [][]Triplet) (Batch, error) {
	if len(rows) == 0 {
		return Batch{}, nil
	}
	cols := len(rows[0])
	b := NewBatch(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return Batch{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, i, len(row), cols)
		}
		copy(b.Data[i*cols:], row)
	}
	return b, nil
}

// Shape returns the batch dimensions.
func (b Batch) Shape() Shape { return Shape{Rows: b.Rows, Cols: b.Cols} }

// At returns the triplet at row i, column j.
func (b Batch) At(i, j int) Triplet { return b.Data[i*b.Cols+j] }

// Set stores v at row i, column j.
func (b Batch) Set(i, j int, v Triplet) { b.Data[i*b.Cols+j] = v }

// Row returns row i as a sub-slice of the underlying data.
func (b Batch) Row(i int) []Triplet { return b.Data[i*b.Cols : (i+1)*b.Cols] }

// Validate checks that Data holds exactly Rows*Cols triplets.
func (b Batch) Validate() error { return b.Shape().validate(len(b.Data)) }

// Clone returns a deep copy of the batch.
func (b Batch) Clone() Batch {
	return Batch{Rows: b.Rows, Cols: b.Cols, Data: slices.Clone(b.Data)}
}

// Scalars is a row-major 2D collection of distances.
type Scalars struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"`
}

// NewScalars allocates a zeroed scalar collection with the given shape.
func NewScalars(rows, cols int) Scalars {
	return Scalars{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// Shape returns the collection dimensions.
func (s Scalars) Shape() Shape { return Shape{Rows: s.Rows, Cols: s.Cols} }

// At returns the value at row i, column j.
func (s Scalars) At(i, j int) float64 { return s.Data[i*s.Cols+j] }

// Set stores v at row i, column j.
func (s Scalars) Set(i, j int, v float64) { s.Data[i*s.Cols+j] = v }

// Validate checks that Data holds exactly Rows*Cols values.
func (s Scalars) Validate() error { return s.Shape().validate(len(s.Data)) }

// ToRows copies the collection into nested rows.
func (s Scalars) ToRows() [][]float64 {
	rows := make([][]float64, s.Rows)
	for i := range rows {
		rows[i] = slices.Clone(s.Data[i*s.Cols : (i+1)*s.Cols])
	}
	return rows
}
