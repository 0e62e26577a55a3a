// Package store reads chunked, compressed flat arrays from a blob bucket.
//
// An array is a directory (or object prefix) holding a JSON metadata document
// named ".omarray" plus one object per chunk, keyed by the chunk's "."-joined
// coordinates. Chunks are always full-size; edge chunks are padded. The layout
// deliberately carries no grid geometry — callers validate geometry against
// the declared dimensions.
package store

import (
	"encoding/json"
	"fmt"
	"io"
)

// MetadataKey is the bucket key of the array metadata document.
const MetadataKey = ".omarray"

// CompressorConfig identifies the per-chunk codec.
type CompressorConfig struct {
	ID string `json:"id"`
}

// Metadata describes one stored array. Shape lists dimensions with the two
// spatial axes last. Integer dtypes decode through value*ScaleFactor+AddOffset.
type Metadata struct {
	Version     int               `json:"version"`
	Shape       []int             `json:"shape"`
	Chunks      []int             `json:"chunks"`
	DType       string            `json:"dtype"`
	Compressor  *CompressorConfig `json:"compressor"`
	ScaleFactor float64           `json:"scale_factor,omitempty"`
	AddOffset   float64           `json:"add_offset,omitempty"`
	FillValue   *float64          `json:"fill_value"`
}

// LoadMetadata reads and validates an .omarray document.
func LoadMetadata(r io.Reader) (*Metadata, error) {
	var meta Metadata
	if err := json.NewDecoder(r).Decode(&meta); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	if meta.Version != 1 {
		return nil, fmt.Errorf("unsupported array version: %d, expected 1", meta.Version)
	}
	if len(meta.Shape) == 0 || len(meta.Shape) != len(meta.Chunks) {
		return nil, fmt.Errorf("shape %v and chunks %v must be non-empty and equal length", meta.Shape, meta.Chunks)
	}
	for i := range meta.Shape {
		if meta.Shape[i] <= 0 || meta.Chunks[i] <= 0 {
			return nil, fmt.Errorf("non-positive extent at dimension %d: shape=%d chunks=%d", i, meta.Shape[i], meta.Chunks[i])
		}
	}
	if _, err := itemSize(meta.DType); err != nil {
		return nil, err
	}
	if meta.ScaleFactor == 0 {
		meta.ScaleFactor = 1
	}
	return &meta, nil
}

// itemSize returns the byte width of a supported little-endian dtype.
func itemSize(dtype string) (int, error) {
	switch dtype {
	case "<i2":
		return 2, nil
	case "<f4", "<i4":
		return 4, nil
	case "<f8":
		return 8, nil
	}
	return 0, fmt.Errorf("unsupported dtype: %s", dtype)
}
