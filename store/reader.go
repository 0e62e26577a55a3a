package store

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Reader reads single elements and spatial planes from a chunked array.
// A Reader is safe for concurrent use once opened.
type Reader struct {
	bucket       *blob.Bucket
	meta         *Metadata
	itemSize     int
	chunkStrides []int
	decoder      *zstd.Decoder
}

// NewReader opens the array at url, which may be any gocloud.dev blob scheme
// (file://, s3://, gs://, ...; the caller imports the driver).
func NewReader(ctx context.Context, url string) (*Reader, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket: %w", err)
	}

	mr, err := bucket.NewReader(ctx, MetadataKey, nil)
	if err != nil {
		bucket.Close()
		return nil, fmt.Errorf("failed to open %s: %w", MetadataKey, err)
	}
	meta, err := LoadMetadata(mr)
	mr.Close()
	if err != nil {
		bucket.Close()
		return nil, err
	}

	size, _ := itemSize(meta.DType)
	r := &Reader{
		bucket:       bucket,
		meta:         meta,
		itemSize:     size,
		chunkStrides: strides(meta.Chunks),
	}

	if meta.Compressor != nil {
		switch meta.Compressor.ID {
		case "zstd":
			r.decoder, err = zstd.NewReader(nil)
			if err != nil {
				bucket.Close()
				return nil, fmt.Errorf("failed to create zstd reader: %w", err)
			}
		default:
			bucket.Close()
			return nil, fmt.Errorf("unsupported compressor: %s", meta.Compressor.ID)
		}
	}
	return r, nil
}

// Dimensions returns the array shape, spatial axes last.
func (r *Reader) Dimensions() []int {
	dims := make([]int, len(r.meta.Shape))
	copy(dims, r.meta.Shape)
	return dims
}

func (r *Reader) Metadata() *Metadata { return r.meta }

// fill is the decoded value for elements of missing chunks.
func (r *Reader) fill() float32 {
	if r.meta.FillValue != nil {
		return float32(*r.meta.FillValue)
	}
	return float32(math.NaN())
}

// ValueAt reads the element at the given per-axis coordinates. Elements of
// chunks absent from the bucket decode to the fill value.
func (r *Reader) ValueAt(ctx context.Context, coords ...int) (float32, error) {
	if len(coords) != len(r.meta.Shape) {
		return 0, fmt.Errorf("expected %d coordinates, got %d", len(r.meta.Shape), len(coords))
	}
	chunkCoords := make([]int, len(coords))
	offset := 0
	for i, c := range coords {
		if c < 0 || c >= r.meta.Shape[i] {
			return 0, fmt.Errorf("coordinate %d out of range at dimension %d (shape %d)", c, i, r.meta.Shape[i])
		}
		chunkCoords[i] = c / r.meta.Chunks[i]
		offset += (c % r.meta.Chunks[i]) * r.chunkStrides[i]
	}

	data, found, err := r.readChunk(ctx, chunkCoords)
	if err != nil {
		return 0, err
	}
	if !found {
		return r.fill(), nil
	}
	return r.decode(data, offset)
}

// ReadPlane reads one full spatial plane (the trailing two axes) at the given
// leading-axis indices, row-major.
func (r *Reader) ReadPlane(ctx context.Context, leading ...int) ([]float32, error) {
	nd := len(r.meta.Shape)
	if nd < 2 {
		return nil, fmt.Errorf("array has %d dimensions, need at least 2", nd)
	}
	if len(leading) != nd-2 {
		return nil, fmt.Errorf("expected %d leading indices, got %d", nd-2, len(leading))
	}

	leadChunk := make([]int, nd-2)
	leadOff := 0
	for i, c := range leading {
		if c < 0 || c >= r.meta.Shape[i] {
			return nil, fmt.Errorf("leading index %d out of range at dimension %d (shape %d)", c, i, r.meta.Shape[i])
		}
		leadChunk[i] = c / r.meta.Chunks[i]
		leadOff += (c % r.meta.Chunks[i]) * r.chunkStrides[i]
	}

	ny, nx := r.meta.Shape[nd-2], r.meta.Shape[nd-1]
	cny, cnx := r.meta.Chunks[nd-2], r.meta.Chunks[nd-1]
	out := make([]float32, ny*nx)

	grid := gridShape(r.meta.Shape, r.meta.Chunks)
	for cy := 0; cy < grid[nd-2]; cy++ {
		for cx := 0; cx < grid[nd-1]; cx++ {
			chunkCoords := make([]int, 0, nd)
			chunkCoords = append(chunkCoords, leadChunk...)
			chunkCoords = append(chunkCoords, cy, cx)

			data, found, err := r.readChunk(ctx, chunkCoords)
			if err != nil {
				return nil, err
			}

			y0, y1 := cy*cny, min((cy+1)*cny, ny)
			x0, x1 := cx*cnx, min((cx+1)*cnx, nx)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					if !found {
						out[y*nx+x] = r.fill()
						continue
					}
					off := leadOff + (y-y0)*r.chunkStrides[nd-2] + (x-x0)*r.chunkStrides[nd-1]
					v, err := r.decode(data, off)
					if err != nil {
						return nil, fmt.Errorf("chunk %s: %w", ChunkKey(chunkCoords), err)
					}
					out[y*nx+x] = v
				}
			}
		}
	}
	return out, nil
}

// readChunk fetches and decompresses one chunk. found is false when the
// chunk object does not exist.
func (r *Reader) readChunk(ctx context.Context, coords []int) (data []byte, found bool, err error) {
	key := ChunkKey(coords)
	rd, err := r.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open chunk %s: %w", key, err)
	}
	defer rd.Close()

	data, err = io.ReadAll(rd)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read chunk %s: %w", key, err)
	}
	if r.decoder != nil {
		data, err = r.decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, false, fmt.Errorf("failed to decompress chunk %s: %w", key, err)
		}
	}
	return data, true, nil
}

// decode extracts the element at an element offset within a chunk.
func (r *Reader) decode(data []byte, offset int) (float32, error) {
	b := offset * r.itemSize
	if b+r.itemSize > len(data) {
		return 0, fmt.Errorf("chunk too short: need %d bytes, have %d", b+r.itemSize, len(data))
	}
	switch r.meta.DType {
	case "<f4":
		return math.Float32frombits(binary.LittleEndian.Uint32(data[b:])), nil
	case "<f8":
		return float32(math.Float64frombits(binary.LittleEndian.Uint64(data[b:]))), nil
	case "<i2":
		v := int16(binary.LittleEndian.Uint16(data[b:]))
		return float32(float64(v)*r.meta.ScaleFactor + r.meta.AddOffset), nil
	case "<i4":
		v := int32(binary.LittleEndian.Uint32(data[b:]))
		return float32(float64(v)*r.meta.ScaleFactor + r.meta.AddOffset), nil
	}
	return 0, fmt.Errorf("unsupported dtype: %s", r.meta.DType)
}

// Close closes the underlying bucket.
func (r *Reader) Close() error {
	if r.decoder != nil {
		r.decoder.Close()
	}
	return r.bucket.Close()
}
