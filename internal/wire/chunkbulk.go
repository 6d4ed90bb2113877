package wire

import "math/bits"

// ChunkMeta is the per-chunk header carried in a MapChunkBulk packet
// (spec C2 "Map chunk bulk").
type ChunkMeta struct {
	X, Z          int32
	PrimaryBitmap uint16
	// AddBitmap is only populated by the legacy wire variant.
	AddBitmap uint16
}

// ChunkBulk is the decoded MapChunkBulk payload.
type ChunkBulk struct {
	SkyLight bool
	Data     []byte
	Chunks   []ChunkMeta
}

// ReadMapChunkBulkLegacy reads the legacy chunk-bulk format: short num,
// int data_size, bool sky_light, data_size opaque bytes, then num
// (int x, int z, ushort primary_bitmap, ushort add_bitmap) headers.
func ReadMapChunkBulkLegacy(b *ReadBuffer) (ChunkBulk, error) {
	num, err := ReadShort(b)
	if err != nil {
		return ChunkBulk{}, err
	}
	dataSize, err := ReadInt(b)
	if err != nil {
		return ChunkBulk{}, err
	}
	skyLight, err := ReadBool(b)
	if err != nil {
		return ChunkBulk{}, err
	}
	data, err := b.Read(int(dataSize))
	if err != nil {
		return ChunkBulk{}, err
	}
	chunks := make([]ChunkMeta, num)
	for i := range chunks {
		x, err := ReadInt(b)
		if err != nil {
			return ChunkBulk{}, err
		}
		z, err := ReadInt(b)
		if err != nil {
			return ChunkBulk{}, err
		}
		primary, err := ReadUShort(b)
		if err != nil {
			return ChunkBulk{}, err
		}
		add, err := ReadUShort(b)
		if err != nil {
			return ChunkBulk{}, err
		}
		chunks[i] = ChunkMeta{X: x, Z: z, PrimaryBitmap: primary, AddBitmap: add}
	}
	return ChunkBulk{SkyLight: skyLight, Data: append([]byte(nil), data...), Chunks: chunks}, nil
}

// WriteMapChunkBulkLegacy writes the legacy chunk-bulk format.
func WriteMapChunkBulkLegacy(w *WriteBuffer, bulk ChunkBulk) error {
	if err := WriteShort(w, int16(len(bulk.Chunks))); err != nil {
		return err
	}
	if err := WriteInt(w, int32(len(bulk.Data))); err != nil {
		return err
	}
	if err := WriteBool(w, bulk.SkyLight); err != nil {
		return err
	}
	if _, err := w.Write(bulk.Data); err != nil {
		return err
	}
	for _, c := range bulk.Chunks {
		if err := WriteInt(w, c.X); err != nil {
			return err
		}
		if err := WriteInt(w, c.Z); err != nil {
			return err
		}
		if err := WriteUShort(w, c.PrimaryBitmap); err != nil {
			return err
		}
		if err := WriteUShort(w, c.AddBitmap); err != nil {
			return err
		}
	}
	return nil
}

// chunkColumnBytes is the per-populated-subchunk byte cost: 16x16x16 block
// ids at 2 bytes each (spec §4.2 "14w28a+").
const chunkColumnBytes = 16 * 16 * 16 * 2

// chunkLightBytes is the per-populated-subchunk light-nibble cost: 16x16x16
// at half a byte each.
const chunkLightBytes = 16 * 16 * 16 / 2

// chunkBiomeBytes is the per-chunk biome-byte cost: one 16x16 column.
const chunkBiomeBytes = 16 * 16

// ReadMapChunkBulk reads the 14w28a+ chunk-bulk format: bool sky_light,
// varint num, num (int x, int z, ushort primary_bitmap) headers, then a
// data blob sized from each chunk's populated-subchunk count.
func ReadMapChunkBulk(b *ReadBuffer) (ChunkBulk, error) {
	skyLight, err := ReadBool(b)
	if err != nil {
		return ChunkBulk{}, err
	}
	num, err := ReadVarint(b)
	if err != nil {
		return ChunkBulk{}, err
	}
	chunks := make([]ChunkMeta, num)
	totalSize := 0
	for i := range chunks {
		x, err := ReadInt(b)
		if err != nil {
			return ChunkBulk{}, err
		}
		z, err := ReadInt(b)
		if err != nil {
			return ChunkBulk{}, err
		}
		primary, err := ReadUShort(b)
		if err != nil {
			return ChunkBulk{}, err
		}
		chunks[i] = ChunkMeta{X: x, Z: z, PrimaryBitmap: primary}
		k := bits.OnesCount16(primary)
		size := k*chunkColumnBytes + k*chunkLightBytes + chunkBiomeBytes
		if skyLight {
			size += k * chunkLightBytes
		}
		totalSize += size
	}
	data, err := b.Read(totalSize)
	if err != nil {
		return ChunkBulk{}, err
	}
	return ChunkBulk{SkyLight: skyLight, Data: append([]byte(nil), data...), Chunks: chunks}, nil
}

// WriteMapChunkBulk writes the 14w28a+ chunk-bulk format. bulk.Data must
// already be sized consistently with bulk.Chunks' primary bitmaps.
func WriteMapChunkBulk(w *WriteBuffer, bulk ChunkBulk) error {
	if err := WriteBool(w, bulk.SkyLight); err != nil {
		return err
	}
	if err := WriteVarint(w, uint32(len(bulk.Chunks))); err != nil {
		return err
	}
	for _, c := range bulk.Chunks {
		if err := WriteInt(w, c.X); err != nil {
			return err
		}
		if err := WriteInt(w, c.Z); err != nil {
			return err
		}
		if err := WriteUShort(w, c.PrimaryBitmap); err != nil {
			return err
		}
	}
	_, err := w.Write(bulk.Data)
	return err
}
