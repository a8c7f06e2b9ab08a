package atlas

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4"
	"go.uber.org/zap"
)

// Cache file layout (little-endian, lz4-compressed as a whole):
// magic, version, sheet hash, allocator cursors, layout entries, pixels.
const (
	cacheMagic   = uint32(0x48464154) // "HFAT"
	cacheVersion = uint32(1)
)

// ErrCacheMismatch is returned when a cache file does not match the
// current sheet contents or format version.
var ErrCacheMismatch = fmt.Errorf("atlas cache mismatch")

type cacheHeader struct {
	Magic     uint32
	Version   uint32
	SheetHash uint64
	SmallX    int32
	SmallY    int32
	BigX      int32
	BigY      int32
	Entries   uint32
}

type cacheEntry struct {
	SrcKey uint64
	DestX  int32
	DestY  int32
}

// SaveCache writes the packed atlas and its layout to path, compressed
// with lz4 and keyed by the sheet content hash.
func SaveCache(path string, a *Atlas, sheetHash uint64) error {
	var raw bytes.Buffer

	hdr := cacheHeader{
		Magic:     cacheMagic,
		Version:   cacheVersion,
		SheetHash: sheetHash,
		SmallX:    int32(a.smallX),
		SmallY:    int32(a.smallY),
		BigX:      int32(a.bigX),
		BigY:      int32(a.bigY),
		Entries:   uint32(a.layout.Len()),
	}
	if err := binary.Write(&raw, binary.LittleEndian, hdr); err != nil {
		return err
	}

	var entryErr error
	a.layout.Each(func(srcX, srcY int, dest Point) {
		e := cacheEntry{
			SrcKey: srcKey(srcX, srcY),
			DestX:  int32(dest.X),
			DestY:  int32(dest.Y),
		}
		if err := binary.Write(&raw, binary.LittleEndian, e); err != nil && entryErr == nil {
			entryErr = err
		}
	})
	if entryErr != nil {
		return entryErr
	}

	raw.Write(a.pixels.Pix)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := lz4.NewWriter(f)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// LoadCache reads a cache file written by SaveCache. The layout is filled
// with the cached entries and a ready Atlas is returned. ErrCacheMismatch
// is returned when the sheet hash or format version differs.
func LoadCache(path string, sheetHash uint64, layout *Layout, log *zap.Logger) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw bytes.Buffer
	if _, err := io.Copy(&raw, lz4.NewReader(f)); err != nil {
		return nil, fmt.Errorf("decompressing atlas cache: %w", err)
	}
	r := bytes.NewReader(raw.Bytes())

	var hdr cacheHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("reading atlas cache header: %w", err)
	}
	if hdr.Magic != cacheMagic || hdr.Version != cacheVersion {
		return nil, ErrCacheMismatch
	}
	if hdr.SheetHash != sheetHash {
		return nil, ErrCacheMismatch
	}

	for i := uint32(0); i < hdr.Entries; i++ {
		var e cacheEntry
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			return nil, fmt.Errorf("reading atlas cache entry: %w", err)
		}
		layout.Set(int(uint32(e.SrcKey>>32)), int(uint32(e.SrcKey)), int(e.DestX), int(e.DestY))
	}

	a := New(layout, log)
	a.smallX, a.smallY = int(hdr.SmallX), int(hdr.SmallY)
	a.bigX, a.bigY = int(hdr.BigX), int(hdr.BigY)
	if _, err := io.ReadFull(r, a.pixels.Pix); err != nil {
		return nil, fmt.Errorf("reading atlas cache pixels: %w", err)
	}
	return a, nil
}
