package dict

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"

	"github.com/az-ai-labs/jlexan/lexerrors"
)

// cacheMagic identifies a decomp_index cache file and guards against
// loading a file written by an incompatible version of this package.
const cacheMagic = "JLEXDEC1"

// cacheHeader is the fixed-size region at the start of a cache file. mtime
// is the source XML's modification time (unix seconds) at the point the
// cache was built; a cache older than its source is considered stale.
type cacheHeader struct {
	Magic    [8]byte
	SourceMT int64
	Checksum uint64
	BodyLen  uint64
}

const cacheHeaderSize = 8 + 8 + 8 + 8

// loadCache mmaps path and gob-decodes its decomp_index body directly out
// of the mapped bytes, skipping an extra read-into-memory copy. It returns
// an error if the file is missing, malformed, checksum-mismatched, or
// older than sourceMT.
func loadCache(path string, sourceMT time.Time) (map[DecompKey][]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, lexerrors.NewResourceLoadError("dictionary cache", path, err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, lexerrors.NewResourceLoadError("dictionary cache", path, err)
	}
	defer m.Unmap()

	if len(m) < cacheHeaderSize {
		return nil, lexerrors.NewResourceLoadError("dictionary cache", path, fmt.Errorf("file too short"))
	}

	var hdr cacheHeader
	copy(hdr.Magic[:], m[0:8])
	hdr.SourceMT = int64(binary.LittleEndian.Uint64(m[8:16]))
	hdr.Checksum = binary.LittleEndian.Uint64(m[16:24])
	hdr.BodyLen = binary.LittleEndian.Uint64(m[24:32])

	if string(hdr.Magic[:]) != cacheMagic {
		return nil, lexerrors.NewResourceLoadError("dictionary cache", path, fmt.Errorf("bad magic"))
	}
	if hdr.SourceMT < sourceMT.Unix() {
		return nil, lexerrors.NewResourceLoadError("dictionary cache", path, fmt.Errorf("cache older than source"))
	}

	body := m[cacheHeaderSize:]
	if uint64(len(body)) < hdr.BodyLen {
		return nil, lexerrors.NewResourceLoadError("dictionary cache", path, fmt.Errorf("truncated body"))
	}
	body = body[:hdr.BodyLen]

	if xxhash.Sum64(body) != hdr.Checksum {
		return nil, lexerrors.NewResourceLoadError("dictionary cache", path, fmt.Errorf("checksum mismatch"))
	}

	var decompIndex map[DecompKey][]Entry
	dec := gob.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&decompIndex); err != nil {
		return nil, lexerrors.NewResourceLoadError("dictionary cache", path, err)
	}

	return decompIndex, nil
}

// writeCache gob-encodes decompIndex and writes it to path with a header
// carrying sourceMT and an xxhash checksum of the body, via a temp-file
// rename so a reader never observes a partially written cache.
func writeCache(path string, sourceMT time.Time, decompIndex map[DecompKey][]Entry) error {
	var body bytes.Buffer
	if err := gob.NewEncoder(&body).Encode(decompIndex); err != nil {
		return lexerrors.NewResourceLoadError("dictionary cache", path, err)
	}

	checksum := xxhash.Sum64(body.Bytes())

	var out bytes.Buffer
	out.Write([]byte(cacheMagic))
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(sourceMT.Unix()))
	out.Write(scratch[:])
	binary.LittleEndian.PutUint64(scratch[:], checksum)
	out.Write(scratch[:])
	binary.LittleEndian.PutUint64(scratch[:], uint64(body.Len()))
	out.Write(scratch[:])
	out.Write(body.Bytes())

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out.Bytes(), 0o644); err != nil {
		return lexerrors.NewResourceLoadError("dictionary cache", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return lexerrors.NewResourceLoadError("dictionary cache", path, err)
	}
	return nil
}
