package domain

import (
	"encoding/binary"

	"go.trai.ch/zerr"
)

const (
	// HashRecordVersion is the current sidecar format version.
	HashRecordVersion uint32 = 1

	// HashRecordSize is the exact on-disk size of a sidecar: u32 version, u64 mtime, u64 hash.
	HashRecordSize = 4 + 8 + 8
)

// HashRecord is the content of a <file>.hash sidecar.
type HashRecord struct {
	Version uint32
	// ModTime is the source file's last-modified time in unix seconds at the time of hashing.
	ModTime uint64
	Hash    uint64
}

// NewHashRecord builds a current-version record.
func NewHashRecord(modTime uint64, h Hash) HashRecord {
	return HashRecord{
		Version: HashRecordVersion,
		ModTime: modTime,
		Hash:    h.Uint64(),
	}
}

// MarshalBinary encodes the record as 20 little-endian bytes.
func (r HashRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HashRecordSize)
	binary.LittleEndian.PutUint32(buf[0:4], r.Version)
	binary.LittleEndian.PutUint64(buf[4:12], r.ModTime)
	binary.LittleEndian.PutUint64(buf[12:20], r.Hash)
	return buf, nil
}

// UnmarshalBinary decodes a sidecar. It rejects any size other than HashRecordSize
// and any version other than HashRecordVersion.
func (r *HashRecord) UnmarshalBinary(data []byte) error {
	if len(data) != HashRecordSize {
		return zerr.With(ErrHashRecordSize, "size", len(data))
	}
	version := binary.LittleEndian.Uint32(data[0:4])
	if version != HashRecordVersion {
		return zerr.With(ErrHashRecordVersion, "version", version)
	}
	r.Version = version
	r.ModTime = binary.LittleEndian.Uint64(data[4:12])
	r.Hash = binary.LittleEndian.Uint64(data[12:20])
	return nil
}

// Matches reports whether the record is valid for a source file with the given mtime.
// Only exact equality counts.
func (r HashRecord) Matches(modTime uint64) bool {
	return r.Version == HashRecordVersion && r.ModTime == modTime
}
