// File: internal/indexedfile/file.go
// Project: Neutron Router
// Description: Memory-mapped, O(1) random-access store over a binary-encoded,
//              variable-length record file
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package indexedfile implements a memory-mapped, O(1) random-access binary
// record store: an 8-byte little-endian offset-table length, the offset
// table itself (one (u64 offset, u32 size) pair per record), then the
// concatenated record payloads. Reads go through a read-only mmap so a
// catalog of hundreds of millions of systems never has to be loaded
// wholesale into RAM.
package indexedfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sys/unix"

	ierrors "github.com/JoshuaAFerguson/neutron-router/internal/errors"
	"github.com/JoshuaAFerguson/neutron-router/internal/logger"
)

var log = logger.WithComponent("IndexedFile")

const (
	headerSize      = 8  // u64 offset_table_size_in_bytes
	tableEntrySize  = 12 // u64 file_offset + u32 record_size
	checksumSize    = blake2b.Size256
)

// tableEntry is one (offset, size) pair from the offset table.
type tableEntry struct {
	offset uint64
	size   uint32
}

// Record is anything that can be appended to an indexed file. Matches
// codec.Record so callers never need a second interface.
type Record interface {
	Encode() []byte
}

// Write streams records to path: placeholder header and table first, then
// the payloads, then the header and table rewritten in place once their
// real values are known. A BLAKE2b-256 trailer over everything written
// precedes the file write being considered successful, giving Open a cheap
// corruption check before it ever trusts the offset table.
func Write[T Record](path string, records []T) error {
	f, err := os.Create(path)
	if err != nil {
		return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: create %s: %w", path, err))
	}
	defer f.Close()

	table := make([]tableEntry, len(records))
	placeholder := make([]byte, headerSize+len(table)*tableEntrySize)
	if _, err := f.Write(placeholder); err != nil {
		return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: write placeholder header: %w", err))
	}

	currentOffset := uint64(len(placeholder))
	for i, record := range records {
		payload := record.Encode()
		table[i] = tableEntry{offset: currentOffset, size: uint32(len(payload))}
		if _, err := f.Write(payload); err != nil {
			return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: write record %d: %w", i, err))
		}
		currentOffset += uint64(len(payload))
	}

	tableBytes := encodeTable(table)
	var headerBytes [headerSize]byte
	binary.LittleEndian.PutUint64(headerBytes[:], uint64(len(tableBytes)))

	if _, err := f.Seek(0, 0); err != nil {
		return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: seek to header: %w", err))
	}
	if _, err := f.Write(headerBytes[:]); err != nil {
		return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: rewrite header: %w", err))
	}
	if _, err := f.Write(tableBytes); err != nil {
		return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: rewrite table: %w", err))
	}

	// Hash the finished file in on-disk order (header, table, payloads),
	// the same bytes Open verifies against the trailer.
	if _, err := f.Seek(0, 0); err != nil {
		return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: seek to header: %w", err))
	}
	h, err := blake2b.New256(nil)
	if err != nil {
		return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: init checksum: %w", err))
	}
	if _, err := io.Copy(h, f); err != nil {
		return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: hash file: %w", err))
	}

	if _, err := f.Seek(0, 2); err != nil {
		return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: seek to end: %w", err))
	}
	if _, err := f.Write(h.Sum(nil)); err != nil {
		return ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: write checksum trailer: %w", err))
	}

	log.Info("wrote %d records to %s (%d bytes)", len(records), path, currentOffset+checksumSize)
	return nil
}

func encodeTable(table []tableEntry) []byte {
	buf := make([]byte, len(table)*tableEntrySize)
	for i, e := range table {
		off := i * tableEntrySize
		binary.LittleEndian.PutUint64(buf[off:off+8], e.offset)
		binary.LittleEndian.PutUint32(buf[off+8:off+12], e.size)
	}
	return buf
}

// decodeTable parses the offset table out of buf, which must be exactly
// n*tableEntrySize bytes.
func decodeTable(buf []byte, n int) []tableEntry {
	table := make([]tableEntry, n)
	for i := range table {
		off := i * tableEntrySize
		table[i] = tableEntry{
			offset: binary.LittleEndian.Uint64(buf[off : off+8]),
			size:   binary.LittleEndian.Uint32(buf[off+8 : off+12]),
		}
	}
	return table
}

// Map is a read-only, memory-mapped view over an indexed file, decoding
// records of type T on demand. It is safe for concurrent use by multiple
// goroutines: the mmap is read-only, the offset table is immutable after
// Open, and Get decodes into freshly allocated storage every call.
type Map[T any] struct {
	file   *os.File
	data   []byte
	table  []tableEntry
	decode func([]byte) (T, error)
}

// Open memory-maps path, advises the kernel of sequential access, verifies
// the trailing checksum, and decodes the offset table into owned memory.
// Any failure here — open, mmap, or a checksum mismatch — is fatal: an
// indexed file is write-once, and a corrupt one cannot be partially
// trusted.
func Open[T any](path string, decode func([]byte) (T, error)) (*Map[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: open %s: %w", path, err))
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: stat %s: %w", path, err))
	}
	size := info.Size()
	if size < headerSize+checksumSize {
		f.Close()
		return nil, ierrors.New(ierrors.Decode, fmt.Errorf("indexedfile: %s is too small (%d bytes) to be an indexed file", path, size))
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, ierrors.New(ierrors.Setup, fmt.Errorf("indexedfile: mmap %s: %w", path, err))
	}
	if err := unix.Madvise(data, unix.MADV_SEQUENTIAL); err != nil {
		log.Warn("madvise sequential failed for %s: %v (continuing without the hint)", path, err)
	}

	payloadEnd := len(data) - checksumSize
	gotSum := blake2b.Sum256(data[:payloadEnd])
	var wantSum [checksumSize]byte
	copy(wantSum[:], data[payloadEnd:])
	if gotSum != wantSum {
		unix.Munmap(data)
		f.Close()
		return nil, ierrors.New(ierrors.Decode, fmt.Errorf("indexedfile: %s fails checksum verification (corrupt file)", path))
	}

	tableSize := binary.LittleEndian.Uint64(data[:headerSize])
	if tableSize%tableEntrySize != 0 {
		unix.Munmap(data)
		f.Close()
		return nil, ierrors.New(ierrors.Decode, fmt.Errorf("indexedfile: %s has a malformed offset table length %d", path, tableSize))
	}
	n := int(tableSize / tableEntrySize)
	tableEnd := headerSize + int(tableSize)
	if tableEnd > payloadEnd {
		unix.Munmap(data)
		f.Close()
		return nil, ierrors.New(ierrors.Decode, fmt.Errorf("indexedfile: %s offset table overruns the file", path))
	}

	table := decodeTable(data[headerSize:tableEnd], n)

	return &Map[T]{file: f, data: data, table: table, decode: decode}, nil
}

// Len returns the number of records in the file.
func (m *Map[T]) Len() uint32 {
	return uint32(len(m.table))
}

// Get decodes and returns the record at index i. A decode failure here is
// fatal — it means the file is corrupt in a way the checksum trailer
// didn't already catch (e.g. a schema mismatch).
func (m *Map[T]) Get(i uint32) (T, error) {
	var zero T
	if i >= uint32(len(m.table)) {
		return zero, ierrors.Newf(ierrors.Decode, "indexedfile: index %d out of range (len %d)", i, len(m.table))
	}
	e := m.table[i]
	end := e.offset + uint64(e.size)
	if end > uint64(len(m.data)) {
		return zero, ierrors.Newf(ierrors.Decode, "indexedfile: record %d offset/size overruns the file", i)
	}
	record, err := m.decode(m.data[e.offset:end])
	if err != nil {
		return zero, ierrors.New(ierrors.Decode, fmt.Errorf("indexedfile: decode record %d: %w", i, err))
	}
	return record, nil
}

// Close unmaps the file and releases the underlying file handle.
func (m *Map[T]) Close() error {
	if err := unix.Munmap(m.data); err != nil {
		return err
	}
	return m.file.Close()
}
