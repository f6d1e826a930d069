// File: internal/codec/records.go
// Project: Neutron Router
// Description: Fixed-int binary encoding for the on-disk record schemas
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

// Package codec implements the little-endian, fixed-int record encodings
// for the two on-disk record schemas: StarSystemRecord and NeutronEntry.
// Every record type that IndexedFileMap stores implements Record so the
// writer and reader can stay generic over the payload.
package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/JoshuaAFerguson/neutron-router/internal/models"
)

// Record is anything IndexedFileMap can write: a self contained binary
// encoder. Encode must be deterministic. Reading back goes through the
// matching Decode* function below, which must fully reconstruct the value
// Encode was called on.
type Record interface {
	Encode() []byte
}

// StarSystemRecord is the on-disk encoding of models.StarSystem: a
// length-prefixed name, three f32 coordinates, a length-prefixed star-type
// label, and the precomputed distance from Sol.
type StarSystemRecord struct {
	System models.StarSystem
}

// Encode writes name, X, Y, Z, main-star-type, dist-from-sol in that order.
func (r StarSystemRecord) Encode() []byte {
	buf := make([]byte, 0, 4+len(r.System.Name)+4+4+4+4+len(r.System.MainStarType)+4)
	buf = appendString(buf, r.System.Name)
	buf = appendFloat32(buf, r.System.X)
	buf = appendFloat32(buf, r.System.Y)
	buf = appendFloat32(buf, r.System.Z)
	buf = appendString(buf, r.System.MainStarType)
	buf = appendFloat32(buf, r.System.DistFromSol)
	return buf
}

// DecodeStarSystemRecord reconstructs a models.StarSystem from its encoded
// bytes. A short or malformed buf is a fatal, unrecoverable error, never a
// transient one.
func DecodeStarSystemRecord(buf []byte) (models.StarSystem, error) {
	r := byteReader{buf: buf}
	name, err := r.string()
	if err != nil {
		return models.StarSystem{}, fmt.Errorf("codec: star system name: %w", err)
	}
	x, err := r.float32()
	if err != nil {
		return models.StarSystem{}, fmt.Errorf("codec: star system x: %w", err)
	}
	y, err := r.float32()
	if err != nil {
		return models.StarSystem{}, fmt.Errorf("codec: star system y: %w", err)
	}
	z, err := r.float32()
	if err != nil {
		return models.StarSystem{}, fmt.Errorf("codec: star system z: %w", err)
	}
	mainStarType, err := r.string()
	if err != nil {
		return models.StarSystem{}, fmt.Errorf("codec: star system main_star_type: %w", err)
	}
	dFromSol, err := r.float32()
	if err != nil {
		return models.StarSystem{}, fmt.Errorf("codec: star system d_from_sol: %w", err)
	}
	return models.NewStarSystem(name, x, y, z, dFromSol, mainStarType), nil
}

// NeutronEntryRecord is the on-disk encoding of a neutron's adjacency list:
// the global system index and a length-prefixed sequence of neighbor
// indices, each a *neutron-sequence* index, never a global one.
type NeutronEntryRecord struct {
	Idx       uint32
	Neighbors []uint32
}

// Encode writes idx followed by the length-prefixed neighbor list.
func (r NeutronEntryRecord) Encode() []byte {
	buf := make([]byte, 0, 4+4+4*len(r.Neighbors))
	buf = appendUint32(buf, r.Idx)
	buf = appendUint32(buf, uint32(len(r.Neighbors)))
	for _, n := range r.Neighbors {
		buf = appendUint32(buf, n)
	}
	return buf
}

// DecodeNeutronEntryRecord reconstructs a NeutronEntryRecord from its
// encoded bytes.
func DecodeNeutronEntryRecord(buf []byte) (NeutronEntryRecord, error) {
	r := byteReader{buf: buf}
	idx, err := r.uint32()
	if err != nil {
		return NeutronEntryRecord{}, fmt.Errorf("codec: neutron entry idx: %w", err)
	}
	count, err := r.uint32()
	if err != nil {
		return NeutronEntryRecord{}, fmt.Errorf("codec: neutron entry neighbor count: %w", err)
	}
	neighbors := make([]uint32, count)
	for i := range neighbors {
		n, err := r.uint32()
		if err != nil {
			return NeutronEntryRecord{}, fmt.Errorf("codec: neutron entry neighbor %d: %w", i, err)
		}
		neighbors[i] = n
	}
	return NeutronEntryRecord{Idx: idx, Neighbors: neighbors}, nil
}

func appendUint32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

func appendFloat32(buf []byte, v float32) []byte {
	return appendUint32(buf, math.Float32bits(v))
}

func appendString(buf []byte, s string) []byte {
	buf = appendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

// byteReader is a tiny cursor over an encoded record, used by the Decode*
// functions above. It never panics: short reads return an error so callers
// can treat decode failures as a fatal-but-reported condition rather than
// crashing the process with an index-out-of-range.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) uint32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, fmt.Errorf("codec: truncated record at offset %d", r.pos)
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *byteReader) float32() (float32, error) {
	bits, err := r.uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (r *byteReader) string() (string, error) {
	n, err := r.uint32()
	if err != nil {
		return "", err
	}
	if r.pos+int(n) > len(r.buf) {
		return "", fmt.Errorf("codec: truncated string at offset %d", r.pos)
	}
	s := string(r.buf[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}
