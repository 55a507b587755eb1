// Copyright (c) 2026 Neomantra Corp

package xbf

import (
	"bytes"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// MetadataCache lets a receiver "transmit metadata once and then reuse
// it across many payload exchanges" (spec.md §1): a sender serializes
// metadata once, fingerprints the serialized bytes with xxhash, and on
// later exchanges sends only the fingerprint. A receiver that already
// holds that fingerprint can skip re-parsing metadata entirely and jump
// straight to DeserializeValue.
//
// The cache itself is orthogonal to the wire format — spec.md's grammar
// has no fingerprint field — this is a transport-level convenience.
// cmd/xbf-go-server uses Store once at startup to fingerprint and
// serialize its metadata; its request protocol sends no fingerprints,
// and cmd/xbf-go-client does not use the cache.
type MetadataCache struct {
	mu    sync.RWMutex
	byFP  map[uint64]Metadata
	bytes map[uint64][]byte
}

// NewMetadataCache returns an empty cache.
func NewMetadataCache() *MetadataCache {
	return &MetadataCache{
		byFP:  make(map[uint64]Metadata),
		bytes: make(map[uint64][]byte),
	}
}

// Fingerprint serializes m and returns the xxhash of the serialized
// bytes along with the bytes themselves, so a caller that needs to
// transmit metadata for the first time can send both without
// serializing twice.
func Fingerprint(m Metadata) (fingerprint uint64, serialized []byte, err error) {
	var buf bytes.Buffer
	if err := m.SerializeMetadata(&buf); err != nil {
		return 0, nil, err
	}
	serialized = buf.Bytes()
	return xxhash.Sum64(serialized), serialized, nil
}

// Store fingerprints and records m, returning the fingerprint and the
// serialized bytes (e.g. to send to a peer on first contact).
func (c *MetadataCache) Store(m Metadata) (fingerprint uint64, serialized []byte, err error) {
	fp, raw, err := Fingerprint(m)
	if err != nil {
		return 0, nil, err
	}
	c.mu.Lock()
	c.byFP[fp] = m
	c.bytes[fp] = raw
	c.mu.Unlock()
	return fp, raw, nil
}

// Lookup returns the metadata previously stored under fingerprint, if
// any.
func (c *MetadataCache) Lookup(fingerprint uint64) (Metadata, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.byFP[fingerprint]
	return m, ok
}

// SerializedBytes returns the serialized metadata bytes previously
// recorded under fingerprint, if any.
func (c *MetadataCache) SerializedBytes(fingerprint uint64) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.bytes[fingerprint]
	return b, ok
}
