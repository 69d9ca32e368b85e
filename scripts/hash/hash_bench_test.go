package main

import (
	"encoding/binary"
	"hash/crc32"
	"hash/fnv"
	"hash/maphash"
	"math/rand"
	"testing"

	"github.com/cespare/xxhash"
)

// Candidate hash functions for shard selection over encoded flow keys.
// Keys are 16-byte IPv6-form addresses, the common flow key shape.

const numKeys = 1 << 12

func genKeys() [][]byte {
	rng := rand.New(rand.NewSource(42))
	keys := make([][]byte, numKeys)
	for i := range keys {
		k := make([]byte, 16)
		binary.LittleEndian.PutUint64(k, rng.Uint64())
		binary.LittleEndian.PutUint64(k[8:], rng.Uint64())
		keys[i] = k
	}
	return keys
}

func BenchmarkXXHash(b *testing.B) {
	keys := genKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = xxhash.Sum64(keys[i%numKeys])
	}
}

func BenchmarkCRC32(b *testing.B) {
	keys := genKeys()
	table := crc32.MakeTable(crc32.Castagnoli)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = crc32.Checksum(keys[i%numKeys], table)
	}
}

func BenchmarkFNV1a(b *testing.B) {
	keys := genKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := fnv.New64a()
		h.Write(keys[i%numKeys])
		_ = h.Sum64()
	}
}

func BenchmarkMaphash(b *testing.B) {
	keys := genKeys()
	seed := maphash.MakeSeed()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = maphash.Bytes(seed, keys[i%numKeys])
	}
}

// Shard skew check: xxhash across a power-of-two shard count should spread
// sequential flow keys close to uniformly.
func TestXXHashShardSpread(t *testing.T) {
	const shards = 16
	counts := make([]int, shards)
	key := make([]byte, 16)
	for i := 0; i < numKeys; i++ {
		binary.BigEndian.PutUint64(key[8:], uint64(i))
		counts[xxhash.Sum64(key)%shards]++
	}

	expected := numKeys / shards
	for s, c := range counts {
		if c < expected/2 || c > expected*2 {
			t.Errorf("Shard %d holds %d keys, expected around %d", s, c, expected)
		}
	}
}
