// Package snapshot persists generated datasets to a blobstore.BlobStore.
//
// A snapshot is encoded with a codec, optionally compressed with LZ4 or
// ZSTD, and wrapped in a small binary envelope:
//
//	magic "PGSN" | version u8 | compression u8 | codec len u8 | codec name
//	| uncompressed len u32 | stored len u32 (0 = raw) | payload
//
// Store keeps every saved version under "<name>/<id>.snap" and a
// "<name>/CURRENT" pointer naming the latest one. IDs are UUIDv7, so
// lexical order is save order.
package snapshot
