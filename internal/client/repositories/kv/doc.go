// Package kv provides the string-keyed byte store every wellkeeper bucket
// lives in. All backends share one contract: Get returns (nil, nil) for an
// absent key, Set upserts, Delete is idempotent and Clear removes every key
// owned by the store.
package kv
