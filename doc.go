/*
Package memtab implements an embeddable, in-memory tabular data store with
hash-based secondary indexes.

We implement:

1. Values, a closed set of typed data: Null, four signed integer widths,
a double, a string and a byte buffer.

2. Tables, an ordered column schema plus records (one Value per column)
addressed by position.

3. Indexes, mapping the hash of a column value to the positions of the
records sharing that hash.

4. Databases, a named registry creating and owning tables.

Nothing is persisted. A Database is not safe for concurrent use.

# Technical Details

**Positions.**
A record's position is its ordinal in insertion order. Deleting a record
shifts every later position down by one. Indexes store positions and are
not updated on delete: they become stale (Index.Stale) and must be rebuilt
with Table.RebuildIndexes before their results can be trusted again.

**Hash buckets.**
Indexes group by hash only and never compare values. Null, every
zero-valued number, the empty string and the empty binary all hash to 0 and
share a bucket. Table.FindByIndex returns the whole bucket;
Table.FindEqual additionally compares values.

**Value hashing.**
Numbers and binaries hash their raw little-endian bytes with
h = (h + b) * 0x9e3779b1. Strings use h = h*65599 + c over their bytes
plus one terminating zero byte, each byte taken as a signed char.

## Binary encoding

Values and records have a msgpack form (EncodeRecord, DecodeRecord) for
shipping rows between processes:

1. Value: array of two, the kind ordinal (uint8) and the payload (nil,
fixed-width int, float64, str or bin).

2. Record: array of values.
*/
package memtab
