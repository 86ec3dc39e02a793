package flattree

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	snapshotMagic        = "FLTR"
	snapshotVer1         = 1
	snapshotVerLatest    = snapshotVer1
	snapshotTrailerSize  = 8
	snapshotRecordFields = 3

	// array header, level, flag and a nil payload
	minSnapshotRecordSize = 4
)

var (
	ErrCorruptedSnapshot  = errors.New("corrupted snapshot")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// MarshalSnapshot encodes the node sequence of t. Payloads are encoded with
// msgpack, so T must be msgpack-serializable. Subtree ranges are not stored;
// UnmarshalSnapshot recomputes them.
func MarshalSnapshot[T any](t *Tree[T]) ([]byte, error) {
	w := newSnapshotWriter(len(t.nodes))

	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)
	enc.ResetDict(w, nil)
	enc.SetSortMapKeys(true)

	for i, node := range t.nodes {
		err := encodeRecord(enc, node.RawNode)
		if err != nil {
			return nil, fmt.Errorf("flattree: failed to encode node %d (%T) using MsgPack: %w", i, node.Payload, err)
		}
	}
	return w.seal(), nil
}

func encodeRecord[T any](enc *msgpack.Encoder, raw RawNode[T]) error {
	if err := enc.EncodeArrayLen(snapshotRecordFields); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(raw.Level)); err != nil {
		return err
	}
	if err := enc.EncodeBool(raw.HasChildren); err != nil {
		return err
	}
	return enc.Encode(raw.Payload)
}

// UnmarshalSnapshot decodes data produced by MarshalSnapshot into a new tree.
// Malformed input fails with a *DataError.
func UnmarshalSnapshot[T any](data []byte, opt Options) (*Tree[T], error) {
	h, base, end, err := readSnapshotHeader(data)
	if err != nil {
		return nil, err
	}

	var r bytes.Reader
	r.Reset(data[base:end])
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)
	dec.ResetDict(&r, nil)

	raw := make([]RawNode[T], 0, h.Count)
	for i := 0; i < h.Count; i++ {
		off := end - r.Len()
		rec, err := decodeRecord[T](dec)
		if err != nil {
			return nil, dataErrf(data, off, err, "failed to decode node %d", i)
		}
		raw = append(raw, rec)
	}
	if r.Len() != 0 {
		return nil, dataErrf(data, end-r.Len(), ErrCorruptedSnapshot, "%d trailing bytes", r.Len())
	}

	t, err := FromRaw(raw, opt)
	if err != nil {
		return nil, dataErrf(data, base, err, "invalid snapshot")
	}
	return t, nil
}

func decodeRecord[T any](dec *msgpack.Decoder) (RawNode[T], error) {
	var raw RawNode[T]
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return raw, err
	}
	if n != snapshotRecordFields {
		return raw, fmt.Errorf("record has %d fields, wanted %d", n, snapshotRecordFields)
	}
	raw.Level, err = dec.DecodeInt()
	if err != nil {
		return raw, err
	}
	raw.HasChildren, err = dec.DecodeBool()
	if err != nil {
		return raw, err
	}
	err = dec.Decode(&raw.Payload)
	return raw, err
}
