package flattree

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// snapshotWriter accumulates a snapshot. It is an io.ByteWriter, so msgpack
// encodes records straight into it without an intermediate buffer.
type snapshotWriter struct {
	buf []byte
}

func newSnapshotWriter(count int) *snapshotWriter {
	w := &snapshotWriter{buf: []byte(snapshotMagic)}
	w.buf = binary.AppendUvarint(w.buf, snapshotVerLatest)
	w.buf = binary.AppendUvarint(w.buf, uint64(count))
	return w
}

func (w *snapshotWriter) Write(b []byte) (int, error) {
	w.buf = append(w.buf, b...)
	return len(b), nil
}

func (w *snapshotWriter) WriteByte(v byte) error {
	w.buf = append(w.buf, v)
	return nil
}

// seal appends the checksum trailer and returns the finished snapshot.
func (w *snapshotWriter) seal() []byte {
	return binary.BigEndian.AppendUint64(w.buf, xxhash.Sum64(w.buf))
}

type snapshotHeader struct {
	Version uint64
	Count   int
}

// readSnapshotHeader verifies the trailer and parses the header of data.
// Records occupy data[off:end].
func readSnapshotHeader(data []byte) (h snapshotHeader, off, end int, err error) {
	if len(data) < len(snapshotMagic)+snapshotTrailerSize {
		return h, 0, 0, dataErrf(data, 0, ErrCorruptedSnapshot, "snapshot too short")
	}
	end = len(data) - snapshotTrailerSize
	if xxhash.Sum64(data[:end]) != binary.BigEndian.Uint64(data[end:]) {
		return h, 0, 0, dataErrf(data, end, ErrCorruptedSnapshot, "checksum mismatch")
	}
	if magic := data[:len(snapshotMagic)]; string(magic) != snapshotMagic {
		return h, 0, 0, dataErrf(data, 0, ErrCorruptedSnapshot, "invalid magic %q", magic)
	}
	off = len(snapshotMagic)

	ver, n := binary.Uvarint(data[off:end])
	if n <= 0 {
		return h, 0, 0, dataErrf(data, off, ErrCorruptedSnapshot, "invalid version uvarint")
	}
	off += n
	if ver == 0 || ver > snapshotVerLatest {
		return h, 0, 0, dataErrf(data, off, ErrUnsupportedVersion, "version %d", ver)
	}

	count, n := binary.Uvarint(data[off:end])
	if n <= 0 {
		return h, 0, 0, dataErrf(data, off, ErrCorruptedSnapshot, "invalid count uvarint")
	}
	off += n
	if count > uint64((end-off)/minSnapshotRecordSize) {
		return h, 0, 0, dataErrf(data, off, ErrCorruptedSnapshot, "%d nodes cannot fit into %d bytes", count, end-off)
	}
	return snapshotHeader{ver, int(count)}, off, end, nil
}
