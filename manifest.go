package posixshim

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxDocumentSize bounds a framed document; a manifest is a few hundred bytes.
const maxDocumentSize = 1 << 20

// Document is a serializable snapshot of the compiled interface, meant for a
// foreign runtime that needs to discover which entry points exist.
type Document struct {
	// Platform is the platform tag of the build (e.g., "darwin").
	Platform string `msgpack:"platform" json:"platform"`

	// Primitives lists every wrapped primitive, sorted by name.
	Primitives []Entry `msgpack:"primitives" json:"primitives"`
}

// Entry is the serializable form of a Primitive.
type Entry struct {
	Name      string   `msgpack:"name" json:"name"`
	Signature string   `msgpack:"signature" json:"signature"`
	Exposed   string   `msgpack:"exposed" json:"exposed"`
	Reason    string   `msgpack:"reason" json:"reason"`
	Platforms []string `msgpack:"platforms" json:"platforms"`

	// Value is the captured bit pattern of a sentinel or flag, nil for functions.
	Value *uint64 `msgpack:"value,omitempty" json:"value,omitempty"`
}

// Snapshot captures the manifest of this build, including the current value
// of every sentinel and flag.
func Snapshot() Document {
	prims := Manifest()
	doc := Document{
		Platform:   CurrentPlatform.String(),
		Primitives: make([]Entry, 0, len(prims)),
	}
	for _, p := range prims {
		e := Entry{
			Name:      p.Name,
			Signature: p.Signature,
			Exposed:   p.Exposed,
			Reason:    p.Reason.String(),
			Platforms: make([]string, len(p.Platforms)),
		}
		for i, pl := range p.Platforms {
			e.Platforms[i] = pl.String()
		}
		if v, ok := p.Value(); ok {
			u := uint64(v)
			e.Value = &u
		}
		doc.Primitives = append(doc.Primitives, e)
	}
	return doc
}

// Find returns the entry with the given C name.
func (d *Document) Find(name string) (Entry, bool) {
	for _, e := range d.Primitives {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// EncodeDocument serializes d with s.
func EncodeDocument(s Serializer, d Document) ([]byte, error) {
	data, err := s.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("error encoding manifest: %w", err)
	}
	return data, nil
}

// DecodeDocument parses a document produced by EncodeDocument with the same
// serializer.
func DecodeDocument(s Serializer, data []byte) (Document, error) {
	var d Document
	if err := s.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("error decoding manifest: %w", err)
	}
	return d, nil
}

// WriteDocument writes d to w as a 4-byte big-endian length followed by the
// serialized document, so a reader on a pipe knows where it ends.
func WriteDocument(w io.Writer, s Serializer, d Document) error {
	data, err := EncodeDocument(s, d)
	if err != nil {
		return err
	}

	var lengthBytes [4]byte
	binary.BigEndian.PutUint32(lengthBytes[:], uint32(len(data)))
	if _, err := w.Write(lengthBytes[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	if flusher, ok := w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// ReadDocument reads one document framed by WriteDocument.
func ReadDocument(r io.Reader, s Serializer) (Document, error) {
	var lengthBuf [4]byte
	if _, err := io.ReadFull(r, lengthBuf[:]); err != nil {
		return Document{}, err
	}

	length := binary.BigEndian.Uint32(lengthBuf[:])
	if length > maxDocumentSize {
		return Document{}, fmt.Errorf("manifest frame too large: %d bytes", length)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return Document{}, err
	}
	return DecodeDocument(s, data)
}
