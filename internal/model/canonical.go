package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Canonical content and digests.
//
// Content layout for every entity:
//   <tag>{D=<modifiers>[#A=[...]][#<key>=<value>]...}
//
// A block is written only when it is non-empty, so an entity without
// annotations or exceptions encodes exactly like one built without them.
// Ordered collections keep their order; exceptions are sorted at build time.
//
// The block letters and entity tags are FROZEN: changing any of them
// changes every digest ever stored.
// ---------------------------------------------------------------------------

// HashVersion prefixes the content before hashing.
// Bumping it invalidates all stored digests.
const HashVersion byte = 1

// Entity tags.
const (
	tagType        = "CL"
	tagField       = "FD"
	tagMethod      = "MT"
	tagConstructor = "CT"
	tagInnerClass  = "IC"
	tagAnnotation  = "AN"
)

// Digest is the SHA-256 of an entity's canonical content.
type Digest [32]byte

// String returns the lowercase hex form.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether d was never computed.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// ParseDigest decodes the hex form produced by String.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	raw, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("invalid digest %q: %w", s, err)
	}
	if len(raw) != len(d) {
		return d, fmt.Errorf("invalid digest %q: want %d bytes, got %d", s, len(d), len(raw))
	}
	copy(d[:], raw)

	return d, nil
}

// DigestOf hashes a canonical content string.
func DigestOf(content string) Digest {
	h := sha256.New()
	h.Write([]byte{HashVersion})
	h.Write([]byte(content))

	var d Digest
	copy(d[:], h.Sum(nil))

	return d
}

// Entity is implemented by everything that has canonical content.
type Entity interface {
	Content() (string, error)
}

// DigestEntity computes the digest of any entity.
// A TypeInfo must be sealed; use (*TypeInfo).Digest for the cached value.
func DigestEntity(e Entity) (Digest, error) {
	if t, ok := e.(*TypeInfo); ok {
		return t.Digest()
	}

	content, err := e.Content()
	if err != nil {
		return Digest{}, err
	}

	return DigestOf(content), nil
}

// contentWriter accumulates canonical content. The first error sticks and
// every later write is ignored.
type contentWriter struct {
	b   strings.Builder
	err error
}

func newContentWriter(tag string, mods uint32) *contentWriter {
	w := &contentWriter{}
	w.b.WriteString(tag)
	w.b.WriteString("{D=")
	w.b.WriteString(strconv.FormatUint(uint64(mods), 10))

	return w
}

// text writes #key=value when value is non-empty.
func (w *contentWriter) text(key, value string) {
	if value == "" {
		return
	}
	w.b.WriteByte('#')
	w.b.WriteString(key)
	w.b.WriteByte('=')
	w.b.WriteString(value)
}

// list writes #key=[a,b,...] when items is non-empty.
func (w *contentWriter) list(key string, items []string) {
	if len(items) == 0 {
		return
	}
	w.b.WriteByte('#')
	w.b.WriteString(key)
	w.b.WriteString("=[")
	w.b.WriteString(strings.Join(items, ","))
	w.b.WriteByte(']')
}

func (w *contentWriter) annotations(annotations []*AnnotationInfo) {
	if w.err != nil || len(annotations) == 0 {
		return
	}
	items := make([]string, len(annotations))
	for i, a := range annotations {
		c, err := a.Content()
		if err != nil {
			w.err = err
			return
		}
		items[i] = c
	}
	w.list("A", items)
}

// named writes #key=[name:content,...] for members whose name is identity.
func (w *contentWriter) named(key string, names []string, entities []Entity) {
	if w.err != nil || len(entities) == 0 {
		return
	}
	items := make([]string, len(entities))
	for i, e := range entities {
		c, err := e.Content()
		if err != nil {
			w.err = err
			return
		}
		if names != nil {
			c = names[i] + ":" + c
		}
		items[i] = c
	}
	w.list(key, items)
}

func (w *contentWriter) finish() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	w.b.WriteByte('}')

	return w.b.String(), nil
}
