package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"naum/internal/common"
)

// Format selects a snapshot encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatCBOR
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatCBOR:
		return "cbor"
	case FormatMsgpack:
		return "msgpack"
	default:
		return common.UnknownStr
	}
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(s string) (Format, error) {
	for f := FormatYAML; f <= FormatMsgpack; f++ {
		if f.String() == strings.ToLower(s) {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown snapshot format %q", s)
}

// FormatFromPath picks the format from the file extension:
// .yaml/.yml, .cbor or .msgpack/.mpk.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cbor":
		return FormatCBOR, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%s: unknown snapshot extension %q", path, ext)
	}
}

// canonical CBOR so equal snapshots encode to equal bytes
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Encode writes s to w.
func Encode(w io.Writer, format Format, s *Snapshot) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode yaml snapshot: %w", err)
		}
		return enc.Close()
	case FormatCBOR:
		if err := cborEncMode.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("encode cbor snapshot: %w", err)
		}
		return nil
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("encode msgpack snapshot: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown snapshot format %d", int(format))
	}
}

// Decode reads one snapshot from r. It does not verify digests; see
// Snapshot.Producer and Snapshot.ToModel.
func Decode(r io.Reader, format Format) (*Snapshot, error) {
	var s Snapshot
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decode yaml snapshot: %w", err)
		}
	case FormatCBOR:
		if err := cbor.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decode cbor snapshot: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decode msgpack snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown snapshot format %d", int(format))
	}

	return &s, nil
}

// Marshal encodes s to bytes.
func Marshal(format Format, s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, s); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a snapshot from bytes.
func Unmarshal(format Format, data []byte) (*Snapshot, error) {
	return Decode(bytes.NewReader(data), format)
}
