package snapshot

import (
	"context"
	"fmt"
	"os"

	"naum/internal/extract"
	"naum/internal/model"
)

// ReadFile decodes the snapshot at path; the format comes from the extension.
func ReadFile(path string) (*Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// WriteFile encodes set to path; the format comes from the extension.
func WriteFile(path string, set model.ModelSet) error {
	s, err := FromModel(set)
	if err != nil {
		return err
	}

	return WriteSnapshot(path, s)
}

// WriteSnapshot encodes s to path; the format comes from the extension.
func WriteSnapshot(path string, s *Snapshot) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(format, s)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Load reads every path and collects the verified union of their types.
// A type present in two snapshots is a *model.ModelIntegrityError.
func Load(ctx context.Context, collector *extract.Collector, paths ...string) (model.ModelSet, error) {
	producers := make([]extract.Producer, len(paths))
	for i, path := range paths {
		s, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		producers[i] = s.Producer(path)
	}

	return collector.Collect(ctx, producers...)
}
