package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/DataDog/zstd"

	"github.com/katalvlaran/heapath/graphio"
)

func (s *Store) encode(doc graphio.Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("snapshot: marshal %q: %w", doc.Name, err)
	}
	compressed, err := zstd.CompressLevel(nil, raw, s.level)
	if err != nil {
		return nil, fmt.Errorf("snapshot: compress %q: %w", doc.Name, err)
	}

	return compressed, nil
}

func (s *Store) decode(val []byte) (graphio.Document, error) {
	raw, err := zstd.Decompress(nil, val)
	if err != nil {
		return graphio.Document{}, fmt.Errorf("snapshot: decompress: %w", err)
	}
	var doc graphio.Document
	if err = json.Unmarshal(raw, &doc); err != nil {
		return graphio.Document{}, fmt.Errorf("snapshot: unmarshal: %w", err)
	}

	return doc, nil
}
