// Package seed loads snapshots from a JSON document, optionally merged with a
// ledger CSV. Without a configured path the embedded demo dataset is used.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	enc "github.com/MrJamesThe3rd/arboretum/internal/encoding"
	"github.com/MrJamesThe3rd/arboretum/internal/importer"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

//go:embed default.json
var defaultSeed []byte

type Source struct {
	path       string
	ledgerPath string
	importer   *importer.Service
}

// New returns a seed source. An empty path selects the embedded dataset; an
// empty ledgerPath skips the ledger merge.
func New(path, ledgerPath string, imp *importer.Service) *Source {
	return &Source{path: path, ledgerPath: ledgerPath, importer: imp}
}

func (s *Source) Load(ctx context.Context) (*record.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, closeFn, err := s.open()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	snap, err := Decode(r)
	if err != nil {
		return nil, err
	}

	if s.ledgerPath == "" {
		return snap, nil
	}

	txs, err := s.readLedger()
	if err != nil {
		return nil, err
	}

	return snap.WithTransactions(txs, snap.LoadedAt), nil
}

func (s *Source) open() (io.Reader, func(), error) {
	if s.path == "" {
		return bytes.NewReader(defaultSeed), func() {}, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening seed: %w", err)
	}

	return f, func() { f.Close() }, nil
}

func (s *Source) readLedger() ([]record.Transaction, error) {
	f, err := os.Open(s.ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	txs, err := s.importer.Import(importer.FormatLedger, f)
	if err != nil {
		return nil, fmt.Errorf("parsing ledger %s: %w", s.ledgerPath, err)
	}

	// Ledger rows carry no id; derive one from the file and row position so
	// that reloading the same ledger yields the same ids.
	for i := range txs {
		if txs[i].ID == uuid.Nil {
			txs[i].ID = uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "ledger:%s#%d", s.ledgerPath, i))
		}
	}

	return txs, nil
}

// Decode parses a seed document. Unknown fields and malformed values are
// rejected; the first failing record is named in the error.
func Decode(r io.Reader) (*record.Snapshot, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	dec := json.NewDecoder(utf8r)
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	return doc.toSnapshot(time.Now())
}
