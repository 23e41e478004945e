package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/arboretum/internal/importer/ledger"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type Service struct {
	ledgerImporter Importer
}

func NewService() *Service {
	return &Service{
		ledgerImporter: ledger.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]record.Transaction, error) {
	var importer Importer

	switch format {
	case FormatLedger:
		importer = s.ledgerImporter
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return importer.Parse(r)
}
