package importer

import (
	"errors"
	"io"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// Format identifies the layout family of an uploaded file.
type Format string

const (
	FormatLedger Format = "ledger"
)

var ErrUnknownFormat = errors.New("unknown import format")

type Importer interface {
	Parse(r io.Reader) ([]record.Transaction, error)
}
