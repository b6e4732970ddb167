package importer

import (
	"io"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

type Format string

const (
	FormatCSV Format = "csv"
)

type Importer interface {
	Parse(r io.Reader) ([]lineitem.CreateParams, error)
}
