package importer

import (
	"fmt"
	"io"

	"github.com/jpcarvalho/lexledger/internal/importer/ledgercsv"
	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

type Service struct {
	csvImporter Importer
}

func NewService() *Service {
	return &Service{
		csvImporter: ledgercsv.New(),
	}
}

// Import parses an uploaded ledger file into line-item params. The result
// is the full new ledger; the caller decides whether to replace a case
// with it.
func (s *Service) Import(format Format, r io.Reader) ([]lineitem.CreateParams, error) {
	var imp Importer

	switch format {
	case FormatCSV:
		imp = s.csvImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return imp.Parse(r)
}
