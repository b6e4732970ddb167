package template

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

// Seed creates the three stock templates on first startup. It is a no-op
// when any template already exists, so repeated startups do not duplicate
// the catalog.
func (s *Service) Seed(ctx context.Context) error {
	count, err := s.repo.CountTemplates(ctx)
	if err != nil {
		return fmt.Errorf("counting templates: %w", err)
	}

	if count > 0 {
		return nil
	}

	for _, params := range seedTemplates() {
		if _, err := s.Create(ctx, params); err != nil {
			return fmt.Errorf("seeding template %q: %w", params.Name, err)
		}
	}

	return nil
}

func seedTemplates() []CreateParams {
	return []CreateParams{
		{
			Name:        "GDPR Standard",
			Kind:        KindGDPR,
			Description: "Standard claim for GDPR spam cases",
			IsDefault:   true,
			Items: []ItemParams{
				{
					Name:          "GDPR damages",
					Category:      lineitem.CategoryDamages,
					DefaultAmount: decimal.NewFromFloat(350.00),
					Description:   "Non-material damages under Art. 82 GDPR",
					DisplayOrder:  1,
				},
				{
					Name:          "Attorney fees",
					Category:      lineitem.CategoryLegalFees,
					DefaultAmount: decimal.NewFromFloat(96.90),
					Taxable:       true,
					Description:   "Pre-trial attorney fees",
					DisplayOrder:  2,
				},
				{
					Name:          "Dunning costs",
					Category:      lineitem.CategoryLegalFees,
					DefaultAmount: decimal.NewFromFloat(13.36),
					Taxable:       true,
					Description:   "Dunning and correspondence costs",
					DisplayOrder:  3,
				},
				{
					Name:          "Court filing fee",
					Category:      lineitem.CategoryCourtFees,
					DefaultAmount: decimal.NewFromFloat(32.00),
					Description:   "Court fee advance",
					DisplayOrder:  4,
				},
			},
		},
		{
			Name:        "Contract Dispute",
			Kind:        KindContract,
			Description: "Claim for contractual payment disputes",
			Items: []ItemParams{
				{
					Name:          "Principal claim",
					Category:      lineitem.CategoryDamages,
					DefaultAmount: decimal.NewFromFloat(1000.00),
					Description:   "Outstanding contractual payment",
					DisplayOrder:  1,
				},
				{
					Name:          "Attorney fees",
					Category:      lineitem.CategoryLegalFees,
					DefaultAmount: decimal.NewFromFloat(147.56),
					Taxable:       true,
					DisplayOrder:  2,
				},
				{
					Name:          "Court filing fee",
					Category:      lineitem.CategoryCourtFees,
					DefaultAmount: decimal.NewFromFloat(114.00),
					DisplayOrder:  3,
				},
			},
		},
		{
			Name:        "General Case",
			Kind:        KindGeneral,
			Description: "Blank structure for miscellaneous cases",
			Items: []ItemParams{
				{
					Name:          "Principal claim",
					Category:      lineitem.CategoryDamages,
					DefaultAmount: decimal.Zero,
					DisplayOrder:  1,
				},
				{
					Name:          "Legal fees",
					Category:      lineitem.CategoryLegalFees,
					DefaultAmount: decimal.Zero,
					Taxable:       true,
					DisplayOrder:  2,
				},
				{
					Name:          "Court fees",
					Category:      lineitem.CategoryCourtFees,
					DefaultAmount: decimal.Zero,
					DisplayOrder:  3,
				},
			},
		},
	}
}
