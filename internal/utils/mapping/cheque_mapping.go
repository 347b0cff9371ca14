package mapping

import (
	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/SscSPs/shopbooks/internal/models"
)

// ToModelCheque converts a domain Cheque to a model Cheque
func ToModelCheque(d domain.Cheque) models.Cheque {
	return models.Cheque{
		ChequeID:     d.ChequeID,
		Date:         domain.BusinessDate(d.Date),
		ShopName:     d.ShopName,
		Amount:       d.Amount,
		Payee:        d.Payee,
		Status:       string(d.Status),
		ChequeNumber: d.ChequeNumber,
		Bank:         d.Bank,
	}
}

// ToDomainCheque converts a model Cheque to a domain Cheque
func ToDomainCheque(m models.Cheque) domain.Cheque {
	return domain.Cheque{
		ChequeID:     m.ChequeID,
		Date:         domain.BusinessDate(m.Date),
		ShopName:     m.ShopName,
		Amount:       m.Amount,
		Payee:        m.Payee,
		Status:       domain.ChequeStatus(m.Status),
		ChequeNumber: m.ChequeNumber,
		Bank:         m.Bank,
	}
}

// ToDomainChequeSlice converts a slice of model Cheques to a slice of domain Cheques
func ToDomainChequeSlice(ms []models.Cheque) []domain.Cheque {
	ds := make([]domain.Cheque, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCheque(m)
	}
	return ds
}
