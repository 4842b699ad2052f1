package order

import (
	"database/sql"

	"courierdesk/internal/entities"

	"github.com/shopspring/decimal"
)

func ToDomain(o *OrderDB, proofs []OrderProofDB) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		CustomerName:      o.CustomerName,
		Address:           o.Address,
		BillingCity:       o.BillingCity,
		MobileNumber:      o.MobileNumber,
		TotalOrderFees:    o.TotalOrderFees,
		DeliveryFee:       fromNullDecimal(o.DeliveryFee),
		PartialPaidAmount: fromNullDecimal(o.PartialPaidAmount),
		PaymentMethod:     o.PaymentMethod,
		Status:            entities.OrderStatusType(o.Status),
		AssignedCourierID: o.AssignedCourierID,
		OriginalCourierID: o.OriginalCourierID,
		Archived:          o.Archived,
		ArchivedAt:        o.ArchivedAt,
		Notes:             o.Notes,
		InternalComment:   o.InternalComment,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Proofs:            ToDomainProofs(proofs),
	}
	if o.PaymentSubType != nil {
		subType := entities.PaymentSubType(*o.PaymentSubType)
		order.PaymentSubType = &subType
	}
	if o.CollectedBy != nil {
		collectedBy := entities.CollectedByType(*o.CollectedBy)
		order.CollectedBy = &collectedBy
	}
	return order
}

func ToDomainProof(p *OrderProofDB) *entities.OrderProof {
	if p == nil {
		return nil
	}
	return &entities.OrderProof{
		ID:        p.ID,
		OrderID:   p.OrderID,
		ObjectKey: p.ObjectKey,
		URL:       p.URL,
		CreatedAt: p.CreatedAt,
	}
}

func ToDomainProofs(proofs []OrderProofDB) []entities.OrderProof {
	result := make([]entities.OrderProof, 0, len(proofs))
	for i := range proofs {
		result = append(result, *ToDomainProof(&proofs[i]))
	}
	return result
}

func FromDomainModify(m *entities.OrderModify) *OrderModifyDB {
	if m == nil {
		return nil
	}

	orderDB := &OrderModifyDB{
		ID:                m.ID,
		CustomerName:      m.CustomerName,
		Address:           m.Address,
		BillingCity:       m.BillingCity,
		MobileNumber:      m.MobileNumber,
		TotalOrderFees:    m.TotalOrderFees,
		DeliveryFee:       toNullDecimal(m.DeliveryFee),
		PartialPaidAmount: toNullDecimal(m.PartialPaidAmount),
		PaymentSubType:    toNullString(m.PaymentSubType),
		CollectedBy:       toNullString(m.CollectedBy),
		AssignedCourierID: m.AssignedCourierID,
		OriginalCourierID: m.OriginalCourierID,
		Archived:          m.Archived,
		ArchivedAt:        m.ArchivedAt,
		Notes:             m.Notes,
		InternalComment:   m.InternalComment,
	}
	if m.Status != nil {
		status := m.Status.String()
		orderDB.Status = &status
	}
	return orderDB
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// toNullDecimal sql.Null[decimal.Decimal] отдает в драйвер сам Decimal, а не строку,
// поэтому для записи используется decimal.NullDecimal.
func toNullDecimal(v *sql.Null[decimal.Decimal]) *decimal.NullDecimal {
	if v == nil {
		return nil
	}
	return &decimal.NullDecimal{Decimal: v.V, Valid: v.Valid}
}

func toNullString[T ~string](v *sql.Null[T]) *sql.Null[string] {
	if v == nil {
		return nil
	}
	return &sql.Null[string]{V: string(v.V), Valid: v.Valid}
}
