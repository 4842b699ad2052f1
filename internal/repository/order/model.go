package order

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                int64
	OrderNumber       string
	CustomerName      string
	Address           string
	BillingCity       string
	MobileNumber      string
	TotalOrderFees    decimal.Decimal
	DeliveryFee       decimal.NullDecimal
	PartialPaidAmount decimal.NullDecimal
	PaymentMethod     string
	PaymentSubType    *string
	CollectedBy       *string
	Status            string
	AssignedCourierID *int64
	OriginalCourierID *int64
	Archived          bool
	ArchivedAt        *time.Time
	Notes             string
	InternalComment   string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderModifyDB nil поле не попадает в SET, sql.Null с Valid=false пишет NULL.
type OrderModifyDB struct {
	ID                *int64
	CustomerName      *string
	Address           *string
	BillingCity       *string
	MobileNumber      *string
	TotalOrderFees    *decimal.Decimal
	DeliveryFee       *decimal.NullDecimal
	PartialPaidAmount *decimal.NullDecimal
	PaymentSubType    *sql.Null[string]
	CollectedBy       *sql.Null[string]
	Status            *string
	AssignedCourierID *sql.Null[int64]
	OriginalCourierID *sql.Null[int64]
	Archived          *bool
	ArchivedAt        *sql.Null[time.Time]
	Notes             *string
	InternalComment   *string
}

type OrderProofDB struct {
	ID        string
	OrderID   int64
	ObjectKey string
	URL       string
	CreatedAt time.Time
}
