package entities

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                int64
	OrderNumber       string
	CustomerName      string
	Address           string
	BillingCity       string
	MobileNumber      string
	TotalOrderFees    decimal.Decimal
	DeliveryFee       *decimal.Decimal
	PartialPaidAmount *decimal.Decimal
	PaymentMethod     string
	PaymentSubType    *PaymentSubType
	CollectedBy       *CollectedByType
	Status            OrderStatusType
	AssignedCourierID *int64
	OriginalCourierID *int64
	Archived          bool
	ArchivedAt        *time.Time
	Notes             string
	InternalComment   string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Proofs            []OrderProof
}

// CourierIDs курьеры, которым заказ виден в ленте изменений: текущий и исходный.
func (o *Order) CourierIDs() []int64 {
	ids := make([]int64, 0, 2)
	if o.AssignedCourierID != nil {
		ids = append(ids, *o.AssignedCourierID)
	}
	if o.OriginalCourierID != nil && (o.AssignedCourierID == nil || *o.OriginalCourierID != *o.AssignedCourierID) {
		ids = append(ids, *o.OriginalCourierID)
	}
	return ids
}

type OrderProof struct {
	ID        string
	OrderID   int64
	ObjectKey string
	URL       string
	CreatedAt time.Time
}

type OrderStatusType string

const (
	OrderAssigned      OrderStatusType = "assigned"
	OrderDelivered     OrderStatusType = "delivered"
	OrderCanceled      OrderStatusType = "canceled"
	OrderPartial       OrderStatusType = "partial"
	OrderHandToHand    OrderStatusType = "hand_to_hand"
	OrderReturn        OrderStatusType = "return"
	OrderReceivingPart OrderStatusType = "receiving_part"
)

const DefaultOrderStatus = OrderAssigned

var OrderStatuses = []OrderStatusType{
	OrderAssigned,
	OrderDelivered,
	OrderCanceled,
	OrderPartial,
	OrderHandToHand,
	OrderReturn,
	OrderReceivingPart,
}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// AllowsCollection поля сбора денег имеют смысл для любого статуса, кроме assigned.
func (s OrderStatusType) AllowsCollection() bool {
	return s.IsValid() && s != OrderAssigned
}

// IsTerminal курьерский цикл закончен, админ по-прежнему может править заказ.
func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderDelivered, OrderCanceled, OrderReturn:
		return true
	default:
		return false
	}
}

type PaymentSubType string

const (
	PaymentOnHand      PaymentSubType = "on_hand"
	PaymentInstapay    PaymentSubType = "instapay"
	PaymentWallet      PaymentSubType = "wallet"
	PaymentVisaMachine PaymentSubType = "visa_machine"
)

var PaymentSubTypes = []PaymentSubType{
	PaymentOnHand,
	PaymentInstapay,
	PaymentWallet,
	PaymentVisaMachine,
}

func (t PaymentSubType) String() string {
	return string(t)
}

func (t PaymentSubType) IsValid() bool {
	for _, subType := range PaymentSubTypes {
		if t == subType {
			return true
		}
	}
	return false
}

type CollectedByType string

const (
	CollectedByPaymob  CollectedByType = "paymob"
	CollectedByValu    CollectedByType = "valu"
	CollectedByCourier CollectedByType = "courier"
)

func (t CollectedByType) String() string {
	return string(t)
}

func (t CollectedByType) IsValid() bool {
	switch t {
	case CollectedByPaymob, CollectedByValu, CollectedByCourier:
		return true
	default:
		return false
	}
}

// PaymentBucket нормализованный способ оплаты из импорта.
type PaymentBucket string

const (
	PaymentBucketCash   PaymentBucket = "cash"
	PaymentBucketPaymob PaymentBucket = "paymob"
	PaymentBucketValu   PaymentBucket = "valu"
	PaymentBucketOther  PaymentBucket = "other"
)

// PaymentAttribution кто в итоге считается получателем денег в отчетах:
// подтип оплаты, сборщик или нормализованный способ оплаты.
type PaymentAttribution string

func (a PaymentAttribution) String() string {
	return string(a)
}

// OrderModify частичное обновление заказа. nil - поле не трогаем,
// для nullable колонок sql.Null с Valid=false пишет NULL.
type OrderModify struct {
	ID                *int64
	CustomerName      *string
	Address           *string
	BillingCity       *string
	MobileNumber      *string
	TotalOrderFees    *decimal.Decimal
	DeliveryFee       *sql.Null[decimal.Decimal]
	PartialPaidAmount *sql.Null[decimal.Decimal]
	PaymentSubType    *sql.Null[PaymentSubType]
	CollectedBy       *sql.Null[CollectedByType]
	Status            *OrderStatusType
	AssignedCourierID *sql.Null[int64]
	OriginalCourierID *sql.Null[int64]
	Archived          *bool
	ArchivedAt        *sql.Null[time.Time]
	Notes             *string
	InternalComment   *string
}

// IsEmpty кроме идентификатора ничего не меняется.
func (m *OrderModify) IsEmpty() bool {
	return m.CustomerName == nil && m.Address == nil && m.BillingCity == nil && m.MobileNumber == nil &&
		m.TotalOrderFees == nil && m.DeliveryFee == nil && m.PartialPaidAmount == nil &&
		m.PaymentSubType == nil && m.CollectedBy == nil && m.Status == nil &&
		m.AssignedCourierID == nil && m.OriginalCourierID == nil && m.Archived == nil &&
		m.ArchivedAt == nil && m.Notes == nil && m.InternalComment == nil
}

// StatusUpdate то, что курьер отправляет при смене статуса.
type StatusUpdate struct {
	OrderID           int64
	Status            OrderStatusType
	DeliveryFee       *decimal.Decimal
	PartialPaidAmount *decimal.Decimal
	CollectedBy       *CollectedByType
	PaymentSubType    *PaymentSubType
	Notes             *string
	InternalComment   *string
}

// PreviewInput значения из формы до сохранения.
type PreviewInput struct {
	Status            OrderStatusType
	DeliveryFee       decimal.Decimal
	PartialPaidAmount decimal.Decimal
}

type PreviewResult struct {
	OrderID        int64
	PreviewTotal   decimal.Decimal
	PersistedTotal decimal.Decimal
	// Diverges формулы предпросмотра и сохраненного значения расходятся на этом вводе.
	Diverges bool
}

// ProofUpload файл подтверждения доставки, полученный от курьера.
type ProofUpload struct {
	OrderID  int64
	Filename string
	Data     []byte
}
