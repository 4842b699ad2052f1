package report

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"courierdesk/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var exportColumns = []string{
	"order_id",
	"customer_name",
	"address",
	"mobile_number",
	"total_order_fees",
	"delivery_fee",
	"payment_method",
	"payment_sub_type",
	"status",
	"partial_paid_amount",
	"internal_comment",
	"notes",
	"proof_count",
	"archived",
	"archived_at",
	"created_at",
	"updated_at",
}

type exportRow struct {
	OrderID           string           `json:"order_id"`
	CustomerName      string           `json:"customer_name"`
	Address           string           `json:"address"`
	MobileNumber      string           `json:"mobile_number"`
	TotalOrderFees    decimal.Decimal  `json:"total_order_fees"`
	DeliveryFee       *decimal.Decimal `json:"delivery_fee"`
	PaymentMethod     string           `json:"payment_method"`
	PaymentSubType    *string          `json:"payment_sub_type"`
	Status            string           `json:"status"`
	PartialPaidAmount *decimal.Decimal `json:"partial_paid_amount"`
	InternalComment   string           `json:"internal_comment"`
	Notes             string           `json:"notes"`
	ProofCount        int              `json:"proof_count"`
	Archived          bool             `json:"archived"`
	ArchivedAt        *string          `json:"archived_at"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         string           `json:"updated_at"`
}

func (r exportRow) record() []string {
	return []string{
		csvText(r.OrderID),
		csvText(r.CustomerName),
		csvText(r.Address),
		csvText(r.MobileNumber),
		r.TotalOrderFees.String(),
		decimalOrEmpty(r.DeliveryFee),
		csvText(r.PaymentMethod),
		stringOrEmpty(r.PaymentSubType),
		r.Status,
		decimalOrEmpty(r.PartialPaidAmount),
		csvText(r.InternalComment),
		csvText(r.Notes),
		strconv.Itoa(r.ProofCount),
		strconv.FormatBool(r.Archived),
		stringOrEmpty(r.ArchivedAt),
		r.CreatedAt,
		r.UpdatedAt,
	}
}

// Export выгружает отфильтрованные заказы в CSV или JSON с фиксированным набором колонок.
// Время выводится в поясе отчетов.
func (s *Service) Export(
	ctx context.Context,
	filter entities.OrderFilter,
	format entities.ExportFormat,
	w io.Writer,
) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
	if err := validateRange(filter); err != nil {
		return err
	}

	timer := prometheus.NewTimer(ReportBuildDuration.WithLabelValues("export"))
	defer timer.ObserveDuration()

	orders, err := s.loadOrders(ctx, reportFilter(filter))
	if err != nil {
		return err
	}

	rows := make([]exportRow, 0, len(orders))
	for i := range orders {
		rows = append(rows, toExportRow(&orders[i], s.periods.Location()))
	}

	switch format {
	case entities.ExportJSON:
		err = writeJSON(w, rows)
	default:
		err = writeCSV(w, rows)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExportWriteFailed, err)
	}
	return nil
}

func writeCSV(w io.Writer, rows []exportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, rows []exportRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func toExportRow(o *entities.Order, loc *time.Location) exportRow {
	row := exportRow{
		OrderID:           o.OrderNumber,
		CustomerName:      o.CustomerName,
		Address:           o.Address,
		MobileNumber:      o.MobileNumber,
		TotalOrderFees:    o.TotalOrderFees,
		DeliveryFee:       o.DeliveryFee,
		PaymentMethod:     o.PaymentMethod,
		Status:            o.Status.String(),
		PartialPaidAmount: o.PartialPaidAmount,
		InternalComment:   o.InternalComment,
		Notes:             o.Notes,
		ProofCount:        len(o.Proofs),
		Archived:          o.Archived,
		CreatedAt:         o.CreatedAt.In(loc).Format(time.RFC3339),
		UpdatedAt:         o.UpdatedAt.In(loc).Format(time.RFC3339),
	}
	if o.PaymentSubType != nil {
		subType := o.PaymentSubType.String()
		row.PaymentSubType = &subType
	}
	if o.ArchivedAt != nil {
		archivedAt := o.ArchivedAt.In(loc).Format(time.RFC3339)
		row.ArchivedAt = &archivedAt
	}
	return row
}

// csvText обезвреживает текст для табличных редакторов: ячейка, начинающаяся
// с =, +, -, @ или управляющего символа, исполняется как формула.
// Числовые колонки формирует сервис, их не трогаем.
func csvText(v string) string {
	if v == "" {
		return v
	}
	switch v[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + v
	}
	return v
}

func decimalOrEmpty(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
