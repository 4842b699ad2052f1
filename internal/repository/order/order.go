package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"courierdesk/internal/entities"
	"courierdesk/internal/repository"
	courierservice "courierdesk/internal/service/courier"
	orderservice "courierdesk/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id",
	"order_number",
	"customer_name",
	"address",
	"billing_city",
	"mobile_number",
	"total_order_fees",
	"delivery_fee",
	"partial_paid_amount",
	"payment_method",
	"payment_sub_type",
	"collected_by",
	"status",
	"assigned_courier_id",
	"original_courier_id",
	"archived",
	"archived_at",
	"notes",
	"internal_comment",
	"created_at",
	"updated_at",
}

var returningOrder = "RETURNING " + strings.Join(orderColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerName,
		&o.Address,
		&o.BillingCity,
		&o.MobileNumber,
		&o.TotalOrderFees,
		&o.DeliveryFee,
		&o.PartialPaidAmount,
		&o.PaymentMethod,
		&o.PaymentSubType,
		&o.CollectedBy,
		&o.Status,
		&o.AssignedCourierID,
		&o.OriginalCourierID,
		&o.Archived,
		&o.ArchivedAt,
		&o.Notes,
		&o.InternalComment,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// CreateBatch вставляет заказы импорта одним round-trip. Уже известные номера
// заказов пропускаются, возвращаются только реально созданные.
func (r *Repository) CreateBatch(ctx context.Context, orders []entities.Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	query := `
		INSERT INTO orders (
			order_number, customer_name, address, billing_city, mobile_number,
			total_order_fees, payment_method, status, archived, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9, NOW())
		ON CONFLICT (order_number) DO NOTHING
		` + returningOrder

	batch := &pgx.Batch{}
	for _, o := range orders {
		batch.Queue(query,
			o.OrderNumber,
			o.CustomerName,
			o.Address,
			o.BillingCity,
			o.MobileNumber,
			o.TotalOrderFees,
			o.PaymentMethod,
			entities.DefaultOrderStatus.String(),
			o.CreatedAt,
		)
	}

	results := r.querier.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]entities.Order, 0, len(orders))
	for range orders {
		orderDB, err := scanOrder(results.QueryRow())
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, fmt.Errorf("unexpected order repository create batch error: %w", err)
		}
		created = append(created, *ToDomain(&orderDB, nil))
	}

	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("unexpected order repository create batch error: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getOne(ctx, id, "")
}

// GetForUpdate блокирует строку заказа до конца транзакции из контекста.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getOne(ctx, id, "FOR UPDATE")
}

func (r *Repository) getOne(ctx context.Context, id int64, lock string) (*entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})
	if lock != "" {
		builder = builder.Suffix(lock)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	proofs, err := r.loadProofs(ctx, []int64{orderDB.ID})
	if err != nil {
		return nil, err
	}
	return ToDomain(&orderDB, proofs[orderDB.ID]), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := applyFilter(qb.Select(orderColumns...).From("orders"), filter).
		OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 32)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	rows.Close()

	ids := make([]int64, 0, len(orderModels))
	for _, o := range orderModels {
		ids = append(ids, o.ID)
	}
	proofs, err := r.loadProofs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orderModels))
	for i := range orderModels {
		result = append(result, *ToDomain(&orderModels[i], proofs[orderModels[i].ID]))
	}
	return result, nil
}

func applyFilter(builder sq.SelectBuilder, filter entities.OrderFilter) sq.SelectBuilder {
	if len(filter.IDs) > 0 {
		builder = builder.Where(sq.Eq{"id": filter.IDs})
	}
	if len(filter.CourierIDs) > 0 {
		builder = builder.Where(sq.Eq{"COALESCE(assigned_courier_id, original_courier_id)": filter.CourierIDs})
	}
	if filter.AssignedTo != nil {
		builder = builder.Where(sq.Eq{"assigned_courier_id": *filter.AssignedTo})
	}
	if filter.Archived != nil {
		builder = builder.Where(sq.Eq{"archived": *filter.Archived})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		builder = builder.Where(sq.Eq{"status": statuses})
	}
	if filter.CreatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *filter.CreatedTo})
	}
	if filter.UpdatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"updated_at": *filter.UpdatedFrom})
	}
	if filter.UpdatedTo != nil {
		builder = builder.Where(sq.LtOrEq{"updated_at": *filter.UpdatedTo})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"order_number": pattern},
			sq.ILike{"customer_name": pattern},
			sq.ILike{"address": pattern},
			sq.ILike{"billing_city": pattern},
			sq.ILike{"mobile_number": pattern},
		})
	}
	return builder
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *Repository) loadProofs(ctx context.Context, orderIDs []int64) (map[int64][]OrderProofDB, error) {
	result := make(map[int64][]OrderProofDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, order_id, object_key, url, created_at
		FROM order_proofs
		WHERE order_id = ANY($1)
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository proofs error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p OrderProofDB
		if err := rows.Scan(&p.ID, &p.OrderID, &p.ObjectKey, &p.URL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected order repository proofs error: %w", err)
		}
		result[p.OrderID] = append(result[p.OrderID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository proofs error: %w", err)
	}
	return result, nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	m := FromDomainModify(&orderModify)
	if m.ID == nil {
		return nil, orderservice.ErrMissingRequiredFields
	}

	builder := qb.Update("orders")

	if m.CustomerName != nil {
		builder = builder.Set("customer_name", *m.CustomerName)
	}
	if m.Address != nil {
		builder = builder.Set("address", *m.Address)
	}
	if m.BillingCity != nil {
		builder = builder.Set("billing_city", *m.BillingCity)
	}
	if m.MobileNumber != nil {
		builder = builder.Set("mobile_number", *m.MobileNumber)
	}
	if m.TotalOrderFees != nil {
		builder = builder.Set("total_order_fees", *m.TotalOrderFees)
	}
	if m.DeliveryFee != nil {
		builder = builder.Set("delivery_fee", *m.DeliveryFee)
	}
	if m.PartialPaidAmount != nil {
		builder = builder.Set("partial_paid_amount", *m.PartialPaidAmount)
	}
	if m.PaymentSubType != nil {
		builder = builder.Set("payment_sub_type", *m.PaymentSubType)
	}
	if m.CollectedBy != nil {
		builder = builder.Set("collected_by", *m.CollectedBy)
	}
	if m.Status != nil {
		builder = builder.Set("status", *m.Status)
	}
	if m.AssignedCourierID != nil {
		builder = builder.Set("assigned_courier_id", *m.AssignedCourierID)
	}
	if m.OriginalCourierID != nil {
		builder = builder.Set("original_courier_id", *m.OriginalCourierID)
	}
	if m.Archived != nil {
		builder = builder.Set("archived", *m.Archived)
	}
	if m.ArchivedAt != nil {
		builder = builder.Set("archived_at", *m.ArchivedAt)
	}
	if m.Notes != nil {
		builder = builder.Set("notes", *m.Notes)
	}
	if m.InternalComment != nil {
		builder = builder.Set("internal_comment", *m.InternalComment)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *m.ID}).
		Suffix(returningOrder)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, orderservice.ErrOrderNotFound
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, courierservice.ErrCourierNotFound
		default:
			return nil, fmt.Errorf("unexpected order repository update error: %w", err)
		}
	}

	proofs, err := r.loadProofs(ctx, []int64{orderDB.ID})
	if err != nil {
		return nil, err
	}
	return ToDomain(&orderDB, proofs[orderDB.ID]), nil
}

// Delete подтверждения удаляются каскадом вместе с заказом.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return orderservice.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) AddProof(ctx context.Context, proof entities.OrderProof) (*entities.OrderProof, error) {
	query := `
		INSERT INTO order_proofs (id, order_id, object_key, url, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, order_id, object_key, url, created_at`

	var p OrderProofDB
	err := r.querier.QueryRow(ctx, query, proof.ID, proof.OrderID, proof.ObjectKey, proof.URL).
		Scan(&p.ID, &p.OrderID, &p.ObjectKey, &p.URL, &p.CreatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository add proof error: %w", err)
	}

	return ToDomainProof(&p), nil
}

// LastCreatedAt курсор импорта: время самого нового заказа, нулевое для пустой таблицы.
func (r *Repository) LastCreatedAt(ctx context.Context) (time.Time, error) {
	var last *time.Time
	err := r.querier.QueryRow(ctx, `SELECT MAX(created_at) FROM orders`).Scan(&last)
	if err != nil {
		return time.Time{}, fmt.Errorf("unexpected order repository last created at error: %w", err)
	}
	if last == nil {
		return time.Time{}, nil
	}
	return *last, nil
}
