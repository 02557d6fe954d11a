package queries

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderView is an order as shown in an order list.
type OrderView struct {
	ID              kernel.UUID
	OwnerID         kernel.UUID
	Status          order.Status
	PaymentMethod   order.PaymentMethod
	DeliveryFee     decimal.Decimal
	Subtotal        decimal.Decimal
	Total           decimal.Decimal
	DeliveryAddress json.RawMessage
	DeliveryDate    string
	DeliverySlot    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItemView
}

type OrderItemView struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// orderFilter narrows an order list. Zero fields match everything.
type orderFilter struct {
	ownerID kernel.UUID
	status  order.Status
}

func (f orderFilter) where() (string, []any) {
	conditions := []string{"1 = 1"}
	var args []any
	if f.ownerID.Validate() == nil {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, f.ownerID.Bytes())
	}
	if f.status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(f.status))
	}
	return strings.Join(conditions, " AND "), args
}

// orderReadModel reads order lists straight from the tables, bypassing the
// aggregate.
type orderReadModel struct {
	db *gorm.DB
}

func (m orderReadModel) count(ctx context.Context, filter orderFilter) (int64, error) {
	where, args := filter.where()

	var total int64
	err := m.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders WHERE `+where, args...).Scan(&total).Error
	return total, err
}

// list returns matching orders newest first, without items. A limit of zero
// returns every match.
func (m orderReadModel) list(ctx context.Context, filter orderFilter, offset, limit int) ([]OrderView, error) {
	where, args := filter.where()
	sql := `
		SELECT
			id,
			owner_id,
			status,
			payment_method,
			delivery_fee,
			subtotal,
			total,
			delivery_address,
			delivery_date,
			delivery_slot,
			created_at,
			updated_at
		FROM orders
		WHERE ` + where + `
		ORDER BY created_at DESC, id`
	if limit > 0 {
		sql += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := m.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var o OrderView
		var id, ownerID uuid.UUID
		var status, paymentMethod string
		var address datatypes.JSON

		err = rows.Scan(
			&id,
			&ownerID,
			&status,
			&paymentMethod,
			&o.DeliveryFee,
			&o.Subtotal,
			&o.Total,
			&address,
			&o.DeliveryDate,
			&o.DeliverySlot,
			&o.CreatedAt,
			&o.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if o.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if o.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}

		o.Status = order.Status(status)
		o.PaymentMethod = order.PaymentMethod(paymentMethod)
		o.DeliveryAddress = json.RawMessage(address)
		o.CreatedAt = o.CreatedAt.UTC()
		o.UpdatedAt = o.UpdatedAt.UTC()
		o.Items = make([]OrderItemView, 0)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (m orderReadModel) attachItems(ctx context.Context, orders []OrderView) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.Bytes())
		index[o.ID.Bytes()] = i
	}

	rows, err := m.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemView
		var orderID uuid.UUID

		if err = rows.Scan(&orderID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
