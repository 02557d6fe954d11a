// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Subtotal and Total are stored for listings; they are recomputed from the
// items on load.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status          string          `gorm:"size:32;not null;index"`
	PaymentMethod   string          `gorm:"size:16;not null"`
	DeliveryFee     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DeliveryAddress datatypes.JSON
	DeliveryDate    string         `gorm:"size:32"`
	DeliverySlot    string         `gorm:"size:32"`
	CreatedAt       time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time      `gorm:"not null;autoUpdateTime:false"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order.
type OrderItemDTO struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"size:255;not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity  int             `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	delivery := aggregate.Delivery()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OwnerID:         aggregate.OwnerID().Bytes(),
		Status:          aggregate.Status().String(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
		DeliveryFee:     aggregate.DeliveryFee(),
		Subtotal:        aggregate.Subtotal(),
		Total:           aggregate.Total(),
		DeliveryAddress: datatypes.JSON(delivery.Address()),
		DeliveryDate:    delivery.Date(),
		DeliverySlot:    delivery.Slot(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var delivery order.DeliveryDetails
	if len(dto.DeliveryAddress) > 0 {
		delivery, err = order.NewDeliveryDetails(json.RawMessage(dto.DeliveryAddress), dto.DeliveryDate, dto.DeliverySlot)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		ownerID,
		order.Status(dto.Status),
		order.PaymentMethod(dto.PaymentMethod),
		items,
		dto.DeliveryFee,
		delivery,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
