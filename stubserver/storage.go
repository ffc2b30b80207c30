package stubserver

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-delivery-admin/models"
)

type userRow struct {
	ID           int64  `gorm:"primaryKey"`
	FullName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	MobileNumber string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"`
}

type deliveryBoyRow struct {
	ID              int64 `gorm:"primaryKey"`
	UserID          int64 `gorm:"not null"`
	Name            string
	Mobile          string
	LicenseNumber   string
	VehicleNumber   string
	VehicleType     string
	IsAvailable     bool
	IsOnDuty        bool
	TotalDeliveries int
	TotalEarnings   float64
}

type orderRow struct {
	ID                    int64  `gorm:"primaryKey"`
	OrderNumber           string `gorm:"uniqueIndex;not null"`
	CustomerID            int64
	CustomerName          string
	CustomerMobile        string
	DeliveryBoyID         *int64
	Status                string `gorm:"not null;default:'PLACED'"`
	Subtotal              float64
	DeliveryCharge        float64
	TotalAmount           float64
	PaymentMethod         string
	DeliveryAddress       string
	SpecialInstructions   string
	RejectionReason       string
	EstimatedDeliveryTime *time.Time
	AcceptedAt            *time.Time
	ReadyAt               *time.Time
	OutForDeliveryAt      *time.Time
	DeliveredAt           *time.Time
	CreatedAt             time.Time
	Items                 []orderItemRow `gorm:"foreignKey:OrderID"`
}

type orderItemRow struct {
	ID            int64 `gorm:"primaryKey"`
	OrderID       int64 `gorm:"not null"`
	MenuItemID    int64
	MenuItemName  string
	MenuItemPrice float64
	Quantity      int
	Price         float64 // snapshot price at time of order
}

func openDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&userRow{}, &deliveryBoyRow{}, &orderRow{}, &orderItemRow{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func (r *orderRow) toModel(boy *deliveryBoyRow) models.Order {
	order := models.Order{
		ID:          r.ID,
		OrderNumber: r.OrderNumber,
		Customer: models.OrderCustomer{
			ID:           r.CustomerID,
			FullName:     r.CustomerName,
			MobileNumber: r.CustomerMobile,
		},
		Status:                models.OrderStatus(r.Status),
		Subtotal:              r.Subtotal,
		DeliveryCharge:        r.DeliveryCharge,
		TotalAmount:           r.TotalAmount,
		PaymentMethod:         r.PaymentMethod,
		DeliveryAddress:       r.DeliveryAddress,
		SpecialInstructions:   r.SpecialInstructions,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		AcceptedAt:            r.AcceptedAt,
		ReadyAt:               r.ReadyAt,
		OutForDeliveryAt:      r.OutForDeliveryAt,
		DeliveredAt:           r.DeliveredAt,
		CreatedAt:             r.CreatedAt,
	}
	if boy != nil {
		order.DeliveryBoy = &models.OrderDeliveryBoy{
			ID:           boy.ID,
			FullName:     boy.Name,
			MobileNumber: boy.Mobile,
		}
	}
	for _, item := range r.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID: item.ID,
			MenuItem: models.MenuItemRef{
				ID:    item.MenuItemID,
				Name:  item.MenuItemName,
				Price: item.MenuItemPrice,
			},
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return order
}

func (r *deliveryBoyRow) toModel() models.DeliveryBoy {
	return models.DeliveryBoy{
		ID:              r.ID,
		UserID:          r.UserID,
		Name:            r.Name,
		Mobile:          r.Mobile,
		LicenseNumber:   r.LicenseNumber,
		VehicleNumber:   r.VehicleNumber,
		VehicleType:     r.VehicleType,
		IsAvailable:     r.IsAvailable,
		IsOnDuty:        r.IsOnDuty,
		TotalDeliveries: r.TotalDeliveries,
		TotalEarnings:   r.TotalEarnings,
	}
}
