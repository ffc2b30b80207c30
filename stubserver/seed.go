package stubserver

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"food-delivery-admin/models"
)

// SeedAdmin creates an admin account for login. Returns the user id.
func (s *Server) SeedAdmin(email, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	user := userRow{
		FullName:     "Admin",
		Email:        email,
		MobileNumber: "9000000000",
		PasswordHash: string(hash),
		Role:         string(models.RoleAdmin),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return 0, fmt.Errorf("seed admin: %w", err)
	}
	return user.ID, nil
}

// SeedDeliveryBoy creates a delivery boy row and returns its id.
func (s *Server) SeedDeliveryBoy(name string, onDuty, available bool) (int64, error) {
	boy := deliveryBoyRow{
		UserID:        time.Now().UnixNano() % 100000,
		Name:          name,
		Mobile:        "9876543210",
		LicenseNumber: "DL-" + shortID(),
		VehicleNumber: "KA-01-" + shortID(),
		VehicleType:   "BIKE",
		IsOnDuty:      onDuty,
		IsAvailable:   available,
	}
	if err := s.db.Create(&boy).Error; err != nil {
		return 0, fmt.Errorf("seed delivery boy: %w", err)
	}
	return boy.ID, nil
}

// SeedOrder creates an order in the given status and returns its id.
func (s *Server) SeedOrder(customerName string, status models.OrderStatus, items ...SeedItem) (int64, error) {
	var subtotal float64
	rows := make([]orderItemRow, 0, len(items))
	for i, item := range items {
		lineTotal := item.Price * float64(item.Quantity)
		subtotal += lineTotal
		rows = append(rows, orderItemRow{
			MenuItemID:    int64(i + 1),
			MenuItemName:  item.Name,
			MenuItemPrice: item.Price,
			Quantity:      item.Quantity,
			Price:         item.Price,
		})
	}

	const deliveryCharge = 30.0
	order := orderRow{
		OrderNumber:     "ORD-" + shortID(),
		CustomerID:      1,
		CustomerName:    customerName,
		CustomerMobile:  "9123456780",
		Status:          string(status),
		Subtotal:        subtotal,
		DeliveryCharge:  deliveryCharge,
		TotalAmount:     subtotal + deliveryCharge,
		PaymentMethod:   "COD",
		DeliveryAddress: "42 MG Road",
		CreatedAt:       time.Now(),
		Items:           rows,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return 0, fmt.Errorf("seed order: %w", err)
	}
	return order.ID, nil
}

// SeedItem describes one order line for SeedOrder.
type SeedItem struct {
	Name     string
	Price    float64
	Quantity int
}

// SeedSampleData loads a small data set for local development.
func (s *Server) SeedSampleData() error {
	if _, err := s.SeedAdmin("admin@example.com", "admin123"); err != nil {
		return err
	}
	if _, err := s.SeedDeliveryBoy("Ravi Kumar", true, true); err != nil {
		return err
	}
	if _, err := s.SeedDeliveryBoy("Arjun Singh", true, false); err != nil {
		return err
	}
	if _, err := s.SeedDeliveryBoy("Kiran Rao", false, false); err != nil {
		return err
	}
	if _, err := s.SeedOrder("Priya Sharma", models.StatusPlaced,
		SeedItem{Name: "Paneer Tikka", Price: 220, Quantity: 1},
		SeedItem{Name: "Butter Naan", Price: 40, Quantity: 4},
	); err != nil {
		return err
	}
	if _, err := s.SeedOrder("Rahul Verma", models.StatusPreparing,
		SeedItem{Name: "Dal Makhani", Price: 180, Quantity: 2},
	); err != nil {
		return err
	}
	return nil
}

func shortID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
