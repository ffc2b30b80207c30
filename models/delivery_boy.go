package models

// DeliveryBoyStatus is derived client-side from the duty and availability
// flags; it is never persisted or sent to the server.
type DeliveryBoyStatus string

const (
	DeliveryBoyOffline   DeliveryBoyStatus = "OFFLINE"
	DeliveryBoyAvailable DeliveryBoyStatus = "AVAILABLE"
	DeliveryBoyBusy      DeliveryBoyStatus = "BUSY"
)

type DeliveryBoy struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	Name            string  `json:"name"`
	Mobile          string  `json:"mobile"`
	LicenseNumber   string  `json:"licenseNumber,omitempty"`
	VehicleNumber   string  `json:"vehicleNumber,omitempty"`
	VehicleType     string  `json:"vehicleType,omitempty"`
	IsAvailable     bool    `json:"isAvailable"`
	IsOnDuty        bool    `json:"isOnDuty"`
	TotalDeliveries int     `json:"totalDeliveries"`
	TotalEarnings   float64 `json:"totalEarnings"`
}

// DerivedStatus computes the display status. The availability flag is only
// meaningful while the boy is on duty.
func (d DeliveryBoy) DerivedStatus() DeliveryBoyStatus {
	if !d.IsOnDuty {
		return DeliveryBoyOffline
	}
	if d.IsAvailable {
		return DeliveryBoyAvailable
	}
	return DeliveryBoyBusy
}
