package models

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleCustomer UserRole = "CUSTOMER"
	RoleDelivery UserRole = "DELIVERY_BOY"
)

// User is the authenticated profile surfaced by the session gate.
type User struct {
	ID           int64    `json:"id"`
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	MobileNumber string   `json:"mobileNumber"`
	Role         UserRole `json:"role"`
}
