package stubserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"food-delivery-admin/models"
	"food-delivery-admin/statemachine"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type rejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type assignRequest struct {
	DeliveryBoyID int64 `json:"deliveryBoyId" binding:"required"`
}

// adminLogin issues a token for a seeded admin account. The production OTP
// handshake lives elsewhere; tests and local development only need a session.
func (s *Server) adminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var user userRow
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if user.Role != string(models.RoleAdmin) {
		fail(c, http.StatusForbidden, "Admin role required")
		return
	}

	token, err := s.generateToken(&user)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respond(c, http.StatusOK, "Login successful", gin.H{
		"accessToken":  token,
		"refreshToken": token,
		"user": models.User{
			ID:           user.ID,
			FullName:     user.FullName,
			Email:        user.Email,
			MobileNumber: user.MobileNumber,
			Role:         models.UserRole(user.Role),
		},
	})
}

func (s *Server) listOrders(c *gin.Context) {
	var rows []orderRow
	query := s.db.Preload("Items")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc").Find(&rows).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	orders := make([]models.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, rows[i].toModel(s.boyFor(&rows[i])))
	}
	respond(c, http.StatusOK, "Orders fetched", orders)
}

func (s *Server) getOrder(c *gin.Context) {
	row, ok := s.loadOrder(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, "Order fetched", row.toModel(s.boyFor(row)))
}

func (s *Server) acceptOrder(c *gin.Context) {
	row, ok := s.loadOrder(c)
	if !ok {
		return
	}
	if err := statemachine.CanTransition(models.OrderStatus(row.Status), models.StatusAccepted); err != nil {
		fail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	now := time.Now()
	eta := now.Add(45 * time.Minute)
	updates := map[string]any{
		"status":                  string(models.StatusAccepted),
		"accepted_at":             &now,
		"estimated_delivery_time": &eta,
	}
	if err := s.db.Model(row).Updates(updates).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to accept order")
		return
	}
	s.reload(row)
	respond(c, http.StatusOK, "Order accepted", row.toModel(s.boyFor(row)))
}

func (s *Server) rejectOrder(c *gin.Context) {
	row, ok := s.loadOrder(c)
	if !ok {
		return
	}
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := statemachine.CanTransition(models.OrderStatus(row.Status), models.StatusCancelled); err != nil {
		fail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	updates := map[string]any{
		"status":           string(models.StatusCancelled),
		"rejection_reason": req.Reason,
	}
	if err := s.db.Model(row).Updates(updates).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to reject order")
		return
	}
	respond(c, http.StatusOK, "Order rejected", nil)
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	row, ok := s.loadOrder(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	from := models.OrderStatus(row.Status)
	if from == req.Status {
		// Idempotent re-application of the current status is a no-op.
		respond(c, http.StatusOK, "Order status unchanged", row.toModel(s.boyFor(row)))
		return
	}
	if err := statemachine.CanTransition(from, req.Status); err != nil {
		fail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if req.Status == models.StatusOutForDelivery && row.DeliveryBoyID == nil {
		fail(c, http.StatusUnprocessableEntity, "Order has no delivery boy assigned")
		return
	}

	now := time.Now()
	updates := map[string]any{"status": string(req.Status)}
	switch req.Status {
	case models.StatusReady:
		updates["ready_at"] = &now
	case models.StatusOutForDelivery:
		updates["out_for_delivery_at"] = &now
	case models.StatusDelivered:
		updates["delivered_at"] = &now
	}
	if err := s.db.Model(row).Updates(updates).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	if req.Status == models.StatusDelivered && row.DeliveryBoyID != nil {
		s.db.Model(&deliveryBoyRow{}).Where("id = ?", *row.DeliveryBoyID).Updates(map[string]any{
			"is_available":     true,
			"total_deliveries": gorm.Expr("total_deliveries + 1"),
			"total_earnings":   gorm.Expr("total_earnings + ?", row.DeliveryCharge),
		})
	}

	s.reload(row)
	respond(c, http.StatusOK, "Order status updated", row.toModel(s.boyFor(row)))
}

func (s *Server) assignDeliveryBoy(c *gin.Context) {
	row, ok := s.loadOrder(c)
	if !ok {
		return
	}
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if models.OrderStatus(row.Status) != models.StatusReady {
		fail(c, http.StatusUnprocessableEntity, "Order must be in READY status to assign a delivery boy")
		return
	}

	var boy deliveryBoyRow
	if err := s.db.First(&boy, req.DeliveryBoyID).Error; err != nil {
		fail(c, http.StatusNotFound, "Delivery boy not found")
		return
	}
	if boy.DerivedStatus() != models.DeliveryBoyAvailable {
		fail(c, http.StatusUnprocessableEntity, "Delivery boy is not available")
		return
	}

	if err := s.db.Model(row).Update("delivery_boy_id", boy.ID).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to assign delivery boy")
		return
	}
	s.db.Model(&boy).Update("is_available", false)

	s.reload(row)
	respond(c, http.StatusOK, "Delivery boy assigned", row.toModel(&boy))
}

func (s *Server) listDeliveryBoys(c *gin.Context) {
	var rows []deliveryBoyRow
	if err := s.db.Order("name asc").Find(&rows).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load delivery boys")
		return
	}
	boys := make([]models.DeliveryBoy, 0, len(rows))
	for i := range rows {
		boys = append(boys, rows[i].toModel())
	}
	respond(c, http.StatusOK, "Delivery boys fetched", boys)
}

func (s *Server) dashboardStats(c *gin.Context) {
	period := c.DefaultQuery("period", "today")

	var totalOrders, pending, preparing, activeBoys int64
	var revenue float64
	s.db.Model(&orderRow{}).Count(&totalOrders)
	s.db.Model(&orderRow{}).Where("status = ?", string(models.StatusPlaced)).Count(&pending)
	s.db.Model(&orderRow{}).Where("status = ?", string(models.StatusPreparing)).Count(&preparing)
	s.db.Model(&deliveryBoyRow{}).Where("is_on_duty = ?", true).Count(&activeBoys)
	s.db.Model(&orderRow{}).Where("status = ?", string(models.StatusDelivered)).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue)

	respond(c, http.StatusOK, "Dashboard stats fetched", gin.H{
		"period":             period,
		"totalOrders":        totalOrders,
		"totalRevenue":       revenue,
		"pendingOrders":      pending,
		"preparingOrders":    preparing,
		"activeDeliveryBoys": activeBoys,
	})
}

func (s *Server) loadOrder(c *gin.Context) (*orderRow, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid order id")
		return nil, false
	}
	var row orderRow
	if err := s.db.Preload("Items").First(&row, id).Error; err != nil {
		fail(c, http.StatusNotFound, "Order not found")
		return nil, false
	}
	return &row, true
}

func (s *Server) reload(row *orderRow) {
	s.db.Preload("Items").First(row, row.ID)
}

func (s *Server) boyFor(row *orderRow) *deliveryBoyRow {
	if row.DeliveryBoyID == nil {
		return nil
	}
	var boy deliveryBoyRow
	if err := s.db.First(&boy, *row.DeliveryBoyID).Error; err != nil {
		return nil
	}
	return &boy
}

// DerivedStatus mirrors the client-side derivation so the stub can reuse the
// same availability rule.
func (r *deliveryBoyRow) DerivedStatus() models.DeliveryBoyStatus {
	return r.toModel().DerivedStatus()
}
