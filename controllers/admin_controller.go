package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"github.com/longkovipb52/TaloFood-App-sub000/pkg/resp"
	"github.com/longkovipb52/TaloFood-App-sub000/repository"
	"github.com/longkovipb52/TaloFood-App-sub000/services"
)

type AdminController struct {
	OrderSvc  *services.OrderService
	ReviewSvc *services.ReviewService
	OrderRepo *repository.OrderRepository
}

func NewAdminController(orderSvc *services.OrderService, reviewSvc *services.ReviewService, orderRepo *repository.OrderRepository) *AdminController {
	return &AdminController{OrderSvc: orderSvc, ReviewSvc: reviewSvc, OrderRepo: orderRepo}
}

// GET /admin/orders?status=&from=&to=&page=&limit=
func (ac *AdminController) ListOrders(c *gin.Context) {
	status := entity.OrderStatus(c.Query("status"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = &t
		}
	}

	orders, total, err := ac.OrderRepo.ListOrders(status, from, to, page, limit)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": orders, "total": total, "page": page, "limit": limit})
}

type UpdateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /admin/orders/:id/status
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.OrderSvc.UpdateStatus(uint(id), req.Status); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// DELETE /admin/reviews/:id
func (ac *AdminController) DeleteReview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ac.ReviewSvc.DeleteAny(uint(id)); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
