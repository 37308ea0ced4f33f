package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/longkovipb52/TaloFood-App-sub000/pkg/resp"
	"github.com/longkovipb52/TaloFood-App-sub000/services"
	"github.com/longkovipb52/TaloFood-App-sub000/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

type OrderLineIn struct {
	FoodID uint  `json:"foodId" binding:"required"`
	Qty    int   `json:"qty" binding:"required,min=1"`
	Price  int64 `json:"price" binding:"required,min=0"`
}

type CreateOrderReq struct {
	Name           string        `json:"name" binding:"required"`
	Phone          string        `json:"phone" binding:"required"`
	Address        string        `json:"address" binding:"required"`
	PaymentMethod  string        `json:"paymentMethod"`
	Lines          []OrderLineIn `json:"lines" binding:"required,min=1"`
	Total          int64         `json:"total" binding:"required,min=0"`
	IdempotencyKey string        `json:"idempotencyKey"`
}

// POST /orders (Protected)
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	in := services.CreateOrderReq{
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		PaymentMethod:  req.PaymentMethod,
		Total:          req.Total,
		IdempotencyKey: req.IdempotencyKey,
	}
	for _, l := range req.Lines {
		in.Lines = append(in.Lines, services.OrderLineIn{FoodID: l.FoodID, Qty: l.Qty, Price: l.Price})
	}

	out, err := oc.Svc.Create(uid, &in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /profile/orders (Protected)
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Svc.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id (Protected, owner only)
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := oc.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /orders/:id/cancel (Protected, owner only)
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Svc.Cancel(uint(id), uid); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
