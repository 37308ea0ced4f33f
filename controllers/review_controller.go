package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/longkovipb52/TaloFood-App-sub000/pkg/resp"
	"github.com/longkovipb52/TaloFood-App-sub000/services"
	"github.com/longkovipb52/TaloFood-App-sub000/utils"
)

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: svc}
}

type SubmitReviewReq struct {
	FoodID  uint   `json:"foodId" binding:"required"`
	OrderID uint   `json:"orderId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type UpdateReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// POST /reviews (Protected)
func (rc *ReviewController) Submit(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req SubmitReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := rc.Svc.Submit(uid, &services.SubmitReviewReq{
		FoodID:  req.FoodID,
		OrderID: req.OrderID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	if out.Updated {
		resp.OK(c, gin.H{"review": out.Review, "updated": true})
		return
	}
	resp.Created(c, gin.H{"review": out.Review, "updated": false})
}

// PUT /reviews/:id (Protected, owner only)
func (rc *ReviewController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Svc.EditOwn(uint(id), uid, req.Rating, req.Comment)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"review": rev})
}

// DELETE /reviews/:id (Protected; owner, or any review for admins)
func (rc *ReviewController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if utils.IsAdmin(c) {
		if err := rc.Svc.DeleteAny(uint(id)); err != nil {
			respondErr(c, err)
			return
		}
		resp.OK(c, gin.H{"deleted": true})
		return
	}

	if err := rc.Svc.Delete(uint(id), uid); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /foods/:id/reviews (Public)
func (rc *ReviewController) ListForFood(c *gin.Context) {
	fid, _ := strconv.Atoi(c.Param("id"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := rc.Svc.ListForFood(uint(fid), limit, offset)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": reviews, "meta": gin.H{"limit": limit, "offset": offset}})
}

// GET /profile/reviews (Protected)
func (rc *ReviewController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := rc.Svc.ListForUser(uid, limit, offset)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"items": reviews, "meta": gin.H{"limit": limit, "offset": offset}})
}
