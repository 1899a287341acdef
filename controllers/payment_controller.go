package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/resp"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/services"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

type createIntentReq struct {
	OrderID uint `json:"orderId" binding:"required"`
}

func (ctl *PaymentController) CreateIntent(c *gin.Context) {
	var req createIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Service.CreateIntent(req.OrderID)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, out)
}

type verifyReq struct {
	PaymentID     uint   `json:"paymentId" binding:"required"`
	OrderID       uint   `json:"orderId" binding:"required"`
	TransactionID string `json:"transactionId" binding:"required"`
}

func (ctl *PaymentController) Verify(c *gin.Context) {
	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Verify(req.PaymentID, req.OrderID, req.TransactionID); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"paymentId": req.PaymentID, "status": "Paid"})
}

func (ctl *PaymentController) ListForOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	payments, err := ctl.Service.ListForOrder(id)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, payments)
}
