package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/middlewares"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/resp"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// ===== Create =====

type createOrderReq struct {
	TableNumber   string        `json:"tableNumber" binding:"required"`
	Items         []orderItemIn `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string        `json:"paymentMethod" binding:"omitempty,oneof=cash card online"`
	Notes         string        `json:"notes"`
	PlacedBy      string        `json:"placedBy"`
}

type orderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"required,min=1"`
}

func (ctl *OrderController) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	in := services.CreateOrderReq{
		TableNumber:   req.TableNumber,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		PlacedBy:      req.PlacedBy,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, services.OrderItemIn{MenuItemID: it.MenuItemID, Qty: it.Qty})
	}

	order, err := ctl.Service.Create(&in)
	middlewares.RecordOrderOperation("create", err == nil)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, order)
}

// ===== Add items =====

type addItemsReq struct {
	Items []orderItemIn `json:"items" binding:"required,min=1,dive"`
}

func (ctl *OrderController) AddItems(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req addItemsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	items := make([]services.OrderItemIn, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.OrderItemIn{MenuItemID: it.MenuItemID, Qty: it.Qty})
	}

	order, err := ctl.Service.AddItems(id, items)
	middlewares.RecordOrderOperation("addItems", err == nil)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, order)
}

// ===== Status =====

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.UpdateStatus(id, req.Status)
	middlewares.RecordOrderOperation("updateStatus", err == nil)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, order)
}

func (ctl *OrderController) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	order, err := ctl.Service.Complete(id)
	middlewares.RecordOrderOperation("complete", err == nil)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, order)
}

// ===== Reads / bill / delete =====

func (ctl *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := ctl.Service.Get(id)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, order)
}

func (ctl *OrderController) ListActive(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	orders, err := ctl.Service.ListActive(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

func (ctl *OrderController) ListByTable(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := ctl.Service.ListByTable(id, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

func (ctl *OrderController) Bill(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	bill, err := ctl.Service.GenerateBill(id)
	middlewares.RecordOrderOperation("generateBill", err == nil)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, bill)
}

func (ctl *OrderController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctl.Service.Delete(id); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// paramID parses the :id path segment; writes the error response itself.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
