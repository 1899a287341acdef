package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/apperr"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/resp"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/services"
)

type TableController struct {
	Service  *services.TableService
	MenuRepo *repository.MenuRepository
}

func NewTableController(svc *services.TableService, menuRepo *repository.MenuRepository) *TableController {
	return &TableController{Service: svc, MenuRepo: menuRepo}
}

func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

func (ctl *TableController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	t, err := ctl.Service.Get(id)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, t)
}

type tableReq struct {
	TableNumber string `json:"tableNumber" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Status      string `json:"status" binding:"omitempty,oneof=available occupied reserved merged"`
}

func (ctl *TableController) Create(c *gin.Context) {
	var req tableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t := entity.Table{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Status:      req.Status,
	}
	if err := ctl.Service.Create(&t); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, t)
}

func (ctl *TableController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req tableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t, err := ctl.Service.Get(id)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	t.TableNumber = req.TableNumber
	t.Capacity = req.Capacity
	if req.Status != "" {
		t.Status = req.Status
		t.IsOccupied = req.Status == entity.TableOccupied
	}
	if err := ctl.Service.Update(t); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, t)
}

func (ctl *TableController) Delete(c *gin.Context) {
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

func (ctl *TableController) SetOccupied(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctl.Service.SetOccupied(id); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": entity.TableOccupied})
}

func (ctl *TableController) Free(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctl.Service.Free(id); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": entity.TableAvailable})
}

func (ctl *TableController) Assign(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.AssignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := ctl.Service.Assign(id, &req)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, t)
}

func (ctl *TableController) Merge(c *gin.Context) {
	var req services.MergeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := ctl.Service.Merge(&req)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, t)
}

// Menu is the customer-facing, table-scoped menu read: available items only.
// The table must exist (the QR code encodes its number).
func (ctl *TableController) Menu(c *gin.Context) {
	number := c.Param("number")
	if _, err := ctl.tableByNumber(number); err != nil {
		resp.Domain(c, err)
		return
	}
	items, err := ctl.MenuRepo.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"tableNumber": number, "items": items})
}

func (ctl *TableController) tableByNumber(number string) (*entity.Table, error) {
	t, err := ctl.Service.Repo.FindByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table not found")
		}
		return nil, err
	}
	return t, nil
}
