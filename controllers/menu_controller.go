package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/resp"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/services"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/utils"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

type menuItemReq struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Price       float64  `json:"price" binding:"min=0"`
	SpiceLevel  int      `json:"spiceLevel" binding:"min=0,max=3"`
	Discount    *float64 `json:"discount"`
	Available   *bool    `json:"available"`
	IsVeg       *bool    `json:"isVeg"`
	// optional inline image; saved under ./uploads/menu
	ImageBase64 string `json:"imageBase64"`
	ImageURL    string `json:"imageUrl"`
}

func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

func (ctl *MenuController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := ctl.Service.Get(id)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, item)
}

func (ctl *MenuController) Create(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		SpiceLevel:  req.SpiceLevel,
		Discount:    req.Discount,
		Available:   true,
		IsVeg:       req.IsVeg,
		ImageURL:    req.ImageURL,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.ImageBase64 != "" {
		path, err := utils.SaveBase64Image(req.ImageBase64, "./uploads/menu")
		if err != nil {
			resp.BadRequest(c, "invalid image data")
			return
		}
		item.ImageURL = "/" + path
	}

	if err := ctl.Service.Create(&item); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, item)
}

func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Get(id)
	if err != nil {
		resp.Domain(c, err)
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Category = req.Category
	item.Price = req.Price
	item.SpiceLevel = req.SpiceLevel
	item.Discount = req.Discount
	item.IsVeg = req.IsVeg
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.ImageBase64 != "" {
		path, err := utils.SaveBase64Image(req.ImageBase64, "./uploads/menu")
		if err != nil {
			resp.BadRequest(c, "invalid image data")
			return
		}
		item.ImageURL = "/" + path
	} else if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}

	if err := ctl.Service.Update(item); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, item)
}

func (ctl *MenuController) Delete(c *gin.Context) {
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

type availabilityReq struct {
	Available *bool `json:"available" binding:"required"`
}

func (ctl *MenuController) SetAvailability(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.SetAvailability(id, *req.Available); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "available": *req.Available})
}
