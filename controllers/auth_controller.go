package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/resp"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/services"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Role     string `json:"role" binding:"required,oneof=staff admin"`
}

// Register creates a staff account; route is admin-gated.
func (ctl *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Service.Register(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, user)
}

func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.Service.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, user)
}
