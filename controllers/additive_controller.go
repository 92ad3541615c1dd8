package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/flounder11/online-coffee-api/pkg/resp"
	"github.com/flounder11/online-coffee-api/repository"
	"github.com/flounder11/online-coffee-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdditiveController struct {
	Svc *services.AdditiveService
}

func NewAdditiveController(s *services.AdditiveService) *AdditiveController {
	return &AdditiveController{Svc: s}
}

// GET /api/additives?category=&available=true
func (ctl *AdditiveController) List(c *gin.Context) {
	f := repository.AdditiveFilter{
		Category:  c.Query("category"),
		Available: c.Query("available") == "true",
	}
	additives, err := ctl.Svc.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, additives)
}

// GET /api/additives/:id
func (ctl *AdditiveController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	additive, err := ctl.Svc.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "additive not found")
		return
	}
	c.JSON(http.StatusOK, additive)
}

// POST /api/additives
func (ctl *AdditiveController) Create(c *gin.Context) {
	var req services.CreateAdditiveIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	additive, err := ctl.Svc.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, additive)
}

// PUT /api/additives/:id
func (ctl *AdditiveController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateAdditiveIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	additive, err := ctl.Svc.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "additive not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, additive)
}

// DELETE /api/additives/:id
func (ctl *AdditiveController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "additive not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "additive deleted"})
}
