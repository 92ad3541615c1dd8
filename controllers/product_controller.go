package controllers

import (
	"net/http"
	"strconv"

	"github.com/flounder11/online-coffee-api/pkg/resp"
	"github.com/flounder11/online-coffee-api/repository"
	"github.com/flounder11/online-coffee-api/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Svc *services.ProductService
}

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /api/products?category=&popular=true&volume=&sort=
func (ctl *ProductController) List(c *gin.Context) {
	f := repository.ProductFilter{
		Category: c.Query("category"),
		Popular:  c.Query("popular") == "true",
		Sort:     c.Query("sort"),
	}
	if v := c.Query("volume"); v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid volume")
			return
		}
		f.Volume = &vol
	}

	products, err := ctl.Svc.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (ctl *ProductController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctl.Svc.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}
