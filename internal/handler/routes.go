package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the HTML pages at the root and the JSON API under /api
func RegisterRoutes(r gin.IRouter, pages *PageHandler, addresses *AddressHandler, postalCodes *PostalCodeHandler) {
	r.GET("/", pages.Index)
	r.POST("/addresses", pages.Create)
	r.GET("/addresses/:id/edit", pages.EditForm)
	r.POST("/addresses/:id/rename", pages.Rename)
	r.GET("/addresses/:id/delete", pages.DeleteForm)
	r.POST("/addresses/:id/delete", pages.Delete)

	api := r.Group("/api")
	api.GET("/addresses", addresses.List)
	api.POST("/addresses", addresses.Create)
	api.GET("/addresses/:id", addresses.Get)
	api.PATCH("/addresses/:id", addresses.Rename)
	api.DELETE("/addresses/:id", addresses.Delete)
	api.GET("/postal-codes/:code", postalCodes.Lookup)
}
