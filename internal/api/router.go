package api

import (
	"go-flatfile-orders/internal/api/handler"
	"go-flatfile-orders/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/orders", handler.ProcessOrders)
	r.GET("/api/v1/orders/layout", handler.GetOrderLayout)
	// More specific routes first
	r.GET("/api/v1/orders/uploads", handler.ListUploads)
	r.GET("/api/v1/orders/uploads/*", handler.GetUpload)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
