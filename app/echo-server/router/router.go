package router

import (
	"myMiloStore/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler) {
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	api.GET("/products", handler.GetAllProducts)
	api.POST("/add-product", handler.AddProduct)
	api.POST("/update-product", handler.UpdateProduct)
	api.POST("/delete-product", handler.DeleteProduct)
}

func SetOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler) {
	api.POST("/checkout", handler.Checkout)
	api.GET("/orders", handler.ListOrders)
	api.POST("/update-order-status", handler.UpdateOrderStatus)
}
