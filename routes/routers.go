package routes

import (
	"net/http"

	"roombook/controllers"
	"roombook/docs"
	middlewares "roombook/middleware"
	"roombook/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, service *services.RoomBookService, jwtSecret string, gatherer prometheus.Gatherer) {
	roomController := controllers.NewRoomController(service)
	ledgerController := controllers.NewLedgerController(service)

	router.Use(middlewares.RequestIDMiddleware(), middlewares.ErrorHandler())

	v1 := router.Group("/api/v1")
	auth := middlewares.AuthMiddleware(jwtSecret)
	value := middlewares.CallValueMiddleware()

	v1.POST("/rooms", auth, roomController.AddRoom)
	v1.GET("/rooms", auth, roomController.GetRooms)
	v1.POST("/rooms/:id/agreement", auth, value, roomController.SignAgreement)
	v1.POST("/rooms/:id/rent", auth, value, roomController.PayRent)
	v1.POST("/rooms/:id/complete", auth, roomController.AgreementCompleted)
	v1.POST("/rooms/:id/terminate", auth, roomController.AgreementTerminated)

	v1.GET("/rooms/available", roomController.GetAvailableRooms)
	v1.GET("/landlord", roomController.GetLandlord)

	v1.GET("/rooms/:id/rents", ledgerController.GetRents)
	v1.GET("/rooms/:id/agreements", ledgerController.GetRoomAgreements)
	v1.GET("/rooms/:id/transfers", auth, ledgerController.GetTransfers)
	v1.GET("/agreements/:id", ledgerController.GetAgreement)
	v1.GET("/accounts/:address/balance", ledgerController.GetBalance)

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
