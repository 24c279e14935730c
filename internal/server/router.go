package server

import (
	accounts "freelance-market/internal/accountService"
	bids "freelance-market/internal/bidService"
	"freelance-market/internal/config"
	"freelance-market/internal/notify"
	sellers "freelance-market/internal/sellerService"
	accounthandler "freelance-market/services/accounts/handler"
	bidhandler "freelance-market/services/bids/handler"
	sellerhandler "freelance-market/services/sellers/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	cfg *config.Config,
	accountService *accounts.AccountService,
	sellerService *sellers.SellerService,
	bidService *bids.BidService,
	hub *notify.Hub,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CORSMiddleware(cfg.FrontendURL))

	accountHandler := accounthandler.NewAccountHandler(accountService, cfg.CookieSecure, cfg.TokenTTL)
	sellerHandler := sellerhandler.NewSellerHandler(sellerService)
	bidHandler := bidhandler.NewBidHandler(bidService)

	authRequired := AuthRequiredMiddleware(accountService)

	api := router.Group("/api")
	api.Use(CSRFMiddleware) // gates every non-GET route
	{
		api.GET("/csrf-token", IssueCSRFTokenHandler(cfg.CookieSecure))

		api.POST("/signup", accountHandler.SignupHandler)
		api.POST("/login", accountHandler.LoginHandler)

		api.POST("/seller", authRequired, sellerHandler.CreateSellerHandler)
		api.GET("/sellers", sellerHandler.ListSellersHandler)
		api.GET("/seller/me", authRequired, sellerHandler.GetOwnSellerHandler)

		api.POST("/bids", authRequired, bidHandler.PlaceBidHandler)
		api.GET("/bids/seller", authRequired, bidHandler.ListSellerBidsHandler)
		api.GET("/bids/client", authRequired, bidHandler.ListClientBidsHandler)
		api.PATCH("/bids/:id/status", authRequired, bidHandler.UpdateBidStatusHandler)
	}

	router.GET("/ws", func(c *gin.Context) {
		hub.HandleConnection(c.Writer, c.Request)
	})

	return router
}
