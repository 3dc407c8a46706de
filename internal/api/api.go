package api

import (
	assistantHandler "ops-dashboard/internal/assistant/handler"
	authHandler "ops-dashboard/internal/auth/handler"
	directoryHandler "ops-dashboard/internal/directory/handler"
	inquiryHandler "ops-dashboard/internal/inquiries/handler"
	licenseHandler "ops-dashboard/internal/licenses/handler"
	publisherHandler "ops-dashboard/internal/publishers/handler"
	"ops-dashboard/internal/ratelimit"
	responseHandler "ops-dashboard/internal/responses/handler"
	systemHandler "ops-dashboard/internal/system/handler"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the API routes to
type Handlers struct {
	Auth       authHandler.Handler
	Directory  directoryHandler.Handler
	Inquiries  inquiryHandler.Handler
	Responses  responseHandler.Handler
	Licenses   licenseHandler.Handler
	Publishers publisherHandler.Handler
	Assistant  assistantHandler.Handler
	System     systemHandler.Handler
}

type API struct {
	router           *gin.RouterGroup
	handlers         Handlers
	rateLimiter      *ratelimit.Service
	loginAttemptsRPM int
}

func New(router *gin.RouterGroup, handlers Handlers, rateLimiter *ratelimit.Service, loginAttemptsRPM int) API {
	return API{
		router:           router,
		handlers:         handlers,
		rateLimiter:      rateLimiter,
		loginAttemptsRPM: loginAttemptsRPM,
	}
}

func (a *API) RegisterRoutes() {
	h := a.handlers

	a.router.GET("/health", h.System.HandleHealth)
	apiGroup := a.router.Group("/api")
	apiGroup.GET("/health", h.System.HandleHealth)
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/login",
			a.rateLimiter.Middleware(a.loginAttemptsRPM, ratelimit.ByClientIP("login")),
			h.Auth.HandleLogin)
	}

	protectedGroup := apiGroup.Group("", h.Auth.HandleJWTMiddleware)
	{
		protectedGroup.GET("/auth/me", h.Auth.GetUserInfo)
		protectedGroup.POST("/auth/change-password", h.Auth.HandleChangePassword)

		clients := protectedGroup.Group("/clients")
		clients.GET("", h.Directory.HandleListClients)
		clients.POST("", h.Directory.HandleCreateClient)
		clients.GET("/:id", h.Directory.HandleGetClient)
		clients.PUT("/:id", h.Directory.HandleUpdateClient)
		clients.DELETE("/:id", h.Directory.HandleDeleteClient)

		inquiries := protectedGroup.Group("/inquiries")
		inquiries.GET("", h.Inquiries.HandleListInquiries)
		inquiries.POST("", h.Inquiries.HandleCreateInquiry)
		inquiries.GET("/stats", h.Inquiries.HandleGetStats)
		inquiries.GET("/:id", h.Inquiries.HandleGetInquiry)
		inquiries.PUT("/:id/status", h.Inquiries.HandleUpdateStatus)
		inquiries.POST("/:id/draft-reply", h.Assistant.HandleDraftReply)

		responses := protectedGroup.Group("/responses")
		responses.POST("", h.Responses.HandleCreateResponse)
		responses.GET("/:id", h.Responses.HandleGetResponse)
		responses.PUT("/:id/update-follow-up", h.Responses.HandleUpdateFollowUp)
		responses.POST("/:id/messages", h.Responses.HandleAppendMessage)
		responses.GET("/:id/license-draft", h.Licenses.HandleGetLicenseDraft)

		licenses := protectedGroup.Group("/licenses")
		licenses.POST("", h.Licenses.HandleCreateLicense)
		licenses.GET("", h.Licenses.HandleListLicenses)
		licenses.GET("/deals-in-queue", h.Licenses.HandleListDealsInQueue)
		licenses.GET("/stats", h.Licenses.HandleGetStats)

		publishers := protectedGroup.Group("/publishers")
		publishers.GET("", h.Publishers.HandleListPublishers)
		publishers.POST("/bulk-upload", h.Publishers.HandleBulkUpload)
		publishers.PUT("/status", h.Publishers.HandleUpdateStatus)
		publishers.POST("/broadcast", h.Publishers.HandleBroadcast)

		protectedGroup.POST("/assistant/summarize", h.Assistant.HandleSummarize)

		system := protectedGroup.Group("/system")
		system.POST("/start-email-monitoring", h.System.HandleStartMonitoring)
		system.POST("/stop-email-monitoring", h.System.HandleStopMonitoring)
	}
}
