package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"asset-hub-api-server/internal/api/handlers"
	"asset-hub-api-server/internal/api/middleware"
	"asset-hub-api-server/internal/models"
	"asset-hub-api-server/internal/s3"
	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/socket"
	"asset-hub-api-server/internal/store"
	"asset-hub-api-server/internal/workflow"
)

// SetupRouter wires the stores, services and handlers and registers the routes.
func SetupRouter(
	db *mongo.Database,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
	jwtExpiration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.Default())

	stores := store.NewMongo(db)
	guard := scope.NewGuard(stores.Users)

	ledger := workflow.NewLedger(stores.Assets)
	assignments := workflow.NewAssignments(stores.Assignments, stores.Assets)
	affiliations := workflow.NewAffiliations(stores.Affiliations, stores.Users, assignments)
	requests := workflow.NewRequests(stores.Requests, stores.Assets, stores.Assignments, affiliations)
	payments := workflow.NewPayments(stores.Payments, stores.Packages, stores.Users)

	authHandler := &handlers.AuthHandler{Users: stores.Users, Packages: stores.Packages, Guard: guard, JWTExpiration: jwtExpiration}
	assetHandler := &handlers.AssetHandler{Guard: guard, Ledger: ledger}
	requestHandler := &handlers.RequestHandler{Guard: guard, Requests: requests, Hub: wsHub}
	assignmentHandler := &handlers.AssignmentHandler{Guard: guard, Assignments: assignments, Hub: wsHub}
	affiliationHandler := &handlers.AffiliationHandler{Guard: guard, Affiliations: affiliations}
	billingHandler := &handlers.BillingHandler{Guard: guard, Payments: payments}
	statsHandler := &handlers.StatsHandler{Guard: guard, Assets: stores.Assets, Requests: stores.Requests}
	companyHandler := &handlers.CompanyHandler{Guard: guard, Users: stores.Users, Uploader: s3Uploader}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		apiV1.GET("/packages", billingHandler.GetPackages)

		authenticated := apiV1.Group("/")
		authenticated.Use(middleware.Authenticate())
		{
			authenticated.GET("/me", authHandler.Me)
		}

		hr := apiV1.Group("/")
		hr.Use(middleware.Authenticate())
		hr.Use(middleware.Authorize(models.RoleHR))
		{
			assets := hr.Group("/assets")
			{
				assets.POST("/", assetHandler.CreateAsset)
				assets.GET("/", assetHandler.GetAssets)
				assets.GET("/:id", assetHandler.GetAssetByID)
				assets.PUT("/:id", assetHandler.UpdateAsset)
				assets.DELETE("/:id", assetHandler.DeleteAsset)
			}

			hr.GET("/requests", requestHandler.GetRequests)
			hr.PATCH("/requests/:id/approve", requestHandler.ApproveRequest)
			hr.PATCH("/requests/:id/reject", requestHandler.RejectRequest)

			hr.GET("/assigned-assets", assignmentHandler.GetAssignedAssets)

			hr.GET("/employee-affiliations", affiliationHandler.GetEmployees)
			hr.DELETE("/employee-affiliations/:email", affiliationHandler.RemoveEmployee)

			hr.GET("/stats", statsHandler.GetStats)
			hr.GET("/payments", billingHandler.GetPayments)
			hr.POST("/payments/confirm", billingHandler.ConfirmPayment)
			hr.POST("/company/logo", companyHandler.UploadLogo)
		}

		employee := apiV1.Group("/")
		employee.Use(middleware.Authenticate())
		employee.Use(middleware.Authorize(models.RoleEmployee))
		{
			employee.GET("/catalog/assets", assetHandler.BrowseCatalog)
			employee.POST("/requests", requestHandler.CreateRequest)
			employee.GET("/my-requests", requestHandler.GetMyRequests)
			employee.GET("/my-assets", assignmentHandler.GetMyAssets)
			employee.PATCH("/assigned-assets/:id/return", assignmentHandler.ReturnAsset)
		}
	}

	return router
}
