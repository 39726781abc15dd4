package routes

import (
	"log"
	_ "motoshop/docs" // This will be auto-generated
	"motoshop/internal/adapter/http/handlers"
	repository2 "motoshop/internal/adapter/persistence/repository"
	"motoshop/internal/infrastructure/database"
	"motoshop/internal/infrastructure/payments"
	"motoshop/internal/usecase"
	"motoshop/internal/usecase/interfaces"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	bayRepo := repository2.NewBayDynamoRepository(ddb)
	configRepo := repository2.NewLoyaltyConfigDynamoRepository(ddb)

	staff := usecase.NewStaffMatcher(staffUsersFromEnv())
	loyaltyUseCase := usecase.NewLoyaltyUseCase(estimateRepo, configRepo, staff)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, loyaltyUseCase, paymentGateway)
	bayUseCase := usecase.NewBayUseCase(bayRepo, estimateRepo, bayCountFromEnv())

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	loyaltyHandler := handlers.NewLoyaltyHandler(loyaltyUseCase)
	bayHandler := handlers.NewBayHandler(bayUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, estimateHandler, loyaltyHandler, bayHandler)
}

// staffUsersFromEnv reads the comma-separated STAFF_USERS list; staff names
// get the staff discount and never accumulate loyalty points.
func staffUsersFromEnv() []string {
	raw := strings.Split(os.Getenv("STAFF_USERS"), ",")
	users := make([]string, 0, len(raw))
	for _, u := range raw {
		if u = strings.TrimSpace(u); u != "" {
			users = append(users, u)
		}
	}
	return users
}

func bayCountFromEnv() int {
	n, err := strconv.Atoi(os.Getenv("BAY_COUNT"))
	if err != nil || n <= 0 {
		return 0 // use the usecase default
	}
	return n
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
