package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/cmd"
	httpadapter "github.com/PortzApp/portzapp-web-sub002/internal/adapters/in/http"
	"github.com/PortzApp/portzapp-web-sub002/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateReconcileOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.ServerHandlers{
		PlaceOrder:         app.CreatePlaceOrderCommandHandler(),
		AcceptGroup:        app.CreateAcceptOrderGroupCommandHandler(),
		RejectGroup:        app.CreateRejectOrderGroupCommandHandler(),
		StartGroup:         app.CreateStartOrderGroupCommandHandler(),
		CompleteGroup:      app.CreateCompleteOrderGroupCommandHandler(),
		DeleteGroup:        app.CreateDeleteOrderGroupCommandHandler(),
		UpdateGroupService: app.CreateUpdateOrderGroupServiceCommandHandler(),
		CreateService:      app.CreateCreateServiceCommandHandler(),
		CreateVessel:       app.CreateCreateVesselCommandHandler(),
		ApproveJoin:        app.CreateApproveJoinRequestCommandHandler(),
		RejectJoin:         app.CreateRejectJoinRequestCommandHandler(),
		WithdrawJoin:       app.CreateWithdrawJoinRequestCommandHandler(),
		GetOrders:          app.CreateGetOrdersForActorQueryHandler(),
		GetOrderGroups:     app.CreateGetOrderGroupsForOrganizationQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
