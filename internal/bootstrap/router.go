package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	analyticshttp "github.com/ecotrack-iot/ecotrack-backend/internal/analytics/http"
	analyticsservice "github.com/ecotrack-iot/ecotrack-backend/internal/analytics/service"
	httpapi "github.com/ecotrack-iot/ecotrack-backend/internal/api/http"
	"github.com/ecotrack-iot/ecotrack-backend/internal/api/http/middleware"
	"github.com/ecotrack-iot/ecotrack-backend/internal/auth"
	authhttp "github.com/ecotrack-iot/ecotrack-backend/internal/auth/http"
	devicehttp "github.com/ecotrack-iot/ecotrack-backend/internal/devices/http"
	devicerepo "github.com/ecotrack-iot/ecotrack-backend/internal/devices/repository"
	iddomain "github.com/ecotrack-iot/ecotrack-backend/internal/identity/domain"
	identityrepo "github.com/ecotrack-iot/ecotrack-backend/internal/identity/repository"
	pickuphttp "github.com/ecotrack-iot/ecotrack-backend/internal/pickups/http"
	pickuprepo "github.com/ecotrack-iot/ecotrack-backend/internal/pickups/repository"
	pickupservice "github.com/ecotrack-iot/ecotrack-backend/internal/pickups/service"
	"github.com/ecotrack-iot/ecotrack-backend/internal/storage/postgres"
	wastehttp "github.com/ecotrack-iot/ecotrack-backend/internal/waste/http"
	wasterepo "github.com/ecotrack-iot/ecotrack-backend/internal/waste/repository"
	wasteservice "github.com/ecotrack-iot/ecotrack-backend/internal/waste/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Redis       *redis.Client
	Tokens      *auth.TokenIssuer
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	userRepo := identityrepo.NewUserRepository(dep.DB)
	deviceRepo := devicerepo.NewDeviceRepository(dep.DB)
	ledgerRepo := wasterepo.NewLedgerRepository(dep.DB)
	rewardRepo := wasterepo.NewRewardRepository(dep.DB)
	pickupRepo := pickuprepo.NewPickupRepository(dep.DB)

	ingestService := wasteservice.NewIngestService(
		postgres.TxDB{DB: dep.DB}, deviceRepo, userRepo, ledgerRepo, rewardRepo, pickupRepo,
	)
	pickupService := pickupservice.NewPickupService(pickupRepo)
	analyticsService := analyticsservice.NewAnalyticsService(ledgerRepo, userRepo, dep.Redis)

	wasteHandler := wastehttp.New(ingestService, ledgerRepo, rewardRepo)

	api := r.Group("/api")

	authhttp.New(userRepo, dep.Tokens).Register(api.Group("/auth"))

	// Device telemetry has no credentials in the current design; see the
	// ingestion handler.
	wasteHandler.RegisterDevice(api.Group("/device"))

	authed := api.Group("")
	authed.Use(auth.RequireAuth(dep.Tokens, userRepo))

	household := authed.Group("/household")
	household.Use(auth.RequireRole(iddomain.RoleHousehold))
	wasteHandler.RegisterHousehold(household)

	worker := authed.Group("/worker")
	worker.Use(auth.RequireRole(iddomain.RoleWorker))
	pickuphttp.New(pickupService).Register(worker)

	admin := authed.Group("/admin")
	admin.Use(auth.RequireRole(iddomain.RoleAdmin))
	analyticshttp.New(analyticsService).Register(admin)
	devicehttp.New(deviceRepo).RegisterAdmin(admin)

	return r
}
