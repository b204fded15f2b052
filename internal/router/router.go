package router

import (
	"database/sql"
	"errors"
	"net/http"

	"boi-na-nuvem/internal/adapters/capabilities/plansfeatures"
	mem "boi-na-nuvem/internal/adapters/storage/memory"
	pg "boi-na-nuvem/internal/adapters/storage/postgres"
	_ "boi-na-nuvem/internal/docs"
	"boi-na-nuvem/internal/domain/animals"
	"boi-na-nuvem/internal/domain/buyers"
	"boi-na-nuvem/internal/domain/display"
	"boi-na-nuvem/internal/domain/employees"
	"boi-na-nuvem/internal/domain/plans"
	"boi-na-nuvem/internal/domain/properties"
	"boi-na-nuvem/internal/middleware"
	"boi-na-nuvem/internal/platform/idgen"
	"boi-na-nuvem/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Plans es el servicio de planes (backend REST). nil => sin /plans.
	Plans plans.Lister

	// IDs compartido por todos los servicios. nil => uno nuevo.
	IDs *idgen.Generator

	Logger   *zap.Logger
	Registry *prometheus.Registry // nil => registry propio
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	ids := opts.IDs
	if ids == nil {
		ids = idgen.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)

	metrics, err := middleware.NewMetrics(reg)
	var already prometheus.AlreadyRegisteredError
	switch {
	case err == nil:
		r.Use(metrics.Handler)
	case errors.As(err, &already):
		log.Warn("http metrics already registered, skipping")
	default:
		log.Error("http metrics disabled", zap.Error(err))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		animalRepo   animals.Repository
		buyerRepo    buyers.Repository
		employeeRepo employees.Repository
		propertyRepo properties.Repository
	)

	if opts.DB != nil {
		animalRepo = pg.NewAnimalsRepo(opts.DB)
		buyerRepo = pg.NewBuyersRepo(opts.DB)
		employeeRepo = pg.NewEmployeesRepo(opts.DB)
		propertyRepo = pg.NewPropertiesRepo(opts.DB)
	} else {
		animalRepo = mem.NewAnimalRepo()
		buyerRepo = mem.NewBuyerRepo()
		employeeRepo = mem.NewEmployeeRepo()
		propertyRepo = mem.NewPropertyRepo()
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo, ids)
	buyersSvc := buyers.NewService(buyerRepo, ids)
	employeesSvc := employees.NewService(employeeRepo, ids)
	propertiesSvc := properties.NewService(propertyRepo, ids)

	// Rutas por módulo
	if opts.Plans != nil {
		plans.RegisterRoutes(r, opts.Plans, plansfeatures.NewResolver(opts.Plans))
	}
	animals.RegisterRoutes(r, animalsSvc)
	buyers.RegisterRoutes(r, buyersSvc)
	employees.RegisterRoutes(r, employeesSvc)
	properties.RegisterRoutes(r, propertiesSvc)
	display.RegisterRoutes(r)

	return r
}
