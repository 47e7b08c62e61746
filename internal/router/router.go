package router

import (
	"database/sql"
	"net/http"
	"os"
	"strings"

	"med-tracker/internal/adapters/auth/static"
	mem "med-tracker/internal/adapters/storage/memory"
	pg "med-tracker/internal/adapters/storage/postgres"
	"med-tracker/internal/domain/catalog"
	"med-tracker/internal/domain/family"
	"med-tracker/internal/domain/inventory"
	"med-tracker/internal/domain/orders"
	"med-tracker/internal/domain/plans"
	"med-tracker/internal/domain/reminders"
	"med-tracker/internal/domain/selection"
	"med-tracker/internal/middleware"
	"med-tracker/internal/platform/logger"
	"med-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Verifier externo (IAM remoto). Si es nil y Sessions tampoco viene,
	// queda el modo dev por headers X-Debug-*.
	Verifier auth.SessionVerifier

	// Sessions emite y verifica tokens localmente (credenciales bcrypt).
	Sessions *static.Store

	// Opcional: si viene, usa Postgres para inventario/reminders/familia/
	// órdenes. Si no, in-memory. Catálogo y selección son memory siempre.
	DB *sql.DB

	// Catálogo ya cargado. Si es nil se carga desde CATALOG_PATH
	// (paths separados por coma).
	Catalog *catalog.Service

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	verifier := opts.Verifier
	if verifier == nil && opts.Sessions != nil {
		verifier = opts.Sessions
	}
	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	catalogSvc := opts.Catalog
	if catalogSvc == nil {
		catalogSvc = loadCatalogFromEnv(log)
	}

	var (
		inventoryRepo inventory.Repository
		remindersRepo reminders.Repository
		familyRepo    family.Repository
		ordersRepo    orders.Repository
	)

	// Sin DB explícita, intenta por env (dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"err": err.Error()})
			}
		}
	}

	if db != nil {
		inventoryRepo = pg.NewInventoryRepo(db)
		remindersRepo = pg.NewRemindersRepo(db)
		familyRepo = pg.NewFamilyRepo(db)
		ordersRepo = pg.NewOrdersRepo(db)
	} else {
		inventoryRepo = mem.NewInventoryRepo()
		remindersRepo = mem.NewRemindersRepo()
		familyRepo = mem.NewFamilyRepo()
		ordersRepo = mem.NewOrdersRepo()
	}

	selectionRepo := mem.NewSelectionRepo()

	// Services por módulo
	selectionSvc := selection.NewService(selectionRepo)
	inventorySvc := inventory.NewService(inventoryRepo)
	remindersSvc := reminders.NewService(remindersRepo, inventorySvc)
	familySvc := family.NewService(familyRepo)
	ordersSvc := orders.NewService(ordersRepo)

	var upgrader plans.RoleUpgrader
	if opts.Sessions != nil {
		upgrader = opts.Sessions
	}
	plansSvc := plans.NewService(upgrader)

	// Rutas por módulo
	if opts.Sessions != nil {
		static.RegisterRoutes(r, opts.Sessions)
	}
	catalog.RegisterRoutes(r, catalogSvc, selectionSvc)
	selection.RegisterRoutes(r, selectionSvc, catalogSvc)
	inventory.RegisterRoutes(r, inventorySvc)
	reminders.RegisterRoutes(r, remindersSvc)
	family.RegisterRoutes(r, familySvc)
	orders.RegisterRoutes(r, ordersSvc, selectionSvc)
	plans.RegisterRoutes(r, plansSvc)

	return r
}

// loadCatalogFromEnv carga y mergea los CSVs de CATALOG_PATH.
// Un catálogo que falla se saltea con warning: el sistema sigue con los
// que cargaron, incluso cero.
func loadCatalogFromEnv(log logger.Logger) *catalog.Service {
	paths := strings.Split(os.Getenv("CATALOG_PATH"), ",")

	loaded := make([][]catalog.MedicationRecord, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		recs, err := catalog.LoadFile(p)
		if err != nil {
			log.Warn("catalog skipped", map[string]any{"path": p, "err": err.Error()})
			continue
		}
		loaded = append(loaded, recs)
	}

	svc := catalog.NewService(catalog.Merge(loaded...))
	log.Info("catalog loaded", map[string]any{"records": svc.Len()})
	return svc
}
