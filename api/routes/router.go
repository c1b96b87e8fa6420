package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/islandtracker/islandtracker-backend/api/controllers"
	"github.com/islandtracker/islandtracker-backend/api/middleware"
	"github.com/islandtracker/islandtracker-backend/api/responses"
	"github.com/islandtracker/islandtracker-backend/internal/ads"
	"github.com/islandtracker/islandtracker-backend/internal/articles"
	"github.com/islandtracker/islandtracker-backend/internal/auth"
	"github.com/islandtracker/islandtracker-backend/internal/islands"
	"github.com/islandtracker/islandtracker-backend/internal/users"
	"github.com/islandtracker/islandtracker-backend/internal/visits"
	"github.com/islandtracker/islandtracker-backend/pkg/config"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
	"github.com/islandtracker/islandtracker-backend/pkg/logger"
	"github.com/islandtracker/islandtracker-backend/pkg/metrics"
	"github.com/islandtracker/islandtracker-backend/pkg/redis"
)

// Dependencies carries everything the HTTP layer needs. Redis and Replays are
// nil when no redis endpoint is configured.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       controllers.Pinger
	Replays     redis.ReplayStore
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics

	Auth     auth.Service
	Users    users.Service
	Islands  islands.Service
	Visits   visits.Service
	Articles articles.Service
	Ads      ads.Service
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(deps.HTTPMetrics),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Not Found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Not Found"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	if deps.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}))
	}

	authn := middleware.Auth(deps.Auth, logg)
	admin := middleware.RequireAdmin(logg)
	idem := middleware.Idempotency(deps.Replays, logg)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(deps.Auth, logg))
		r.Post("/login", controllers.AuthLogin(deps.Auth, logg))

		r.Get("/islands", controllers.IslandsList(deps.Islands, logg))
		r.Get("/islands/{islandID}", controllers.IslandsGet(deps.Islands, logg))
		r.Get("/blog", controllers.BlogList(deps.Articles, true, logg))
		r.Get("/blog/{slug}", controllers.BlogGetBySlug(deps.Articles, logg))
		r.Get("/featured/islands", controllers.FeaturedIslands(deps.Islands, logg))
		r.Get("/featured/articles", controllers.FeaturedArticles(deps.Articles, logg))
		r.Get("/ads", controllers.AdsList(deps.Ads, logg))
		r.Get("/ads/{adID}", controllers.AdsGet(deps.Ads, logg))

		r.Group(func(r chi.Router) {
			r.Use(authn)

			r.Get("/users/me", controllers.UsersMe(logg))
			r.Get("/islands/visited", controllers.IslandsVisited(deps.Visits, logg))
			r.Get("/visits/user", controllers.VisitsForUser(deps.Visits, logg))
			r.With(idem).Post("/visits", controllers.VisitsCreate(deps.Visits, logg))
			r.With(admin, idem).Post("/islands", controllers.IslandsCreate(deps.Islands, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authn, admin)

			r.Get("/users", controllers.AdminUsersList(deps.Users, logg))
			r.Put("/users/{userID}", controllers.AdminUsersSetAdmin(deps.Users, logg))

			r.Route("/islands", func(r chi.Router) {
				r.Get("/", controllers.IslandsList(deps.Islands, logg))
				r.With(idem).Post("/", controllers.IslandsCreate(deps.Islands, logg))
				r.Get("/{islandID}", controllers.IslandsGet(deps.Islands, logg))
				r.Put("/{islandID}", controllers.IslandsUpdate(deps.Islands, logg))
				r.Delete("/{islandID}", controllers.IslandsDelete(deps.Islands, logg))
			})

			r.Route("/blog", func(r chi.Router) {
				r.Get("/", controllers.BlogList(deps.Articles, false, logg))
				r.With(idem).Post("/", controllers.AdminBlogCreate(deps.Articles, logg))
				r.Get("/{articleID}", controllers.AdminBlogGet(deps.Articles, logg))
				r.Put("/{articleID}", controllers.AdminBlogUpdate(deps.Articles, logg))
				r.Delete("/{articleID}", controllers.AdminBlogDelete(deps.Articles, logg))
			})

			r.Route("/ads", func(r chi.Router) {
				r.Get("/", controllers.AdminAdsList(deps.Ads, logg))
				r.With(idem).Post("/", controllers.AdminAdsCreate(deps.Ads, logg))
				r.Get("/{adID}", controllers.AdminAdsGet(deps.Ads, logg))
				r.Put("/{adID}", controllers.AdminAdsUpdate(deps.Ads, logg))
				r.Delete("/{adID}", controllers.AdminAdsDelete(deps.Ads, logg))
			})
		})
	})

	return r
}
