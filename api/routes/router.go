package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emberandoak/storefront-core/api/controllers"
	"github.com/emberandoak/storefront-core/api/middleware"
	"github.com/emberandoak/storefront-core/internal/cart"
	"github.com/emberandoak/storefront-core/internal/wishlist"
	"github.com/emberandoak/storefront-core/pkg/config"
	"github.com/emberandoak/storefront-core/pkg/localstore"
	"github.com/emberandoak/storefront-core/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	storage localstore.Storage,
	cartStore *cart.Store,
	wishlistStore *wishlist.Store,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, storage))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Post("/options", controllers.CatalogOptionGroups(logg))
			r.Post("/resolve", controllers.CatalogResolve(logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartStore, logg))
			r.Post("/", controllers.CartAdd(cartStore, logg))
			r.Delete("/", controllers.CartClear(cartStore, logg))
			r.Patch("/fulfillment", controllers.CartUpdateAllFulfillment(cartStore, logg))
			r.Route("/{lineId}", func(r chi.Router) {
				r.Delete("/", controllers.CartRemove(cartStore, logg))
				r.Patch("/quantity", controllers.CartUpdateQuantity(cartStore, logg))
				r.Patch("/fulfillment", controllers.CartUpdateFulfillment(cartStore, logg))
			})
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistFetch(wishlistStore, logg))
			r.Post("/", controllers.WishlistAdd(wishlistStore, logg))
			r.Delete("/", controllers.WishlistClear(wishlistStore, logg))
			r.Post("/toggle", controllers.WishlistToggle(wishlistStore, logg))
			r.Delete("/{productId}", controllers.WishlistRemove(wishlistStore, logg))
		})
	})

	return r
}
