package controllers

import (
	"errors"
	"net/http"

	"github.com/emberandoak/storefront-core/api/responses"
	"github.com/emberandoak/storefront-core/pkg/config"
	"github.com/emberandoak/storefront-core/pkg/localstore"
	"github.com/emberandoak/storefront-core/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes the storage capability with a read. ErrNotFound
// counts as healthy; only transport failures degrade readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, storage localstore.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		status := "ready"
		httpStatus := http.StatusOK
		if storage != nil {
			if _, err := storage.Read(r.Context(), "readiness-probe"); err != nil && !errors.Is(err, localstore.ErrNotFound) {
				status = "degraded"
				httpStatus = http.StatusServiceUnavailable
				if logg != nil {
					logg.Error(r.Context(), "health.storage_unreachable", err)
				}
			}
		}

		responses.WriteSuccessStatus(w, httpStatus, map[string]string{
			"status":  status,
			"backend": cfg.Storage.Backend,
		})
	}
}
