package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/emberandoak/storefront-core/api/responses"
	"github.com/emberandoak/storefront-core/api/validators"
	"github.com/emberandoak/storefront-core/internal/cart"
	"github.com/emberandoak/storefront-core/internal/catalog"
	"github.com/emberandoak/storefront-core/pkg/enums"
	pkgerrors "github.com/emberandoak/storefront-core/pkg/errors"
	"github.com/emberandoak/storefront-core/pkg/logger"
)

type cartResponse struct {
	Items    []cart.LineItem `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Count    int             `json:"count"`
}

// CartFetch returns the current collection with derived totals.
func CartFetch(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		items := store.Items(ctx)
		if items == nil {
			items = []cart.LineItem{}
		}
		responses.WriteSuccess(w, cartResponse{
			Items:    items,
			Subtotal: store.Subtotal(ctx),
			Count:    store.Count(ctx),
		})
	}
}

type cartAddRequest struct {
	Product      catalog.Product     `json:"product" validate:"required"`
	Quantity     int                 `json:"quantity" validate:"min=0"`
	Size         string              `json:"size"`
	Color        string              `json:"color"`
	Pickup       *cart.PickupOptions `json:"pickup"`
	SurpriseGift bool                `json:"surprise_gift"`
}

// CartAdd merges or appends a line and reports which happened.
func CartAdd(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cartAddRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := store.Add(r.Context(), req.Product, cart.AddOptions{
			Quantity:     req.Quantity,
			Size:         req.Size,
			Color:        req.Color,
			Pickup:       req.Pickup,
			SurpriseGift: req.SurpriseGift,
		})

		status := http.StatusCreated
		if result.Merged {
			status = http.StatusOK
		}
		responses.WriteSuccessStatus(w, status, result)
	}
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// CartUpdateQuantity sets a line's quantity; zero removes the line.
func CartUpdateQuantity(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineID := chi.URLParam(r, "lineId")

		var req cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.UpdateQuantity(r.Context(), lineID, req.Quantity)
		responses.WriteSuccess(w, map[string]any{"id": lineID, "quantity": req.Quantity})
	}
}

type cartFulfillmentRequest struct {
	Method string              `json:"method" validate:"required"`
	Pickup *cart.PickupOptions `json:"pickup"`
}

// CartUpdateFulfillment switches one line between pickup and delivery.
func CartUpdateFulfillment(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineID := chi.URLParam(r, "lineId")

		var req cartFulfillmentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParseFulfillmentMethod(req.Method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown fulfillment method"))
			return
		}

		store.UpdateFulfillment(r.Context(), lineID, method, req.Pickup)
		responses.WriteSuccess(w, map[string]string{"id": lineID, "method": method.String()})
	}
}

// CartUpdateAllFulfillment switches every line at once.
func CartUpdateAllFulfillment(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cartFulfillmentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParseFulfillmentMethod(req.Method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown fulfillment method"))
			return
		}

		store.UpdateAllFulfillment(r.Context(), method, req.Pickup)
		responses.WriteSuccess(w, map[string]string{"method": method.String()})
	}
}

// CartRemove deletes one line; absent lines still return success.
func CartRemove(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineID := chi.URLParam(r, "lineId")
		store.Remove(r.Context(), lineID)
		responses.WriteSuccess(w, map[string]string{"id": lineID})
	}
}

// CartClear empties the collection.
func CartClear(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Clear(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
