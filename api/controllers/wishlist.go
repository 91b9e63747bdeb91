package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emberandoak/storefront-core/api/responses"
	"github.com/emberandoak/storefront-core/api/validators"
	"github.com/emberandoak/storefront-core/internal/catalog"
	"github.com/emberandoak/storefront-core/internal/wishlist"
	"github.com/emberandoak/storefront-core/pkg/enums"
	pkgerrors "github.com/emberandoak/storefront-core/pkg/errors"
	"github.com/emberandoak/storefront-core/pkg/logger"
)

type wishlistResponse struct {
	Entries []wishlist.Entry `json:"entries"`
	Count   int              `json:"count"`
}

// WishlistFetch returns the current collection.
func WishlistFetch(store *wishlist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := store.Entries(r.Context())
		if entries == nil {
			entries = []wishlist.Entry{}
		}
		responses.WriteSuccess(w, wishlistResponse{
			Entries: entries,
			Count:   len(entries),
		})
	}
}

type wishlistAddRequest struct {
	Product catalog.Product `json:"product" validate:"required"`
	Size    string          `json:"size"`
	Color   string          `json:"color"`
	Source  string          `json:"source"`
}

func parseWishlistSource(raw string) (enums.WishlistSource, error) {
	if raw == "" {
		return enums.WishlistSourceCard, nil
	}
	return enums.ParseWishlistSource(raw)
}

// WishlistAdd appends the product; duplicates by product id are no-ops.
func WishlistAdd(store *wishlist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req wishlistAddRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		source, err := parseWishlistSource(req.Source)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown wishlist source"))
			return
		}

		store.Add(r.Context(), req.Product, wishlist.AddOptions{
			Size:   req.Size,
			Color:  req.Color,
			Source: source,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"id":    req.Product.ID,
			"count": store.Count(r.Context()),
		})
	}
}

// WishlistToggle flips membership and reports the resulting state.
func WishlistToggle(store *wishlist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req wishlistAddRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		source, err := parseWishlistSource(req.Source)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown wishlist source"))
			return
		}

		present := store.Toggle(r.Context(), req.Product, wishlist.AddOptions{
			Size:   req.Size,
			Color:  req.Color,
			Source: source,
		})
		responses.WriteSuccess(w, map[string]any{
			"id":      req.Product.ID,
			"present": present,
		})
	}
}

// WishlistRemove deletes the entry for the product id; absent ids still
// return success.
func WishlistRemove(store *wishlist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")
		store.Remove(r.Context(), productID)
		responses.WriteSuccess(w, map[string]string{"id": productID})
	}
}

// WishlistClear empties the collection.
func WishlistClear(store *wishlist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Clear(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
