package controllers

import (
	"net/http"

	"github.com/emberandoak/storefront-core/api/responses"
	"github.com/emberandoak/storefront-core/api/validators"
	"github.com/emberandoak/storefront-core/internal/catalog"
	"github.com/emberandoak/storefront-core/pkg/enums"
	pkgerrors "github.com/emberandoak/storefront-core/pkg/errors"
	"github.com/emberandoak/storefront-core/pkg/logger"
)

type optionGroupsRequest struct {
	Product  catalog.Product   `json:"product" validate:"required"`
	Variants []catalog.Variant `json:"variants"`
}

type optionGroupsResponse struct {
	Groups           []catalog.OptionGroup `json:"groups"`
	InitialVariantID string                `json:"initial_variant_id"`
}

// CatalogOptionGroups builds the selectable option groups for a product
// and its variant family.
func CatalogOptionGroups(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req optionGroupsRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		family := catalog.Family(req.Product, req.Variants)
		responses.WriteSuccess(w, optionGroupsResponse{
			Groups:           catalog.BuildOptionGroups(family),
			InitialVariantID: catalog.InitialVariantID(req.Product),
		})
	}
}

type resolveRequest struct {
	Product  catalog.Product   `json:"product" validate:"required"`
	Variants []catalog.Variant `json:"variants"`
	Axis     string            `json:"axis" validate:"required"`
	Value    string            `json:"value" validate:"required"`
}

type resolveResponse struct {
	VariantID string `json:"variant_id"`
}

// CatalogResolve maps one selected option value to its variant id.
func CatalogResolve(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resolveRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		axis, err := enums.ParseOptionAxis(req.Axis)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown option axis"))
			return
		}

		family := catalog.Family(req.Product, req.Variants)
		groups := catalog.BuildOptionGroups(family)

		variantID, err := catalog.ResolveVariant(groups, family, axis, req.Value)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resolveResponse{VariantID: variantID})
	}
}
