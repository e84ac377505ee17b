package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/cataloging"
)

func ListProducts(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar produtos")
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

func CreateProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProduct")

		var request domain.ProductRequest
		if !decodeBody(w, r, &request) {
			return
		}

		product, err := service.CreateProduct(r.Context(), &request)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar produto")
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, product)
	})
}

func AddVariant(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddVariant")

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.VariantRequest
		if !decodeBody(w, r, &request) {
			return
		}

		variant, err := service.AddVariant(r.Context(), productID, &request)
		if err != nil {
			logrus.WithError(err).WithField("product_id", productID).Error("Erro ao adicionar variante")
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, variant)
	})
}

func DeleteProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProduct")

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProduct(r.Context(), productID); err != nil {
			logrus.WithError(err).WithField("product_id", productID).Error("Erro ao excluir produto")
			writeCatalogError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListCosts(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		costs, err := service.ListCosts(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar custos")
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, costs)
	})
}

func UpsertCost(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertCost")

		var request domain.ProductCostRequest
		if !decodeBody(w, r, &request) {
			return
		}

		cost, err := service.UpsertCost(r.Context(), &request)
		if err != nil {
			logrus.WithError(err).WithField("product_id", request.ProductID).Error("Erro ao salvar custo")
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cost)
	})
}
