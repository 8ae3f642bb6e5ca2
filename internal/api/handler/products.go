package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-finance-api/internal/domain"
	"github.com/vfg2006/ads-finance-api/internal/usecases/products"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
)

// ListProducts lista os produtos do usuário; ?include_hidden=true inclui os
// ocultos
func ListProducts(service products.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		includeHidden := r.URL.Query().Get("include_hidden") == "true"

		list, err := service.ListProducts(userClaims.UserID, includeHidden)
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	})
}

// GetProduct retorna um produto pelo id
func GetProduct(service products.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.GetProduct(userClaims.UserID, id)
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(product)
	})
}

// CreateProduct cria um produto manual (oferta fora da ingestão automática)
func CreateProduct(service products.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req products.CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		product, err := service.CreateProduct(userClaims.UserID, &req)
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(product)
	})
}

// UpdateProduct atualiza os campos mutáveis do produto (nome, status, oculto e
// rótulos de agrupamento)
func UpdateProduct(service products.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.UpdateProduct(userClaims.UserID, &req)
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(product)
	})
}

// DeleteProduct remove o produto e, por cascata, as métricas diárias dele
func DeleteProduct(service products.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProduct(userClaims.UserID, id); err != nil {
			writeProductError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeProductError(w http.ResponseWriter, err error) {
	var productErr *products.ProductError
	if errors.As(err, &productErr) {
		apiErrors.WriteError(w, productErr.Code, productErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar produto", nil)
}
