package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-finance-api/internal/usecases/entries"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-finance-api/pkg/log"
)

// SaveManualEntry grava o funil digitado pelo operador para um (produto, dia).
// A falha retorna o erro estruturado sem descartar o estado do formulário no
// cliente.
func SaveManualEntry(service entries.EntryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req entries.ManualEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SaveManualEntry(userClaims.UserID, &req); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"product_id": req.ProductID,
				"date":       req.Date,
			}).Warn("entrada manual: falha ao salvar")

			writeEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
}

// GetDailyMetric retorna a linha consolidada (anúncio + funil) de um produto
// em uma data. Aceita ?date=YYYY-MM-DD.
func GetDailyMetric(service entries.EntryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		date := r.URL.Query().Get("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro date é obrigatório", nil)
			return
		}

		metric, err := service.GetDailyMetric(userClaims.UserID, productID, date)
		if err != nil {
			writeEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(metric)
	})
}

// CreateAdditionalCost registra um custo avulso do operador
func CreateAdditionalCost(service entries.EntryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req entries.AdditionalCostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		cost, err := service.CreateAdditionalCost(userClaims.UserID, &req)
		if err != nil {
			writeEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(cost)
	})
}

// ListAdditionalCosts lista os custos avulsos de um período
func ListAdditionalCosts(service entries.EntryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")
		if startDate == "" || endDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
			return
		}

		costs, err := service.ListAdditionalCosts(userClaims.UserID, startDate, endDate)
		if err != nil {
			writeEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(costs)
	})
}

// DeleteAdditionalCost remove um custo avulso pelo id (ação de drill-down do
// relatório)
func DeleteAdditionalCost(service entries.EntryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de custo inválido", nil)
			return
		}

		if err := service.DeleteAdditionalCost(userClaims.UserID, id); err != nil {
			writeEntryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// SaveGoal grava as metas do mês (upsert em (usuário, mês))
func SaveGoal(service entries.EntryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req entries.GoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.Month = httprouter.ParamsFromContext(r.Context()).ByName("month")

		if err := service.SaveGoal(userClaims.UserID, &req); err != nil {
			writeEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
}

// GetGoal retorna as metas do mês informado
func GetGoal(service entries.EntryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		month := httprouter.ParamsFromContext(r.Context()).ByName("month")

		goal, err := service.GetGoal(userClaims.UserID, month)
		if err != nil {
			writeEntryError(w, err)
			return
		}

		if goal == nil {
			apiErrors.WriteError(w, apiErrors.ErrGoalNotFound, "Nenhuma meta definida para o mês", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goal)
	})
}

func writeEntryError(w http.ResponseWriter, err error) {
	var entryErr *entries.EntryError
	if errors.As(err, &entryErr) {
		apiErrors.WriteError(w, entryErr.Code, entryErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar entrada", nil)
}
