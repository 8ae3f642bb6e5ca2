package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-finance-api/internal/domain"
	"github.com/vfg2006/ads-finance-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-finance-api/pkg/log"
	"github.com/vfg2006/ads-finance-api/pkg/utils"
)

// IncomeReport retorna o DRE do intervalo: buckets diários, totais e projeção.
// Aceita ?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD&currency=BRL.
func IncomeReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		query := r.URL.Query()

		if query.Get("start_date") == "" || query.Get("end_date") == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
			return
		}

		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "start_date inválida, esperado YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "end_date inválida, esperado YYYY-MM-DD", nil)
			return
		}

		filters := &domain.ReportFilters{
			StartDate: startDate,
			EndDate:   endDate,
			Currency:  strings.ToUpper(query.Get("currency")),
		}

		report, err := service.IncomeReport(userClaims.UserID, filters)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"start_date": query.Get("start_date"),
				"end_date":   query.Get("end_date"),
			}).Warn("relatório: falha ao montar DRE")

			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

// AccumulatedReport retorna a série acumulada do mês com a reta de ritmo
// ideal da meta. Aceita ?month=YYYY-MM&currency=BRL.
func AccumulatedReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := userFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		month := r.URL.Query().Get("month")
		currency := strings.ToUpper(r.URL.Query().Get("currency"))

		report, err := service.AccumulatedReport(userClaims.UserID, month, currency)
		if err != nil {
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

func writeReportError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao montar relatório", nil)
}
