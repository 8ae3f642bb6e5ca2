package entries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/vfg2006/ads-finance-api/infrastructure/repository"
	"github.com/vfg2006/ads-finance-api/internal/domain"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-finance-api/pkg/log"
)

// ManualEntryRequest é o payload de funil digitado pelo operador. O campo
// Revenue é o nome externo do conceito: internamente ele é gravado sob o nome
// canônico conversion_value, que é o único lido pela agregação.
type ManualEntryRequest struct {
	ProductID   string  `json:"product_id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Visits      int64   `json:"visits"`
	Checkouts   int64   `json:"checkouts"`
	Conversions float64 `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	Refunds     float64 `json:"refunds"`
	Currency    string  `json:"currency"`
}

// AdditionalCostRequest é o payload de custo avulso do operador
type AdditionalCostRequest struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// GoalRequest é o payload de metas mensais do operador
type GoalRequest struct {
	Month        string  `json:"month"` // YYYY-MM
	RevenueGoal  float64 `json:"revenue_goal"`
	ProfitGoal   float64 `json:"profit_goal"`
	SpendCeiling float64 `json:"spend_ceiling"`
}

// EntryService recebe os dados digitados pelo operador: funil diário, custos
// avulsos e metas mensais
type EntryService interface {
	// SaveManualEntry reconcilia o funil digitado com a mesma chave
	// (produto, data) usada pela ingestão, sem anular os campos de anúncio
	SaveManualEntry(userID int, req *ManualEntryRequest) error
	// GetDailyMetric retorna a linha consolidada (anúncio + funil) de um
	// produto em uma data, para conferência do que ficou gravado após o merge
	GetDailyMetric(userID int, productID, date string) (*domain.DailyMetric, error)
	CreateAdditionalCost(userID int, req *AdditionalCostRequest) (*domain.AdditionalCost, error)
	ListAdditionalCosts(userID int, startDate, endDate string) ([]*domain.AdditionalCost, error)
	DeleteAdditionalCost(userID int, id int64) error
	SaveGoal(userID int, req *GoalRequest) error
	GetGoal(userID int, month string) (*domain.FinancialGoal, error)
}

type Service struct {
	productRepo repository.ProductRepository
	metricRepo  repository.DailyMetricRepository
	costRepo    repository.AdditionalCostRepository
	goalRepo    repository.FinancialGoalRepository
}

func NewService(
	productRepo repository.ProductRepository,
	metricRepo repository.DailyMetricRepository,
	costRepo repository.AdditionalCostRepository,
	goalRepo repository.FinancialGoalRepository,
) EntryService {
	return &Service{
		productRepo: productRepo,
		metricRepo:  metricRepo,
		costRepo:    costRepo,
		goalRepo:    goalRepo,
	}
}

func (s *Service) SaveManualEntry(userID int, req *ManualEntryRequest) error {
	if req.ProductID == "" {
		return NewEntryError(ErrProductIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return NewProductEntryError(ErrInvalidDate, apiErrors.ErrInvalidDate, req.ProductID, req.Date)
	}

	// A entrada manual nunca cria produto: o produto precisa existir e
	// pertencer ao usuário
	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		return NewProductEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.ProductID, err.Error())
	}

	if product == nil || product.UserID != userID {
		return NewProductEntryError(ErrProductNotFound, apiErrors.ErrProductNotFound, req.ProductID, "")
	}

	currency := req.Currency
	if currency == "" {
		currency = product.Currency
	}

	entry := &domain.FunnelEntry{
		ProductID:       product.ID,
		Date:            date,
		Visits:          req.Visits,
		Checkouts:       req.Checkouts,
		Conversions:     req.Conversions,
		ConversionValue: req.Revenue, // renomeação canônica: revenue -> conversion_value
		Refunds:         req.Refunds,
		Currency:        currency,
	}

	if err := s.metricRepo.UpsertFunnel(entry); err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"product_id": product.ID,
			"date":       req.Date,
		}).Error("entrada manual: falha ao gravar funil")

		return NewProductEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.ProductID, err.Error())
	}

	return nil
}

func (s *Service) GetDailyMetric(userID int, productID, date string) (*domain.DailyMetric, error) {
	if productID == "" {
		return nil, NewEntryError(ErrProductIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, NewProductEntryError(ErrInvalidDate, apiErrors.ErrInvalidDate, productID, date)
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, NewProductEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, err.Error())
	}

	if product == nil || product.UserID != userID {
		return nil, NewProductEntryError(ErrProductNotFound, apiErrors.ErrProductNotFound, productID, "")
	}

	metric, err := s.metricRepo.GetByProductAndDate(productID, day)
	if err != nil {
		return nil, NewProductEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, err.Error())
	}

	if metric == nil {
		return nil, NewProductEntryError(ErrMetricNotFound, apiErrors.ErrMetricNotFound, productID, date)
	}

	return metric, nil
}

func (s *Service) CreateAdditionalCost(userID int, req *AdditionalCostRequest) (*domain.AdditionalCost, error) {
	if req.Description == "" {
		return nil, NewEntryError(ErrDescriptionMissing, apiErrors.ErrMissingRequiredData, "")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, NewEntryError(ErrInvalidDate, apiErrors.ErrInvalidDate, req.Date)
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	cost := &domain.AdditionalCost{
		UserID:      userID,
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    currency,
	}

	created, err := s.costRepo.Create(cost)
	if err != nil {
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return created, nil
}

func (s *Service) ListAdditionalCosts(userID int, startDate, endDate string) ([]*domain.AdditionalCost, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, NewEntryError(ErrInvalidDate, apiErrors.ErrInvalidDate, startDate)
	}

	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, NewEntryError(ErrInvalidDate, apiErrors.ErrInvalidDate, endDate)
	}

	costs, err := s.costRepo.GetByUserAndDateRange(userID, start, end)
	if err != nil {
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return costs, nil
}

func (s *Service) DeleteAdditionalCost(userID int, id int64) error {
	err := s.costRepo.Delete(userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewEntryError(ErrCostNotFound, apiErrors.ErrCostNotFound, "")
		}

		return NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return nil
}

func (s *Service) SaveGoal(userID int, req *GoalRequest) error {
	if _, err := time.Parse(domain.MonthKeyLayout, req.Month); err != nil {
		return NewEntryError(ErrInvalidMonth, apiErrors.ErrInvalidDate, req.Month)
	}

	goal := &domain.FinancialGoal{
		UserID:       userID,
		Month:        req.Month,
		RevenueGoal:  req.RevenueGoal,
		ProfitGoal:   req.ProfitGoal,
		SpendCeiling: req.SpendCeiling,
	}

	if err := s.goalRepo.SaveOrUpdate(goal); err != nil {
		return NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return nil
}

func (s *Service) GetGoal(userID int, month string) (*domain.FinancialGoal, error) {
	if _, err := time.Parse(domain.MonthKeyLayout, month); err != nil {
		return nil, NewEntryError(ErrInvalidMonth, apiErrors.ErrInvalidDate, month)
	}

	goal, err := s.goalRepo.GetByUserAndMonth(userID, month)
	if err != nil {
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return goal, nil
}
