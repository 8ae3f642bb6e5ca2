package products

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/vfg2006/ads-finance-api/infrastructure/repository"
	"github.com/vfg2006/ads-finance-api/internal/domain"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-finance-api/pkg/log"
	"github.com/vfg2006/ads-finance-api/pkg/utils"
)

// CreateProductRequest é o payload de criação manual de produto (ofertas que
// não chegam pela ingestão automática)
type CreateProductRequest struct {
	Name         string `json:"name"`
	CampaignName string `json:"campaign_name"`
	Currency     string `json:"currency"`
}

type ProductService interface {
	ListProducts(userID int, includeHidden bool) ([]*domain.Product, error)
	GetProduct(userID int, id string) (*domain.Product, error)
	CreateProduct(userID int, req *CreateProductRequest) (*domain.Product, error)
	UpdateProduct(userID int, req *domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(userID int, id string) error
}

type Service struct {
	productRepo repository.ProductRepository
}

func NewService(productRepo repository.ProductRepository) ProductService {
	return &Service{
		productRepo: productRepo,
	}
}

func (s *Service) ListProducts(userID int, includeHidden bool) ([]*domain.Product, error) {
	products, err := s.productRepo.ListByUser(userID, includeHidden)
	if err != nil {
		return nil, NewProductError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return products, nil
}

func (s *Service) GetProduct(userID int, id string) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, NewProductErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if product == nil || product.UserID != userID {
		return nil, NewProductErrorWithID(ErrProductNotFound, apiErrors.ErrProductNotFound, id, "")
	}

	return product, nil
}

func (s *Service) CreateProduct(userID int, req *CreateProductRequest) (*domain.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewProductError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	// Produtos manuais também vivem na chave (user_id, campaign_name): sem
	// campanha informada, o próprio nome cumpre o papel
	campaignName := req.CampaignName
	if campaignName == "" {
		campaignName = req.Name
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewProductError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	product := &domain.Product{
		ID:           id,
		UserID:       userID,
		Name:         req.Name,
		CampaignName: campaignName,
		Currency:     currency,
		Platform:     domain.PlatformManual,
		Status:       domain.ProductStatusActive,
		Hidden:       false,
		AccountName:  domain.UnknownAccountName,
		MCCName:      domain.NoGroupName,
	}

	created, err := s.productRepo.FindOrCreate(product)
	if err != nil {
		log.L.WithError(err).WithField("campaign_name", campaignName).
			Error("produto: falha ao criar produto manual")

		return nil, NewProductError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return created, nil
}

func (s *Service) UpdateProduct(userID int, req *domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.GetProduct(userID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Status != nil {
		if *req.Status != domain.ProductStatusActive && *req.Status != domain.ProductStatusPaused {
			return nil, NewProductErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, req.ID, *req.Status)
		}
		product.Status = *req.Status
	}

	if req.Hidden != nil {
		product.Hidden = *req.Hidden
	}

	if req.AccountName != nil {
		product.AccountName = *req.AccountName
	}

	if req.MCCName != nil {
		product.MCCName = *req.MCCName
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, NewProductErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.ID, err.Error())
	}

	return product, nil
}

func (s *Service) DeleteProduct(userID int, id string) error {
	err := s.productRepo.Delete(userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewProductErrorWithID(ErrProductNotFound, apiErrors.ErrProductNotFound, id, "")
		}

		return NewProductErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	return nil
}
