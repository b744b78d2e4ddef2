package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"campus_trade/internal/domain/entities"
	"campus_trade/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductInput = errors.New("invalid product input")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrSellerNotFound      = errors.New("seller not found")
	ErrSellerNotVerified   = errors.New("seller has not completed KYC")
)

// CreateListingInput carries everything needed to post a product.

type CreateListingInput struct {
	Name          string
	Description   string
	Price         float64
	Condition     entities.ProductCondition
	Media         []string
	School        string
	SellerID      string
	CategoryID    string
	SubCategoryID string
}

// IProductUseCase exposes listing operations.
//
// Listings are always created pending; only a verified posting-fee payment
// or an explicit admin override changes that.

type IProductUseCase interface {
	CreateListing(ctx context.Context, in CreateListingInput) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	ListApprovedBySellerID(ctx context.Context, sellerID string) ([]entities.Product, error)
	Approve(ctx context.Context, id string) (entities.Product, error)
	Reject(ctx context.Context, id string) (entities.Product, error)
}

type ProductUseCase struct {
	repo       interfaces.IProductRepository
	sellers    interfaces.ISellerRepository
	categories interfaces.ICategoryRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, sellers interfaces.ISellerRepository, categories interfaces.ICategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, sellers: sellers, categories: categories}
}

func (u *ProductUseCase) CreateListing(ctx context.Context, in CreateListingInput) (entities.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.School = strings.TrimSpace(in.School)
	if in.Name == "" || in.Description == "" || in.School == "" {
		return entities.Product{}, ErrInvalidProductInput
	}
	if in.Price < 0 {
		return entities.Product{}, ErrInvalidAmount
	}
	if in.Condition != entities.ProductConditionUsed && in.Condition != entities.ProductConditionNew {
		return entities.Product{}, ErrInvalidProductInput
	}
	if len(in.Media) == 0 {
		return entities.Product{}, ErrInvalidProductInput
	}

	category, err := u.categories.GetCategoryByID(ctx, strings.TrimSpace(in.CategoryID))
	if err != nil {
		return entities.Product{}, err
	}
	if category.ID == "" {
		return entities.Product{}, ErrCategoryNotFound
	}

	sub, err := u.categories.GetSubcategoryByID(ctx, strings.TrimSpace(in.SubCategoryID))
	if err != nil {
		return entities.Product{}, err
	}
	if sub.ID == "" || sub.CategoryID != category.ID {
		return entities.Product{}, ErrSubcategoryNotFound
	}

	seller, err := u.sellers.GetByID(ctx, strings.TrimSpace(in.SellerID))
	if err != nil {
		return entities.Product{}, err
	}
	if seller.ID == "" {
		return entities.Product{}, ErrSellerNotFound
	}
	if !seller.KYCVerified {
		return entities.Product{}, ErrSellerNotVerified
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Condition:       in.Condition,
		Media:           in.Media,
		School:          in.School,
		SellerID:        seller.ID,
		SubCategoryID:   sub.ID,
		SubCategoryName: sub.Name,
		Status:          entities.ProductStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	log.Printf("[product][usecase] listing created product_id=%s seller_id=%s status=%s", created.ID, created.SellerID, created.Status)
	return created, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrProductNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// List returns the public catalog: approved listings only. Pending and
// rejected products are reachable by id for the payment and moderation flows.
func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterApproved(products), nil
}

func filterApproved(products []entities.Product) []entities.Product {
	approved := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if p.Status == entities.ProductStatusApproved {
			approved = append(approved, p)
		}
	}
	return approved
}

func (u *ProductUseCase) ListApprovedBySellerID(ctx context.Context, sellerID string) ([]entities.Product, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return nil, ErrSellerNotFound
	}

	products, err := u.repo.ListBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return filterApproved(products), nil
}

// Approve is the admin override path; unlike payment confirmation it may
// flip a product out of not_approved.
func (u *ProductUseCase) Approve(ctx context.Context, id string) (entities.Product, error) {
	return u.moderate(ctx, id, entities.ProductStatusApproved)
}

func (u *ProductUseCase) Reject(ctx context.Context, id string) (entities.Product, error) {
	return u.moderate(ctx, id, entities.ProductStatusNotApproved)
}

func (u *ProductUseCase) moderate(ctx context.Context, id string, status entities.ProductStatus) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrProductNotFound
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	log.Printf("[product][usecase] moderation applied product_id=%s status=%s", id, status)
	return updated, nil
}
