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

var ErrInvalidSellerInput = errors.New("invalid seller input")

// ISellerUseCase exposes seller registration and admin KYC verification.
// Sellers register unverified; an admin flips KYCVerified after reviewing
// their documents (document upload itself lives outside this service).

type ISellerUseCase interface {
	Register(ctx context.Context, name, email, school string) (entities.Seller, error)
	GetByID(ctx context.Context, id string) (entities.Seller, error)
	VerifyKYC(ctx context.Context, id string) (entities.Seller, error)
}

type SellerUseCase struct {
	repo interfaces.ISellerRepository
}

var _ ISellerUseCase = (*SellerUseCase)(nil)

func NewSellerUseCase(repo interfaces.ISellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

func (u *SellerUseCase) Register(ctx context.Context, name, email, school string) (entities.Seller, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	school = strings.TrimSpace(school)
	if name == "" || email == "" || school == "" {
		return entities.Seller{}, ErrInvalidSellerInput
	}

	now := time.Now().UTC()
	s := entities.Seller{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		School:      school,
		KYCVerified: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, s)
}

func (u *SellerUseCase) GetByID(ctx context.Context, id string) (entities.Seller, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Seller{}, ErrSellerNotFound
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Seller{}, err
	}
	if s.ID == "" {
		return entities.Seller{}, ErrSellerNotFound
	}
	return s, nil
}

func (u *SellerUseCase) VerifyKYC(ctx context.Context, id string) (entities.Seller, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Seller{}, ErrSellerNotFound
	}

	updated, err := u.repo.SetKYCVerified(ctx, id, true)
	if err != nil {
		return entities.Seller{}, err
	}
	if updated.ID == "" {
		return entities.Seller{}, ErrSellerNotFound
	}
	log.Printf("[seller][usecase] kyc verified seller_id=%s", id)
	return updated, nil
}
