package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/HemanthA0921/Ecommerce-React/models"
	"github.com/HemanthA0921/Ecommerce-React/repository"
	"github.com/HemanthA0921/Ecommerce-React/utils"
)

type RegisterSellerInput struct {
	Username    string
	Email       string
	Password    string
	CompanyName string
	Address     string
}

type RegisterUserInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// AuthService handles registration, login and the seller approval flag.
type AuthService struct {
	sellers   repository.SellerRepository
	users     repository.UserRepository
	jwtSecret string
}

func NewAuthService(sellers repository.SellerRepository, users repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{sellers: sellers, users: users, jwtSecret: jwtSecret}
}

// RegisterSeller creates a seller account with a hashed password. New
// accounts start unapproved.
func (s *AuthService) RegisterSeller(ctx context.Context, in RegisterSellerInput) (*models.Seller, error) {
	if _, err := s.sellers.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check existing seller: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	seller := &models.Seller{
		Username:    in.Username,
		Email:       in.Email,
		Password:    string(hashed),
		CompanyName: in.CompanyName,
		Address:     in.Address,
		IsSeller:    true,
		Products:    []primitive.ObjectID{},
	}
	id, err := s.sellers.Insert(ctx, seller)
	if err != nil {
		return nil, fmt.Errorf("save seller: %w", err)
	}
	seller.ID = id
	seller.Password = ""
	return seller, nil
}

// LoginSeller authenticates a seller and returns the account with a signed
// token. An unknown email and a wrong password fail differently on purpose,
// matching the storefront's expectations.
func (s *AuthService) LoginSeller(ctx context.Context, email, password string) (*models.Seller, string, error) {
	seller, err := s.sellers.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(seller.Password), []byte(password)) != nil {
		return nil, "", ErrBadCredentials
	}
	token, err := utils.GenerateJWT(seller.ID.Hex(), s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	seller.Password = ""
	return seller, token, nil
}

// SetSellerApproval toggles the approval flag and returns the updated seller.
func (s *AuthService) SetSellerApproval(ctx context.Context, id primitive.ObjectID, approved bool) (*models.Seller, error) {
	seller, err := s.sellers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.sellers.SetApproved(ctx, id, approved); err != nil {
		return nil, err
	}
	seller.Approved = approved
	seller.Password = ""
	return seller, nil
}

func (s *AuthService) RegisterUser(ctx context.Context, in RegisterUserInput) (*models.User, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: string(hashed),
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	user.ID = id
	user.Password = ""
	return user, nil
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrBadCredentials
	}
	token, err := utils.GenerateJWT(user.ID.Hex(), s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	user.Password = ""
	return user, token, nil
}
