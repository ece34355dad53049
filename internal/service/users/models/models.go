package models

import (
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
)

// RegisterUserRequest запрос на регистрацию пользователя
type RegisterUserRequest struct {
	Email      string  `json:"email"`
	Name       *string `json:"name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

// SignInRequest данные пользователя от провайдера идентификации
type SignInRequest struct {
	Email string
	Name  *string
	Image *string
}

// UserResponse пользователь в ответе API
type UserResponse struct {
	ID         int64   `json:"id"`
	Email      string  `json:"email"`
	Name       *string `json:"name,omitempty"`
	Image      *string `json:"image,omitempty"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	CreatedAt  string  `json:"createdAt"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// FromDomainUser конвертирует доменного пользователя в модель ответа
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Image:      u.Image,
		Role:       u.Role,
		Department: u.Department,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainUserList конвертирует список доменных пользователей
func FromDomainUserList(users []*domain.User) *UserListResponse {
	result := &UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
		Total: len(users),
	}
	for _, u := range users {
		result.Users = append(result.Users, *FromDomainUser(u))
	}
	return result
}
