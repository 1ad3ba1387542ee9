package dto

import (
	"time"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Username string      `json:"username" binding:"required,min=3"`
	Password string      `json:"password" binding:"required,min=8"`
	Name     string      `json:"name" binding:"required"`
	Role     domain.Role `json:"role" binding:"required,oneof=ADMIN OWNER SUPERVISOR FOREMAN"`
	Phone    string      `json:"phone"`
}

// UpdateUserRequest defines the data allowed for editing a user.
type UpdateUserRequest struct {
	Name     *string      `json:"name"`
	Role     *domain.Role `json:"role" binding:"omitempty,oneof=ADMIN OWNER SUPERVISOR FOREMAN"`
	Phone    *string      `json:"phone"`
	Password *string      `json:"password" binding:"omitempty,min=8"`
	IsActive *bool        `json:"isActive"`
}

// UserResponse defines the data returned for a user. The password hash
// never leaves the service layer.
type UserResponse struct {
	UserID    string      `json:"userID"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	Phone     string      `json:"phone"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Phone:     u.Phone,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converts a slice of users.
func ToUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
