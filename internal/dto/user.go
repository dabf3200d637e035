package dto

import (
	"time"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create an account.
type CreateUserRequest struct {
	Username  string  `json:"username" binding:"required,min=3,max=64"`
	Password  string  `json:"password" binding:"required,min=8"`
	Role      string  `json:"role" binding:"required,role"`
	CarrierID *string `json:"carrierID"` // required for the transporteur role
}

// UserResponse defines the user data exposed by the API.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CarrierID *string   `json:"carrierID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Role:      string(u.Role),
		CarrierID: u.CarrierID,
		CreatedAt: u.CreatedAt,
		CreatedBy: u.CreatedBy,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}

// MenuResponse lists the navigation entries visible to the caller.
type MenuResponse struct {
	Role  string   `json:"role"`
	Items []string `json:"items"`
}

// ToMenuResponse builds the menu of role.
func ToMenuResponse(role domain.Role) MenuResponse {
	items := domain.MenuFor(role)
	resp := MenuResponse{Role: string(role), Items: make([]string, len(items))}
	for i, item := range items {
		resp.Items[i] = string(item)
	}
	return resp
}
