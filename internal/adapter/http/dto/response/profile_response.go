package response

import (
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

type ProfileResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Approved bool   `json:"approved"`
	Role     string `json:"role"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Approved: p.Approved,
		Role:     p.Role,
	}
}
