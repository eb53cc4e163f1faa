package converter

import (
	"mdent-api/internal/delivery/dto"
	"mdent-api/internal/domain/entity"
)

// UserToResponse converts a User entity to its public profile DTO. The
// password hash never leaves the entity layer.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		BranchID:  user.BranchID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
