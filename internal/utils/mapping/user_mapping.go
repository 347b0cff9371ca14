package mapping

import (
	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/SscSPs/shopbooks/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		Email:        d.Email,
		LastLogin:    d.LastLogin,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		Email:        m.Email,
		LastLogin:    m.LastLogin,
		CreatedAt:    m.CreatedAt,
	}
}
