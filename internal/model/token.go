package model

import "github.com/google/uuid"

// TokenManager issues and validates access tokens for the private API.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
}
