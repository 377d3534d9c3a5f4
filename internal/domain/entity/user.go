// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's role in the WorkTrack system.
type Role string

const (
	// RoleAdmin manages users, roles and all records.
	RoleAdmin Role = "admin"
	// RoleOperator runs reports and edits prices in the calculator.
	RoleOperator Role = "operator"
	// RoleWorker owns work records and a personal rate per work type.
	RoleWorker Role = "worker"
)

// IsValidRole reports whether the role is one of the known roles.
func IsValidRole(role Role) bool {
	return role == RoleAdmin || role == RoleOperator || role == RoleWorker
}

// User represents a user in the WorkTrack system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values. New accounts start as
// workers; an admin promotes them afterwards.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         RoleWorker,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
