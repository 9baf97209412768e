package domain

import "errors"

const (
	RoleAdmin  = "admin"
	RoleEvent  = "event"
	RoleClient = "client"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailInUse = errors.New("email already in use")
var ErrNoSession = errors.New("no active session")

// Account models a registered actor in the system. Exactly one admin account
// exists, identified by a fixed sentinel email; every registration produces a
// client account. Accounts are never updated or deleted after creation.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Image        string `json:"image"`
	PasswordHash string `json:"-"`
}
