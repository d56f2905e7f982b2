package model

import "errors"

// ErrNotFound is returned by stores when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidPIN is returned when share PIN verification fails for any
// reason, including unknown users and credential lookup errors. Callers
// must not distinguish the causes.
var ErrInvalidPIN = errors.New("invalid pin")

// ErrEmailTaken is returned on signup when the email is already registered.
var ErrEmailTaken = errors.New("email is already taken")

// ErrPINFormat is returned when a PIN being set is not 4 to 6 digits.
var ErrPINFormat = errors.New("pin must be 4 to 6 digits")

// ErrInvalidCredentials is returned on signin with a wrong email or password.
var ErrInvalidCredentials = errors.New("invalid credentials")
