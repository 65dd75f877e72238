package store

import (
	"fmt"
	"sync"

	"github.com/trufaria/storefront-backend/internal/entity"
	"github.com/trufaria/storefront-backend/internal/validate"
)

// Accounts is the in-memory account collection, seeded with the two
// built-in roles. Passwords are stored and compared as given; this is
// a documented weakness of the storefront, kept rather than redesigned.
type Accounts struct {
	mu       sync.RWMutex
	accounts []entity.Account
	nextID   int
}

func NewAccounts() *Accounts {
	a := &Accounts{nextID: 1}
	for _, acc := range []entity.Account{
		{Name: "admin", Password: "123456", Role: "admin", Email: "admin@email.com", Phone: "123456789"},
		{Name: "user", Password: "123456", Role: "user", Email: "user@email.com", Phone: "987654321"},
	} {
		acc.ID = a.nextID
		a.nextID++
		a.accounts = append(a.accounts, acc)
	}
	return a
}

// Authenticate matches name and password against the stored accounts.
// The failure is a single generic kind so callers cannot tell which of
// the two fields was wrong.
func (a *Accounts) Authenticate(name, password string) (entity.Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, acc := range a.accounts {
		if acc.Name == name && acc.Password == password {
			return acc, nil
		}
	}
	return entity.Account{}, fmt.Errorf("login for %q: %w", name, ErrAuthFailed)
}

// Register adds a new account with the "user" role. Name and email
// must both be unused.
func (a *Accounts) Register(name, password, email, fullName, phone string) (entity.Account, error) {
	if !validate.Registration(name, password, email) {
		return entity.Account{}, fmt.Errorf("registration: %w", ErrInvalidInput)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, acc := range a.accounts {
		if acc.Name == name || acc.Email == email {
			return entity.Account{}, fmt.Errorf("account %q: %w", name, ErrConflict)
		}
	}

	acc := entity.Account{
		ID:       a.nextID,
		Name:     name,
		Password: password,
		Email:    email,
		FullName: fullName,
		Phone:    phone,
		Role:     "user",
	}
	a.nextID++
	a.accounts = append(a.accounts, acc)
	return acc, nil
}
