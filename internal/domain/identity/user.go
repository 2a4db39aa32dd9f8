package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
)

// Role separates storefront customers from staff.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User is an account holder. Passwords are stored as bcrypt hashes only.
type User struct {
	shared.BaseEntity
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:16;not null;default:CUSTOMER" json:"role"`
}

// TableName implements gorm's Tabler
func (User) TableName() string { return "users" }

// NewUser hashes the password and creates a customer account
func NewUser(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, shared.NewInvalidInputError("name is required")
	}
	if email == "" {
		return nil, shared.NewInvalidInputError("email is required")
	}
	if len(password) < 8 {
		return nil, shared.NewInvalidInputError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleCustomer,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetPassword validates and rehashes a replacement password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewInvalidInputError("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// Promote grants the admin role
func (u *User) Promote() {
	u.Role = RoleAdmin
	u.Touch()
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
