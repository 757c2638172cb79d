package services

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rutvikm/agri-price-be/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// AccountServiceProvider defines the interface for account services.
type AccountServiceProvider interface {
	Register(username, password, district, market string) (models.Account, error)
	Authenticate(username, password string) (models.Account, error)
}

// AccountService provides registration and login over the accounts table.
type AccountService struct {
	db *sql.DB
}

// NewAccountService creates a new AccountService.
func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{db: db}
}

// Register creates a new account, hashing the password. The username
// pre-check gives a friendly duplicate error; the UNIQUE constraint on the
// table catches the race where two registrations of the same name slip past
// the check concurrently, and is surfaced the same way.
func (s *AccountService) Register(username, password, district, market string) (models.Account, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(1) FROM accounts WHERE username = ?", username).Scan(&count); err != nil {
		return models.Account{}, err
	}
	if count > 0 {
		return models.Account{}, ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		District:     district,
		Market:       market,
	}

	_, err = s.db.Exec(
		"INSERT INTO accounts(id, username, password_hash, district, market) VALUES(?, ?, ?, ?, ?)",
		account.ID, account.Username, account.PasswordHash, account.District, account.Market,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, ErrDuplicateUsername
		}
		return models.Account{}, err
	}

	account.PasswordHash = ""
	return account, nil
}

// Authenticate verifies a username/password pair and returns the matching
// account. Unknown usernames and wrong passwords fail identically.
func (s *AccountService) Authenticate(username, password string) (models.Account, error) {
	var account models.Account
	row := s.db.QueryRow(
		"SELECT id, username, password_hash, district, market FROM accounts WHERE username = ?", username)
	err := row.Scan(&account.ID, &account.Username, &account.PasswordHash, &account.District, &account.Market)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Account{}, ErrInvalidCredentials
		}
		return models.Account{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return models.Account{}, ErrInvalidCredentials
	}

	account.PasswordHash = ""
	return account, nil
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
