package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"flicktickets/internal/auth"
	intdb "flicktickets/internal/db"
	"flicktickets/internal/domain"
	"flicktickets/internal/domain/models"
	"flicktickets/internal/repositories"
	"flicktickets/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost used for hashes already in the Users table.
const bcryptCost = 10

type SignupInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Phone    string
}

type LoginResult struct {
	Username string
	Role     string
	Token    string
}

type AuthService struct {
	Users          repositories.UserRepository
	Tokens         *auth.Tokens
	AdminUsernames []string
	RequestID      string
}

func (s AuthService) Signup(ctx context.Context, in SignupInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return domain.ValidationError{Msg: "Name, Username, Email, and Password are required.", Err: domain.ErrMissingField}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return domain.InternalError{Msg: "hash password", Err: err}
	}

	_, err = s.Users.Create(ctx, models.NewUser{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
	})
	if err != nil {
		if intdb.IsDuplicateEntry(err) {
			return domain.ConflictError{Msg: "Username or email already exists.", Err: err}
		}
		return domain.InternalError{Msg: "create user", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "signup", "new user created: "+in.Username)
	return nil
}

// Login checks the password against the stored bcrypt hash. Unknown users
// and wrong passwords fail the same way.
func (s AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, domain.ValidationError{Msg: "Username and password are required.", Err: domain.ErrMissingField}
	}

	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoginResult{}, domain.ErrInvalidCredentials
		}
		return LoginResult{}, domain.InternalError{Msg: "load user", Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	res := LoginResult{Username: user.Username, Role: s.roleFor(user.Username)}
	if s.Tokens != nil {
		token, err := s.Tokens.Issue(user.Username, res.Role)
		if err != nil {
			return LoginResult{}, domain.InternalError{Msg: "issue token", Err: err}
		}
		res.Token = token
	}

	utils.LogEvent(s.RequestID, "auth", "login", "user logged in: "+user.Username)
	return res, nil
}

func (s AuthService) roleFor(username string) string {
	for _, admin := range s.AdminUsernames {
		if strings.EqualFold(admin, username) {
			return auth.RoleAdmin
		}
	}
	return auth.RoleUser
}
