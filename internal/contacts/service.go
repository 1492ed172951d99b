package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"wrenchbill/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contacts
type Repository interface {
	List(ctx context.Context) ([]Contact, error)
	Save(ctx context.Context, contacts []Contact) error
}

var (
	ErrNameRequired    = errors.New("customer name is required")
	ErrInvalidPhone    = errors.New("phone number is not valid")
	ErrInvalidEmail    = errors.New("email address is not valid")
	ErrContactRequired = errors.New("a phone number or email address is required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type AddParams struct {
	Name  string
	Phone string
	Email string
}

// Add validates and appends a new contact. A present-but-invalid phone or
// email rejects the whole contact even when the other field would satisfy
// the at-least-one rule.
func (s *Service) Add(ctx context.Context, params AddParams) (*Contact, error) {
	name := validate.Sanitize(params.Name)
	phone := validate.Sanitize(params.Phone)
	email := validate.Sanitize(params.Email)

	if name == "" {
		return nil, ErrNameRequired
	}

	if phone != "" && !validate.Phone(phone) {
		return nil, ErrInvalidPhone
	}

	if email != "" && !validate.Email(email) {
		return nil, ErrInvalidEmail
	}

	if phone == "" && email == "" {
		return nil, ErrContactRequired
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	c := Contact{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := s.repo.Save(ctx, append(existing, c)); err != nil {
		return nil, fmt.Errorf("saving contacts: %w", err)
	}

	return &c, nil
}

// Search filters contacts by case-insensitive substring match on the name.
// An empty term returns everything.
func (s *Service) Search(ctx context.Context, term string) ([]Contact, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	if term == "" {
		return all, nil
	}

	needle := strings.ToLower(term)

	matched := make([]Contact, 0, len(all))

	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			matched = append(matched, c)
		}
	}

	return matched, nil
}
