package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mendly/mendly-backend/internal/domain/entity"
	repo "github.com/mendly/mendly-backend/internal/domain/repository"
	"github.com/mendly/mendly-backend/internal/infrastructure/tokencache"
	"github.com/mendly/mendly-backend/pkg/helpers"
	"github.com/mendly/mendly-backend/pkg/mailer"
	"github.com/mendly/mendly-backend/pkg/mailer/templates"
)

// PrincipalService owns signup, login and bearer-token resolution for both
// users and admins. Cache and Pub are optional.
type PrincipalService struct {
	Repo    repo.PrincipalRepository
	Hasher  *helpers.PasswordHasher
	Tokens  helpers.TokenIssuer
	Cache   tokencache.Cache
	Pub     EventPublisher
	Logger  *logrus.Logger
	AppName string
}

func NewPrincipalService(repo repo.PrincipalRepository, hasher *helpers.PasswordHasher, tokens helpers.TokenIssuer, cache tokencache.Cache, pub EventPublisher, logger *logrus.Logger, appName string) *PrincipalService {
	return &PrincipalService{
		Repo:    repo,
		Hasher:  hasher,
		Tokens:  tokens,
		Cache:   cache,
		Pub:     pub,
		Logger:  logger,
		AppName: appName,
	}
}

// NewPrincipal is the signup input. Email is ignored for admins.
type NewPrincipal struct {
	Kind     entity.Kind
	Name     string
	Email    string
	Password string
}

func (s *PrincipalService) CreateUser(ctx context.Context, username, email, password string) (*entity.Principal, error) {
	return s.Create(ctx, NewPrincipal{Kind: entity.KindUser, Name: username, Email: email, Password: password})
}

func (s *PrincipalService) CreateAdmin(ctx context.Context, adminname, password string) (*entity.Principal, error) {
	return s.Create(ctx, NewPrincipal{Kind: entity.KindAdmin, Name: adminname, Password: password})
}

// Create hashes the password, issues the access token and persists the
// principal. A taken name yields entity.ErrConflict.
func (s *PrincipalService) Create(ctx context.Context, in NewPrincipal) (*entity.Principal, error) {
	if !in.Kind.Valid() {
		return nil, fmt.Errorf("unknown principal kind %q", in.Kind)
	}
	if in.Name == "" {
		return nil, &FieldError{Field: in.Kind.NameField(), Message: "is required"}
	}
	if in.Kind == entity.KindUser && in.Email == "" {
		return nil, &FieldError{Field: "email", Message: "is required"}
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		switch {
		case errors.Is(err, helpers.ErrEmptyPassword):
			return nil, &FieldError{Field: "password", Message: "is required"}
		case errors.Is(err, helpers.ErrPasswordTooLong):
			return nil, &FieldError{Field: "password", Message: "must be at most 72 bytes"}
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	token, err := s.Tokens.Issue()
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	p := &entity.Principal{
		Kind:         in.Kind,
		Name:         in.Name,
		PasswordHash: hash,
		AccessToken:  token,
	}
	if in.Kind == entity.KindUser {
		p.Email = in.Email
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log().WithFields(logrus.Fields{"kind": p.Kind, "id": p.ID, "name": p.Name}).Info("principal created")
	s.cache(ctx, p)
	s.publishWelcome(ctx, p)
	return p, nil
}

// Login checks name and password. Both an unknown name and a wrong password
// return ErrInvalidCredentials after exactly one bcrypt comparison.
func (s *PrincipalService) Login(ctx context.Context, kind entity.Kind, name, password string) (*entity.Principal, error) {
	p, err := s.Repo.FindByName(ctx, kind, name)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			s.Hasher.CompareDummy(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find %s: %w", kind, err)
	}
	if !s.Hasher.Compare(p.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return p, nil
}

// Authenticate resolves a bearer token against principals of the given kind
// only. A user token never authorizes an admin route and vice versa.
func (s *PrincipalService) Authenticate(ctx context.Context, kind entity.Kind, token string) (*entity.Principal, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	if s.Cache != nil {
		p, ok, err := s.Cache.Get(ctx, kind, token)
		if err != nil {
			s.log().WithError(err).WithField("kind", kind).Warn("token cache lookup failed")
		} else if ok {
			return p, nil
		}
	}

	p, err := s.Repo.FindByToken(ctx, kind, token)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find %s by token: %w", kind, err)
	}
	s.cache(ctx, p)
	return p, nil
}

func (s *PrincipalService) List(ctx context.Context, kind entity.Kind) ([]entity.Principal, error) {
	return s.Repo.List(ctx, kind)
}

// ListByToken returns the principals holding token: zero or one record.
func (s *PrincipalService) ListByToken(ctx context.Context, kind entity.Kind, token string) ([]entity.Principal, error) {
	p, err := s.Repo.FindByToken(ctx, kind, token)
	if errors.Is(err, entity.ErrNotFound) {
		return []entity.Principal{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []entity.Principal{*p}, nil
}

func (s *PrincipalService) Ping(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}

func (s *PrincipalService) cache(ctx context.Context, p *entity.Principal) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, p); err != nil {
		s.log().WithError(err).WithField("kind", p.Kind).Warn("token cache write failed")
	}
}

func (s *PrincipalService) publishWelcome(ctx context.Context, p *entity.Principal) {
	if s.Pub == nil || p.Kind != entity.KindUser || p.Email == "" {
		return
	}
	data := templates.NewWelcomeData(s.AppName, p.Name, p.Email, templates.WithTime(p.CreatedAt))
	job := mailer.EmailJob{To: p.Email, Template: templates.Welcome, Data: templates.ToMap(data)}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		s.log().WithError(err).WithField("id", p.ID).Warn("failed to publish welcome email")
	}
}

func (s *PrincipalService) log() *logrus.Logger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}
