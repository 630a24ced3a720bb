// Package container holds the components built once in main and shared by
// the router modules. It is passed explicitly; there are no package globals.
package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mendly/mendly-backend/config"
	"github.com/mendly/mendly-backend/internal/application"
	"github.com/mendly/mendly-backend/internal/domain/repository"
	"github.com/mendly/mendly-backend/internal/infrastructure/tokencache"
	"github.com/mendly/mendly-backend/pkg/helpers"
)

type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	// Only PGPool is mandatory in production.
	PGPool *pgxpool.Pool
	Redis  *redis.Client

	Principals  repository.PrincipalRepository
	Assignments repository.AssignmentRepository

	Hasher     *helpers.PasswordHasher
	Tokens     helpers.TokenIssuer
	TokenCache tokencache.Cache            // nil disables caching
	Events     application.EventPublisher  // nil disables welcome emails
	Search     application.AssignmentIndex // nil disables search

	closers []func()
}

func New(cfg *config.Config, logger *logrus.Logger) *Container {
	return &Container{Config: cfg, Logger: logger, Tokens: helpers.RandomTokenIssuer{}}
}

// OnClose registers fn to run on Close, in reverse order.
func (c *Container) OnClose(fn func()) {
	c.closers = append(c.closers, fn)
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func (c *Container) PrincipalService() *application.PrincipalService {
	return application.NewPrincipalService(c.Principals, c.Hasher, c.Tokens, c.TokenCache, c.Events, c.Logger, c.Config.AppName)
}

func (c *Container) AssignmentService() *application.AssignmentService {
	return application.NewAssignmentService(c.Assignments, c.Search, c.Logger)
}
