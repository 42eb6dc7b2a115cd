package infra

import (
	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/infra/lock"
	"github.com/secmon-lab/refacto/pkg/repository/memory"
)

// Clients bundles the external dependencies of the use cases. Unset clients
// fall back to in-process implementations where one exists.
type Clients struct {
	github     interfaces.GitHub
	rewriter   interfaces.Rewriter
	locker     interfaces.Locker
	deliveries interfaces.DeliveryGuard
	repository interfaces.ConfigRepository
	bqClient   interfaces.BigQuery
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		locker:     lock.NewKeyedMutex(),
		deliveries: lock.NewMemoryDeliveryGuard(lock.DeliveryTTL),
		repository: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Rewriter() interfaces.Rewriter {
	return x.rewriter
}
func (x *Clients) Locker() interfaces.Locker {
	return x.locker
}
func (x *Clients) DeliveryGuard() interfaces.DeliveryGuard {
	return x.deliveries
}
func (x *Clients) ConfigRepository() interfaces.ConfigRepository {
	return x.repository
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithRewriter(client interfaces.Rewriter) Option {
	return func(x *Clients) {
		x.rewriter = client
	}
}

func WithLocker(locker interfaces.Locker) Option {
	return func(x *Clients) {
		x.locker = locker
	}
}

func WithDeliveryGuard(guard interfaces.DeliveryGuard) Option {
	return func(x *Clients) {
		x.deliveries = guard
	}
}

func WithConfigRepository(repo interfaces.ConfigRepository) Option {
	return func(x *Clients) {
		x.repository = repo
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
