package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

// RegisterAccount stores the owner of token together with the repositories
// it owns. Registering again refreshes the token and profile.
func (x *UseCase) RegisterAccount(ctx context.Context, token types.GitHubToken) (*model.Account, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	gh := x.clients.GitHub()
	user, err := gh.GetUser(ctx, token)
	if err != nil {
		return nil, err
	}

	now := logging.CtxTime(ctx).UTC()
	account := &model.Account{
		ID:        user.ID,
		Login:     user.Login,
		Token:     token,
		Name:      user.Name,
		Email:     user.Email,
		Company:   user.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	repo := x.clients.ConfigRepository()
	if err := repo.PutAccount(ctx, account); err != nil {
		return nil, err
	}

	repos, err := gh.ListRepositories(ctx, token)
	if err != nil {
		return nil, err
	}
	for _, r := range repos {
		if err := repo.PutRepository(ctx, &model.Repository{
			ID:        r.ID,
			AccountID: account.ID,
			Owner:     r.Owner,
			Name:      r.Name,
			URL:       model.RepositoryAPIURL(r.Owner, r.Name),
		}); err != nil {
			return nil, err
		}
	}

	logging.From(ctx).Info("account registered",
		slog.String("login", account.Login),
		slog.Int("repositories", len(repos)),
	)

	return account, nil
}
