package usecase

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	// branchSuffix disambiguates a refactor branch name that is already taken.
	branchSuffix func() string
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients:      clients,
		branchSuffix: randomSuffix,
	}
}

func randomSuffix() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
