package memory_test

import (
	"testing"

	"github.com/secmon-lab/refacto/pkg/repository/memory"
	"github.com/secmon-lab/refacto/pkg/repository/testhelper"
)

func TestMemoryConfigRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
