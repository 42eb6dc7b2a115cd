package sqlstore_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/repository/sqlstore"
	"github.com/secmon-lab/refacto/pkg/repository/testhelper"
	"github.com/secmon-lab/refacto/pkg/utils/testutil"
)

func newSQLiteStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	dsn := "file:" + url.QueryEscape(t.Name()) +
		"?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	store := gt.R1(sqlstore.Open(context.Background(), sqlstore.DriverSQLite, types.DatabaseDSN(dsn))).NoError(t)
	t.Cleanup(func() { gt.NoError(t, store.Close()) })

	gt.NoError(t, store.Migrate())
	return store
}

func TestSQLiteConfigRepository(t *testing.T) {
	testhelper.TestAll(t, newSQLiteStore(t))
}

func TestPostgresConfigRepository(t *testing.T) {
	dsn := testutil.GetEnvOrSkip(t, "TEST_POSTGRES_DSN")

	store := gt.R1(sqlstore.Open(context.Background(), sqlstore.DriverPostgres, types.DatabaseDSN(dsn))).NoError(t)
	t.Cleanup(func() { gt.NoError(t, store.Close()) })
	gt.NoError(t, store.Migrate())

	testhelper.TestAll(t, store)
}

func TestMigrateTwice(t *testing.T) {
	store := newSQLiteStore(t)
	gt.NoError(t, store.Migrate())
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := sqlstore.Open(context.Background(), sqlstore.Driver("mysql"), "dsn")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}
