//go:build integration

package sqlrepo_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_api/internal/app"
	"hotel_api/internal/domain"
	"hotel_api/internal/storage/sqlrepo"
)

func TestRepo_MySQL_RoundTrip(t *testing.T) {
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root"},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	serverDSN := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/?parseTime=true&loc=UTC", hostPort)

	var server *sql.DB
	if err := pool.Retry(func() error {
		var e error
		server, e = sql.Open("mysql", serverDSN)
		if e != nil {
			return e
		}
		return server.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = server.Close() })

	ctx := context.Background()
	created, err := sqlrepo.CreateDatabase(ctx, server, sqlrepo.MySQL, "hotel_db")
	require.NoError(t, err)
	assert.True(t, created)
	created, err = sqlrepo.CreateDatabase(ctx, server, sqlrepo.MySQL, "hotel_db")
	require.NoError(t, err)
	assert.False(t, created)

	db, err := sql.Open("mysql", fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/hotel_db?parseTime=true&loc=UTC", hostPort))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlrepo.New(db, sqlrepo.MySQL)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx), "schema creation is idempotent")

	n, err := app.NewSeedService(repo, nil).Reseed(ctx, app.SeedHotels)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	one, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Anataya Hotel", one[0].Name)

	date := "2023-05-20"
	byDate, err := repo.SearchByDate(ctx, &date)
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	none, err := repo.SearchByDate(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, none, 0)

	name, price := "Test", 100.0
	h, err := repo.Insert(ctx, domain.NewHotel{Name: &name, Price: &price, DoingTime: "2024-03-09 08:05:07"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), h.ID)
	assert.Equal(t, 100.0, h.Price)

	_, err = repo.Insert(ctx, domain.NewHotel{Price: &price, DoingTime: "2024-03-09 08:05:07"})
	assert.Error(t, err, "NOT NULL name")

	d := domain.Summarize(append(all, h))
	assert.Equal(t, "Mirana Beach Hotel", *d.Price.High)
	assert.Equal(t, "Test", *d.Price.Low)
}
