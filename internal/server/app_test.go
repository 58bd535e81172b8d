package server

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/presskit/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = config.MemoryDSN
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.MetricsAddr = "127.0.0.1:0"
	c.BcryptCost = 4
	return c
}

func TestNewApp_MemoryStore(t *testing.T) {
	var out bytes.Buffer
	app, err := NewApp(context.Background(), memoryConfig(), &out)
	require.NoError(t, err)

	svc := app.Services()
	assert.NotNil(t, svc.Accounts)
	assert.NotNil(t, svc.PressKits)
	assert.NotNil(t, svc.Media)
	assert.Nil(t, app.db)
	assert.NoError(t, app.healthCheck(context.Background()))
	assert.Contains(t, out.String(), "in-memory store")
}

func TestNewApp_OpenError(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(string) (*sql.DB, error) { return nil, errors.New("bad dsn") }

	c := memoryConfig()
	c.DatabaseDSN = "postgres://nowhere"

	_, err := NewApp(context.Background(), c, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestHealthCheck_PingsDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := &App{db: db}

	mock.ExpectPing()
	assert.NoError(t, app.healthCheck(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.Error(t, app.healthCheck(context.Background()))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	var out bytes.Buffer
	app, err := NewApp(context.Background(), memoryConfig(), &out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
}
