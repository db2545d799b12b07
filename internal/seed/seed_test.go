package seed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/apiclient"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/config"
)

type execFunc func(ctx context.Context, sql string) error

func (f execFunc) ExecSQL(ctx context.Context, sql string) error { return f(ctx, sql) }

func writeSQL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mock_data.sql")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func messages(logs *observer.ObservedLogs) []string {
	var out []string
	for _, e := range logs.All() {
		out = append(out, e.Message)
	}
	return out
}

func TestRunSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var got string
	exec := execFunc(func(_ context.Context, sql string) error {
		got = sql
		return nil
	})

	err := FromPath(exec, writeSQL(t, "INSERT INTO operators(name) VALUES ('A');"), zap.New(core)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO operators(name) VALUES ('A');", got)
	assert.Contains(t, messages(logs), "seed completed")
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestRunRPCFailureLogsAdvice(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	rpcErr := errors.New("function exec_sql(sql) does not exist")
	exec := execFunc(func(context.Context, string) error { return rpcErr })

	err := FromPath(exec, writeSQL(t, "SELECT 1;"), zap.New(core)).Run(context.Background())
	assert.ErrorIs(t, err, rpcErr)

	failed := logs.FilterMessage("seed failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Contains(t, messages(logs), ManualAdvice)
	assert.NotContains(t, messages(logs), "seed completed")
}

func TestRunMissingFile(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	called := false
	exec := execFunc(func(context.Context, string) error {
		called = true
		return nil
	})

	err := FromPath(exec, filepath.Join(t.TempDir(), "absent.sql"), zap.New(core)).Run(context.Background())
	assert.ErrorIs(t, err, ErrFileRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, called)
	assert.Contains(t, messages(logs), ManualAdvice)
}

func TestRunFromFS(t *testing.T) {
	fsys := fstest.MapFS{"mock_data.sql": &fstest.MapFile{Data: []byte("SELECT 2;")}}
	var got string
	exec := execFunc(func(_ context.Context, sql string) error {
		got = sql
		return nil
	})

	require.NoError(t, New(exec, fsys, "mock_data.sql", nil).Run(context.Background()))
	assert.Equal(t, "SELECT 2;", got)
}

func TestRESTExecutorPostsSQL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/rpc/exec_sql", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"sql": "SELECT 1;"}, body)
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	exec := NewRESTExecutor(apiclient.New(config.API{BaseURL: srv.URL + "/rest/v1"}))
	require.NoError(t, exec.ExecSQL(context.Background(), "SELECT 1;"))
}

func TestRESTExecutorSurfacesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	exec := NewRESTExecutor(apiclient.New(config.API{BaseURL: srv.URL}))
	err := exec.ExecSQL(context.Background(), "DROP TABLE x;")
	assert.Equal(t, http.StatusForbidden, apiclient.StatusCode(err))
}
