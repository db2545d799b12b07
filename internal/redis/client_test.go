package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/config"
)

func TestNewDisabled(t *testing.T) {
	cli, err := New(context.Background(), config.Redis{Addr: "localhost:6379"})
	assert.Nil(t, cli)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestNewUnreachable(t *testing.T) {
	_, err := New(context.Background(), config.Redis{
		Enabled:     true,
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping 127.0.0.1:1")
}
