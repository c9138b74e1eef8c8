package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewouko/umoja-informatics/internal/mocks"
	"github.com/andrewouko/umoja-informatics/internal/testutil"
)

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(mocks.NewPinger(t), testutil.MakeNoopLogger())
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, "grpc.health.v1.Health")
	assert.Contains(t, info, "grpc.reflection.v1.ServerReflection")
}
