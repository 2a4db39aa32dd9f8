package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubStorage(t *testing.T) {
	ctx := context.Background()
	stub := NewStubStorage()

	url, err := stub.Put(ctx, "community/1-foto.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.invalid/community/1-foto.jpg", url)

	data, ok := stub.Object("community/1-foto.jpg")
	require.True(t, ok)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	require.NoError(t, stub.Delete(ctx, "community/1-foto.jpg"))
	_, ok = stub.Object("community/1-foto.jpg")
	assert.False(t, ok)
}
