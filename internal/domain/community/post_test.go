package community

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	p, err := NewPost(uuid.New(), "https://cdn.example/community/1-foto.jpg", "İlk kombinim", "front-01 + bandana-07")
	require.NoError(t, err)
	assert.False(t, p.Approved)

	_, err = NewPost(uuid.Nil, "https://cdn.example/x.jpg", "", "")
	assert.Error(t, err)

	_, err = NewPost(uuid.New(), "", "", "")
	assert.Error(t, err)
}

func TestPost_SetApproved(t *testing.T) {
	p, err := NewPost(uuid.New(), "https://cdn.example/x.jpg", "", "")
	require.NoError(t, err)

	p.SetApproved(true)
	assert.True(t, p.Approved)

	p.SetApproved(false)
	assert.False(t, p.Approved)
}
