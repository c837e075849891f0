package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/snoozer/internal/client/client"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryService_List(t *testing.T) {
	fc := &fakeClient{StoriesRet: []models.Story{{StoryID: "s1"}, {StoryID: "s2"}}}
	got, err := NewStoryService(fc).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStoryService_ListError(t *testing.T) {
	fc := &fakeClient{StoriesErr: client.ErrUnavailable}
	_, err := NewStoryService(fc).List(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
	require.ErrorContains(t, err, "get stories:")
}
