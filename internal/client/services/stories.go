package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snoozer/internal/client/client"
	"github.com/dmitrijs2005/snoozer/internal/client/models"
)

// StoryService loads the story list shown on the main page.
type StoryService interface {
	List(ctx context.Context) ([]models.Story, error)
}

type storyService struct {
	client client.Client
}

func NewStoryService(c client.Client) StoryService {
	return &storyService{client: c}
}

func (s *storyService) List(ctx context.Context) ([]models.Story, error) {
	stories, err := s.client.GetStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stories: %w", err)
	}
	return stories, nil
}
