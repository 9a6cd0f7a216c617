package service

import (
	"context"
	"fmt"

	apperrors "promptlink/internal/errors"
	"promptlink/internal/model"
	"promptlink/internal/repository"
	"promptlink/internal/utils"
)

// LinkService sits between the handlers and the mode-selected store:
// validation happens here, persistence decisions do not.
type LinkService interface {
	CreateLink(ctx context.Context, prompt string) (*model.CreateLinkResponse, error)
	GetLink(ctx context.Context, id string) (*model.GetLinkResponse, error)
	IncrementClicks(ctx context.Context, id string) error
	ListLinks(ctx context.Context) ([]model.Link, error)
	DeleteLink(ctx context.Context, id string) error
}

type linkService struct {
	store   repository.LinkStore
	mode    string
	baseURL string
}

func NewLinkService(store repository.LinkStore, mode, baseURL string) LinkService {
	return &linkService{
		store:   store,
		mode:    mode,
		baseURL: baseURL,
	}
}

func (s *linkService) CreateLink(ctx context.Context, prompt string) (*model.CreateLinkResponse, error) {
	if err := utils.ValidatePrompt(prompt); err != nil {
		return nil, err
	}

	link, err := s.store.Create(ctx, prompt)
	if err != nil {
		return nil, err
	}

	response := &model.CreateLinkResponse{
		Success: true,
		ID:      link.ID,
		Mode:    s.mode,
	}

	// A demo id already starts with "?q=", so the same join yields
	// base/?q=<token> there and base/<id> in production.
	if s.baseURL != "" {
		response.ShareURL = fmt.Sprintf("%s/%s", s.baseURL, link.ID)
	}

	return response, nil
}

func (s *linkService) GetLink(ctx context.Context, id string) (*model.GetLinkResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	link, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.GetLinkResponse{
		Success:   true,
		Prompt:    link.Prompt,
		Clicks:    link.Clicks,
		CreatedAt: link.CreatedAt,
	}, nil
}

func (s *linkService) IncrementClicks(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	return s.store.Increment(ctx, id)
}

func (s *linkService) ListLinks(ctx context.Context) ([]model.Link, error) {
	links, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if links == nil {
		links = []model.Link{}
	}

	return links, nil
}

func (s *linkService) DeleteLink(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	return s.store.Delete(ctx, id)
}

func validateID(id string) error {
	if id == "" {
		return apperrors.NewValidationError("id", "ID is required")
	}
	return nil
}
