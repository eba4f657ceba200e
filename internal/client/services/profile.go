package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/reservas/internal/client/client"
	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/client/session"
)

type ProfileService interface {
	Profile(ctx context.Context) (models.Profile, error)
	DocumentTypes(ctx context.Context) ([]models.DocumentType, error)
	// Save submits every editable field of p. p.Email is ignored.
	Save(ctx context.Context, p models.Profile) error
}

type profileService struct {
	client client.Client
	store  session.Store
}

func NewProfileService(c client.Client, s session.Store) ProfileService {
	return &profileService{client: c, store: s}
}

func (p *profileService) Profile(ctx context.Context) (models.Profile, error) {
	sess, err := p.store.Get(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	profile, err := p.client.GetProfile(ctx, sess.Token, sess.UserID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (p *profileService) DocumentTypes(ctx context.Context) ([]models.DocumentType, error) {
	sess, err := p.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	types, err := p.client.ListDocumentTypes(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("get document types: %w", err)
	}
	return types, nil
}

func (p *profileService) Save(ctx context.Context, profile models.Profile) error {
	sess, err := p.store.Get(ctx)
	if err != nil {
		return err
	}
	if err := p.client.UpdateProfile(ctx, sess.Token, sess.UserID, profile.Update()); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
