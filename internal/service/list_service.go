package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListService maneja las colecciones curadas de los usuarios. Toda mutación
// (campos o membresía) está gateada por owner.
type ListService struct {
	lists    *repository.ListRepository
	media    *repository.MediaRepository
	mediaSvc *MediaService
}

func NewListService(
	lists *repository.ListRepository,
	media *repository.MediaRepository,
	mediaSvc *MediaService,
) *ListService {
	return &ListService{lists: lists, media: media, mediaSvc: mediaSvc}
}

func parseListID(listID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(listID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: listId inválido", ErrValidation)
	}
	return id, nil
}

// findOwned busca la lista y valida que el requester sea el owner.
func (s *ListService) findOwned(ctx context.Context, listID string, requesterID int) (*models.ListDoc, error) {
	id, err := parseListID(listID)
	if err != nil {
		return nil, err
	}

	l, err := s.lists.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: lista %s", ErrNotFound, listID)
	}
	if l.OwnerID != requesterID {
		return nil, fmt.Errorf("%w: no sos el owner de la lista", ErrForbidden)
	}
	return l, nil
}

func (s *ListService) Create(ctx context.Context, ownerID int, title, description string, isPublic *bool) (*models.ListDoc, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title es requerido", ErrValidation)
	}

	public := true
	if isPublic != nil {
		public = *isPublic
	}

	now := time.Now().UTC()
	l := &models.ListDoc{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		IsPublic:    public,
		OwnerID:     ownerID,
		MediaIDs:    []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.lists.Insert(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *ListService) Edit(ctx context.Context, listID string, requesterID int, title, description string, isPublic *bool) (*models.ListDoc, error) {
	if strings.TrimSpace(title) == "" || isPublic == nil {
		return nil, fmt.Errorf("%w: title e isPublic son requeridos", ErrValidation)
	}

	l, err := s.findOwned(ctx, listID, requesterID)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"title":       strings.TrimSpace(title),
		"description": description,
		"isPublic":    *isPublic,
	}
	if err := s.lists.UpdateFields(ctx, l.ID, update); err != nil {
		return nil, err
	}
	return s.lists.FindByID(ctx, l.ID)
}

func (s *ListService) Delete(ctx context.Context, listID string, requesterID int) error {
	l, err := s.findOwned(ctx, listID, requesterID)
	if err != nil {
		return err
	}
	// hard delete, sin cascade: las MediaDoc son compartidas
	return s.lists.Delete(ctx, l.ID)
}

// AddMedia agrega una media a la lista (semántica de set: repetir el add
// no duplica). Si la media no está en el espejo se sincroniza primero.
func (s *ListService) AddMedia(ctx context.Context, listID string, requesterID, tmdbID int, mediaType string) (*models.ListWithMedia, error) {
	l, err := s.findOwned(ctx, listID, requesterID)
	if err != nil {
		return nil, err
	}

	m, err := s.mediaSvc.Resolve(ctx, tmdbID, mediaType)
	if err != nil {
		return nil, err
	}

	updated, err := s.lists.AddMedia(ctx, l.ID, m.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: lista %s", ErrNotFound, listID)
	}
	return s.hydrate(ctx, updated)
}

// RemoveMedia saca la media de la lista. Si no estaba, no-op (no error).
func (s *ListService) RemoveMedia(ctx context.Context, listID string, requesterID, tmdbID int, mediaType string) (*models.ListWithMedia, error) {
	l, err := s.findOwned(ctx, listID, requesterID)
	if err != nil {
		return nil, err
	}

	m, err := s.media.GetByKey(ctx, tmdbID, mediaType)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: media %d/%s", ErrNotFound, tmdbID, mediaType)
	}

	updated, err := s.lists.RemoveMedia(ctx, l.ID, m.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: lista %s", ErrNotFound, listID)
	}
	return s.hydrate(ctx, updated)
}

// Get devuelve una lista hidratada. Las privadas solo las ve su owner.
func (s *ListService) Get(ctx context.Context, listID string, requesterID int) (*models.ListWithMedia, error) {
	id, err := parseListID(listID)
	if err != nil {
		return nil, err
	}

	l, err := s.lists.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: lista %s", ErrNotFound, listID)
	}
	if !l.IsPublic && l.OwnerID != requesterID {
		return nil, fmt.Errorf("%w: lista privada", ErrForbidden)
	}
	return s.hydrate(ctx, l)
}

func (s *ListService) ByOwner(ctx context.Context, ownerID int) ([]models.ListWithMedia, error) {
	lists, err := s.lists.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]models.ListWithMedia, 0, len(lists))
	for i := range lists {
		h, err := s.hydrate(ctx, &lists[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	return out, nil
}

func (s *ListService) hydrate(ctx context.Context, l *models.ListDoc) (*models.ListWithMedia, error) {
	docs, err := s.media.GetByIDs(ctx, l.MediaIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.MediaDoc, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}

	ordered := make([]models.MediaDoc, 0, len(l.MediaIDs))
	for _, id := range l.MediaIDs {
		if d, ok := byID[id]; ok {
			ordered = append(ordered, d)
		}
	}

	return &models.ListWithMedia{ListDoc: *l, Media: ordered}, nil
}
