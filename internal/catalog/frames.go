package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/framecraft/admin/internal/docstore"
	"github.com/framecraft/admin/internal/models"
)

type Frames struct {
	col docstore.Collection
	now func() time.Time
}

func NewFrames(store docstore.Store) *Frames {
	return &Frames{col: store.Collection("frames"), now: time.Now}
}

func decodeFrame(doc docstore.Document) models.Frame {
	var f models.Frame
	_ = json.Unmarshal(doc.Data, &f)
	f.ID = doc.ID
	if f.AvailableSizes == nil {
		f.AvailableSizes = []models.FrameSize{}
	}
	return f
}

// List returns all frames sorted by name.
func (s *Frames) List(ctx context.Context) ([]models.Frame, error) {
	docs, err := s.col.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list frames: %w", err)
	}

	frames := make([]models.Frame, 0, len(docs))
	for _, doc := range docs {
		frames = append(frames, decodeFrame(doc))
	}
	sort.Slice(frames, func(i, j int) bool {
		return frames[i].Name < frames[j].Name
	})
	return frames, nil
}

func (s *Frames) Get(ctx context.Context, id string) (models.Frame, error) {
	doc, err := s.col.Get(ctx, id)
	if err != nil {
		return models.Frame{}, err
	}
	return decodeFrame(doc), nil
}

type FrameInput struct {
	Name           string             `json:"name" binding:"required"`
	Image          string             `json:"image"`
	Price          float64            `json:"price"`
	Description    string             `json:"description"`
	ImagePublicID  string             `json:"imagePublicId"`
	AvailableSizes []models.FrameSize `json:"availableSizes"`
}

func (s *Frames) Create(ctx context.Context, in FrameInput) (models.Frame, error) {
	id := uuid.NewString()
	now := s.now().UTC().Format(time.RFC3339)

	f := models.Frame{
		ID:             id,
		Name:           in.Name,
		Image:          in.Image,
		Price:          in.Price,
		Description:    in.Description,
		ImagePublicID:  in.ImagePublicID,
		AvailableSizes: in.AvailableSizes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if f.AvailableSizes == nil {
		f.AvailableSizes = []models.FrameSize{}
	}
	for i := range f.AvailableSizes {
		if f.AvailableSizes[i].ID == "" {
			f.AvailableSizes[i].ID = uuid.NewString()
		}
	}

	data, err := json.Marshal(f)
	if err != nil {
		return models.Frame{}, fmt.Errorf("failed to encode frame: %w", err)
	}
	if err := s.col.Insert(ctx, id, data); err != nil {
		return models.Frame{}, err
	}
	return f, nil
}

func (s *Frames) Update(ctx context.Context, id string, in FrameInput) (models.Frame, error) {
	doc, err := s.col.Get(ctx, id)
	if err != nil {
		return models.Frame{}, err
	}
	existing := decodeFrame(doc)

	f := models.Frame{
		ID:             id,
		Name:           in.Name,
		Image:          in.Image,
		Price:          in.Price,
		Description:    in.Description,
		ImagePublicID:  in.ImagePublicID,
		AvailableSizes: in.AvailableSizes,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      s.now().UTC().Format(time.RFC3339),
	}
	if f.AvailableSizes == nil {
		f.AvailableSizes = []models.FrameSize{}
	}
	for i := range f.AvailableSizes {
		if f.AvailableSizes[i].ID == "" {
			f.AvailableSizes[i].ID = uuid.NewString()
		}
	}

	data, err := json.Marshal(f)
	if err != nil {
		return models.Frame{}, fmt.Errorf("failed to encode frame: %w", err)
	}
	if err := s.col.Update(ctx, id, data); err != nil {
		return models.Frame{}, err
	}
	return f, nil
}

// Delete removes the frame document and returns the public id of its
// uploaded image, if any, so the caller can destroy the binary too.
func (s *Frames) Delete(ctx context.Context, id string) (imagePublicID string, err error) {
	doc, err := s.col.Get(ctx, id)
	if err == nil {
		imagePublicID = decodeFrame(doc).ImagePublicID
	} else if !errors.Is(err, docstore.ErrNotFound) {
		return "", err
	}
	return imagePublicID, s.col.Delete(ctx, id)
}
