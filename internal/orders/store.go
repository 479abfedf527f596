package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/framecraft/admin/internal/docstore"
	"github.com/framecraft/admin/internal/models"
)

// ErrInvalidStatus rejects a status transition outside the closed set.
var ErrInvalidStatus = errors.New("invalid order status")

// Store reads and mutates the orders collection. Reads always go
// through Normalize, so callers only ever see the canonical shape.
type Store struct {
	orders docstore.Collection
	now    func() time.Time
}

func NewStore(store docstore.Store) *Store {
	return &Store{orders: store.Collection("orders"), now: time.Now}
}

// List returns every order, newest first. Records that cannot be
// normalized (no identifier, undecodable payload) are skipped and
// logged rather than failing the whole listing. An optional status
// filters the result.
func (s *Store) List(ctx context.Context, status string) ([]models.Order, error) {
	docs, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	now := s.now()
	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		order, err := Normalize(doc.ID, doc.Data, now)
		if err != nil {
			log.Printf("skipping order record %q: %v", doc.ID, err)
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		orders = append(orders, order)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})

	return orders, nil
}

// Get reads a single order by id.
func (s *Store) Get(ctx context.Context, id string) (models.Order, error) {
	doc, err := s.orders.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	order, err := Normalize(doc.ID, doc.Data, s.now())
	if err != nil {
		if errors.Is(err, ErrMissingID) {
			return models.Order{}, docstore.ErrNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

// CreateInput is what the storefront checkout submits. Fields mirror
// the current flat document shape; legacy nested records only ever
// come from old data, never from new writes.
type CreateInput struct {
	UserID          string                 `json:"userId"`
	UserEmail       string                 `json:"userEmail"`
	UserName        string                 `json:"userName"`
	FrameID         string                 `json:"frameId"`
	FrameName       string                 `json:"frameName"`
	FrameImage      string                 `json:"frameImage"`
	FrameOrientation string                `json:"frameOrientation"`
	FramePrice      float64                `json:"framePrice"`
	SizeID          string                 `json:"sizeId"`
	SizeName        string                 `json:"sizeName"`
	SizeMultiplier  float64                `json:"sizeMultiplier"`
	TotalPrice      float64                `json:"totalPrice"`
	FinalPrice      float64                `json:"finalPrice"`
	ImagePosition   models.ImagePosition   `json:"imagePosition"`
	ImageZoom       float64                `json:"imageZoom"`
	ImageURL        string                 `json:"imageUrl"`
	ShippingDetails models.ShippingDetails `json:"shippingDetails"`
	PromoCode       string                 `json:"promoCode"`
	DiscountAmount  float64                `json:"discountAmount"`
}

// Create stores a new order in the flat shape with ISO timestamps and
// returns its canonical form.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.Order, error) {
	id := uuid.NewString()
	now := s.now().UTC().Format(time.RFC3339)

	doc := map[string]any{
		"userId":           in.UserID,
		"userEmail":        in.UserEmail,
		"userName":         in.UserName,
		"frameId":          in.FrameID,
		"frameName":        in.FrameName,
		"frameImage":       in.FrameImage,
		"frameOrientation": in.FrameOrientation,
		"framePrice":       in.FramePrice,
		"sizeId":           in.SizeID,
		"sizeName":         in.SizeName,
		"sizeMultiplier":   in.SizeMultiplier,
		"totalPrice":       in.TotalPrice,
		"finalPrice":       in.FinalPrice,
		"imagePosition":    in.ImagePosition,
		"imageZoom":        in.ImageZoom,
		"imageUrl":         in.ImageURL,
		"shippingDetails":  in.ShippingDetails,
		"promoCode":        in.PromoCode,
		"discountAmount":   in.DiscountAmount,
		"status":           models.OrderStatusPending,
		"createdAt":        now,
		"updatedAt":        now,
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to encode order: %w", err)
	}
	if err := s.orders.Insert(ctx, id, data); err != nil {
		return models.Order{}, err
	}

	return Normalize(id, data, s.now())
}

// UpdateStatus moves an order to a new status in the closed set,
// touching only the status and updatedAt fields so legacy-shaped
// documents keep their layout.
func (s *Store) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	if !models.ValidStatus(status) {
		return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	doc, err := s.orders.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(doc.Data, &raw); err != nil {
		return models.Order{}, fmt.Errorf("failed to decode order %s: %w", id, err)
	}
	raw["status"] = status
	raw["updatedAt"] = s.now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(raw)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to encode order %s: %w", id, err)
	}
	if err := s.orders.Update(ctx, id, data); err != nil {
		return models.Order{}, err
	}

	return Normalize(id, data, s.now())
}

// Delete removes an order.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}
