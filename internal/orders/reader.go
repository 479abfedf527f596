// Package orders reads order documents written by several generations
// of the storefront checkout. Older checkouts stored frame, size and
// image fields inside the first entry of an items list; newer ones put
// them at the top level; timestamps are either ISO-8601 strings or
// native {seconds, nanoseconds} objects. Every read path resolves a
// stored record into one canonical models.Order.
package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/framecraft/admin/internal/models"
)

// ErrMissingID marks a stored record that cannot be constructed into an
// order because it carries no identifier. List reads skip such records;
// single reads report them as not found.
var ErrMissingID = errors.New("order record has no identifier")

// Fallback chains for fields that may live at the top level of a stored
// order or inside its first line item. Evaluated left to right; the
// first present value wins. Changing precedence means changing this
// table, nothing else.
var (
	frameIDSources     = []string{"frameId", "items.0.frameId", "items.0.productId"}
	frameNameSources   = []string{"frameName", "items.0.frameName", "items.0.name"}
	frameImageSources  = []string{"frameImage", "items.0.frameImage", "items.0.imageUrl"}
	frameOrientSources = []string{"frameOrientation", "items.0.frameOrientation"}
	framePriceSources  = []string{"framePrice", "items.0.framePrice", "items.0.price"}
	imageURLSources    = []string{"imageUrl", "items.0.imageUrl"}
	sizeIDSources      = []string{"sizeId", "items.0.sizeId"}
	sizeNameSources    = []string{"sizeName", "items.0.sizeName", "items.0.dimensions"}
	sizeMultSources    = []string{"sizeMultiplier", "items.0.sizeMultiplier"}
)

// Normalize maps a raw stored order document onto the canonical Order
// shape. Every canonical field ends up with a real value or an explicit
// default; only a missing identifier is an error. now supplies the
// instant substituted for absent timestamps.
func Normalize(id string, data json.RawMessage, now time.Time) (models.Order, error) {
	if id == "" {
		return models.Order{}, ErrMissingID
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Order{}, fmt.Errorf("failed to decode order %s: %w", id, err)
	}

	o := models.Order{
		ID:               id,
		UserID:           stringAt(doc, "userId"),
		UserEmail:        stringAt(doc, "userEmail"),
		UserName:         stringAt(doc, "userName"),
		FrameID:          firstString(doc, frameIDSources),
		FrameName:        firstString(doc, frameNameSources),
		FrameImage:       firstString(doc, frameImageSources),
		FrameOrientation: firstString(doc, frameOrientSources),
		FramePrice:       firstNumber(doc, framePriceSources, 0),
		SizeID:           firstString(doc, sizeIDSources),
		SizeName:         firstString(doc, sizeNameSources),
		SizeMultiplier:   firstNumber(doc, sizeMultSources, 1),
		TotalPrice:       numberAt(doc, "totalPrice", 0),
		FinalPrice:       numberAt(doc, "finalPrice", 0),
		ImagePosition:    positionAt(doc, "imagePosition"),
		ImageZoom:        numberAt(doc, "imageZoom", 100),
		ImageURL:         firstString(doc, imageURLSources),
		ShippingDetails:  shippingAt(doc, "shippingDetails"),
		PromoCode:        stringAt(doc, "promoCode"),
		DiscountAmount:   numberAt(doc, "discountAmount", 0),
		Status:           stringAt(doc, "status"),
		CreatedAt:        timestampAt(doc, "createdAt", now),
		UpdatedAt:        timestampAt(doc, "updatedAt", now),
	}

	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}

	return o, nil
}

// lookup walks a dotted path through nested objects and lists. A "0"
// segment indexes the first element of a list.
func lookup(doc map[string]any, path string) (any, bool) {
	var cur any = doc
	start := 0
	for i := 0; i <= len(path); i++ {
		if i != len(path) && path[i] != '.' {
			continue
		}
		seg := path[start:i]
		start = i + 1
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			if seg != "0" || len(node) == 0 {
				return nil, false
			}
			cur = node[0]
		default:
			return nil, false
		}
	}
	return cur, true
}

func firstString(doc map[string]any, sources []string) string {
	for _, path := range sources {
		if v, ok := lookup(doc, path); ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func firstNumber(doc map[string]any, sources []string, def float64) float64 {
	for _, path := range sources {
		if v, ok := lookup(doc, path); ok {
			if n, ok := asNumber(v); ok && n != 0 {
				return n
			}
		}
	}
	return def
}

func stringAt(doc map[string]any, key string) string {
	if v, ok := doc[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func numberAt(doc map[string]any, key string, def float64) float64 {
	if v, ok := doc[key]; ok {
		if n, ok := asNumber(v); ok {
			return n
		}
	}
	return def
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func positionAt(doc map[string]any, key string) models.ImagePosition {
	pos := models.ImagePosition{}
	v, ok := doc[key]
	if !ok {
		return pos
	}
	m, ok := v.(map[string]any)
	if !ok {
		return pos
	}
	pos.X = numberAt(m, "x", 0)
	pos.Y = numberAt(m, "y", 0)
	return pos
}

func shippingAt(doc map[string]any, key string) models.ShippingDetails {
	sd := models.ShippingDetails{}
	v, ok := doc[key]
	if !ok {
		return sd
	}
	m, ok := v.(map[string]any)
	if !ok {
		return sd
	}
	sd.FullName = stringAt(m, "fullName")
	sd.Email = stringAt(m, "email")
	sd.Phone = stringAt(m, "phone")
	sd.Address = stringAt(m, "address")
	sd.City = stringAt(m, "city")
	sd.State = stringAt(m, "state")
	sd.PostalCode = stringAt(m, "postalCode")
	return sd
}

// timestampAt resolves a stored timestamp to an ISO-8601 UTC string.
// Native timestamps arrive as {seconds, nanoseconds} objects and get
// converted; strings pass through as-is; absent values take now.
func timestampAt(doc map[string]any, key string, now time.Time) string {
	v, ok := doc[key]
	if !ok || v == nil {
		return now.UTC().Format(time.RFC3339)
	}
	switch ts := v.(type) {
	case string:
		if ts == "" {
			return now.UTC().Format(time.RFC3339)
		}
		return ts
	case map[string]any:
		sec, okSec := asNumber(ts["seconds"])
		if !okSec {
			sec, okSec = asNumber(ts["_seconds"])
		}
		if okSec {
			nanos, _ := asNumber(ts["nanoseconds"])
			return time.Unix(int64(sec), int64(nanos)).UTC().Format(time.RFC3339)
		}
	}
	return now.UTC().Format(time.RFC3339)
}
