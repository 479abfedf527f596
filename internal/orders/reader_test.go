package orders

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecraft/admin/internal/models"
)

var readAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func normalize(t *testing.T, doc string) models.Order {
	t.Helper()
	order, err := Normalize("order-1", json.RawMessage(doc), readAt)
	require.NoError(t, err)
	return order
}

func TestNormalizeFlatRecord(t *testing.T) {
	order := normalize(t, `{
		"userId": "u1",
		"userEmail": "jo@example.com",
		"userName": "Jo",
		"frameId": "f1",
		"frameName": "Walnut Gallery",
		"frameImage": "https://img/frame.jpg",
		"frameOrientation": "portrait",
		"framePrice": 79.99,
		"sizeId": "s1",
		"sizeName": "16x20 in",
		"sizeMultiplier": 1.5,
		"totalPrice": 119.99,
		"finalPrice": 99.99,
		"imagePosition": {"x": 10, "y": -4},
		"imageZoom": 130,
		"imageUrl": "https://img/upload.jpg",
		"promoCode": "SPRING",
		"discountAmount": 20,
		"status": "processing",
		"createdAt": "2024-02-01T10:00:00Z",
		"updatedAt": "2024-02-02T10:00:00Z"
	}`)

	assert.Equal(t, "f1", order.FrameID)
	assert.Equal(t, "Walnut Gallery", order.FrameName)
	assert.Equal(t, "https://img/frame.jpg", order.FrameImage)
	assert.Equal(t, "portrait", order.FrameOrientation)
	assert.Equal(t, 79.99, order.FramePrice)
	assert.Equal(t, "16x20 in", order.SizeName)
	assert.Equal(t, 1.5, order.SizeMultiplier)
	assert.Equal(t, models.ImagePosition{X: 10, Y: -4}, order.ImagePosition)
	assert.Equal(t, 130.0, order.ImageZoom)
	assert.Equal(t, "https://img/upload.jpg", order.ImageURL)
	assert.Equal(t, "processing", order.Status)
	assert.Equal(t, "2024-02-01T10:00:00Z", order.CreatedAt)
	assert.Equal(t, "2024-02-02T10:00:00Z", order.UpdatedAt)
}

func TestNormalizeLegacyNestedRecord(t *testing.T) {
	order := normalize(t, `{
		"userId": "u1",
		"items": [{
			"frameId": "f9",
			"frameName": "Oak Classic",
			"frameImage": "https://img/oak.jpg",
			"frameOrientation": "landscape",
			"framePrice": 49.99,
			"sizeName": "8x10 in",
			"sizeMultiplier": 2,
			"imageUrl": "https://img/photo.jpg"
		}]
	}`)

	assert.Equal(t, "f9", order.FrameID)
	assert.Equal(t, "Oak Classic", order.FrameName)
	assert.Equal(t, "https://img/oak.jpg", order.FrameImage)
	assert.Equal(t, "landscape", order.FrameOrientation)
	assert.Equal(t, 49.99, order.FramePrice)
	assert.Equal(t, "8x10 in", order.SizeName)
	assert.Equal(t, 2.0, order.SizeMultiplier)
	assert.Equal(t, "https://img/photo.jpg", order.ImageURL)
}

func TestNormalizeTopLevelWinsOverNested(t *testing.T) {
	order := normalize(t, `{
		"frameName": "Top Frame",
		"framePrice": 10,
		"imageUrl": "https://img/top.jpg",
		"items": [{
			"frameName": "Nested Frame",
			"framePrice": 99,
			"imageUrl": "https://img/nested.jpg"
		}]
	}`)

	assert.Equal(t, "Top Frame", order.FrameName)
	assert.Equal(t, 10.0, order.FramePrice)
	assert.Equal(t, "https://img/top.jpg", order.ImageURL)
}

func TestNormalizeGenericItemAliases(t *testing.T) {
	// Oldest records only carry generic item fields.
	order := normalize(t, `{
		"items": [{
			"productId": "p7",
			"name": "Barnwood",
			"imageUrl": "u1",
			"price": 500
		}]
	}`)

	assert.Equal(t, "p7", order.FrameID)
	assert.Equal(t, "Barnwood", order.FrameName)
	assert.Equal(t, "u1", order.FrameImage)
	assert.Equal(t, 500.0, order.FramePrice)
	assert.Equal(t, "u1", order.ImageURL)
}

func TestNormalizeDimensionsFallbackForSizeName(t *testing.T) {
	order := normalize(t, `{"items": [{"dimensions": "11x14 in"}]}`)
	assert.Equal(t, "11x14 in", order.SizeName)
}

func TestNormalizeDefaults(t *testing.T) {
	order := normalize(t, `{"userId": "u1"}`)

	assert.Equal(t, models.ImagePosition{X: 0, Y: 0}, order.ImagePosition)
	assert.Equal(t, 100.0, order.ImageZoom)
	assert.Equal(t, 1.0, order.SizeMultiplier)
	assert.Equal(t, "", order.SizeName)
	assert.Equal(t, "", order.FrameName)
	assert.Equal(t, 0.0, order.FramePrice)
	assert.Equal(t, 0.0, order.TotalPrice)
	assert.Equal(t, models.ShippingDetails{}, order.ShippingDetails)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	// Absent timestamps take the read instant.
	assert.Equal(t, readAt.Format(time.RFC3339), order.CreatedAt)
	assert.Equal(t, readAt.Format(time.RFC3339), order.UpdatedAt)
}

func TestNormalizeMixedLegacyRecord(t *testing.T) {
	order := normalize(t, `{
		"items": [{"frameName": "Oak", "imageUrl": "u1", "price": 500}],
		"sizeId": "s1"
	}`)

	assert.Equal(t, "Oak", order.FrameName)
	assert.Equal(t, "u1", order.FrameImage)
	assert.Equal(t, 500.0, order.FramePrice)
	assert.Equal(t, "s1", order.SizeID)
	assert.Equal(t, "", order.SizeName)
	assert.Equal(t, 1.0, order.SizeMultiplier)
	assert.Equal(t, models.ImagePosition{X: 0, Y: 0}, order.ImagePosition)
	assert.Equal(t, 100.0, order.ImageZoom)
}

func TestNormalizeNativeTimestampMatchesString(t *testing.T) {
	// 2024-02-01T10:00:00Z as a native timestamp object.
	native := normalize(t, `{"createdAt": {"seconds": 1706781600, "nanoseconds": 0}}`)
	str := normalize(t, `{"createdAt": "2024-02-01T10:00:00Z"}`)

	assert.Equal(t, str.CreatedAt, native.CreatedAt)
}

func TestNormalizeShippingDetails(t *testing.T) {
	order := normalize(t, `{
		"shippingDetails": {
			"fullName": "Jo March",
			"email": "jo@example.com",
			"phone": "555-0101",
			"address": "1 Orchard House",
			"city": "Concord",
			"state": "MA",
			"postalCode": "01742"
		}
	}`)

	assert.Equal(t, models.ShippingDetails{
		FullName:   "Jo March",
		Email:      "jo@example.com",
		Phone:      "555-0101",
		Address:    "1 Orchard House",
		City:       "Concord",
		State:      "MA",
		PostalCode: "01742",
	}, order.ShippingDetails)
}

func TestNormalizeMissingID(t *testing.T) {
	_, err := Normalize("", json.RawMessage(`{"userId": "u1"}`), readAt)
	require.ErrorIs(t, err, ErrMissingID)
}

func TestNormalizeUndecodablePayload(t *testing.T) {
	_, err := Normalize("order-1", json.RawMessage(`not json`), readAt)
	require.Error(t, err)
}
