package subscription

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

// StatusPending is the only request status Forward acts on.
const StatusPending = "PENDING"

// ErrInvalidEvent is returned when an event body cannot be decoded.
var ErrInvalidEvent = errors.New("invalid subscription event")

var validate = validator.New()

// Event is the data of a DataZone "Subscription Request Created" event.
type Event struct {
	RequesterID          string                `json:"requesterId" validate:"required"`
	Status               string                `json:"status" validate:"required"`
	SubscribedPrincipals []SubscribedPrincipal `json:"subscribedPrincipals"`
	SubscribedListings   []SubscribedListing   `json:"subscribedListings"`
}

// SubscribedPrincipal is the consumer of a request. For project principals ID is the project id.
type SubscribedPrincipal struct {
	ID string `json:"id"`
}

// SubscribedListing is a listing a request asks for.
type SubscribedListing struct {
	OwnerProjectID string      `json:"ownerProjectId"`
	Item           ListingItem `json:"item"`
}

// ListingItem holds the listed item. Only asset listings are synced.
type ListingItem struct {
	AssetListing *AssetListing `json:"assetListing,omitempty"`
}

// AssetListing references the listed asset.
type AssetListing struct {
	EntityID string `json:"entityId"`
}

// ParseEvent decodes an EventBridge envelope, reading the event from detail.data.
// A body that already is the event data is accepted as well.
func ParseEvent(body []byte) (Event, error) {
	if !gjson.ValidBytes(body) {
		return Event{}, fmt.Errorf("%w: body is not valid json", ErrInvalidEvent)
	}

	data := gjson.GetBytes(body, "detail.data")
	if !data.Exists() {
		data = gjson.ParseBytes(body)
	}
	if !data.IsObject() {
		return Event{}, fmt.Errorf("%w: event data is not an object", ErrInvalidEvent)
	}

	var ev Event
	if err := json.Unmarshal([]byte(data.Raw), &ev); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := validate.Struct(ev); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	return ev, nil
}
