package payload

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Cursor fields of the invocation payloads.
const (
	AssetCursor        = "last_seen_asset_id"
	GlossaryTermCursor = "last_seen_glossary_term_id"
	ProjectToken       = "next_project_token"
)

// ErrInvalid is returned for a payload that is not a JSON object.
var ErrInvalid = errors.New("payload must be a JSON object")

// Normalize returns body, or an empty object when body is empty.
func Normalize(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return []byte("{}"), nil
	}
	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		return nil, ErrInvalid
	}
	return body, nil
}

// Cursor reads field from body. A missing or null field is a nil cursor.
func Cursor(body []byte, field string) (*string, error) {
	body, err := Normalize(body)
	if err != nil {
		return nil, err
	}

	v := gjson.GetBytes(body, field)
	switch v.Type {
	case gjson.Null:
		return nil, nil
	case gjson.String:
		s := v.String()
		if s == "" {
			return nil, nil
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a string or null", ErrInvalid, field)
	}
}

// WithCursor returns body with field set to cursor, leaving every other field untouched.
func WithCursor(body []byte, field string, cursor *string) ([]byte, error) {
	body, err := Normalize(body)
	if err != nil {
		return nil, err
	}
	if cursor == nil {
		return sjson.SetRawBytes(body, field, []byte("null"))
	}
	return sjson.SetBytes(body, field, *cursor)
}
