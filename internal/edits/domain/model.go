package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrScreenshotNotFound is returned when the parent screenshot cannot
// be resolved for the caller, whether absent or foreign-owned.
var ErrScreenshotNotFound = errors.New("screenshot not found")

// Known edit types. The column is free-form text, so clients may record
// operations beyond these.
const (
	EditTypeCrop      = "crop"
	EditTypeHighlight = "highlight"
	EditTypeBlur      = "blur"
	EditTypeDraw      = "draw"
)

// ScreenshotEdit is one entry in a screenshot's append-only edit trail.
// Rows are never updated or deleted once written.
type ScreenshotEdit struct {
	ID             string          `json:"id"`
	ScreenshotID   string          `json:"screenshot_id"`
	OwnerID        string          `json:"owner_id"`
	EditType       *string         `json:"edit_type"`
	Operations     json.RawMessage `json:"operations_json"`
	ResultImageURL *string         `json:"result_image_url"`
	CreatedAt      time.Time       `json:"created_at"`
}
