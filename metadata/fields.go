package metadata

import (
	"errors"
	"fmt"
)

const (
	AppName         = "app_name"
	Subtitle        = "subtitle"
	PromotionalText = "promotional_text"
	Description     = "description"
	Keywords        = "keywords"
	WhatsNew        = "whats_new"
)

var ErrUnknownField = errors.New("unknown metadata field")

type Field struct {
	ID        string
	Label     string
	Limit     int
	Flag      string
	Usage     string
	Multiline bool
}

// App Store Connect character limits.
var registry = []Field{
	{
		ID:    AppName,
		Label: "App Name",
		Limit: 30,
		Flag:  "app-name",
		Usage: "App name (max 30 chars)",
	},
	{
		ID:    Subtitle,
		Label: "Subtitle",
		Limit: 30,
		Flag:  "subtitle",
		Usage: "Subtitle (max 30 chars)",
	},
	{
		ID:    PromotionalText,
		Label: "Promotional Text",
		Limit: 170,
		Flag:  "promotional-text",
		Usage: "Promotional text (max 170 chars)",
	},
	{
		ID:        Description,
		Label:     "Description",
		Limit:     4000,
		Flag:      "description",
		Usage:     "Description (max 4000 chars)",
		Multiline: true,
	},
	{
		ID:    Keywords,
		Label: "Keywords",
		Limit: 100,
		Flag:  "keywords",
		Usage: "Keywords (max 100 chars, comma-separated)",
	},
	{
		ID:        WhatsNew,
		Label:     "What's New",
		Limit:     4000,
		Flag:      "whats-new",
		Usage:     "What's New text (max 4000 chars)",
		Multiline: true,
	},
}

// Fields returns every field definition in registry order.
func Fields() []Field {
	fields := make([]Field, len(registry))
	copy(fields, registry)
	return fields
}

func Lookup(id string) (Field, error) {
	for _, field := range registry {
		if field.ID == id {
			return field, nil
		}
	}

	return Field{}, fmt.Errorf("%w: %s", ErrUnknownField, id)
}
