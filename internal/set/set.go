// Package set assembles normalized card records from a parsed MSE set
// archive and produces the final ordered set record.
package set

import (
	"errors"

	"github.com/arcanaland/msejson/internal/card"
)

var (
	// ErrUnknownStylesheet reports a stylesheet missing from the lookup table.
	ErrUnknownStylesheet = errors.New("unknown stylesheet")
	// ErrUnsupportedLayout reports a recognized but unimplemented layout.
	ErrUnsupportedLayout = errors.New("unsupported layout")
	// ErrMissingArtist reports a card with an image but no illustrator credit.
	ErrMissingArtist = errors.New("missing artist credit")
	// ErrUnknownWatermark reports a watermark outside the known tables.
	ErrUnknownWatermark = errors.New("unknown watermark")
	// ErrUnknownBorder reports an unmapped border color value.
	ErrUnknownBorder = errors.New("unknown border color")
	// ErrUnknownIndicator reports a color indicator outside the known values.
	ErrUnknownIndicator = errors.New("unknown color indicator")
	// ErrUnknownRarity reports a rarity outside the remap table.
	ErrUnknownRarity = errors.New("unknown rarity")
	// ErrUnknownColor reports a card color word outside the known values.
	ErrUnknownColor = errors.New("unknown card color")
)

// Meta is the schema metadata block of a set record.
type Meta struct {
	Date       string `json:"date"`
	Version    string `json:"version"`
	SetVersion string `json:"setVersion,omitempty"`
}

// Set is the full converted set record handed to the serializer.
type Set struct {
	BaseSetSize  int          `json:"baseSetSize"`
	Cards        []*card.Face `json:"cards"`
	Code         string       `json:"code,omitempty"`
	Custom       bool         `json:"custom"`
	Meta         Meta         `json:"meta"`
	Name         string       `json:"name,omitempty"`
	TotalSetSize int          `json:"totalSetSize"`
}

// schemaVersion is the card database schema the output targets.
const schemaVersion = "4.4.1"
