// Package models provides core data structures for the media pipeline.
package models

import (
	"fmt"
	"strings"
)

// AssetKind identifies the media type of an asset.
type AssetKind string

const (
	AssetVideo AssetKind = "video" // Background video clip
	AssetAudio AssetKind = "audio" // Voice or music track
)

// MediaAsset is a path handle to a caller-owned media file.
//
// Duration is intentionally not cached on the asset: the pipeline probes it
// fresh whenever needed, so an asset can never carry a stale duration. The
// pipeline never deletes the file an asset points to.
//
// Use NewMediaAsset to create a validated instance.
type MediaAsset struct {
	Path string    `json:"path"`
	Kind AssetKind `json:"kind"`
}

// NewMediaAsset creates a MediaAsset with validation.
//
// Returns an error if path is empty or whitespace-only, or if kind is not
// one of AssetVideo / AssetAudio.
//
// Example:
//
//	asset, err := models.NewMediaAsset("/packs/nature/clip01.mp4", models.AssetVideo)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewMediaAsset(path string, kind AssetKind) (MediaAsset, error) {
	a := MediaAsset{Path: path, Kind: kind}
	if err := a.Validate(); err != nil {
		return MediaAsset{}, fmt.Errorf("invalid media asset: %w", err)
	}
	return a, nil
}

// Validate checks if the MediaAsset has valid data.
//
// Returns an error if:
//   - Path is empty or whitespace-only
//   - Kind is not a known asset kind
func (a MediaAsset) Validate() error {
	if strings.TrimSpace(a.Path) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	switch a.Kind {
	case AssetVideo, AssetAudio:
		return nil
	default:
		return fmt.Errorf("unknown asset kind %q", a.Kind)
	}
}
