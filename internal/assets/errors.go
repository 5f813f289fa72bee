package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrStylesheetNotFound = errors.New("stylesheet not found")
	ErrInvalidAssetName   = errors.New("invalid asset name")
	ErrInvalidAssetDir    = errors.New("invalid asset directory")
)
