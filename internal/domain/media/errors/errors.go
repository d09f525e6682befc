// Package errors contains domain-specific errors for the media domain
package errors

import (
	pkgerrors "github.com/yourusername/telegram-media-vault/pkg/errors"
)

// Domain errors for media operations
var (
	ErrFileNotFound  = pkgerrors.NewNotFoundError("file identifier unknown or expired")
	ErrEmptyChatID   = pkgerrors.NewValidationError("chat id is required")
	ErrEmptyMessage  = pkgerrors.NewValidationError("message text cannot be empty")
	ErrNoMediaSource = pkgerrors.NewValidationError("either file path or raw bytes must be provided")
	ErrStorage       = pkgerrors.NewInternalError("filesystem storage failure")
)
