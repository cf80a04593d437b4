package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("operation not permitted")

	// Family and member errors
	ErrFamilyNotFound    = errors.New("family not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrCannotRemoveOwner = errors.New("family owner cannot be removed")

	// Space errors
	ErrSpaceNotFound      = errors.New("space not found")
	ErrSpaceAlreadyExists = errors.New("space already exists")
	ErrNoSpaceAccess      = errors.New("member has no access to this space")

	// Category errors
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// Folder errors
	ErrFolderNotFound      = errors.New("folder not found")
	ErrFolderAlreadyExists = errors.New("a folder with this name already exists here")
	ErrFolderCycle         = errors.New("cannot move a folder into its own subtree")

	// File errors
	ErrFileNotFound      = errors.New("file not found")
	ErrFileAlreadyExists = errors.New("a file with this name already exists in this folder")

	// Permission and delegation errors
	ErrPermissionNotFound = errors.New("permission not found")
	ErrExpiryInPast       = errors.New("expiration date cannot be in the past")
	ErrSelfGrant          = errors.New("cannot grant a permission to yourself")
	ErrDelegationNotFound = errors.New("delegation request not found")
	ErrInvalidTransition  = errors.New("invalid delegation status transition")

	// Alert errors
	ErrAlertNotFound = errors.New("alert not found")
	ErrTriggerInPast = errors.New("trigger time cannot be in the past")
)
