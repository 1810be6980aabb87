// Package common contains shared constants and sentinel errors used across
// the dpbr client packages.
package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the bearer token.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the access token in AuthorizationHeaderName.
	BearerScheme = "Bearer "

	// DefaultAvatarPath is shown whenever the backend has no image for a
	// character, settlement or comment author.
	DefaultAvatarPath = "/default-avatar.png"

	// ClubName is the guild every listed character belongs to.
	ClubName = "단풍바람"
)
