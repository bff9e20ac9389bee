// Package common contains shared constants and sentinel errors used across
// Stadtwache components.
package common

// AuthorizationHeader is the HTTP header carrying the bearer token on
// authenticated requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix prefixes the token inside the Authorization header.
const BearerPrefix = "Bearer "

// Storage keys for the locally persisted credential. The values match the
// keys the mobile app has always used, so an upgraded client keeps its
// session.
const (
	StorageKeyToken = "stadtwache_token"
	StorageKeyUser  = "stadtwache_user"
)

// Duty statuses an officer can be in. The German labels are part of the
// backend contract.
const (
	StatusOnDuty      = "Im Dienst"
	StatusBreak       = "Pause"
	StatusDeployment  = "Einsatz"
	StatusPatrol      = "Streife"
	StatusUnavailable = "Nicht verfügbar"
)

// ChannelPrivate is the pseudo-channel name for direct messages.
const ChannelPrivate = "private"
