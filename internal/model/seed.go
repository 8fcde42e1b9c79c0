package model

import "context"

// SeedSource supplies the initial user collection at startup.
type SeedSource interface {
	Users(ctx context.Context) ([]User, error)
}

// SeedStore reads seed rows from a database.
type SeedStore interface {
	ListSeedUsers(ctx context.Context) ([]User, error)
}
