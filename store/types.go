// Package store is the team vault: saved builds for the user's own teams and for scouted rivals.
package store

import (
	"errors"
	"fmt"

	"showdown-teambuilder/build"
)

var (
	ErrNotFound = errors.New("team not found")
	ErrInvalid  = errors.New("invalid team")
)

type Kind string

const (
	KindTeam  Kind = "team"
	KindRival Kind = "rival"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindTeam, KindRival:
		return Kind(s), nil
	case "":
		return KindTeam, nil
	}
	return "", fmt.Errorf("%w: kind %q (want team or rival)", ErrInvalid, s)
}

type SavedTeam struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      Kind         `json:"kind"`
	Build     *build.Build `json:"build"`
	Timestamp int64        `json:"timestamp"`
}

// TeamStore defines the vault's data access layer.
type TeamStore interface {
	// Save inserts a team when ID is empty and replaces it otherwise.
	Save(t *SavedTeam) (*SavedTeam, error)
	// List returns teams of the given kind, newest first. An empty kind lists everything.
	List(kind Kind) ([]SavedTeam, error)
	Get(id string) (*SavedTeam, error)
	Delete(id string) error
	Close() error
}

func validate(t *SavedTeam) error {
	if t == nil || t.Build == nil {
		return fmt.Errorf("%w: build is required", ErrInvalid)
	}
	if t.Name == "" {
		t.Name = t.Build.Name
	}
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	k, err := ParseKind(string(t.Kind))
	if err != nil {
		return err
	}
	t.Kind = k
	return nil
}
