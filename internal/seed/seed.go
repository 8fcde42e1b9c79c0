// Package seed provides the sources the initial user collection can be read from.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/dtroode/userdirectory/internal/model"
)

//go:embed users.schema.json
var documentSchemaSource string

const documentSchemaURL = "users.schema.json"

var documentSchema = compileDocumentSchema()

func compileDocumentSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(documentSchemaURL, strings.NewReader(documentSchemaSource)); err != nil {
		panic(fmt.Sprintf("seed: invalid document schema: %v", err))
	}
	return compiler.MustCompile(documentSchemaURL)
}

type document struct {
	Users []model.User `json:"users"`
}

// Decode reads a seed document. The document is YAML with a top-level
// "users" list; JSON documents of the same shape are accepted as well.
// The document is checked against users.schema.json before it is decoded.
func Decode(r io.Reader) ([]model.User, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed document: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode seed document: %w", err)
	}
	if raw == nil {
		return []model.User{}, nil
	}

	// The schema validator works on JSON values, so the YAML tree is
	// re-encoded and read back with exact numbers.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode seed document: %w", err)
	}
	var instance any
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()
	if err := dec.Decode(&instance); err != nil {
		return nil, fmt.Errorf("failed to decode seed document: %w", err)
	}
	if err := documentSchema.Validate(instance); err != nil {
		return nil, fmt.Errorf("%w: seed document: %v", model.ErrInvalidUser, err)
	}

	var doc document
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode seed document: %w", err)
	}
	if err := validate(doc.Users); err != nil {
		return nil, err
	}
	if doc.Users == nil {
		doc.Users = []model.User{}
	}
	return doc.Users, nil
}

func validate(users []model.User) error {
	for i, u := range users {
		if err := u.Validate(); err != nil {
			return fmt.Errorf("seed user #%d: %w", i, err)
		}
	}
	return nil
}

// Database reads the seed from a database table.
type Database struct {
	store model.SeedStore
}

// NewDatabase creates a Database seed source.
func NewDatabase(store model.SeedStore) *Database {
	return &Database{store: store}
}

// Users returns the seed rows in table order.
func (s *Database) Users(ctx context.Context) ([]model.User, error) {
	users, err := s.store.ListSeedUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seed users: %w", err)
	}
	if err := validate(users); err != nil {
		return nil, err
	}
	return users, nil
}

// Object reads the seed document from object storage.
type Object struct {
	reader model.ObjectReader
	key    string
}

// NewObject creates an Object seed source for the document stored under key.
func NewObject(reader model.ObjectReader, key string) *Object {
	return &Object{reader: reader, key: key}
}

// Users downloads and decodes the seed document.
func (s *Object) Users(ctx context.Context) ([]model.User, error) {
	exists, err := s.reader.Exists(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to check seed object: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("seed object %q: %w", s.key, model.ErrNotFound)
	}

	rc, err := s.reader.Download(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to download seed object: %w", err)
	}
	defer rc.Close()

	return Decode(rc)
}
