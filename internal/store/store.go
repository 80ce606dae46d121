package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/kutbudev/clickup-bridge/internal/models"
)

// document is the single persisted JSON shape: every record from the last
// successful ingestion under one top-level key.
type document struct {
	Tasks []models.TaskRecord `json:"tasks"`
}

// Store persists the full record set as one JSON file with whole-file
// replace semantics. The ingest path is the only writer; the query path
// only reads and tolerates a missing or corrupt file.
type Store struct {
	path string
}

// New creates a store backed by the given file path
func New(path string) *Store {
	return &Store{path: path}
}

// ReplaceAll overwrites the persisted document with exactly the given records
func (s *Store) ReplaceAll(records []models.TaskRecord) error {
	if records == nil {
		records = []models.TaskRecord{}
	}

	data, err := json.MarshalIndent(document{Tasks: records}, "", "  ")
	if err != nil {
		log.Printf("Error saving to JSON: %v", err)
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		log.Printf("Error saving to JSON: %v", err)
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}

// LoadAll returns the stored records in insertion order. Any read or parse
// failure is logged and degrades to an empty set rather than an error, so a
// missing, truncated or mid-write document never fails the query path.
func (s *Store) LoadAll() []models.TaskRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error loading from JSON: %v", err)
		}
		return []models.TaskRecord{}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Error loading from JSON: %v", err)
		return []models.TaskRecord{}
	}

	if doc.Tasks == nil {
		return []models.TaskRecord{}
	}
	return doc.Tasks
}
