// Package model defines the core data structures for todo.
package model

// Task is a single to-do record.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// SeedEntry is one task in a seed file. Seed entries carry no ID; the store
// assigns a fresh one when the entry is loaded.
type SeedEntry struct {
	Text      string `yaml:"text" toml:"text"`
	Completed bool   `yaml:"completed,omitempty" toml:"completed"`
}

// SeedFile is the on-disk shape of a seed file.
type SeedFile struct {
	Tasks []SeedEntry `yaml:"tasks" toml:"tasks"`
}
