package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadSeed loads a seed file from the given path.
// The format is chosen by extension: .yaml, .yml or .toml.
func LoadSeed(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var sf *SeedFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		sf, err = ParseSeedYAML(data)
	case ".toml":
		sf, err = ParseSeedTOML(data)
	default:
		return nil, fmt.Errorf("unsupported seed file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return sf, nil
}

// ParseSeedYAML parses a YAML seed document.
func ParseSeedYAML(data []byte) (*SeedFile, error) {
	var sf SeedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, err
	}
	return &sf, nil
}

// ParseSeedTOML parses a TOML seed document.
func ParseSeedTOML(data []byte) (*SeedFile, error) {
	var sf SeedFile
	if _, err := toml.Decode(string(data), &sf); err != nil {
		return nil, err
	}
	return &sf, nil
}

// SaveSeed writes tasks to path as a YAML seed file.
func SaveSeed(path string, tasks []Task) error {
	data, err := EncodeSeed(tasks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write seed file %s: %w", path, err)
	}
	return nil
}

// EncodeSeed renders tasks as a YAML seed document.
// IDs are dropped; completed is only written when true.
// Multi-line text uses block scalar style.
func EncodeSeed(tasks []Task) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for i := range tasks {
		seq.Content = append(seq.Content, buildSeedEntryNode(&tasks[i]))
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "tasks"},
		seq,
	)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed: %w", err)
	}
	return data, nil
}

func buildSeedEntryNode(t *Task) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addMultilineStringField(node, "text", t.Text)
	if t.Completed {
		addBoolField(node, "completed", t.Completed)
	}
	return node
}

// Helper functions for building yaml.Node

func addBoolField(node *yaml.Node, key string, value bool) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%t", value), Tag: "!!bool"},
	)
}

func addMultilineStringField(node *yaml.Node, key, value string) {
	style := yaml.LiteralStyle
	if !strings.Contains(value, "\n") {
		style = 0
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str", Style: style},
	)
}
