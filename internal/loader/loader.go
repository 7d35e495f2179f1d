package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/chip-tycoon/internal/models"
)

// Content file names looked up in the data directory, in order
var contentFiles = []string{"content.yaml", "content.yml", "content.json"}

// LoadContent loads and validates the static tables from dataDir.
// YAML is preferred; a content.json is accepted as a fallback.
func LoadContent(dataDir string) (*models.Content, error) {
	for _, name := range contentFiles {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		return LoadContentFile(path)
	}
	return nil, fmt.Errorf("no content file in %s (tried %s)", dataDir, strings.Join(contentFiles, ", "))
}

// LoadContentFile loads and validates a single content file
func LoadContentFile(path string) (*models.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var content *models.Content
	if strings.EqualFold(filepath.Ext(path), ".json") {
		content, err = ParseJSON(data)
	} else {
		content, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return content, nil
}

// ParseYAML decodes content tables and validates them. Unknown keys are
// rejected so typos in the tables surface early.
func ParseYAML(data []byte) (*models.Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var content models.Content
	if err := dec.Decode(&content); err != nil {
		return nil, err
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return &content, nil
}

// ParseJSON decodes content tables from JSON and validates them
func ParseJSON(data []byte) (*models.Content, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var content models.Content
	if err := dec.Decode(&content); err != nil {
		return nil, err
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return &content, nil
}
