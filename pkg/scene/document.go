// Package scene describes component trees in YAML and builds them into
// widget trees through a registry of per-type factories.
package scene

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/binder/pkg/errors"
)

// SupportedMajor is the scene document major version this package reads.
const SupportedMajor = "v1"

// Document is a parsed scene file.
type Document struct {
	Version string `yaml:"version"`
	Root    *Node  `yaml:"root"`
}

// Node describes one component. Which fields apply depends on Type.
type Node struct {
	Type  string `yaml:"type"`
	Name  string `yaml:"name,omitempty"`
	Text  string `yaml:"text,omitempty"`
	Title string `yaml:"title,omitempty"`

	Items       []any    `yaml:"items,omitempty"`
	Rows        [][]any  `yaml:"rows,omitempty"`
	Columns     []string `yaml:"columns,omitempty"`
	VisibleRows int      `yaml:"visible_rows,omitempty"`
	Selection   *int     `yaml:"selection,omitempty"`

	Editable *bool `yaml:"editable,omitempty"`
	Enabled  *bool `yaml:"enabled,omitempty"`
	Visible  *bool `yaml:"visible,omitempty"`

	Children []*Node `yaml:"children,omitempty"`
	Content  *Node   `yaml:"content,omitempty"`
	View     *Node   `yaml:"view,omitempty"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scene document and checks its version.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, sceneError("scene.Parse", "", fmt.Errorf("empty document"))
		}
		return nil, sceneError("scene.Parse", "", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	if doc.Root == nil {
		return nil, sceneError("scene.Parse", "", fmt.Errorf("missing root node"))
	}
	return &doc, nil
}

// CanonicalVersion returns v as a semantic version with a leading "v".
func CanonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

func checkVersion(v string) error {
	if strings.TrimSpace(v) == "" {
		return sceneError("scene.Parse", "", fmt.Errorf("missing version"))
	}
	c := CanonicalVersion(v)
	if c == "" {
		return sceneError("scene.Parse", "", fmt.Errorf("invalid version %q", v))
	}
	if semver.Major(c) != SupportedMajor {
		return sceneError("scene.Parse", "",
			fmt.Errorf("unsupported version %s (want %s.x)", c, SupportedMajor))
	}
	return nil
}

func sceneError(op, component string, err error) *errors.BindError {
	return &errors.BindError{Op: op, Kind: errors.KindScene, Component: component, Err: err}
}
