package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// SaveTheme replaces the theme section of the config file, leaving comments
// and formatting elsewhere untouched. The file is created if missing.
func SaveTheme(configPath string, theme ThemeConfig) error {
	node, err := buildThemeNode(theme)
	if err != nil {
		return fmt.Errorf("building theme node: %w", err)
	}
	return saveSection(configPath, "theme", node)
}

func buildThemeNode(theme ThemeConfig) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if theme.Preset != "" {
		node.Content = append(node.Content, scalar("preset"), scalar(theme.Preset))
	}
	if len(theme.Colors) > 0 {
		colors := &yaml.Node{Kind: yaml.MappingNode}
		keys := make([]string, 0, len(theme.Colors))
		for k := range theme.Colors {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			value := scalar(theme.Colors[k])
			value.Style = yaml.DoubleQuotedStyle
			colors.Content = append(colors.Content, scalar(k), value)
		}
		node.Content = append(node.Content, scalar("colors"), colors)
	}
	return node, nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// saveSection sets key in the root mapping of the YAML file at configPath
// and writes the result atomically.
func saveSection(configPath, key string, value *yaml.Node) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level is not a mapping")
	}

	found := false
	for i := 0; i < len(root.Content)-1; i += 2 {
		if root.Content[i].Value == key {
			root.Content[i+1] = value
			found = true
			break
		}
	}
	if !found {
		root.Content = append(root.Content, scalar(key), value)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".spangrid.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(buf.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
