package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ParseProject decodes Clarinet.toml content.
func ParseProject(data []byte) (*ProjectManifest, error) {
	m, err := parseTOML[ProjectManifest](data)
	if err != nil {
		return nil, fmt.Errorf("parsing project manifest: %w", err)
	}
	if m.Project.Name == "" {
		return nil, fmt.Errorf("project manifest: [project] name is required")
	}
	return m, nil
}

// ParseProjectFile reads and decodes a Clarinet.toml file.
func ParseProjectFile(path string) (*ProjectManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProject(data)
}

// ParseNetwork decodes a network settings file.
func ParseNetwork(data []byte) (*NetworkSettings, error) {
	s, err := parseTOML[NetworkSettings](data)
	if err != nil {
		return nil, fmt.Errorf("parsing network settings: %w", err)
	}
	switch s.Network.Name {
	case NetworkDevnet, NetworkTestnet, NetworkMainnet:
	default:
		return nil, fmt.Errorf("network settings: unknown network %q", s.Network.Name)
	}
	if s.Network.Name != NetworkDevnet && s.Network.StacksNodeRPCAddress == "" {
		return nil, fmt.Errorf("network settings: %s requires stacks_node_rpc_address", s.Network.Name)
	}
	return s, nil
}

// ParseNetworkFile reads and decodes a network settings file.
func ParseNetworkFile(path string) (*NetworkSettings, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseNetwork(data)
}

func parseTOML[T any](data []byte) (*T, error) {
	var v T
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
