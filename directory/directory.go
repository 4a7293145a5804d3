// Package directory holds the read-only artist directory: which members
// belong to which group, and which slash command announces each group.
package directory

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxMembersPerGroup is Discord's limit on choices for a single command option
const MaxMembersPerGroup = 25

var (
	// ErrUnknownGroup is returned when a group is not in the directory
	ErrUnknownGroup = errors.New("unknown group")
	// ErrUnknownMember is returned when a member is not listed under the group
	ErrUnknownMember = errors.New("unknown member")
)

var commandNamePattern = regexp.MustCompile(`^[-_a-z0-9]{1,32}$`)

//go:embed artists.yaml
var defaultDirectoryYAML []byte

// Group is one artist group and its members, in display order
type Group struct {
	Name        string   `yaml:"name"`
	Command     string   `yaml:"command"`
	Description string   `yaml:"description"`
	Members     []string `yaml:"members"`
}

// HasMember reports whether name is an exact member of the group
func (g *Group) HasMember(name string) bool {
	return slices.Contains(g.Members, name)
}

// Directory maps groups to members
type Directory struct {
	Groups []Group `yaml:"groups"`
}

// Default returns the directory bundled with the binary
func Default() (*Directory, error) {
	dir, err := Parse(defaultDirectoryYAML)
	if err != nil {
		return nil, fmt.Errorf("directory: embedded default: %w", err)
	}
	return dir, nil
}

// Load returns the directory at path, or the bundled default when path is empty
func Load(path string) (*Directory, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("directory: read %s: %w", path, err)
	}
	dir, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("directory: %s: %w", path, err)
	}
	return dir, nil
}

// Parse decodes and validates a YAML directory document
func Parse(data []byte) (*Directory, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("directory payload is empty")
	}

	var dir Directory
	if err := yaml.Unmarshal(data, &dir); err != nil {
		return nil, fmt.Errorf("decode directory: %w", err)
	}
	if err := dir.validate(); err != nil {
		return nil, err
	}
	return &dir, nil
}

func (d *Directory) validate() error {
	if len(d.Groups) == 0 {
		return fmt.Errorf("directory has no groups")
	}

	names := make(map[string]bool, len(d.Groups))
	commands := make(map[string]bool, len(d.Groups))
	for i := range d.Groups {
		g := &d.Groups[i]
		g.Name = strings.TrimSpace(g.Name)
		g.Command = strings.TrimSpace(g.Command)

		if g.Name == "" {
			return fmt.Errorf("group %d has no name", i)
		}
		if names[g.Name] {
			return fmt.Errorf("duplicate group %q", g.Name)
		}
		names[g.Name] = true

		if !commandNamePattern.MatchString(g.Command) {
			return fmt.Errorf("group %q has invalid command name %q", g.Name, g.Command)
		}
		if commands[g.Command] {
			return fmt.Errorf("duplicate command %q", g.Command)
		}
		commands[g.Command] = true

		if len(g.Members) == 0 {
			return fmt.Errorf("group %q has no members", g.Name)
		}
		if len(g.Members) > MaxMembersPerGroup {
			return fmt.Errorf("group %q has %d members, limit is %d", g.Name, len(g.Members), MaxMembersPerGroup)
		}

		seen := make(map[string]bool, len(g.Members))
		for j, member := range g.Members {
			member = strings.TrimSpace(member)
			if member == "" {
				return fmt.Errorf("group %q has an empty member name", g.Name)
			}
			if seen[member] {
				return fmt.Errorf("group %q lists %q twice", g.Name, member)
			}
			seen[member] = true
			g.Members[j] = member
		}
	}
	return nil
}

// Group returns the group named name
func (d *Directory) Group(name string) (*Group, bool) {
	for i := range d.Groups {
		if d.Groups[i].Name == name {
			return &d.Groups[i], true
		}
	}
	return nil, false
}

// GroupForCommand returns the group announced by the given slash command
func (d *Directory) GroupForCommand(command string) (*Group, bool) {
	for i := range d.Groups {
		if d.Groups[i].Command == command {
			return &d.Groups[i], true
		}
	}
	return nil, false
}

// Validate checks that member is a valid choice within group
func (d *Directory) Validate(group, member string) error {
	g, ok := d.Group(group)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}
	if !g.HasMember(member) {
		return fmt.Errorf("%w: %q is not in %s", ErrUnknownMember, member, group)
	}
	return nil
}
