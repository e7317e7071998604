// Package config loads priority assignment files.
//
// An assignment file names the priority each class of work should run at:
//
//	default: Utility
//	classes:
//	  paint: UserInteractive
//	  search: UserInitiated
//	  indexing: Background
//
// The file is advisory. Nothing here enforces a priority; it only lets a
// program look up and validate the priorities it intends to use.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/steveyegge/priority"
	"gopkg.in/yaml.v3"
)

// EnvDefault overrides the default priority of a loaded assignment file.
const EnvDefault = "PRIORITY_DEFAULT"

// Assignments maps work classes to priorities.
type Assignments struct {
	// Default is used for classes that are not listed
	// Default: priority.HighestAsync()
	Default priority.Priority `yaml:"default"`

	// Classes maps a class name to its priority
	Classes map[string]priority.Priority `yaml:"classes"`
}

// Assignment is a single class and its priority.
type Assignment struct {
	Class    string
	Priority priority.Priority
}

// DefaultAssignments returns assignments with no classes and the default set
// to priority.HighestAsync().
func DefaultAssignments() *Assignments {
	return &Assignments{
		Default: priority.HighestAsync(),
		Classes: map[string]priority.Priority{},
	}
}

// LoadAssignments loads and validates an assignment file.
// Keys missing from the file keep their DefaultAssignments values.
func LoadAssignments(path string) (*Assignments, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	a := DefaultAssignments()
	if err := yaml.Unmarshal(data, a); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if a.Classes == nil {
		a.Classes = map[string]priority.Priority{}
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid assignments in %s: %w", path, err)
	}
	return a, nil
}

// ApplyEnv applies environment overrides.
//
// Environment variables:
//   - PRIORITY_DEFAULT: priority name used for unlisted classes
func (a *Assignments) ApplyEnv() error {
	if err := parseEnvPriority(EnvDefault, &a.Default); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("invalid assignments from environment: %w", err)
	}
	return nil
}

// Validate checks that every priority is a named, known value.
// Unknown is rejected: an assignment file is where the priority is determined.
func (a *Assignments) Validate() error {
	if err := checkAssigned(a.Default); err != nil {
		return fmt.Errorf("default: %w", err)
	}

	var errs []error
	for _, c := range a.Sorted() {
		if strings.TrimSpace(c.Class) == "" {
			errs = append(errs, errors.New("class name is required"))
			continue
		}
		if err := checkAssigned(c.Priority); err != nil {
			errs = append(errs, fmt.Errorf("class %q: %w", c.Class, err))
		}
	}
	return errors.Join(errs...)
}

// Resolve returns the priority for class, or the default if class is not listed.
func (a *Assignments) Resolve(class string) priority.Priority {
	if p, ok := a.Classes[class]; ok {
		return p
	}
	return a.Default
}

// Sorted returns the assigned classes, most urgent first, then by name.
func (a *Assignments) Sorted() []Assignment {
	out := make([]Assignment, 0, len(a.Classes))
	for class, p := range a.Classes {
		out = append(out, Assignment{Class: class, Priority: p})
	}
	slices.SortFunc(out, func(x, y Assignment) int {
		if c := priority.Compare(y.Priority, x.Priority); c != 0 {
			return c
		}
		return strings.Compare(x.Class, y.Class)
	})
	return out
}

func checkAssigned(p priority.Priority) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: %s", priority.ErrInvalidPriority, p)
	}
	if p == priority.Unknown {
		return errors.New("priority must not be Unknown")
	}
	return nil
}

// parseEnvPriority parses a priority name from an environment variable
func parseEnvPriority(key string, dest *priority.Priority) error {
	value := os.Getenv(key)
	if value == "" {
		return nil // Use default
	}
	parsed, err := priority.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}
