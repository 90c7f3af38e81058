package migration

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is one embedded migration and whether the database has it.
type Status struct {
	Version uint
	Name    string
	Applied bool
}

// Plan marks names (as returned by ListMigrations) applied up to and including current.
func Plan(names []string, current uint) ([]Status, error) {
	plan := make([]Status, 0, len(names))
	for _, name := range names {
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration %q has no version prefix", name)
		}
		v, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %q: invalid version: %w", name, err)
		}
		plan = append(plan, Status{Version: uint(v), Name: name, Applied: uint(v) <= current})
	}
	return plan, nil
}

// Pending counts the entries of plan not yet applied.
func Pending(plan []Status) int {
	n := 0
	for _, s := range plan {
		if !s.Applied {
			n++
		}
	}
	return n
}
