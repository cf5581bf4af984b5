package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{3,6}[0-9]{2,4}$`)

// Project is a physical site whose staff are rostered and costed.
// Projects are soft-deleted by clearing Active.
type Project struct {
	ID        string
	ShortID   string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateShortID checks that ShortID is non-empty and matches the required
// format: 3-6 uppercase letters followed by 2-4 digits (e.g. SITE01, BKK0012).
func (p *Project) ValidateShortID() error {
	if p.ShortID == "" {
		return fmt.Errorf("short ID is required (use --id flag): %w", ErrInvalidInput)
	}
	if !shortIDPattern.MatchString(p.ShortID) {
		return fmt.Errorf("short ID %q must be 3-6 uppercase letters followed by 2-4 digits (e.g. SITE01): %w", p.ShortID, ErrInvalidInput)
	}
	return nil
}

// Validate checks the fields required before a project is persisted.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required: %w", ErrInvalidInput)
	}
	return p.ValidateShortID()
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.ShortID != "" {
		return p.ShortID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
