package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/importer"
	"github.com/alexanderramin/rostercost/internal/repository"
	"github.com/google/uuid"
)

type rosterService struct {
	rosters  repository.RosterRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewRosterService(
	rosters repository.RosterRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) RosterService {
	return &rosterService{
		rosters:  rosters,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *rosterService) GetOrCreate(ctx context.Context, projectID string, year, month int) (*domain.Roster, error) {
	var ro *domain.Roster
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, projectID); err != nil {
			return err
		}
		var err error
		ro, err = getOrCreateRoster(ctx, repository.NewSQLiteRosterRepo(tx), projectID, year, month)
		return err
	})
	return ro, err
}

// getOrCreateRoster returns the project's roster for the period, creating an
// empty one when none exists.
func getOrCreateRoster(ctx context.Context, rosters repository.RosterRepo, projectID string, year, month int) (*domain.Roster, error) {
	if err := domain.ValidatePeriod(year, month); err != nil {
		return nil, err
	}
	ro, err := rosters.GetByPeriod(ctx, projectID, year, month)
	if err == nil {
		return ro, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	now := time.Now().UTC()
	ro = &domain.Roster{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Year:      year,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := rosters.Create(ctx, ro); err != nil {
		return nil, fmt.Errorf("creating roster %s: %w", ro.Period(), err)
	}
	return ro, nil
}

// SetEntry assigns shiftCode to the staff member on day, replacing any
// earlier code for that day. The staff member must belong to the project.
func (s *rosterService) SetEntry(ctx context.Context, projectID string, year, month int, staffID string, day int, shiftCode string) error {
	shiftCode = strings.TrimSpace(shiftCode)
	if shiftCode == "" {
		return fmt.Errorf("shift code is required: %w", domain.ErrInvalidInput)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, projectID); err != nil {
			return err
		}
		staff, err := repository.NewSQLiteStaffRepo(tx).GetByID(ctx, staffID)
		if err != nil {
			return err
		}
		if staff.ProjectID != projectID {
			return fmt.Errorf("staff %s belongs to another project: %w", staff.Code, domain.ErrInvalidInput)
		}

		txRosters := repository.NewSQLiteRosterRepo(tx)
		ro, err := getOrCreateRoster(ctx, txRosters, projectID, year, month)
		if err != nil {
			return err
		}
		if err := ro.ValidateDay(day); err != nil {
			return err
		}
		return txRosters.UpsertEntry(ctx, &domain.RosterEntry{
			RosterID:  ro.ID,
			StaffID:   staffID,
			Day:       day,
			ShiftCode: shiftCode,
			UpdatedAt: time.Now().UTC(),
		})
	})
}

func (s *rosterService) ClearEntry(ctx context.Context, projectID string, year, month int, staffID string, day int) error {
	ro, err := s.rosters.GetByPeriod(ctx, projectID, year, month)
	if err != nil {
		return err
	}
	return s.rosters.DeleteEntry(ctx, ro.ID, staffID, day)
}

func (s *rosterService) GetSheet(ctx context.Context, projectID string, year, month int) (*domain.RosterSheet, error) {
	if err := domain.ValidatePeriod(year, month); err != nil {
		return nil, err
	}
	ro, err := s.rosters.GetByPeriod(ctx, projectID, year, month)
	if err != nil {
		return nil, err
	}
	lines, err := s.rosters.ListLines(ctx, ro.ID)
	if err != nil {
		return nil, err
	}
	return &domain.RosterSheet{Roster: *ro, Lines: lines}, nil
}

func (s *rosterService) Import(ctx context.Context, filePath string) (*ImportResult, error) {
	grid, err := importer.LoadRosterImport(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading roster file: %w", err)
	}
	return s.ImportGrid(ctx, grid)
}

// ImportGrid writes every cell of grid in one transaction. Any invalid row
// aborts the import before anything is written.
func (s *rosterService) ImportGrid(ctx context.Context, grid *importer.RosterImport) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project": grid.Project,
		"period":  fmt.Sprintf("%04d-%02d", grid.Year, grid.Month),
	}
	defer observe(ctx, s.observer, "import-roster", startedAt, fields, &err)

	if errs := importer.ValidateRosterImport(grid); len(errs) > 0 {
		return nil, formatValidationErrors("roster import", errs)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		project, err := repository.NewSQLiteProjectRepo(tx).GetByShortID(ctx, grid.Project)
		if err != nil {
			return fmt.Errorf("roster import project: %w", err)
		}
		staff, err := repository.NewSQLiteStaffRepo(tx).ListByProject(ctx, project.ID, true)
		if err != nil {
			return err
		}
		byCode := make(map[string]*domain.Staff, len(staff))
		for _, st := range staff {
			byCode[st.Code] = st
		}

		txRosters := repository.NewSQLiteRosterRepo(tx)
		ro, err := getOrCreateRoster(ctx, txRosters, project.ID, grid.Year, grid.Month)
		if err != nil {
			return err
		}

		entries, errs := importer.Convert(grid, ro.ID, byCode)
		if len(errs) > 0 {
			return formatValidationErrors("roster import", errs)
		}
		for _, e := range entries {
			if err := txRosters.UpsertEntry(ctx, e); err != nil {
				return fmt.Errorf("writing day %d: %w", e.Day, err)
			}
		}

		result = &ImportResult{
			Project:    project,
			Roster:     ro,
			StaffCount: len(grid.Rows),
			EntryCount: len(entries),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["entries"] = result.EntryCount
	return result, nil
}
