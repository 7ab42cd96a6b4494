package store

import (
	"context"
	"fmt"

	"lims_service/internal/domain/entities"
	"lims_service/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source is where the entity caches load from.
type Source interface {
	WorkOrderHeaders(ctx context.Context) ([]entities.WorkOrderHeader, error)
	WorkOrderLines(ctx context.Context) ([]entities.WorkOrderLine, error)
	CheckIns(ctx context.Context) ([]entities.CheckInRecord, error)
	CheckOuts(ctx context.Context) ([]entities.CheckOutRecord, error)
	Imports(ctx context.Context) ([]entities.ImportRecord, error)
	Companies(ctx context.Context) ([]entities.Company, error)
}

// EntityStore owns one cache per entity and serves them through IEntityAccessor.
type EntityStore struct {
	headers   *Store[entities.WorkOrderHeader]
	lines     *Store[entities.WorkOrderLine]
	checkIns  *Store[entities.CheckInRecord]
	checkOuts *Store[entities.CheckOutRecord]
	imports   *Store[entities.ImportRecord]
	companies *Store[entities.Company]
	logger    *zap.Logger
}

var _ interfaces.IEntityAccessor = (*EntityStore)(nil)

func NewEntityStore(src Source, observer RefreshObserver, logger *zap.Logger) *EntityStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntityStore{
		headers:   New[entities.WorkOrderHeader]("work_order_headers", src.WorkOrderHeaders, observer),
		lines:     New[entities.WorkOrderLine]("work_order_lines", src.WorkOrderLines, observer),
		checkIns:  New[entities.CheckInRecord]("check_ins", src.CheckIns, observer),
		checkOuts: New[entities.CheckOutRecord]("check_outs", src.CheckOuts, observer),
		imports:   New[entities.ImportRecord]("imports", src.Imports, observer),
		companies: New[entities.Company]("companies", src.Companies, observer),
		logger:    logger,
	}
}

type refresher interface {
	Name() string
	Refresh(ctx context.Context) error
}

func (s *EntityStore) all() []refresher {
	return []refresher{s.headers, s.lines, s.checkIns, s.checkOuts, s.imports, s.companies}
}

// RefreshAll reloads every cache concurrently. A failing cache keeps its previous snapshot;
// the first error is returned after all loads finish.
func (s *EntityStore) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	for _, st := range s.all() {
		g.Go(func() error {
			if err := st.Refresh(ctx); err != nil {
				s.logger.Error("[store] refresh failed", zap.String("store", st.Name()), zap.Error(err))
				return fmt.Errorf("refresh %s: %w", st.Name(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Debug("[store] all caches refreshed")
	return nil
}

// Ready reports whether every cache has loaded at least once.
func (s *EntityStore) Ready() bool {
	return s.headers.Loaded() && s.lines.Loaded() && s.checkIns.Loaded() &&
		s.checkOuts.Loaded() && s.imports.Loaded() && s.companies.Loaded()
}

func (s *EntityStore) GetWorkOrderHeaders() []entities.WorkOrderHeader {
	return s.headers.Snapshot()
}

func (s *EntityStore) GetWorkOrderLinesByHeaderID(headerID int64) []entities.WorkOrderLine {
	out := make([]entities.WorkOrderLine, 0)
	s.lines.Each(func(l entities.WorkOrderLine) {
		if l.HeaderID == headerID {
			out = append(out, l)
		}
	})
	return out
}

func (s *EntityStore) GetCheckOutRecords() []entities.CheckOutRecord {
	return s.checkOuts.Snapshot()
}

func (s *EntityStore) GetCheckedInSamples() []entities.CheckInRecord {
	return s.checkIns.Snapshot()
}

// GetCustomers projects every company to its id/name pair.
func (s *EntityStore) GetCustomers() []entities.Customer {
	out := make([]entities.Customer, 0)
	s.companies.Each(func(c entities.Company) {
		out = append(out, entities.Customer{ID: c.ID, Name: c.CompanyName})
	})
	return out
}

func (s *EntityStore) GetImportRecords() []entities.ImportRecord {
	return s.imports.Snapshot()
}

func (s *EntityStore) GetCompanyByID(id int64) (entities.Company, bool) {
	var found entities.Company
	ok := false
	s.companies.Each(func(c entities.Company) {
		if !ok && c.ID == id {
			found, ok = c, true
		}
	})
	return found, ok
}

func (s *EntityStore) GetActiveCompanies() []entities.Company {
	out := make([]entities.Company, 0)
	s.companies.Each(func(c entities.Company) {
		if c.Active {
			out = append(out, c)
		}
	})
	return out
}
