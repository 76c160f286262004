// Package system orchestrates one batch run: read the three input files,
// aggregate overdue orders, write the spreadsheet.
package system

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"furniture-delivery/config"
	"furniture-delivery/ingest"
	"furniture-delivery/models"
	"furniture-delivery/report"
	"furniture-delivery/roles"
)

type System struct {
	ID         int
	OfficeName string
	Admin      *roles.OfficeAdministrator

	Orders  []*models.Order
	Stores  []*models.Store
	Catalog []*models.Furniture

	logger *zap.Logger
}

func New(id int, officeName string, admin *roles.OfficeAdministrator, logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{ID: id, OfficeName: officeName, Admin: admin, logger: logger}
}

func (s *System) AddOrder(order *models.Order)     { s.Orders = append(s.Orders, order) }
func (s *System) AddStore(store *models.Store)     { s.Stores = append(s.Stores, store) }
func (s *System) AddFurniture(f *models.Furniture) { s.Catalog = append(s.Catalog, f) }

// ReadFurniture loads the catalog file into the system. It must run
// before ReadOrders.
func (s *System) ReadFurniture(path string) error {
	furniture, err := ingest.ReadFurniture(path)
	if err != nil {
		return err
	}
	s.Catalog = append(s.Catalog, furniture...)
	return nil
}

func (s *System) ReadStores(path string) error {
	stores, err := ingest.ReadStores(path)
	if err != nil {
		return err
	}
	s.Stores = append(s.Stores, stores...)
	return nil
}

func (s *System) ReadOrders(path string) error {
	orders, err := ingest.ReadOrders(path, ingest.CatalogByID(s.Catalog))
	if err != nil {
		return err
	}
	s.Orders = append(s.Orders, orders...)
	return nil
}

// AggregateOverdueByType sums overdue units per furniture type across
// all orders held by the system.
func (s *System) AggregateOverdueByType(ref time.Time) (map[string]int, error) {
	return report.AggregateOverdueByType(s.Orders, ref)
}

func (s *System) countOverdue(ref time.Time) int {
	n := 0
	for _, order := range s.Orders {
		if order.IsOverdue(ref) {
			n++
		}
	}
	return n
}

// Run executes one full batch: furniture, stores, orders, aggregation at
// the current time, report. Returns the written report path.
func (s *System) Run(cfg *config.Config) (string, error) {
	log := s.logger.With(zap.String("run_id", uuid.NewString()))

	if err := s.ReadFurniture(cfg.FurnitureFile); err != nil {
		return "", err
	}
	log.Info("catalog loaded", zap.String("file", cfg.FurnitureFile), zap.Int("furniture", len(s.Catalog)))

	if err := s.ReadStores(cfg.StoreFile); err != nil {
		return "", err
	}
	log.Info("stores loaded", zap.String("file", cfg.StoreFile), zap.Int("stores", len(s.Stores)))

	if err := s.ReadOrders(cfg.OrderFile); err != nil {
		return "", err
	}
	log.Info("orders loaded", zap.String("file", cfg.OrderFile), zap.Int("orders", len(s.Orders)))

	now := time.Now()
	result, err := s.AggregateOverdueByType(now)
	if err != nil {
		return "", err
	}
	log.Info("overdue aggregated",
		zap.Int("overdue_orders", s.countOverdue(now)),
		zap.Int("furniture_types", len(result)))

	path, err := report.WriteOverdueReport(result, cfg.ReportFile)
	if err != nil {
		return "", err
	}
	log.Info("report written", zap.String("path", path))
	return path, nil
}
