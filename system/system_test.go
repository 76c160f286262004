package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"furniture-delivery/config"
	"furniture-delivery/models"
	"furniture-delivery/report"
	"furniture-delivery/roles"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newSystem() *System {
	admin := &roles.OfficeAdministrator{ID: 1, Name: "Central office"}
	return New(1, "Central office", admin, nil)
}

func TestRunFullBatch(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		FurnitureFile: writeFile(t, dir, "furniture.txt", "1;10.0;Chair;50.0;100\n"),
		StoreFile:     writeFile(t, dir, "store.txt", "1;Riga;Main St 5;Ivanov\n"),
		OrderFile:     writeFile(t, dir, "order.txt", "1;Ann;555-1111;2000-01-01;Processing;1:5\n"),
		ReportFile:    filepath.Join(dir, "overdue_report.xlsx"),
	}

	sys := newSystem()
	path, err := sys.Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.ReportFile, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Furniture type", "Overdue unit count"},
		{"Chair", "5"},
	}, rows)
}

func TestRunFailsOnMalformedInput(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		FurnitureFile: writeFile(t, dir, "furniture.txt", "not;a;furniture;line\n"),
		StoreFile:     writeFile(t, dir, "store.txt", ""),
		OrderFile:     writeFile(t, dir, "order.txt", ""),
		ReportFile:    filepath.Join(dir, "overdue_report.xlsx"),
	}

	_, err := newSystem().Run(cfg)
	assert.ErrorContains(t, err, "expected 5 fields")
	assert.NoFileExists(t, cfg.ReportFile)
}

func TestAggregateOverdueByType(t *testing.T) {
	sys := newSystem()
	ref := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	sys.AddOrder(models.NewOrder(1, nil,
		[]models.Furniture{{ID: 1, Type: "Chair", Quantity: "3"}}, past, past))
	sys.AddOrder(models.NewOrder(2, nil,
		[]models.Furniture{{ID: 1, Type: "Chair", Quantity: "4"}}, past, past))

	result, err := sys.AggregateOverdueByType(ref)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Chair": 7}, result)
}

func TestReadOrdersResolvesAgainstLoadedCatalog(t *testing.T) {
	dir := t.TempDir()
	sys := newSystem()

	require.NoError(t, sys.ReadFurniture(
		writeFile(t, dir, "furniture.txt", "1;10.0;Chair;50.0;100\n2;40.0;Table;200.0;30\n")))
	require.NoError(t, sys.ReadOrders(
		writeFile(t, dir, "order.txt", "5;Ann;555-1111;2024-05-01;Processing;2:2,9:1\n")))

	require.Len(t, sys.Orders, 1)
	require.Len(t, sys.Orders[0].Items, 1)
	assert.Equal(t, "Table", sys.Orders[0].Items[0].Type)
	assert.Equal(t, "2", sys.Orders[0].Items[0].Quantity)
}

func TestAddHelpers(t *testing.T) {
	sys := newSystem()
	sys.AddFurniture(&models.Furniture{ID: 1, Type: "Chair"})
	sys.AddStore(&models.Store{ID: 1, City: "Riga"})
	sys.AddOrder(models.NewOrder(1, nil, nil, time.Now(), time.Now()))

	assert.Len(t, sys.Catalog, 1)
	assert.Len(t, sys.Stores, 1)
	assert.Len(t, sys.Orders, 1)
}
