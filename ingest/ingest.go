// Package ingest reads the three semicolon-delimited input files and
// rebuilds the in-memory entity collections. Furniture must be read
// before orders: order line items are resolved against the catalog by id.
package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"furniture-delivery/models"
)

var validate = validator.New()

type furnitureRow struct {
	ID       int    `validate:"gt=0"`
	Type     string `validate:"required"`
	Quantity string `validate:"required"`
}

type storeRow struct {
	ID   int    `validate:"gt=0"`
	City string `validate:"required"`
}

// forEachLine runs fn over every non-empty line of the file. Blank lines
// are skipped silently; any error from fn aborts the read with the file
// name and 1-based line number attached.
func forEachLine(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
	}
	return scanner.Err()
}

// ReadFurniture parses the catalog file: id;weight;type;price;quantity.
// Quantity is kept in its raw textual form.
func ReadFurniture(path string) ([]*models.Furniture, error) {
	var furniture []*models.Furniture
	err := forEachLine(path, func(line string) error {
		fields := strings.Split(line, ";")
		if len(fields) != 5 {
			return fmt.Errorf("expected 5 fields, got %d", len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("furniture id: %w", err)
		}
		weight, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("furniture weight: %w", err)
		}
		price, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return fmt.Errorf("furniture price: %w", err)
		}
		if err := validate.Struct(furnitureRow{ID: id, Type: fields[2], Quantity: fields[4]}); err != nil {
			return err
		}
		furniture = append(furniture, &models.Furniture{
			ID:       id,
			Weight:   weight,
			Type:     fields[2],
			Price:    price,
			Quantity: fields[4],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return furniture, nil
}

// ReadStores parses the store file: id;city;address;director.
func ReadStores(path string) ([]*models.Store, error) {
	var stores []*models.Store
	err := forEachLine(path, func(line string) error {
		fields := strings.Split(line, ";")
		if len(fields) != 4 {
			return fmt.Errorf("expected 4 fields, got %d", len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("store id: %w", err)
		}
		if err := validate.Struct(storeRow{ID: id, City: fields[1]}); err != nil {
			return err
		}
		stores = append(stores, &models.Store{
			ID:       id,
			City:     fields[1],
			Address:  fields[2],
			Director: fields[3],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stores, nil
}

// CatalogByID indexes the furniture catalog for order-item resolution.
func CatalogByID(furniture []*models.Furniture) map[int]*models.Furniture {
	catalog := make(map[int]*models.Furniture, len(furniture))
	for _, f := range furniture {
		catalog[f.ID] = f
	}
	return catalog
}

// ReadOrders parses the order file:
// order_id;client_name;client_phone;planned_date;status;items
// where items is empty or comma-joined fid:qty pairs. Line items whose
// furniture id is not in the catalog are dropped silently. Each row gets
// a fresh Client keyed by the order id, and the raw status field is
// written directly onto the order.
func ReadOrders(path string, catalog map[int]*models.Furniture) ([]*models.Order, error) {
	var orders []*models.Order
	err := forEachLine(path, func(line string) error {
		fields := strings.Split(line, ";")
		if len(fields) != 6 {
			return fmt.Errorf("expected 6 fields, got %d", len(fields))
		}
		orderID, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("order id: %w", err)
		}
		plannedDate, err := time.Parse("2006-01-02", fields[3])
		if err != nil {
			return fmt.Errorf("planned delivery date: %w", err)
		}
		items, err := resolveItems(fields[5], catalog)
		if err != nil {
			return err
		}
		client := &models.Client{ID: orderID, Name: fields[1], Phone: fields[2]}
		order := models.NewOrder(orderID, client, items, time.Now(), plannedDate)
		order.Status = models.OrderStatus(fields[4])
		orders = append(orders, order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func resolveItems(spec string, catalog map[int]*models.Furniture) ([]models.Furniture, error) {
	var items []models.Furniture
	if spec == "" {
		return items, nil
	}
	for _, pair := range strings.Split(spec, ",") {
		fid, qty, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("item %q: expected fid:qty", pair)
		}
		id, err := strconv.Atoi(fid)
		if err != nil {
			return nil, fmt.Errorf("item furniture id: %w", err)
		}
		n, err := strconv.Atoi(qty)
		if err != nil {
			return nil, fmt.Errorf("item quantity: %w", err)
		}
		if base, ok := catalog[id]; ok {
			items = append(items, base.WithQuantity(n))
		}
	}
	return items, nil
}
