// Package orderfile loads a single order from a JSON file. It backs the
// one-shot pipeline mode where the process cartonizes one order, prints the
// ship notice, and exits.
package orderfile

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/order"
)

type addressFile struct {
	Name        string `json:"name"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
}

type lineFile struct {
	SKU         string   `json:"sku"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	UOM         string   `json:"uom"`
	UnitWeight  *float64 `json:"unitWeight"`
}

type orderFile struct {
	OrderID       string      `json:"orderId"`
	PurchaseOrder string      `json:"purchaseOrder"`
	ShipDate      string      `json:"shipDate"`
	ShipFrom      addressFile `json:"shipFrom"`
	ShipTo        addressFile `json:"shipTo"`
	CarrierCode   string      `json:"carrierCode"`
	ServiceLevel  string      `json:"serviceLevel"`
	Lines         []lineFile  `json:"lines"`
}

// Load reads and validates one order from the JSON file at path. The ship
// date is a plain YYYY-MM-DD date.
func Load(path string) (*order.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order file: %w", err)
	}

	var file orderFile
	if err = json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse order file %s: %w", path, err)
	}

	shipDate, err := time.Parse("2006-01-02", file.ShipDate)
	if err != nil {
		return nil, fmt.Errorf("parse ship date in %s: %w", path, err)
	}

	shipFrom, err := toAddress(file.ShipFrom)
	if err != nil {
		return nil, fmt.Errorf("ship from address in %s: %w", path, err)
	}
	shipTo, err := toAddress(file.ShipTo)
	if err != nil {
		return nil, fmt.Errorf("ship to address in %s: %w", path, err)
	}

	lines := make([]order.Line, 0, len(file.Lines))
	for i, lf := range file.Lines {
		var unitWeight *kernel.Weight
		if lf.UnitWeight != nil {
			w, weightErr := kernel.NewWeight(*lf.UnitWeight)
			if weightErr != nil {
				return nil, fmt.Errorf("line %d in %s: %w", i, path, weightErr)
			}
			unitWeight = &w
		}

		line, lineErr := order.NewLine(lf.SKU, lf.Description, lf.Quantity, lf.UOM, unitWeight)
		if lineErr != nil {
			return nil, fmt.Errorf("line %d in %s: %w", i, path, lineErr)
		}
		lines = append(lines, line)
	}

	ord, err := order.NewOrder(
		file.OrderID,
		file.PurchaseOrder,
		shipDate,
		shipFrom,
		shipTo,
		file.CarrierCode,
		file.ServiceLevel,
		lines,
	)
	if err != nil {
		return nil, fmt.Errorf("order in %s: %w", path, err)
	}
	return ord, nil
}

func toAddress(a addressFile) (kernel.Address, error) {
	return kernel.NewAddress(a.Name, a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.CountryCode)
}
