package services

import (
	"database/sql"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rutvikm/agri-price-be/internal/models"
)

// PriceServiceProvider defines the interface for price record services.
type PriceServiceProvider interface {
	MarketsByDistrict() (map[string][]string, error)
	DropdownData() (models.DropdownData, error)
	Search(filter map[string]string) ([]models.PriceRecord, error)
	ListByDistrict(district, market string) ([]models.PriceRecord, error)
	Add(district string, record models.PriceRecord) (models.PriceRecord, error)
	Update(id string, fields map[string]interface{}) (models.PriceRecord, error)
	Delete(id string) error
}

// PriceService provides taxonomy, search and district-scoped administration
// of price records.
type PriceService struct {
	db *sql.DB
}

// NewPriceService creates a new PriceService.
func NewPriceService(db *sql.DB) *PriceService {
	return &PriceService{db: db}
}

// priceColumns maps client-visible field names to table columns. Filter and
// update input is matched against this map; anything else is dropped, which
// keeps the permissive pass-through contract without interpolating client
// strings into SQL.
var priceColumns = map[string]string{
	"name":      "name",
	"district":  "district",
	"market":    "market",
	"highPrice": "high_price",
	"lowPrice":  "low_price",
	"date":      "date",
}

const priceSelect = "SELECT id, name, district, market, high_price, low_price, date FROM prices"

// MarketsByDistrict groups all price records by district, collecting the
// distinct markets per district sorted ascending. Records without a district
// are excluded.
func (s *PriceService) MarketsByDistrict() (map[string][]string, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT district, market FROM prices WHERE district IS NOT NULL AND district != '' ORDER BY district, market")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]string)
	for rows.Next() {
		var district string
		var market sql.NullString
		if err := rows.Scan(&district, &market); err != nil {
			return nil, err
		}
		result[district] = append(result[district], market.String)
	}
	return result, rows.Err()
}

// DropdownData returns the sorted distinct vegetable names together with the
// district-to-markets mapping, in one payload.
func (s *PriceService) DropdownData() (models.DropdownData, error) {
	districtMarkets, err := s.MarketsByDistrict()
	if err != nil {
		return models.DropdownData{}, err
	}

	rows, err := s.db.Query("SELECT DISTINCT name FROM prices WHERE name IS NOT NULL ORDER BY name")
	if err != nil {
		return models.DropdownData{}, err
	}
	defer rows.Close()

	vegetables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return models.DropdownData{}, err
		}
		vegetables = append(vegetables, name)
	}
	if err := rows.Err(); err != nil {
		return models.DropdownData{}, err
	}

	return models.DropdownData{Vegetables: vegetables, DistrictMarkets: districtMarkets}, nil
}

// Search finds records matching every given field by equality. Unrecognized
// field names are ignored. An empty filter returns everything.
func (s *PriceService) Search(filter map[string]string) ([]models.PriceRecord, error) {
	var conds []string
	var args []interface{}

	// Deterministic clause order, for sane query plans and tests.
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		column, ok := priceColumns[key]
		if !ok {
			continue
		}
		conds = append(conds, column+" = ?")
		args = append(args, filter[key])
	}

	query := priceSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	return s.queryRecords(query, args...)
}

// ListByDistrict returns the records of one district, newest date first.
// A market filter is applied unless it is empty or the sentinel "All".
func (s *PriceService) ListByDistrict(district, market string) ([]models.PriceRecord, error) {
	query := priceSelect + " WHERE district = ?"
	args := []interface{}{district}
	if market != "" && market != "All" {
		query += " AND market = ?"
		args = append(args, market)
	}
	query += " ORDER BY date DESC"
	return s.queryRecords(query, args...)
}

// Add persists a new record. The district always comes from the
// authenticated account, never from the submitted fields.
func (s *PriceService) Add(district string, record models.PriceRecord) (models.PriceRecord, error) {
	record.ID = uuid.New().String()
	record.District = district

	_, err := s.db.Exec(
		"INSERT INTO prices(id, name, district, market, high_price, low_price, date) VALUES(?, ?, ?, ?, ?, ?, ?)",
		record.ID, record.Name, record.District, record.Market, record.HighPrice, record.LowPrice, record.Date,
	)
	if err != nil {
		return models.PriceRecord{}, err
	}
	return record, nil
}

// Update overwrites the named fields on the record with the given id and
// returns the updated record. District is deliberately not re-scoped here:
// callers can update any record by id, matching the historical contract.
func (s *PriceService) Update(id string, fields map[string]interface{}) (models.PriceRecord, error) {
	var sets []string
	var args []interface{}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		column, ok := priceColumns[key]
		if !ok {
			continue
		}
		sets = append(sets, column+" = ?")
		args = append(args, fields[key])
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.Exec("UPDATE prices SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return models.PriceRecord{}, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return models.PriceRecord{}, err
		}
		if affected == 0 {
			return models.PriceRecord{}, ErrNotFound
		}
	}

	return s.getByID(id)
}

// Delete removes the record with the given id.
func (s *PriceService) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM prices WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PriceService) getByID(id string) (models.PriceRecord, error) {
	row := s.db.QueryRow(priceSelect+" WHERE id = ?", id)
	record, err := scanRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.PriceRecord{}, ErrNotFound
		}
		return models.PriceRecord{}, err
	}
	return record, nil
}

func (s *PriceService) queryRecords(query string, args ...interface{}) ([]models.PriceRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.PriceRecord{}
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanRecord(scan func(...interface{}) error) (models.PriceRecord, error) {
	var r models.PriceRecord
	var name, district, market, date sql.NullString
	var high, low sql.NullFloat64
	if err := scan(&r.ID, &name, &district, &market, &high, &low, &date); err != nil {
		return models.PriceRecord{}, err
	}
	r.Name = name.String
	r.District = district.String
	r.Market = market.String
	r.HighPrice = high.Float64
	r.LowPrice = low.Float64
	r.Date = date.String
	return r, nil
}
