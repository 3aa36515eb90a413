package sqlrepo

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"hotel_api/internal/shared"
)

// Dialect holds the statements that differ between the supported servers.
type Dialect struct {
	Name         string
	DriverName   string // database/sql driver name
	createTable  string
	insert       string
	returning    bool // insert yields the row itself
	selectByID   string
	searchByDate string
	truncate     string
}

var (
	MySQL = Dialect{
		Name:         shared.DriverMySQL,
		DriverName:   "mysql",
		createTable:  createTableMySQL,
		insert:       insertMySQL,
		selectByID:   selectByIDMySQL,
		searchByDate: searchByDateMySQL,
		truncate:     truncateMySQL,
	}
	Postgres = Dialect{
		Name:         shared.DriverPostgres,
		DriverName:   "postgres",
		createTable:  createTablePostgres,
		insert:       insertPostgres,
		returning:    true,
		selectByID:   selectByIDPostgres,
		searchByDate: searchByDatePostgres,
		truncate:     truncatePostgres,
	}
)

func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case shared.DriverMySQL:
		return MySQL, nil
	case shared.DriverPostgres, "pg", "postgresql":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func (d Dialect) quoteIdent(name string) string {
	if d.Name == shared.DriverPostgres {
		return pq.QuoteIdentifier(name)
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
