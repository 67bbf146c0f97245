package database

// Saves the variables a script has declared to a SQL database, so that whatever the script
// worked out outlives the run. One table, one row per variable, replaced wholesale each time.

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/espira-lang/espira/source/store"

	// SQL drivers

	_ "github.com/go-sql-driver/mysql"  // MariaDB & MySQL
	_ "github.com/lib/pq"               // Postgres
	_ "github.com/microsoft/go-mssqldb" // SQL Server
	_ "github.com/nakagami/firebirdsql" // Firebird
	_ "github.com/sijms/go-ora"         // Oracle
	_ "modernc.org/sqlite"              // SQLite
)

const TABLE = "espira_variables"

var (
	drivers = map[string]string{"Firebird SQL": "firebirdsql", "MariaDB": "mysql", "MySQL": "mysql",
		"Oracle": "oracle", "Postgres": "postgres", "SQLite": "sqlite", "SQL Server": "sqlserver"}
)

// A Row is a variable as it is stored: everything is text.
type Row struct {
	Name         string
	DeclaredType string
	ValueType    string
	Value        string
}

// DriverName accepts either the friendly name of a database or the name of its Go driver.
func DriverName(driver string) (string, bool) {
	if name, ok := drivers[driver]; ok {
		return name, true
	}
	for _, name := range drivers {
		if name == driver {
			return name, true
		}
	}
	return "", false
}

func GetdB(driver, dsn string) (*sql.DB, error) {
	name, ok := DriverName(driver)
	if !ok {
		return nil, fmt.Errorf("database: unknown driver %q", driver)
	}
	sqlObj, connectionError := sql.Open(name, dsn)
	if connectionError != nil {
		return nil, connectionError
	}
	if e := sqlObj.Ping(); e != nil {
		sqlObj.Close()
		return nil, e
	}
	return sqlObj, nil
}

func GetDriverOptions() string {
	result := "The following SQL drivers are available: \n\n"
	for k, v := range GetSortedDrivers() {
		result = result + fmt.Sprintf("  [%v] %v (%v)\n", k, v, drivers[v])
	}
	return result
}

func GetSortedDrivers() []string {
	dr := []string{}
	for k := range drivers {
		dr = append(dr, k)
	}
	sort.Strings(dr)
	return dr
}

// SaveVariables replaces the contents of the variables table with the given entries.
func SaveVariables(db *sql.DB, driver string, entries []store.Entry) error {
	name, ok := DriverName(driver)
	if !ok {
		return fmt.Errorf("database: unknown driver %q", driver)
	}
	query :=
		`CREATE TABLE IF NOT EXISTS ` + TABLE + ` (
    varName varchar(64),
    declaredType varchar(8),
    valueType varchar(8),
    varValue varchar(4000),
PRIMARY KEY (varName))`
	if _, e := db.Exec(query); e != nil {
		return fmt.Errorf("database: create table: %w", e)
	}
	tx, e := db.Begin()
	if e != nil {
		return e
	}
	if _, e := tx.Exec(`DELETE FROM ` + TABLE); e != nil {
		tx.Rollback()
		return fmt.Errorf("database: clear table: %w", e)
	}
	insert := `INSERT INTO ` + TABLE + `(varName, declaredType, valueType, varValue)
	VALUES (` + placeholders(name, 4) + `)`
	for _, entry := range entries {
		_, e := tx.Exec(insert, entry.Name, entry.Declared.String(), entry.Value.Type().String(), entry.Value.String())
		if e != nil {
			tx.Rollback()
			return fmt.Errorf("database: save %s: %w", entry.Name, e)
		}
	}
	return tx.Commit()
}

// LoadVariables reads back what SaveVariables wrote, sorted by name.
func LoadVariables(db *sql.DB) ([]Row, error) {
	rows, e := db.Query(`SELECT varName, declaredType, valueType, varValue FROM ` + TABLE + ` ORDER BY varName`)
	if e != nil {
		return nil, e
	}
	defer rows.Close()
	var result []Row
	for rows.Next() {
		var row Row
		if e := rows.Scan(&row.Name, &row.DeclaredType, &row.ValueType, &row.Value); e != nil {
			return nil, e
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Each driver has its own idea of what a query parameter looks like.
func placeholders(driver string, n int) string {
	marks := make([]string, n)
	for i := range marks {
		switch driver {
		case "mysql", "firebirdsql":
			marks[i] = "?"
		case "oracle":
			marks[i] = ":" + strconv.Itoa(i+1)
		case "sqlserver":
			marks[i] = "@p" + strconv.Itoa(i+1)
		default:
			marks[i] = "$" + strconv.Itoa(i+1)
		}
	}
	return strings.Join(marks, ", ")
}
