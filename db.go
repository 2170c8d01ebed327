package memtab

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// Database is a named collection of tables. It is the only way to create
// a Table, and tables live as long as the database does.
//
// A Database and everything reachable from it must not be used from
// multiple goroutines concurrently without external synchronization.
type Database struct {
	name    string
	tables  []*Table
	logf    func(format string, args ...any)
	logger  *slog.Logger
	verbose bool
	initCap int
}

type Options struct {
	// Logf receives verbose traces. Defaults to Logger at debug level.
	Logf func(format string, args ...any)

	// Logger receives warnings, such as indexes going stale after a delete.
	// Defaults to slog.Default().
	Logger *slog.Logger

	Verbose bool

	// InitialCapacity preallocates the record store of every new table.
	InitialCapacity int
}

func New(name string, opt Options) *Database {
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logf := opt.Logf
	if logf == nil {
		logf = func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		}
	}
	if opt.InitialCapacity < 0 {
		panic(fmt.Errorf("memtab: negative InitialCapacity %d", opt.InitialCapacity))
	}
	return &Database{
		name:    name,
		logf:    logf,
		logger:  logger,
		verbose: opt.Verbose,
		initCap: opt.InitialCapacity,
	}
}

func (db *Database) Name() string {
	return db.name
}

// CreateTable registers a new empty table. Names are not checked for
// uniqueness.
func (db *Database) CreateTable(name string) *Table {
	tbl := &Table{
		db:            db,
		name:          name,
		records:       make([]*Record, 0, db.initCap),
		indicesByName: make(map[string]*Index),
	}
	db.tables = append(db.tables, tbl)
	if db.verbose {
		db.logf("memtab: CREATE_TABLE %s.%s", db.name, name)
	}
	return tbl
}

// Tables returns the tables in creation order.
func (db *Database) Tables() []*Table {
	return slices.Clone(db.tables)
}

func (db *Database) AllTables() iter.Seq[*Table] {
	return slices.Values(db.tables)
}

// TableNamed returns the first table created with the given name, or nil.
func (db *Database) TableNamed(name string) *Table {
	for _, tbl := range db.tables {
		if tbl.name == name {
			return tbl
		}
	}
	return nil
}
