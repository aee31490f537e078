// Package sqlite implements the SQLite storage backend for cardbox.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// Backend owns the single shared store connection. Every store operation
// serializes on mu; reads take the read lock, mutations the write lock.
// The connection handle is swappable at runtime via Reconnect.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	path     string
	log      zerolog.Logger

	cards         *CardStore
	articles      *ArticleStore
	documents     *DocumentStore
	documentItems *DocumentItemStore
	projects      *ProjectStore
	projectItems  *ProjectItemStore
	timeRecords   *TimeRecordStore
	dailyNotes    *DailyNoteStore
	whiteBoards   *WhiteBoardStore
	pdfs          *PdfStore
	operations    *OperationStore
	history       *HistoryStore
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend(log zerolog.Logger) *Backend {
	b := &Backend{log: log}
	b.cards = &CardStore{table: newTable(b, cardDef)}
	b.articles = &ArticleStore{table: newTable(b, articleDef)}
	b.documents = &DocumentStore{table: newTable(b, documentDef)}
	b.documentItems = &DocumentItemStore{table: newTable(b, documentItemDef), depthCap: defaultDepthCap}
	b.projects = &ProjectStore{table: newTable(b, projectDef)}
	b.projectItems = &ProjectItemStore{table: newTable(b, projectItemDef)}
	b.timeRecords = &TimeRecordStore{table: newTable(b, timeRecordDef)}
	b.dailyNotes = &DailyNoteStore{table: newTable(b, dailyNoteDef)}
	b.whiteBoards = &WhiteBoardStore{table: newTable(b, whiteBoardDef)}
	b.pdfs = &PdfStore{table: newTable(b, pdfDef)}
	b.operations = &OperationStore{backend: b}
	b.history = &HistoryStore{backend: b}
	return b
}

// Store accessors. Each returns the typed store regardless of attach state;
// operations on a detached backend return ErrStoreUnavailable.
func (b *Backend) Cards() *CardStore                 { return b.cards }
func (b *Backend) Articles() *ArticleStore           { return b.articles }
func (b *Backend) Documents() *DocumentStore         { return b.documents }
func (b *Backend) DocumentItems() *DocumentItemStore { return b.documentItems }
func (b *Backend) Projects() *ProjectStore           { return b.projects }
func (b *Backend) ProjectItems() *ProjectItemStore   { return b.projectItems }
func (b *Backend) TimeRecords() *TimeRecordStore     { return b.timeRecords }
func (b *Backend) DailyNotes() *DailyNoteStore       { return b.dailyNotes }
func (b *Backend) WhiteBoards() *WhiteBoardStore     { return b.whiteBoards }
func (b *Backend) Pdfs() *PdfStore                   { return b.pdfs }
func (b *Backend) Operations() *OperationStore       { return b.operations }
func (b *Backend) History() *HistoryStore            { return b.history }

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, opens the store file, and brings the schema
// to the current version. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return err
	}

	name := config.Database
	if name == "" {
		name = types.DefaultDatabase
	}
	db, path, err := b.openDatabase(config.DataDir, name)
	if err != nil {
		return err
	}

	b.db = db
	b.path = path
	b.config = config
	b.attached = true
	return nil
}

// Detach releases the store connection. After Detach, all operations return
// ErrStoreUnavailable. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// Reconnect swaps the shared connection to a different store file in the
// same data directory. The old connection is closed under the write lock;
// operations already completed against it are unaffected, and no
// transactional guarantee spans the swap.
func (b *Backend) Reconnect(database string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreUnavailable
	}

	db, path, err := b.openDatabase(b.config.DataDir, database)
	if err != nil {
		return err
	}

	old := b.db
	b.db = db
	b.path = path
	b.config.Database = database
	if old != nil {
		if err := old.Close(); err != nil {
			b.log.Warn().Err(err).Msg("closing previous store connection")
		}
	}
	return nil
}

// Path returns the absolute path of the current store file.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.path
}

// openDatabase opens a store file, sets WAL journal mode, and runs
// migrations. The caller must hold the write lock.
func (b *Backend) openDatabase(dataDir, name string) (*sql.DB, string, error) {
	if !strings.HasSuffix(name, ".db") {
		name += ".db"
	}
	path := filepath.Join(dataDir, name)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, "", err
	}
	// One in-flight operation at a time across the whole application; the
	// driver connection pool must not hand out concurrent connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("setting journal mode: %w", err)
	}

	if err := b.runMigrations(db); err != nil {
		db.Close()
		return nil, "", err
	}

	b.log.Info().Str("path", path).Msg("store connected")
	return db, path, nil
}
