package sqlite

import "database/sql"

// schemaVersion is the layout version this build writes. Stores at an older
// version are upgraded in place on attach; the version is persisted only
// after every upgrade routine has succeeded.
const schemaVersion = 2

// Schema DDL for all tables. A fresh store is created directly at the
// current layout; the guarded upgrades below only fire against stores
// created by older builds.
const (
	createCards = `CREATE TABLE IF NOT EXISTS cards (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    create_time INTEGER NOT NULL,
    update_time INTEGER NOT NULL,
    tags TEXT NOT NULL DEFAULT '[]',
    links TEXT NOT NULL DEFAULT '[]',
    content TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT 'temporary',
    count INTEGER NOT NULL DEFAULT 0
);`

	createArticles = `CREATE TABLE IF NOT EXISTS articles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL DEFAULT '',
    author TEXT NOT NULL DEFAULT '',
    create_time INTEGER NOT NULL,
    update_time INTEGER NOT NULL,
    tags TEXT NOT NULL DEFAULT '[]',
    links TEXT NOT NULL DEFAULT '[]',
    content TEXT NOT NULL DEFAULT '',
    banner_bg TEXT NOT NULL DEFAULT '',
    is_top INTEGER NOT NULL DEFAULT 0,
    is_delete INTEGER NOT NULL DEFAULT 0
);`

	createDocuments = `CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    create_time INTEGER NOT NULL,
    update_time INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    "desc" TEXT NOT NULL DEFAULT '',
    authors TEXT NOT NULL DEFAULT '[]',
    children TEXT NOT NULL DEFAULT '[]',
    tags TEXT NOT NULL DEFAULT '[]',
    links TEXT NOT NULL DEFAULT '[]',
    content TEXT NOT NULL DEFAULT '',
    banner_bg TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    is_top INTEGER NOT NULL DEFAULT 0,
    is_delete INTEGER NOT NULL DEFAULT 0
);`

	createDocumentItems = `CREATE TABLE IF NOT EXISTS document_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    create_time INTEGER NOT NULL,
    update_time INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    authors TEXT NOT NULL DEFAULT '[]',
    tags TEXT NOT NULL DEFAULT '[]',
    is_directory INTEGER NOT NULL DEFAULT 0,
    children TEXT NOT NULL DEFAULT '[]',
    is_article INTEGER NOT NULL DEFAULT 0,
    article_id INTEGER NOT NULL DEFAULT 0,
    is_card INTEGER NOT NULL DEFAULT 0,
    card_id INTEGER NOT NULL DEFAULT 0,
    content TEXT NOT NULL DEFAULT '',
    banner_bg TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    is_delete INTEGER NOT NULL DEFAULT 0,
    parents TEXT NOT NULL DEFAULT '[]',
    count INTEGER NOT NULL DEFAULT 0
);`

	createProject = `CREATE TABLE IF NOT EXISTS project (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    create_time INTEGER NOT NULL,
    update_time INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    "desc" TEXT NOT NULL DEFAULT '',
    children TEXT NOT NULL DEFAULT '[]'
);`

	createProjectItem = `CREATE TABLE IF NOT EXISTS project_item (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    create_time INTEGER NOT NULL,
    update_time INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    children TEXT NOT NULL DEFAULT '[]',
    parents TEXT NOT NULL DEFAULT '[]',
    projects TEXT NOT NULL DEFAULT '[]',
    ref_type TEXT NOT NULL DEFAULT '',
    ref_id INTEGER NOT NULL DEFAULT 0,
    count INTEGER NOT NULL DEFAULT 0
);`

	createTimeRecords = `CREATE TABLE IF NOT EXISTS time_records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    cost INTEGER NOT NULL DEFAULT 0,
    content TEXT NOT NULL DEFAULT '',
    event_type TEXT NOT NULL DEFAULT '',
    time_type TEXT NOT NULL DEFAULT ''
);`

	createDailyNotes = `CREATE TABLE IF NOT EXISTS daily_notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL UNIQUE,
    content TEXT NOT NULL DEFAULT ''
);`

	createWhiteBoards = `CREATE TABLE IF NOT EXISTS white_boards (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    create_time INTEGER NOT NULL,
    update_time INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]',
    data TEXT NOT NULL DEFAULT '',
    is_delete INTEGER NOT NULL DEFAULT 0
);`

	createPdfs = `CREATE TABLE IF NOT EXISTS pdfs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    create_time INTEGER NOT NULL,
    update_time INTEGER NOT NULL,
    file_name TEXT NOT NULL DEFAULT '',
    file_path TEXT NOT NULL DEFAULT '',
    is_local INTEGER NOT NULL DEFAULT 1,
    remote_url TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]'
);`

	createOperation = `CREATE TABLE IF NOT EXISTS operation (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    operation_time INTEGER NOT NULL,
    operation_id INTEGER NOT NULL,
    operation_content_type TEXT NOT NULL,
    operation_action TEXT NOT NULL
);`

	createHistory = `CREATE TABLE IF NOT EXISTS history (
    history_id TEXT PRIMARY KEY,
    content_type TEXT NOT NULL,
    content_id INTEGER NOT NULL,
    content TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`

	createMeta = `CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxOperationTime    = `CREATE INDEX IF NOT EXISTS idx_operation_time ON operation(operation_time);`
	idxHistoryContent   = `CREATE INDEX IF NOT EXISTS idx_history_content ON history(content_type, content_id);`
	idxTimeRecordsDate  = `CREATE INDEX IF NOT EXISTS idx_time_records_date ON time_records(date);`
	idxDocumentItemsRef = `CREATE INDEX IF NOT EXISTS idx_document_items_ref ON document_items(card_id, article_id);`
	idxProjectItemRef   = `CREATE INDEX IF NOT EXISTS idx_project_item_ref ON project_item(ref_type, ref_id);`
)

// tableDDL pairs a table name with its CREATE statement so schema errors can
// name the table they came from.
type tableDDL struct {
	name string
	ddl  string
}

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []tableDDL{
	{"cards", createCards},
	{"articles", createArticles},
	{"documents", createDocuments},
	{"document_items", createDocumentItems},
	{"project", createProject},
	{"project_item", createProjectItem},
	{"time_records", createTimeRecords},
	{"daily_notes", createDailyNotes},
	{"white_boards", createWhiteBoards},
	{"pdfs", createPdfs},
	{"operation", createOperation},
	{"history", createHistory},
	{"meta", createMeta},
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxOperationTime,
	idxHistoryContent,
	idxTimeRecordsDate,
	idxDocumentItemsRef,
	idxProjectItemRef,
}

// tableUpgrade brings one table from a prior layout to the layout introduced
// at version. Routines must be additive and idempotent: each probes for the
// column it would add and skips the ALTER when the column is already present.
type tableUpgrade struct {
	version int
	table   string
	apply   func(db *sql.DB) error
}

// tableUpgrades in ascending version order. Routines at or below the
// persisted version are skipped.
var tableUpgrades = []tableUpgrade{
	{version: 1, table: "cards", apply: upgradeCardsCategory},
	{version: 1, table: "document_items", apply: upgradeDocumentItemsParents},
	{version: 2, table: "cards", apply: upgradeCardsCount},
	{version: 2, table: "document_items", apply: upgradeDocumentItemsCount},
	{version: 2, table: "project_item", apply: upgradeProjectItemCount},
}

func upgradeCardsCategory(db *sql.DB) error {
	return addColumn(db, "cards", "category", `TEXT NOT NULL DEFAULT 'temporary'`)
}

func upgradeDocumentItemsParents(db *sql.DB) error {
	return addColumn(db, "document_items", "parents", `TEXT NOT NULL DEFAULT '[]'`)
}

// upgradeCardsCount adds the word-count column and backfills it from the
// stored content so existing cards do not all report zero.
func upgradeCardsCount(db *sql.DB) error {
	added, err := addColumnIfMissing(db, "cards", "count", `INTEGER NOT NULL DEFAULT 0`)
	if err != nil {
		return err
	}
	if !added {
		return nil
	}
	_, err = db.Exec(`UPDATE cards SET count = length(content)`)
	return err
}

func upgradeDocumentItemsCount(db *sql.DB) error {
	return addColumn(db, "document_items", "count", `INTEGER NOT NULL DEFAULT 0`)
}

func upgradeProjectItemCount(db *sql.DB) error {
	return addColumn(db, "project_item", "count", `INTEGER NOT NULL DEFAULT 0`)
}
