package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS collections (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	color      TEXT NOT NULL DEFAULT '',
	icon       TEXT NOT NULL DEFAULT '',
	sort_order INTEGER NOT NULL DEFAULT 0,
	pinned     INTEGER NOT NULL DEFAULT 0 CHECK(pinned IN (0, 1)),
	archived   INTEGER NOT NULL DEFAULT 0 CHECK(archived IN (0, 1)),
	system     INTEGER NOT NULL DEFAULT 0 CHECK(system IN (0, 1)),
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	deleted_at DATETIME
);

-- At most one live system collection.
CREATE UNIQUE INDEX IF NOT EXISTS idx_collections_system
	ON collections(system) WHERE system = 1 AND deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS entries (
	id            TEXT PRIMARY KEY,
	kind          TEXT NOT NULL CHECK(kind IN ('task', 'note', 'checklist')),
	title         TEXT NOT NULL,
	body          TEXT NOT NULL DEFAULT '',
	collection_id TEXT REFERENCES collections(id) ON DELETE SET NULL,
	sort_order    INTEGER NOT NULL DEFAULT 0,
	due_date      DATETIME,
	completed     INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1)),
	completed_at  DATETIME,
	priority      INTEGER NOT NULL DEFAULT 2 CHECK(priority BETWEEN 1 AND 3),
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	deleted_at    DATETIME
);

CREATE INDEX IF NOT EXISTS idx_entries_collection_id ON entries(collection_id);
CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind);
CREATE INDEX IF NOT EXISTS idx_entries_completed ON entries(completed);
CREATE INDEX IF NOT EXISTS idx_entries_due_date ON entries(due_date);
CREATE INDEX IF NOT EXISTS idx_entries_sort_order ON entries(sort_order);
CREATE INDEX IF NOT EXISTS idx_entries_deleted_at ON entries(deleted_at);

CREATE TABLE IF NOT EXISTS checklist_items (
	id           TEXT PRIMARY KEY,
	checklist_id TEXT NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
	title        TEXT NOT NULL,
	checked      INTEGER NOT NULL DEFAULT 0 CHECK(checked IN (0, 1)),
	sort_order   INTEGER NOT NULL DEFAULT 0,
	created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	deleted_at   DATETIME
);

CREATE INDEX IF NOT EXISTS idx_checklist_items_checklist_id
	ON checklist_items(checklist_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_entries_collection_active
	ON entries(collection_id, completed) WHERE deleted_at IS NULL;

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
