package schema

// The UNIQUE constraint on categories.name is what ultimately guards against
// concurrent creation of the same name; the business layer also pre-checks to
// produce a friendly message.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id         BIGSERIAL PRIMARY KEY,
    name       VARCHAR(100) NOT NULL UNIQUE,
    color      VARCHAR(7) NOT NULL DEFAULT '#3B82F6',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS notes (
    id          BIGSERIAL PRIMARY KEY,
    title       VARCHAR(200) NOT NULL,
    content     TEXT NOT NULL,
    note_type   VARCHAR(10) NOT NULL DEFAULT 'note',
    todo_status VARCHAR(20) NOT NULL DEFAULT 'pending',
    priority    VARCHAR(10) NOT NULL DEFAULT 'medium',
    due_date    TIMESTAMPTZ,
    is_archived BOOLEAN NOT NULL DEFAULT FALSE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS note_categories (
    note_id     BIGINT NOT NULL REFERENCES notes (id) ON DELETE CASCADE,
    category_id BIGINT NOT NULL REFERENCES categories (id) ON DELETE CASCADE,
    PRIMARY KEY (note_id, category_id)
);

CREATE INDEX IF NOT EXISTS idx_notes_is_archived ON notes (is_archived);
CREATE INDEX IF NOT EXISTS idx_notes_note_type ON notes (note_type);
CREATE INDEX IF NOT EXISTS idx_notes_updated_at ON notes (updated_at DESC);
CREATE INDEX IF NOT EXISTS idx_categories_name ON categories (name);
`

const dropSchema = `
DROP TABLE IF EXISTS note_categories;
DROP TABLE IF EXISTS notes;
DROP TABLE IF EXISTS categories;
`
