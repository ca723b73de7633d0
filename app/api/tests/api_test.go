package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"

	"github.com/ribgsilva/notes-manager/app/api/handlers"
	"github.com/ribgsilva/notes-manager/business/v1/category"
	"github.com/ribgsilva/notes-manager/business/v1/note"
	"github.com/ribgsilva/notes-manager/platform/logger"
	"github.com/ribgsilva/notes-manager/sys"
)

type ApiTests struct {
	app  http.Handler
	mock sqlmock.Sqlmock
}

var categoryColumns = []string{"id", "name", "color", "created_at", "updated_at"}
var noteColumns = []string{"id", "title", "content", "note_type", "todo_status", "priority", "due_date", "is_archived", "created_at", "updated_at"}

func TestApi(t *testing.T) {
	log, err := logger.New("Notes-Manager-API-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// sqlmock
	mockDb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = mockDb.Close()
	}()

	// =======================================================================================================
	// Setup configs and resources

	cfg := &sys.Config{}
	cfg.Database.PingTimeout = 2 * time.Second
	cfg.Database.OperationTimeout = 5 * time.Second
	cfg.Cache.ConnectionURL = s.Addr()
	cfg.Cache.PingTimeout = 2 * time.Second
	cfg.Cache.OperationTimeout = 10 * time.Second
	cfg.Cache.CacheTTL = 24 * time.Hour

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.ConnectionURL})
	defer func() {
		_ = rdb.Close()
	}()

	res := &sys.Resources{
		Log:      log,
		Database: sqlx.NewDb(mockDb, "postgres"),
		Cache:    rdb,
		Configs:  cfg,
	}

	// =======================================================================================================
	// Setup router

	gin.SetMode(gin.TestMode)
	engine := gin.Default()

	handlers.MapApi(engine, res)

	tests := ApiTests{
		app:  engine,
		mock: mock,
	}

	// =======================================================================================================
	// Run tests

	tests.createCategory201(t)
	tests.createCategoryDuplicate409(t)
	tests.createNote201(t)
	if !s.Exists("notes.1") {
		t.Fatalf("note 1 not in cache after create")
	}
	tests.getNoteFromCache200(t)
	tests.getNote404(t)
	tests.listNotes200(t)
	tests.badPageSize400(t)
	tests.updateStatusOnPlainNote400(t)
	tests.deleteNote204(t)
	if s.Exists("notes.1") {
		t.Fatalf("note 1 still in cache after delete")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet database expectations: %s", err)
	}
}

func (at *ApiTests) createCategory201(t *testing.T) {
	now := time.Now().UTC()
	at.mock.ExpectQuery(`SELECT .* FROM categories WHERE name = \$1`).
		WithArgs("work").
		WillReturnRows(sqlmock.NewRows(categoryColumns))
	at.mock.ExpectQuery(`INSERT INTO categories`).
		WithArgs("work", "#3B82F6", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(1, "work", "#3B82F6", now, now))

	r := httptest.NewRequest(http.MethodPost, "/v1/categories", bytes.NewBufferString(`{"name":"work"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("Test createCategory201: Should receive a status code of 201 for the response : %v : %s", w.Code, w.Body.String())
	}

	var resp category.Category
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test createCategory201: Should be able to unmarshal the response : %v", err)
	}
	if resp.Id != 1 {
		t.Fatalf("Test createCategory201: Should have received \"1\" as id in the response: %v", resp)
	}
	if resp.Color != "#3B82F6" {
		t.Fatalf("Test createCategory201: Should have received the default color in the response: %v", resp)
	}
}

func (at *ApiTests) createCategoryDuplicate409(t *testing.T) {
	now := time.Now().UTC()
	at.mock.ExpectQuery(`SELECT .* FROM categories WHERE name = \$1`).
		WithArgs("work").
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(1, "work", "#3B82F6", now, now))

	r := httptest.NewRequest(http.MethodPost, "/v1/categories", bytes.NewBufferString(`{"name":"work"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusConflict {
		t.Fatalf("Test createCategoryDuplicate409: Should receive a status code of 409 for the response : %v : %s", w.Code, w.Body.String())
	}
}

func (at *ApiTests) createNote201(t *testing.T) {
	now := time.Now().UTC()
	at.mock.ExpectBegin()
	at.mock.ExpectQuery(`SELECT .* FROM categories WHERE id IN \(\$1\)`).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(1, "work", "#3B82F6", now, now))
	at.mock.ExpectQuery(`INSERT INTO notes`).
		WithArgs("groceries", "buy milk", "note", "pending", "medium", nil, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow(1, "groceries", "buy milk", "note", "pending", "medium", nil, false, now, now))
	at.mock.ExpectExec(`DELETE FROM note_categories WHERE note_id = \$1`).
		WithArgs(uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	at.mock.ExpectExec(`INSERT INTO note_categories`).
		WithArgs(uint64(1), uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	at.mock.ExpectQuery(`SELECT nc\.note_id, .* FROM note_categories nc JOIN categories c`).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"note_id", "id", "name", "color", "created_at", "updated_at"}).
			AddRow(1, 1, "work", "#3B82F6", now, now))
	at.mock.ExpectCommit()

	r := httptest.NewRequest(http.MethodPost, "/v1/notes", bytes.NewBufferString(`{"title":"groceries","content":"buy milk","category_ids":[1]}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("Test createNote201: Should receive a status code of 201 for the response : %v : %s", w.Code, w.Body.String())
	}

	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test createNote201: Should be able to unmarshal the response : %v", err)
	}
	if resp.Id != 1 {
		t.Fatalf("Test createNote201: Should have received \"1\" as id in the response: %v", resp)
	}
	if resp.NoteType != "note" || resp.TodoStatus != "pending" || resp.Priority != "medium" {
		t.Fatalf("Test createNote201: Should have received the default type, status and priority: %v", resp)
	}
	if len(resp.Categories) != 1 || resp.Categories[0].Name != "work" {
		t.Fatalf("Test createNote201: Should have received the work category in the response: %v", resp)
	}
}

func (at *ApiTests) getNoteFromCache200(t *testing.T) {
	// the create above primed the cache, so only the categories are read
	at.mock.ExpectQuery(`SELECT nc\.note_id, .* FROM note_categories nc JOIN categories c`).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"note_id", "id", "name", "color", "created_at", "updated_at"}).
			AddRow(1, 1, "work", "#3B82F6", time.Now(), time.Now()))

	r := httptest.NewRequest(http.MethodGet, "/v1/notes/1", nil)
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test getNoteFromCache200: Should receive a status code of 200 for the response : %v : %s", w.Code, w.Body.String())
	}

	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test getNoteFromCache200: Should be able to unmarshal the response : %v", err)
	}
	if resp.Title != "groceries" {
		t.Fatalf("Test getNoteFromCache200: Should have received \"groceries\" as title in the response: %v", resp)
	}
}

func (at *ApiTests) getNote404(t *testing.T) {
	at.mock.ExpectQuery(`SELECT .* FROM notes WHERE id = \$1`).
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows(noteColumns))

	r := httptest.NewRequest(http.MethodGet, "/v1/notes/99", nil)
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Test getNote404: Should receive a status code of 404 for the response : %v : %s", w.Code, w.Body.String())
	}
}

func (at *ApiTests) listNotes200(t *testing.T) {
	now := time.Now().UTC()
	at.mock.ExpectQuery(`SELECT n\.id, .* FROM notes n WHERE n\.is_archived = \$1 ORDER BY n\.updated_at DESC LIMIT 10 OFFSET 0`).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow(1, "groceries", "buy milk", "note", "pending", "medium", nil, false, now, now))
	at.mock.ExpectQuery(`SELECT COUNT\(DISTINCT n\.id\) FROM notes n WHERE n\.is_archived = \$1`).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	at.mock.ExpectQuery(`SELECT nc\.note_id, .* FROM note_categories nc JOIN categories c`).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"note_id", "id", "name", "color", "created_at", "updated_at"}))

	r := httptest.NewRequest(http.MethodGet, "/v1/notes", nil)
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test listNotes200: Should receive a status code of 200 for the response : %v : %s", w.Code, w.Body.String())
	}

	var resp note.Page
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test listNotes200: Should be able to unmarshal the response : %v", err)
	}
	if resp.Total != 1 || resp.TotalPages != 1 || len(resp.Items) != 1 {
		t.Fatalf("Test listNotes200: Should have received one note in one page: %+v", resp)
	}
}

func (at *ApiTests) badPageSize400(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/notes?page_size=500", nil)
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test badPageSize400: Should receive a status code of 400 for the response : %v : %s", w.Code, w.Body.String())
	}
}

func (at *ApiTests) updateStatusOnPlainNote400(t *testing.T) {
	now := time.Now().UTC()
	at.mock.ExpectQuery(`SELECT .* FROM notes WHERE id = \$1`).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow(1, "groceries", "buy milk", "note", "pending", "medium", nil, false, now, now))

	r := httptest.NewRequest(http.MethodPatch, "/v1/notes/1/status?status=completed", nil)
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test updateStatusOnPlainNote400: Should receive a status code of 400 for the response : %v : %s", w.Code, w.Body.String())
	}
}

func (at *ApiTests) deleteNote204(t *testing.T) {
	now := time.Now().UTC()
	at.mock.ExpectQuery(`SELECT .* FROM notes WHERE id = \$1`).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow(1, "groceries", "buy milk", "note", "pending", "medium", nil, false, now, now))
	at.mock.ExpectExec(`DELETE FROM notes WHERE id = \$1`).
		WithArgs(uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := httptest.NewRequest(http.MethodDelete, "/v1/notes/1", nil)
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Test deleteNote204: Should receive a status code of 204 for the response : %v : %s", w.Code, w.Body.String())
	}
}
