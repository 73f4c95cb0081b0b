package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	sqlite "github.com/mattn/go-sqlite3"

	"github.com/hermeshq/hermes/internal/core/domain"
	"github.com/hermeshq/hermes/internal/core/paging"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// =============================================================================
// SQLiteStore
// =============================================================================

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, NewStoreError("NewSQLiteStore", "", "", "failed to open database", ErrConnectionFailed)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "", "failed to ping database", ErrConnectionFailed)
	}

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "", err.Error(), ErrMigrationFailed)
	}

	return &SQLiteStore{db: db}, nil
}

// runMigrations runs database migrations using embedded SQL files.
func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// Timestamps
// =============================================================================

// Timestamps are stored as RFC 3339 UTC text so lexicographic ordering in
// SQL matches chronological ordering.
const storedTimeFormat = time.RFC3339

func encodeTime(t time.Time) string {
	return t.UTC().Format(storedTimeFormat)
}

func encodeTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := encodeTime(*t)
	return &s
}

func decodeTime(s string) time.Time {
	if t, err := time.Parse(storedTimeFormat, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}

func decodeTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := decodeTime(*s)
	return &t
}

// =============================================================================
// Constraint classification
// =============================================================================

// asConflict re-classifies SQLite constraint violations as ErrConflict with
// the driver message preserved. Other errors pass through unchanged.
func asConflict(op, entity, id string, err error) error {
	var se sqlite.Error
	if errors.As(err, &se) && se.Code == sqlite.ErrConstraint {
		return NewStoreError(op, entity, id, se.Error(), ErrConflict)
	}
	return fmt.Errorf("%s %s: %w", op, entity, err)
}

// =============================================================================
// Host Operations
// =============================================================================

type hostRow struct {
	ID       int64  `db:"id"`
	Hostname string `db:"hostname"`
}

func (r hostRow) toDomain() domain.Host {
	return domain.Host{ID: r.ID, Hostname: r.Hostname}
}

func (s *SQLiteStore) CreateHost(ctx context.Context, host *domain.Host) error {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO hosts (hostname) VALUES (?)", host.Hostname)
	if err != nil {
		return asConflict("CreateHost", "host", host.Hostname, err)
	}
	host.ID, _ = result.LastInsertId()
	return nil
}

func (s *SQLiteStore) GetHostByHostname(ctx context.Context, hostname string) (*domain.Host, error) {
	var row hostRow
	err := s.db.GetContext(ctx, &row,
		"SELECT id, hostname FROM hosts WHERE hostname = ?", hostname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetHostByHostname", "host", hostname, "not found", ErrNotFound)
		}
		return nil, fmt.Errorf("get host %q: %w", hostname, err)
	}
	h := row.toDomain()
	return &h, nil
}

func (s *SQLiteStore) ListHosts(ctx context.Context, filter HostFilter, w paging.Window) ([]domain.Host, int, error) {
	var where []string
	var args []any
	if filter.Hostname != "" {
		where = append(where, "hostname = ?")
		args = append(args, filter.Hostname)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM hosts"+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("count hosts: %w", err)
	}

	var rows []hostRow
	query := "SELECT id, hostname FROM hosts" + clause +
		fmt.Sprintf(" ORDER BY hostname ASC LIMIT %d OFFSET %d", w.Limit, w.Offset)
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list hosts: %w", err)
	}

	hosts := make([]domain.Host, 0, len(rows))
	for _, r := range rows {
		hosts = append(hosts, r.toDomain())
	}
	return hosts, total, nil
}

func (s *SQLiteStore) UpdateHost(ctx context.Context, host *domain.Host) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE hosts SET hostname = ? WHERE id = ?", host.Hostname, host.ID)
	if err != nil {
		return asConflict("UpdateHost", "host", host.Hostname, err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return NewStoreError("UpdateHost", "host", host.Hostname, "not found", ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) DeleteHost(ctx context.Context, hostname string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM hosts WHERE hostname = ?", hostname)
	if err != nil {
		return asConflict("DeleteHost", "host", hostname, err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return NewStoreError("DeleteHost", "host", hostname, "not found", ErrNotFound)
	}
	return nil
}

// =============================================================================
// EventType Operations
// =============================================================================

type eventTypeRow struct {
	ID          int64  `db:"id"`
	Category    string `db:"category"`
	State       string `db:"state"`
	Description string `db:"description"`
}

func (r eventTypeRow) toDomain() domain.EventType {
	return domain.EventType{
		ID:          r.ID,
		Category:    r.Category,
		State:       domain.EventTypeState(r.State),
		Description: r.Description,
	}
}

func (s *SQLiteStore) CreateEventType(ctx context.Context, et *domain.EventType) error {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO event_types (category, state, description) VALUES (?, ?, ?)",
		et.Category, string(et.State), et.Description)
	if err != nil {
		return asConflict("CreateEventType", "event type", et.Category, err)
	}
	et.ID, _ = result.LastInsertId()
	return nil
}

func (s *SQLiteStore) GetEventType(ctx context.Context, id int64) (*domain.EventType, error) {
	var row eventTypeRow
	err := s.db.GetContext(ctx, &row,
		"SELECT id, category, state, description FROM event_types WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetEventType", "event type", fmt.Sprint(id), "not found", ErrNotFound)
		}
		return nil, fmt.Errorf("get event type %d: %w", id, err)
	}
	et := row.toDomain()
	return &et, nil
}

func (s *SQLiteStore) ListEventTypes(ctx context.Context, filter EventTypeFilter, w paging.Window) ([]domain.EventType, int, error) {
	var where []string
	var args []any
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.State != "" {
		where = append(where, "state = ?")
		args = append(args, filter.State)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM event_types"+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("count event types: %w", err)
	}

	var rows []eventTypeRow
	query := "SELECT id, category, state, description FROM event_types" + clause +
		fmt.Sprintf(" ORDER BY id ASC LIMIT %d OFFSET %d", w.Limit, w.Offset)
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list event types: %w", err)
	}

	types := make([]domain.EventType, 0, len(rows))
	for _, r := range rows {
		types = append(types, r.toDomain())
	}
	return types, total, nil
}

func (s *SQLiteStore) UpdateEventTypeDescription(ctx context.Context, id int64, description string) (*domain.EventType, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE event_types SET description = ? WHERE id = ?", description, id)
	if err != nil {
		return nil, asConflict("UpdateEventTypeDescription", "event type", fmt.Sprint(id), err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return nil, NewStoreError("UpdateEventTypeDescription", "event type", fmt.Sprint(id), "not found", ErrNotFound)
	}
	return s.GetEventType(ctx, id)
}

// =============================================================================
// Event Operations
// =============================================================================

type eventRow struct {
	ID          int64  `db:"id"`
	HostID      int64  `db:"host_id"`
	EventTypeID int64  `db:"event_type_id"`
	Timestamp   string `db:"timestamp"`
	User        string `db:"user"`
	Note        string `db:"note"`
}

func (r eventRow) toDomain() domain.Event {
	return domain.Event{
		ID:          r.ID,
		HostID:      r.HostID,
		EventTypeID: r.EventTypeID,
		Timestamp:   decodeTime(r.Timestamp),
		User:        r.User,
		Note:        r.Note,
	}
}

const eventColumns = `id, host_id, event_type_id, timestamp, user, note`

func (s *SQLiteStore) CreateEvent(ctx context.Context, event *domain.Event) error {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO events (host_id, event_type_id, timestamp, user, note) VALUES (?, ?, ?, ?, ?)",
		event.HostID, event.EventTypeID, encodeTime(event.Timestamp), event.User, event.Note)
	if err != nil {
		return asConflict("CreateEvent", "event", "", err)
	}
	event.ID, _ = result.LastInsertId()
	return nil
}

func (s *SQLiteStore) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	var row eventRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+eventColumns+" FROM events WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetEvent", "event", fmt.Sprint(id), "not found", ErrNotFound)
		}
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	e := row.toDomain()
	return &e, nil
}

func (s *SQLiteStore) ListEvents(ctx context.Context, filter EventFilter, w paging.Window) ([]domain.Event, int, error) {
	var where []string
	var args []any
	if filter.HostID != 0 {
		where = append(where, "host_id = ?")
		args = append(args, filter.HostID)
	}
	if filter.EventTypeID != 0 {
		where = append(where, "event_type_id = ?")
		args = append(args, filter.EventTypeID)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM events"+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	events, err := s.selectEvents(ctx, clause, args, w)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// selectEvents runs a windowed event query ordered by timestamp ascending,
// id as the tie-break.
func (s *SQLiteStore) selectEvents(ctx context.Context, clause string, args []any, w paging.Window) ([]domain.Event, error) {
	var rows []eventRow
	query := "SELECT " + eventColumns + " FROM events" + clause +
		fmt.Sprintf(" ORDER BY timestamp ASC, id ASC LIMIT %d OFFSET %d", w.Limit, w.Offset)
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]domain.Event, 0, len(rows))
	for _, r := range rows {
		events = append(events, r.toDomain())
	}
	return events, nil
}

// =============================================================================
// Relation Queries (render.Repository)
// =============================================================================

type laborQuestRow struct {
	ID             int64   `db:"id"`
	QuestID        int64   `db:"quest_id"`
	HostID         int64   `db:"host_id"`
	CreationTime   string  `db:"creation_time"`
	AckTime        *string `db:"ack_time"`
	AckUser        string  `db:"ack_user"`
	CompletionTime *string `db:"completion_time"`

	QEmbarkation *string `db:"q_embarkation_time"`
	QDeadline    *string `db:"q_completion_deadline"`
	QDescription *string `db:"q_description"`
	QCreator     *string `db:"q_creator"`
}

func (s *SQLiteStore) LaborsForHost(ctx context.Context, hostID int64, w paging.Window) ([]domain.LaborQuest, error) {
	var rows []laborQuestRow
	query := fmt.Sprintf(`
		SELECT l.id, l.quest_id, l.host_id, l.creation_time, l.ack_time, l.ack_user, l.completion_time,
		       q.embarkation_time AS q_embarkation_time,
		       q.completion_deadline AS q_completion_deadline,
		       q.description AS q_description,
		       q.creator AS q_creator
		FROM labors l
		JOIN quests q ON q.id = l.quest_id
		WHERE l.host_id = ?
		ORDER BY l.creation_time ASC, l.id ASC
		LIMIT %d OFFSET %d`, w.Limit, w.Offset)
	if err := s.db.SelectContext(ctx, &rows, query, hostID); err != nil {
		return nil, fmt.Errorf("labors for host %d: %w", hostID, err)
	}

	result := make([]domain.LaborQuest, 0, len(rows))
	for _, r := range rows {
		lq := domain.LaborQuest{
			Labor: domain.Labor{
				ID:             r.ID,
				QuestID:        r.QuestID,
				HostID:         r.HostID,
				CreationTime:   decodeTime(r.CreationTime),
				AckTime:        decodeTimePtr(r.AckTime),
				AckUser:        r.AckUser,
				CompletionTime: decodeTimePtr(r.CompletionTime),
			},
			Quest: domain.Quest{
				ID:                 r.QuestID,
				CompletionDeadline: decodeTimePtr(r.QDeadline),
			},
		}
		if r.QEmbarkation != nil {
			lq.Quest.EmbarkationTime = decodeTime(*r.QEmbarkation)
		}
		if r.QDescription != nil {
			lq.Quest.Description = *r.QDescription
		}
		if r.QCreator != nil {
			lq.Quest.Creator = *r.QCreator
		}
		result = append(result, lq)
	}
	return result, nil
}

func (s *SQLiteStore) EventsForHost(ctx context.Context, hostID int64, w paging.Window) ([]domain.Event, error) {
	return s.selectEvents(ctx, " WHERE host_id = ?", []any{hostID}, w)
}

func (s *SQLiteStore) LatestEventForHost(ctx context.Context, hostID int64) (*domain.Event, error) {
	var row eventRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+eventColumns+" FROM events WHERE host_id = ? ORDER BY timestamp DESC, id DESC LIMIT 1", hostID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest event for host %d: %w", hostID, err)
	}
	e := row.toDomain()
	return &e, nil
}

func (s *SQLiteStore) EventsForType(ctx context.Context, eventTypeID int64, w paging.Window) ([]domain.Event, error) {
	return s.selectEvents(ctx, " WHERE event_type_id = ?", []any{eventTypeID}, w)
}

func (s *SQLiteStore) FatesForType(ctx context.Context, eventTypeID int64) ([]domain.Fate, error) {
	var rows []fateRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT "+fateColumns+" FROM fates WHERE creation_type_id = ? OR completion_type_id = ? ORDER BY id ASC",
		eventTypeID, eventTypeID)
	if err != nil {
		return nil, fmt.Errorf("fates for event type %d: %w", eventTypeID, err)
	}

	fates := make([]domain.Fate, 0, len(rows))
	for _, r := range rows {
		fates = append(fates, r.toDomain())
	}
	return fates, nil
}

// =============================================================================
// Labor / Quest / Fate (read-only)
// =============================================================================

type laborRow struct {
	ID             int64   `db:"id"`
	QuestID        int64   `db:"quest_id"`
	HostID         int64   `db:"host_id"`
	CreationTime   string  `db:"creation_time"`
	AckTime        *string `db:"ack_time"`
	AckUser        string  `db:"ack_user"`
	CompletionTime *string `db:"completion_time"`
}

func (r laborRow) toDomain() domain.Labor {
	return domain.Labor{
		ID:             r.ID,
		QuestID:        r.QuestID,
		HostID:         r.HostID,
		CreationTime:   decodeTime(r.CreationTime),
		AckTime:        decodeTimePtr(r.AckTime),
		AckUser:        r.AckUser,
		CompletionTime: decodeTimePtr(r.CompletionTime),
	}
}

const laborColumns = `id, quest_id, host_id, creation_time, ack_time, ack_user, completion_time`

func (s *SQLiteStore) GetLabor(ctx context.Context, id int64) (*domain.Labor, error) {
	var row laborRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+laborColumns+" FROM labors WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetLabor", "labor", fmt.Sprint(id), "not found", ErrNotFound)
		}
		return nil, fmt.Errorf("get labor %d: %w", id, err)
	}
	l := row.toDomain()
	return &l, nil
}

func (s *SQLiteStore) ListLabors(ctx context.Context, w paging.Window) ([]domain.Labor, int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM labors"); err != nil {
		return nil, 0, fmt.Errorf("count labors: %w", err)
	}

	var rows []laborRow
	query := "SELECT " + laborColumns + " FROM labors" +
		fmt.Sprintf(" ORDER BY creation_time ASC, id ASC LIMIT %d OFFSET %d", w.Limit, w.Offset)
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, 0, fmt.Errorf("list labors: %w", err)
	}

	labors := make([]domain.Labor, 0, len(rows))
	for _, r := range rows {
		labors = append(labors, r.toDomain())
	}
	return labors, total, nil
}

type questRow struct {
	ID                 int64   `db:"id"`
	EmbarkationTime    string  `db:"embarkation_time"`
	CompletionDeadline *string `db:"completion_deadline"`
	Description        string  `db:"description"`
	Creator            string  `db:"creator"`
}

func (r questRow) toDomain() domain.Quest {
	return domain.Quest{
		ID:                 r.ID,
		EmbarkationTime:    decodeTime(r.EmbarkationTime),
		CompletionDeadline: decodeTimePtr(r.CompletionDeadline),
		Description:        r.Description,
		Creator:            r.Creator,
	}
}

const questColumns = `id, embarkation_time, completion_deadline, description, creator`

func (s *SQLiteStore) GetQuest(ctx context.Context, id int64) (*domain.Quest, error) {
	var row questRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+questColumns+" FROM quests WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetQuest", "quest", fmt.Sprint(id), "not found", ErrNotFound)
		}
		return nil, fmt.Errorf("get quest %d: %w", id, err)
	}
	q := row.toDomain()
	return &q, nil
}

func (s *SQLiteStore) ListQuests(ctx context.Context, w paging.Window) ([]domain.Quest, int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM quests"); err != nil {
		return nil, 0, fmt.Errorf("count quests: %w", err)
	}

	var rows []questRow
	query := "SELECT " + questColumns + " FROM quests" +
		fmt.Sprintf(" ORDER BY embarkation_time ASC, id ASC LIMIT %d OFFSET %d", w.Limit, w.Offset)
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, 0, fmt.Errorf("list quests: %w", err)
	}

	quests := make([]domain.Quest, 0, len(rows))
	for _, r := range rows {
		quests = append(quests, r.toDomain())
	}
	return quests, total, nil
}

type fateRow struct {
	ID               int64  `db:"id"`
	CreationTypeID   int64  `db:"creation_type_id"`
	CompletionTypeID *int64 `db:"completion_type_id"`
	Description      string `db:"description"`
}

func (r fateRow) toDomain() domain.Fate {
	return domain.Fate{
		ID:               r.ID,
		CreationTypeID:   r.CreationTypeID,
		CompletionTypeID: r.CompletionTypeID,
		Description:      r.Description,
	}
}

const fateColumns = `id, creation_type_id, completion_type_id, description`

func (s *SQLiteStore) GetFate(ctx context.Context, id int64) (*domain.Fate, error) {
	var row fateRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+fateColumns+" FROM fates WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetFate", "fate", fmt.Sprint(id), "not found", ErrNotFound)
		}
		return nil, fmt.Errorf("get fate %d: %w", id, err)
	}
	f := row.toDomain()
	return &f, nil
}

func (s *SQLiteStore) ListFates(ctx context.Context, w paging.Window) ([]domain.Fate, int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM fates"); err != nil {
		return nil, 0, fmt.Errorf("count fates: %w", err)
	}

	var rows []fateRow
	query := "SELECT " + fateColumns + " FROM fates" +
		fmt.Sprintf(" ORDER BY id ASC LIMIT %d OFFSET %d", w.Limit, w.Offset)
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, 0, fmt.Errorf("list fates: %w", err)
	}

	fates := make([]domain.Fate, 0, len(rows))
	for _, r := range rows {
		fates = append(fates, r.toDomain())
	}
	return fates, total, nil
}
