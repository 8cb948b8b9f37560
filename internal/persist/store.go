package persist

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/schema"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Table names for profile storage.
const (
	profilesTable      = "nutriplan_profiles"
	preferencesTable   = "nutriplan_preferences"
	weightHistoryTable = "nutriplan_weight_history"
)

// allTables lists the tables in creation order. Dependents come last.
var allTables = []string{profilesTable, preferencesTable, weightHistoryTable}

const profileColumns = `profile_id, name, date_of_birth, sex, weight, height, activity_level, goal,
	target_weight, weekly_weight_change_goal, estimated_target_date,
	bmi, bmr, tdee, ideal_weight, body_fat_percent,
	daily_calories, daily_protein, daily_carbs, daily_fat,
	safety, onboarding_completed, created_at, updated_at`

// ProfileStoreImpl implements the ProfileStore interface on a SQL database.
type ProfileStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.ProfileStore = &ProfileStoreImpl{} // Compile-time check

// openDatabase opens and pings the database of a backend.
func openDatabase(backend schema.DatabaseBackend, connStr string) (*sql.DB, string, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, "", fmt.Errorf("unsupported backend: %s", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, "", fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}
	return db, driverName, nil
}

// NewProfileStore creates a new ProfileStore with the specified backend.
// The none backend yields a store whose data operations return
// contract.ErrStoreDisabled.
func NewProfileStore(backend schema.DatabaseBackend, connStr string) (*ProfileStoreImpl, error) {
	if backend == schema.NoneBackend {
		return &ProfileStoreImpl{backend: backend}, nil
	}

	db, driverName, err := openDatabase(backend, connStr)
	if err != nil {
		return nil, err
	}
	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create profile tables: %w", err)
	}

	return &ProfileStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// createTables applies the initial migration without recording a version,
// so that a later `store migrate` can still adopt the tables.
func createTables(db *sql.DB) error {
	script, err := migrationsFS.ReadFile("migrations/000001_init.up.sql")
	if err != nil {
		return fmt.Errorf("failed to read initial migration: %w", err)
	}
	for _, stmt := range splitStatements(string(script)) {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (ps *ProfileStoreImpl) disabled() bool {
	return ps.backend == schema.NoneBackend || ps.db == nil
}

func (ps *ProfileStoreImpl) table(name string) string {
	return quoteTableName(name, ps.backend)
}

func (ps *ProfileStoreImpl) query(q string) string {
	return rebind(q, ps.backend)
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeList(data string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

// SaveOnboarding stores the profile, its preferences and the initial weight
// entry of a plan in one transaction.
func (ps *ProfileStoreImpl) SaveOnboarding(plan schema.OnboardingPlan) (string, error) {
	if ps.disabled() {
		return "", contract.ErrStoreDisabled
	}

	profileID := uuid.NewString()
	created := formatTime(plan.CreatedAt)
	in := plan.Input
	m := plan.Metrics

	tx, err := ps.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertProfile := ps.query(fmt.Sprintf(`INSERT INTO %s (%s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ps.table(profilesTable), profileColumns))
	if _, err := tx.Exec(insertProfile,
		profileID, in.Name, in.DateOfBirth.Format(storeDateLayout), string(in.Sex),
		in.Weight, in.Height, string(in.ActivityLevel), string(in.Goal),
		in.TargetWeight, plan.WeeklyWeightChangeGoal, formatTime(plan.EstimatedTargetDate),
		m.BMI, m.BMR, m.TDEE, m.IdealWeight, m.BodyFatPercent,
		m.DailyCalories, m.DailyProtein, m.DailyCarbs, m.DailyFat,
		string(plan.Analysis.Safety), plan.OnboardingCompleted, created, created,
	); err != nil {
		return "", fmt.Errorf("failed to insert profile: %w", err)
	}

	if in.Preferences.HasDietType() {
		allergies, err := encodeList(in.Preferences.Allergies)
		if err != nil {
			return "", fmt.Errorf("failed to encode allergies: %w", err)
		}
		dislikes, err := encodeList(in.Preferences.Dislikes)
		if err != nil {
			return "", fmt.Errorf("failed to encode dislikes: %w", err)
		}
		insertPrefs := ps.query(fmt.Sprintf(`INSERT INTO %s (profile_id, diet_type, allergies, dislikes) VALUES (?, ?, ?, ?)`,
			ps.table(preferencesTable)))
		if _, err := tx.Exec(insertPrefs, profileID, in.Preferences.DietType, allergies, dislikes); err != nil {
			return "", fmt.Errorf("failed to insert preferences: %w", err)
		}
	}

	insertWeight := ps.query(fmt.Sprintf(`INSERT INTO %s (entry_id, profile_id, weight, notes, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		ps.table(weightHistoryTable)))
	if _, err := tx.Exec(insertWeight, uuid.NewString(), profileID, in.Weight, schema.InitialWeightNote, created); err != nil {
		return "", fmt.Errorf("failed to insert initial weight: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit onboarding: %w", err)
	}
	return profileID, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (schema.ProfileRecord, error) {
	var r schema.ProfileRecord
	var dob, targetDate, created, updated string
	var sex, level, goal, safety string
	err := row.Scan(
		&r.ProfileID, &r.Name, &dob, &sex, &r.Weight, &r.Height, &level, &goal,
		&r.TargetWeight, &r.WeeklyWeightChangeGoal, &targetDate,
		&r.Metrics.BMI, &r.Metrics.BMR, &r.Metrics.TDEE, &r.Metrics.IdealWeight, &r.Metrics.BodyFatPercent,
		&r.Metrics.DailyCalories, &r.Metrics.DailyProtein, &r.Metrics.DailyCarbs, &r.Metrics.DailyFat,
		&safety, &r.OnboardingCompleted, &created, &updated,
	)
	if err != nil {
		return r, err
	}
	r.Sex = schema.Sex(sex)
	r.ActivityLevel = schema.ActivityLevel(level)
	r.Goal = schema.Goal(goal)
	r.Safety = schema.SafetyTier(safety)

	if r.DateOfBirth, err = time.Parse(storeDateLayout, dob); err != nil {
		return r, fmt.Errorf("failed to parse date_of_birth: %w", err)
	}
	if r.EstimatedTargetDate, err = parseTime(targetDate); err != nil {
		return r, fmt.Errorf("failed to parse estimated_target_date: %w", err)
	}
	if r.CreatedAt, err = parseTime(created); err != nil {
		return r, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if r.UpdatedAt, err = parseTime(updated); err != nil {
		return r, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return r, nil
}

func scanPreferences(row rowScanner) (string, *schema.Preferences, error) {
	var profileID, dietType, allergies, dislikes string
	if err := row.Scan(&profileID, &dietType, &allergies, &dislikes); err != nil {
		return "", nil, err
	}
	prefs := &schema.Preferences{DietType: dietType}
	var err error
	if prefs.Allergies, err = decodeList(allergies); err != nil {
		return "", nil, fmt.Errorf("failed to decode allergies: %w", err)
	}
	if prefs.Dislikes, err = decodeList(dislikes); err != nil {
		return "", nil, fmt.Errorf("failed to decode dislikes: %w", err)
	}
	return profileID, prefs, nil
}

// GetProfile returns a stored profile with its preferences.
func (ps *ProfileStoreImpl) GetProfile(profileID string) (schema.ProfileRecord, error) {
	if ps.disabled() {
		return schema.ProfileRecord{}, contract.ErrStoreDisabled
	}

	q := ps.query(fmt.Sprintf(`SELECT %s FROM %s WHERE profile_id = ?`, profileColumns, ps.table(profilesTable)))
	record, err := scanProfile(ps.db.QueryRow(q, profileID))
	if errors.Is(err, sql.ErrNoRows) {
		return schema.ProfileRecord{}, fmt.Errorf("%w: %s", contract.ErrProfileNotFound, profileID)
	}
	if err != nil {
		return schema.ProfileRecord{}, fmt.Errorf("failed to get profile %s: %w", profileID, err)
	}

	pq := ps.query(fmt.Sprintf(`SELECT profile_id, diet_type, allergies, dislikes FROM %s WHERE profile_id = ?`, ps.table(preferencesTable)))
	_, prefs, err := scanPreferences(ps.db.QueryRow(pq, profileID))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// No preferences recorded
	case err != nil:
		return schema.ProfileRecord{}, fmt.Errorf("failed to get preferences of %s: %w", profileID, err)
	default:
		record.Preferences = prefs
	}
	return record, nil
}

// ListProfiles returns every stored profile, newest first.
func (ps *ProfileStoreImpl) ListProfiles() ([]schema.ProfileRecord, error) {
	if ps.disabled() {
		return nil, contract.ErrStoreDisabled
	}

	prefs, err := ps.allPreferences()
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at DESC, profile_id`, profileColumns, ps.table(profilesTable))
	rows, err := ps.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := []schema.ProfileRecord{}
	for rows.Next() {
		record, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		record.Preferences = prefs[record.ProfileID]
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return results, nil
}

func (ps *ProfileStoreImpl) allPreferences() (map[string]*schema.Preferences, error) {
	q := fmt.Sprintf(`SELECT profile_id, diet_type, allergies, dislikes FROM %s`, ps.table(preferencesTable))
	rows, err := ps.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]*schema.Preferences)
	for rows.Next() {
		profileID, prefs, err := scanPreferences(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preferences: %w", err)
		}
		result[profileID] = prefs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preferences: %w", err)
	}
	return result, nil
}

func (ps *ProfileStoreImpl) ensureProfile(profileID string) error {
	q := ps.query(fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE profile_id = ?`, ps.table(profilesTable)))
	var count int
	if err := ps.db.QueryRow(q, profileID).Scan(&count); err != nil {
		return fmt.Errorf("failed to look up profile %s: %w", profileID, err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", contract.ErrProfileNotFound, profileID)
	}
	return nil
}

// RecordWeight appends a weigh-in to the history of a profile.
func (ps *ProfileStoreImpl) RecordWeight(profileID string, weight float64, notes string, at time.Time) (schema.WeightEntry, error) {
	if ps.disabled() {
		return schema.WeightEntry{}, contract.ErrStoreDisabled
	}
	if err := ps.ensureProfile(profileID); err != nil {
		return schema.WeightEntry{}, err
	}

	entry := schema.WeightEntry{
		EntryID:    uuid.NewString(),
		ProfileID:  profileID,
		Weight:     weight,
		Notes:      notes,
		RecordedAt: at.UTC(),
	}
	q := ps.query(fmt.Sprintf(`INSERT INTO %s (entry_id, profile_id, weight, notes, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		ps.table(weightHistoryTable)))
	if _, err := ps.db.Exec(q, entry.EntryID, entry.ProfileID, entry.Weight, entry.Notes, formatTime(entry.RecordedAt)); err != nil {
		return schema.WeightEntry{}, fmt.Errorf("failed to insert weight entry: %w", err)
	}
	return entry, nil
}

// GetWeightHistory returns the weigh-ins of a profile, oldest first.
func (ps *ProfileStoreImpl) GetWeightHistory(profileID string) ([]schema.WeightEntry, error) {
	if ps.disabled() {
		return nil, contract.ErrStoreDisabled
	}
	if err := ps.ensureProfile(profileID); err != nil {
		return nil, err
	}

	q := ps.query(fmt.Sprintf(`SELECT entry_id, profile_id, weight, notes, recorded_at FROM %s
		WHERE profile_id = ? ORDER BY recorded_at, entry_id`, ps.table(weightHistoryTable)))
	rows, err := ps.db.Query(q, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query weight history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := []schema.WeightEntry{}
	for rows.Next() {
		var e schema.WeightEntry
		var recorded string
		if err := rows.Scan(&e.EntryID, &e.ProfileID, &e.Weight, &e.Notes, &recorded); err != nil {
			return nil, fmt.Errorf("failed to scan weight entry: %w", err)
		}
		if e.RecordedAt, err = parseTime(recorded); err != nil {
			return nil, fmt.Errorf("failed to parse recorded_at: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weight history: %w", err)
	}
	return results, nil
}

// GetStatus returns status information about the profile store.
func (ps *ProfileStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:    string(ps.backend),
		Connected:  ps.db != nil,
		TableSizes: make(map[string]int64),
	}
	if ps.disabled() {
		return status, nil
	}

	for _, table := range allTables {
		var count int64
		if err := ps.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", ps.table(table))).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.TotalProfiles = int(status.TableSizes[profilesTable])
	status.TotalWeighIns = int(status.TableSizes[weightHistoryTable])

	if status.TotalProfiles == 0 {
		return status, nil
	}

	var lastCreated, oldestCreated string
	lastQuery := fmt.Sprintf("SELECT profile_id, created_at FROM %s ORDER BY created_at DESC, profile_id LIMIT 1", ps.table(profilesTable))
	if err := ps.db.QueryRow(lastQuery).Scan(&status.LastProfileID, &lastCreated); err != nil {
		return status, fmt.Errorf("failed to get last profile: %w", err)
	}
	oldestQuery := fmt.Sprintf("SELECT created_at FROM %s ORDER BY created_at ASC LIMIT 1", ps.table(profilesTable))
	if err := ps.db.QueryRow(oldestQuery).Scan(&oldestCreated); err != nil {
		return status, fmt.Errorf("failed to get oldest profile: %w", err)
	}

	var err error
	if status.LastProfileTime, err = parseTime(lastCreated); err != nil {
		return status, fmt.Errorf("failed to parse last profile time: %w", err)
	}
	if status.OldestProfileTime, err = parseTime(oldestCreated); err != nil {
		return status, fmt.Errorf("failed to parse oldest profile time: %w", err)
	}
	return status, nil
}

// Close closes the underlying connection.
func (ps *ProfileStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}
