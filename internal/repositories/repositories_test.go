package repositories

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fieldforce/sales-agent-api/internal/models"
)

// newTestDB opens an in-memory sqlite database with the application
// schema. The DDL is written out by hand because the production schema
// uses Postgres defaults sqlite cannot parse; the ID defaults do not
// matter here since the model hooks assign UUIDs before insert.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE salespersons (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			region TEXT NOT NULL,
			gps_location TEXT,
			phone TEXT,
			email TEXT,
			total_revenue REAL DEFAULT 0,
			monthly_target REAL DEFAULT 0,
			is_active BOOLEAN DEFAULT TRUE,
			created_at DATETIME
		)`,
		`CREATE TABLE dealers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			location TEXT,
			contact_person TEXT,
			phone TEXT,
			email TEXT,
			status TEXT DEFAULT 'active',
			created_at DATETIME
		)`,
		`CREATE TABLE meetings (
			id TEXT PRIMARY KEY,
			salesperson_id TEXT NOT NULL,
			dealer_id TEXT,
			notes TEXT,
			outcome TEXT,
			follow_up_date DATETIME,
			location TEXT,
			duration_minutes INTEGER,
			created_at DATETIME
		)`,
		`CREATE TABLE leads (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			company TEXT,
			phone TEXT,
			email TEXT,
			location TEXT,
			source TEXT,
			status TEXT DEFAULT 'new',
			score INTEGER DEFAULT 50,
			notes TEXT,
			assigned_to TEXT,
			created_at DATETIME
		)`,
		`CREATE TABLE salesperson_login_sessions (
			id TEXT PRIMARY KEY,
			salesperson_id TEXT NOT NULL,
			login_time DATETIME NOT NULL,
			logout_time DATETIME,
			session_duration_minutes INTEGER,
			location TEXT,
			device_info TEXT,
			created_at DATETIME
		)`,
		`CREATE TABLE sales_records (
			id TEXT PRIMARY KEY,
			salesperson_id TEXT NOT NULL,
			sale_amount REAL NOT NULL,
			product_name TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			sale_date DATETIME NOT NULL,
			commission_rate REAL DEFAULT 0.1,
			commission_amount REAL NOT NULL,
			created_at DATETIME
		)`,
		`CREATE TABLE conversation_history (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			user_message TEXT NOT NULL,
			agent_response TEXT NOT NULL,
			agent_type TEXT NOT NULL,
			created_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedSalesperson(t *testing.T, db *gorm.DB, name, region string, revenue float64) *models.Salesperson {
	t.Helper()
	sp := &models.Salesperson{Name: name, Region: region, TotalRevenue: revenue, IsActive: true}
	require.NoError(t, NewSalespersonRepo(db).Create(sp))
	return sp
}

func TestSalespersonRepo(t *testing.T) {
	db := newTestDB(t)
	repo := NewSalespersonRepo(db)

	sp := seedSalesperson(t, db, "Alice Johnson", "North", 45000)
	require.NotEqual(t, "00000000-0000-0000-0000-000000000000", sp.ID.String())

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(sp.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "Alice Johnson", got.Name)
		assert.Equal(t, 45000.0, got.TotalRevenue)
	})

	t.Run("get with malformed id", func(t *testing.T) {
		_, err := repo.GetByID("not-a-uuid")
		assert.Error(t, err)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := repo.Exists(sp.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("update", func(t *testing.T) {
		sp.TotalRevenue = 48000
		require.NoError(t, repo.Update(sp))

		got, err := repo.GetByID(sp.ID.String())
		require.NoError(t, err)
		assert.Equal(t, 48000.0, got.TotalRevenue)
	})

	t.Run("list and delete", func(t *testing.T) {
		seedSalesperson(t, db, "Bob Smith", "South", 38500)

		all, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, all, 2)

		require.NoError(t, repo.Delete(sp.ID.String()))
		ok, err := repo.Exists(sp.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestLeadRepo_ListOrdersByScore(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeadRepo(db)

	require.NoError(t, repo.Create(&models.Lead{Name: "Low", Status: "new", Score: 40}))
	require.NoError(t, repo.Create(&models.Lead{Name: "High", Status: "new", Score: 90}))
	require.NoError(t, repo.Create(&models.Lead{Name: "Mid", Status: "qualified", Score: 70}))

	t.Run("all leads, highest score first", func(t *testing.T) {
		leads, err := repo.List("")
		require.NoError(t, err)
		require.Len(t, leads, 3)
		assert.Equal(t, "High", leads[0].Name)
		assert.Equal(t, "Low", leads[2].Name)
	})

	t.Run("status filter", func(t *testing.T) {
		leads, err := repo.List("qualified")
		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Mid", leads[0].Name)
	})
}

func TestConversationRepo(t *testing.T) {
	db := newTestDB(t)
	repo := NewConversationRepo(db)

	require.NoError(t, repo.Log("s1", "hello", "hi there", "manager"))
	require.NoError(t, repo.Log("s1", "revenue?", "here you go", "analytics"))
	require.NoError(t, repo.Log("s2", "other", "reply", "manager"))

	t.Run("get by session", func(t *testing.T) {
		conversations, err := repo.GetBySession("s1", 10)
		require.NoError(t, err)
		require.Len(t, conversations, 2)
		assert.Equal(t, "hello", conversations[0].UserMessage)
		assert.Equal(t, "analytics", conversations[1].AgentType)
	})

	t.Run("count since", func(t *testing.T) {
		count, err := repo.CountSince(time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.EqualValues(t, 3, count)

		count, err = repo.CountSince(time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})
}

func TestLoginSessionRepo_ListOpenBefore(t *testing.T) {
	db := newTestDB(t)
	repo := NewLoginSessionRepo(db)
	sp := seedSalesperson(t, db, "Carol Williams", "East", 52000)

	now := time.Now()
	stale := &models.LoginSession{SalespersonID: sp.ID, LoginTime: now.Add(-48 * time.Hour)}
	fresh := &models.LoginSession{SalespersonID: sp.ID, LoginTime: now.Add(-time.Hour)}
	closedAt := now.Add(-30 * time.Hour)
	closed := &models.LoginSession{SalespersonID: sp.ID, LoginTime: now.Add(-31 * time.Hour), LogoutTime: &closedAt}

	require.NoError(t, repo.Create(stale))
	require.NoError(t, repo.Create(fresh))
	require.NoError(t, repo.Create(closed))

	open, err := repo.ListOpenBefore(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, stale.ID, open[0].ID)
}

func TestSalesRecordRepo_ListFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewSalesRecordRepo(db)
	alice := seedSalesperson(t, db, "Alice Johnson", "North", 45000)
	bob := seedSalesperson(t, db, "Bob Smith", "South", 38500)

	now := time.Now()
	require.NoError(t, repo.Create(&models.SalesRecord{SalespersonID: alice.ID, SaleAmount: 5000, ProductName: "CRM Software", CustomerName: "SuperMart", SaleDate: now, CommissionRate: 0.1, CommissionAmount: 500}))
	require.NoError(t, repo.Create(&models.SalesRecord{SalespersonID: bob.ID, SaleAmount: 8000, ProductName: "ERP System", CustomerName: "Health Plus", SaleDate: now.Add(-time.Hour), CommissionRate: 0.1, CommissionAmount: 800}))

	records, err := repo.List(alice.ID.String())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CRM Software", records[0].ProductName)

	all, err := repo.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "CRM Software", all[0].ProductName, "newest sale first")
}

func TestRevenueReader(t *testing.T) {
	db := newTestDB(t)
	seedSalesperson(t, db, "Alice Johnson", "North", 45000)
	seedSalesperson(t, db, "Emily Davis", "Central", 61000)
	seedSalesperson(t, db, "Bob Smith", "South", 38500)

	series, err := NewRevenueReader(db).FetchRevenueSeries()
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, "Emily Davis", series[0].Name)
	assert.Equal(t, 61000.0, series[0].Value)
	assert.Equal(t, "Bob Smith", series[2].Name)
}
