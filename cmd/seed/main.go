package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/fieldforce/sales-agent-api/internal/config"
	"github.com/fieldforce/sales-agent-api/internal/database"
	"github.com/fieldforce/sales-agent-api/internal/models"
)

type productRange struct {
	name     string
	minPrice int
	maxPrice int
}

func main() {
	cfg := config.LoadConfig()

	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("🌱 Seeding sales data...")

	// Recreate all tables
	tables := []interface{}{
		&models.SalesRecord{},
		&models.LoginSession{},
		&models.Lead{},
		&models.Meeting{},
		&models.Dealer{},
		&models.Salesperson{},
		&models.Conversation{},
	}
	if err := db.GORM.Migrator().DropTable(tables...); err != nil {
		log.Fatalf("❌ Failed to drop tables: %v", err)
	}
	if err := db.GORM.AutoMigrate(
		&models.Salesperson{},
		&models.Dealer{},
		&models.Meeting{},
		&models.Lead{},
		&models.LoginSession{},
		&models.SalesRecord{},
		&models.Conversation{},
	); err != nil {
		log.Fatalf("❌ Failed to migrate tables: %v", err)
	}

	salespersons := []models.Salesperson{
		{Name: "Alice Johnson", Region: "North", GPSLocation: "12.9716,77.5946", Phone: "+1-555-0101", Email: "alice@company.com", TotalRevenue: 45000, MonthlyTarget: 15000, IsActive: true},
		{Name: "Bob Smith", Region: "South", GPSLocation: "13.0827,80.2707", Phone: "+1-555-0102", Email: "bob@company.com", TotalRevenue: 38500, MonthlyTarget: 12000, IsActive: true},
		{Name: "Carol Williams", Region: "East", GPSLocation: "22.5726,88.3639", Phone: "+1-555-0103", Email: "carol@company.com", TotalRevenue: 52000, MonthlyTarget: 18000, IsActive: true},
		{Name: "David Brown", Region: "West", GPSLocation: "19.0760,72.8777", Phone: "+1-555-0104", Email: "david@company.com", TotalRevenue: 29000, MonthlyTarget: 10000, IsActive: false},
		{Name: "Emily Davis", Region: "Central", GPSLocation: "23.2599,77.4126", Phone: "+1-555-0105", Email: "emily@company.com", TotalRevenue: 61000, MonthlyTarget: 20000, IsActive: true},
		{Name: "Frank Miller", Region: "Northeast", GPSLocation: "26.1445,91.7362", Phone: "+1-555-0106", Email: "frank@company.com", TotalRevenue: 33500, MonthlyTarget: 14000, IsActive: true},
	}
	if err := db.GORM.Create(&salespersons).Error; err != nil {
		log.Fatalf("❌ Failed to seed salespersons: %v", err)
	}

	dealers := []models.Dealer{
		{Name: "Tech Solutions Inc", Location: "Bangalore", ContactPerson: "John Doe", Phone: "+91-80-12345678", Email: "john@techsolutions.com", Status: "active"},
		{Name: "Global Electronics", Location: "Chennai", ContactPerson: "Jane Smith", Phone: "+91-44-87654321", Email: "jane@globalelectronics.com", Status: "active"},
		{Name: "Future Systems", Location: "Mumbai", ContactPerson: "Mike Wilson", Phone: "+91-22-11223344", Email: "mike@futuresystems.com", Status: "prospect"},
		{Name: "Smart Retail", Location: "Delhi", ContactPerson: "Sarah Johnson", Phone: "+91-11-55667788", Email: "sarah@smartretail.com", Status: "active"},
		{Name: "Digital Hub", Location: "Kolkata", ContactPerson: "Alex Brown", Phone: "+91-33-99887766", Email: "alex@digitalhub.com", Status: "inactive"},
	}
	if err := db.GORM.Create(&dealers).Error; err != nil {
		log.Fatalf("❌ Failed to seed dealers: %v", err)
	}

	now := time.Now()
	inDays := func(d int) *time.Time {
		t := now.AddDate(0, 0, d)
		return &t
	}

	meetings := []models.Meeting{
		{SalespersonID: salespersons[0].ID, DealerID: &dealers[0].ID, Notes: "Successful product demo. Customer interested in bulk purchase.", Outcome: "successful", Location: "Bangalore", DurationMinutes: 90},
		{SalespersonID: salespersons[1].ID, DealerID: &dealers[1].ID, Notes: "Need follow-up on pricing discussion. Customer requested proposal.", Outcome: "follow_up_needed", FollowUpDate: inDays(7), Location: "Chennai", DurationMinutes: 60},
		{SalespersonID: salespersons[2].ID, DealerID: &dealers[2].ID, Notes: "Initial meeting with prospect. Need to understand requirements better.", Outcome: "follow_up_needed", FollowUpDate: inDays(3), Location: "Mumbai", DurationMinutes: 45},
		{SalespersonID: salespersons[3].ID, DealerID: &dealers[3].ID, Notes: "Contract signed! Major deal closed successfully.", Outcome: "successful", Location: "Delhi", DurationMinutes: 120},
		{SalespersonID: salespersons[4].ID, DealerID: &dealers[4].ID, Notes: "Customer not interested in current offerings. Market timing issue.", Outcome: "no_interest", Location: "Kolkata", DurationMinutes: 30},
	}
	if err := db.GORM.Create(&meetings).Error; err != nil {
		log.Fatalf("❌ Failed to seed meetings: %v", err)
	}

	leads := []models.Lead{
		{Name: "Manufacturing Corp", Company: "ManufaCorp Ltd", Phone: "+91-80-98765432", Email: "contact@manufacorp.com", Location: "Bangalore", Source: "website", Status: "new", Score: 85, Notes: "Large manufacturing company interested in ERP solution", AssignedTo: &salespersons[0].ID},
		{Name: "Startup Hub", Company: "TechStart Inc", Phone: "+91-44-12345678", Email: "info@techstart.com", Location: "Chennai", Source: "referral", Status: "qualified", Score: 75, Notes: "Growing startup needs CRM integration", AssignedTo: &salespersons[1].ID},
		{Name: "Retail Chain", Company: "SuperMart", Phone: "+91-22-87654321", Email: "procurement@supermart.com", Location: "Mumbai", Source: "cold_call", Status: "contacted", Score: 60, Notes: "Retail chain exploring POS solutions", AssignedTo: &salespersons[2].ID},
		{Name: "Education Institute", Company: "Learning Academy", Phone: "+91-11-11223344", Email: "admin@learningacademy.edu", Location: "Delhi", Source: "website", Status: "qualified", Score: 70, Notes: "Educational institution seeking learning management system", AssignedTo: &salespersons[3].ID},
		{Name: "Healthcare Solutions", Company: "Health Plus", Phone: "+91-20-99887766", Email: "contact@healthplus.com", Location: "Pune", Source: "referral", Status: "converted", Score: 90, Notes: "Healthcare provider - high priority lead converted to customer", AssignedTo: &salespersons[0].ID},
	}
	if err := db.GORM.Create(&leads).Error; err != nil {
		log.Fatalf("❌ Failed to seed leads: %v", err)
	}

	// Login sessions for the last 30 days
	devices := []string{"Desktop", "Mobile", "Tablet"}
	browsers := []string{"Chrome", "Firefox", "Safari"}

	sessions := make([]models.LoginSession, 0, 90)
	for i := 0; i < 90; i++ {
		sp := salespersons[rand.Intn(len(salespersons))]
		loginTime := now.AddDate(0, 0, -rand.Intn(31))
		duration := 120 + rand.Intn(361)
		logoutTime := loginTime.Add(time.Duration(duration) * time.Minute)

		sessions = append(sessions, models.LoginSession{
			SalespersonID:          sp.ID,
			LoginTime:              loginTime,
			LogoutTime:             &logoutTime,
			SessionDurationMinutes: &duration,
			Location:               sp.Region,
			DeviceInfo:             fmt.Sprintf("%s - %s", devices[rand.Intn(len(devices))], browsers[rand.Intn(len(browsers))]),
		})
	}
	if err := db.GORM.Create(&sessions).Error; err != nil {
		log.Fatalf("❌ Failed to seed login sessions: %v", err)
	}

	products := []productRange{
		{"CRM Software", 5000, 15000},
		{"ERP System", 10000, 30000},
		{"Mobile App Development", 3000, 12000},
		{"Web Development", 2000, 8000},
		{"Database Solutions", 4000, 10000},
		{"Cloud Migration", 6000, 20000},
		{"AI Integration", 8000, 25000},
		{"Security Audit", 1500, 5000},
	}
	customers := []string{
		"Tech Solutions Inc", "Global Electronics", "Future Systems",
		"Smart Retail", "Digital Hub", "ManufaCorp Ltd", "TechStart Inc",
		"SuperMart", "Learning Academy", "Health Plus",
	}

	records := make([]models.SalesRecord, 0, 25)
	for i := 0; i < 25; i++ {
		sp := salespersons[rand.Intn(len(salespersons))]
		product := products[rand.Intn(len(products))]
		amount := float64(product.minPrice + rand.Intn(product.maxPrice-product.minPrice+1))
		rate := 0.10

		records = append(records, models.SalesRecord{
			SalespersonID:    sp.ID,
			SaleAmount:       amount,
			ProductName:      product.name,
			CustomerName:     customers[rand.Intn(len(customers))],
			SaleDate:         now.AddDate(0, 0, -rand.Intn(91)),
			CommissionRate:   rate,
			CommissionAmount: amount * rate,
		})
	}
	if err := db.GORM.Create(&records).Error; err != nil {
		log.Fatalf("❌ Failed to seed sales records: %v", err)
	}

	log.Println("✅ Database seeding completed!")
	log.Printf("Created %d salespersons", len(salespersons))
	log.Printf("Created %d dealers", len(dealers))
	log.Printf("Created %d meetings", len(meetings))
	log.Printf("Created %d leads", len(leads))
	log.Printf("Created %d login sessions", len(sessions))
	log.Printf("Created %d sales records", len(records))
}
