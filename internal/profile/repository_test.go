package profile

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/swipe-hr/directory-api/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Profile{}, &models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, phone string) models.User {
	t.Helper()
	u := models.User{CommonName: name, PhoneNumber: phone}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return u
}

func str(s string) *string { return &s }

func TestImportRows(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	seedUser(t, db, "Asha Rao", "111")
	seedUser(t, db, "Ben Oduya", "222")

	rows := []ImportRow{
		{ProfileTitle: str("Engineer"), PrimaryPhone: str("111"), City: str("Pune")},
		{ProfileTitle: str("Designer"), PrimaryPhone: str("222")}, // blank optional cells
		{ProfileTitle: str("Ghost"), PrimaryPhone: str("999")},    // no matching user
		{ProfileTitle: str("No phone at all")},                    // nil phone matches nobody
	}

	report, err := repo.ImportRows(db, 7, "Acme", rows)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Inserted != 2 || report.Skipped != 2 {
		t.Errorf("report = %+v, want 2 inserted and 2 skipped", report)
	}

	var profiles []Profile
	if err := db.Order("profile_id").Find(&profiles).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}
	if profiles[0].CompanyID != 7 || profiles[0].CompanyName != "Acme" {
		t.Errorf("profile missing company scope: %+v", profiles[0])
	}

	// blank optional cells persist as absent values, not empty strings
	var nullCities int64
	db.Model(&Profile{}).Where("primary_phone = ? AND city IS NULL", "222").Count(&nullCities)
	if nullCities != 1 {
		t.Errorf("blank city stored as something other than NULL")
	}
}

func TestImportRows_DatastoreErrorAbortsBatch(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	seedUser(t, db, "Asha Rao", "111")

	// dropping the table after seeding makes the insert fail hard
	if err := db.Migrator().DropTable(&Profile{}); err != nil {
		t.Fatalf("drop: %v", err)
	}
	rows := []ImportRow{{ProfileTitle: str("Engineer"), PrimaryPhone: str("111")}}
	if _, err := repo.ImportRows(db, 7, "Acme", rows); err == nil {
		t.Fatal("expected the batch to fail")
	}
}

func TestSearch(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	asha := seedUser(t, db, "Asha Rao", "111")
	ben := seedUser(t, db, "Ben Oduya", "222")
	cleo := seedUser(t, db, "Cleo Park", "333")

	seed := []Profile{
		{UserID: asha.UserID, CompanyID: 1, ProfileTitle: str("Senior Engineer"), Designation: str("Backend")},
		{UserID: ben.UserID, CompanyID: 1, ProfileTitle: str("Designer"), Designation: str("Visual ENGineering")},
		{UserID: cleo.UserID, CompanyID: 2, ProfileTitle: str("Engineer")}, // other company
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed profile: %v", err)
		}
	}

	tests := []struct {
		name string
		term string
		want int
	}{
		{"substring across title and designation, case-insensitive", "engineer", 2},
		{"display name match", "asha", 1},
		{"no match", "astronaut", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(db, 1, tt.term)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d results, want %d: %+v", len(got), tt.want, got)
			}
		})
	}

	// company 2's lone profile is reachable only through its own scope
	got, err := repo.Search(db, 2, "engineer")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].CommonName != "Cleo Park" {
		t.Errorf("company 2 results = %+v", got)
	}
}

func TestGetProfileData(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	asha := seedUser(t, db, "Asha Rao", "111")
	p := Profile{UserID: asha.UserID, CompanyID: 1, ProfileTitle: str("Engineer"), Email1: str("asha@acme.test")}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.GetProfileData(db, p.ProfileID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CommonName != "Asha Rao" || got.Email == nil || *got.Email != "asha@acme.test" {
		t.Errorf("profile data = %+v", got)
	}

	if _, err := repo.GetProfileData(db, 99); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("unknown id: expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestUpdateFields(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	asha := seedUser(t, db, "Asha Rao", "111")
	p := Profile{UserID: asha.UserID, CompanyID: 1, ProfileTitle: str("Engineer"), Designation: str("Backend")}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := repo.UpdateFields(db, p.ProfileID, map[string]interface{}{"profile_title": "direct column name"}); !errors.Is(err, ErrNoUpdatableFields) {
		t.Errorf("raw column names must not pass the Emp_* map, got %v", err)
	}

	if err := repo.UpdateFields(db, p.ProfileID, map[string]interface{}{"Emp_title": "Staff Engineer"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	var got Profile
	db.First(&got, p.ProfileID)
	if got.ProfileTitle == nil || *got.ProfileTitle != "Staff Engineer" {
		t.Errorf("profile_title = %v", got.ProfileTitle)
	}
	if got.Designation == nil || *got.Designation != "Backend" {
		t.Errorf("untouched designation changed: %v", got.Designation)
	}

	if err := repo.UpdateFields(db, 99, map[string]interface{}{"Emp_title": "x"}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("unknown id: expected gorm.ErrRecordNotFound, got %v", err)
	}
}
