package profile

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&SchoolProfile{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func TestProfileService_GetProfile_LazilyCreatesDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := &ProfileService{DB: db}

	profile, err := svc.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile err: %v", err)
	}
	if profile.ID == 0 {
		t.Fatalf("expected created row")
	}
	if profile.Name != "SLB Pelita Kasih" {
		t.Fatalf("name=%q want default", profile.Name)
	}
	if profile.Vision == "" {
		t.Fatalf("expected default vision")
	}

	var count int64
	if err := db.Model(&SchoolProfile{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 row, got %d", count)
	}
}

func TestProfileService_GetProfile_SecondRead_ReusesRow(t *testing.T) {
	db := newTestDB(t)
	svc := &ProfileService{DB: db}

	first, err := svc.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile err: %v", err)
	}
	second, err := svc.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile err: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same row, got %d and %d", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&SchoolProfile{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("singleton violated: %d rows", count)
	}
}

func TestProfileService_UpdateProfile_CreatesWhenMissing(t *testing.T) {
	db := newTestDB(t)
	svc := &ProfileService{DB: db}

	addr := "Jl. Melati No. 1, Bandung"
	profile, err := svc.UpdateProfile(UpdateProfileInput{Address: &addr})
	if err != nil {
		t.Fatalf("UpdateProfile err: %v", err)
	}
	if profile.Address != addr {
		t.Fatalf("address=%q want %q", profile.Address, addr)
	}
	// defaults survive the upsert
	if profile.Name != "SLB Pelita Kasih" {
		t.Fatalf("name=%q want default", profile.Name)
	}
}

func TestProfileService_UpdateProfile_MergesMissionAndSocials(t *testing.T) {
	db := newTestDB(t)
	svc := &ProfileService{DB: db}

	mission := []string{"Mendidik dengan kasih", "Melayani setiap anak"}
	socials := Socials{Instagram: "https://instagram.com/slbpelitakasih"}
	theme := "#0ea5e9"

	if _, err := svc.UpdateProfile(UpdateProfileInput{
		Mission:    &mission,
		Socials:    &socials,
		ThemeColor: &theme,
	}); err != nil {
		t.Fatalf("UpdateProfile err: %v", err)
	}

	got, err := svc.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile err: %v", err)
	}
	if len(got.Mission) != 2 || got.Mission[0] != "Mendidik dengan kasih" {
		t.Fatalf("mission=%#v", got.Mission)
	}
	if got.Socials.Data().Instagram != socials.Instagram {
		t.Fatalf("socials=%#v", got.Socials.Data())
	}
	if got.ThemeColor != theme {
		t.Fatalf("theme=%q want %q", got.ThemeColor, theme)
	}
}

func TestProfileService_UpdateProfile_PartialLeavesRest(t *testing.T) {
	db := newTestDB(t)
	svc := &ProfileService{DB: db}

	phone := "022-1234567"
	if _, err := svc.UpdateProfile(UpdateProfileInput{Phone: &phone}); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	email := "info@slbpelitakasih.sch.id"
	got, err := svc.UpdateProfile(UpdateProfileInput{Email: &email})
	if err != nil {
		t.Fatalf("UpdateProfile err: %v", err)
	}
	if got.Phone != phone {
		t.Fatalf("phone lost on partial update: %#v", got)
	}
	if got.Email != email {
		t.Fatalf("email=%q want %q", got.Email, email)
	}

	var count int64
	if err := db.Model(&SchoolProfile{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("singleton violated: %d rows", count)
	}
}

func TestProfileService_GetProfile_DBBroken_ReturnsError(t *testing.T) {
	db := newTestDB(t)
	svc := &ProfileService{DB: db}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	if _, err := svc.GetProfile(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
