package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/model"
	"hostel-mgmt-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Hostel Seeder...")

	seedStaff(db)
	seedRooms(db)
	seedStudents(db)

	log.Println("✅ Success: Hostel seeding completed.")
}

func hashPassword(plain string) *string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: bcrypt failed: %v", err)
	}
	s := string(hash)
	return &s
}

func seedStaff(db *gorm.DB) {
	log.Println("Seeding staff accounts...")

	staff := []model.User{
		{
			Id:            uuid.New(),
			Email:         "admin@hostel.local",
			PasswordHash:  hashPassword("admin12345"),
			FullName:      "Hostel Administrator",
			Role:          string(entity.UserRoleAdmin),
			Status:        string(entity.UserStatusActive),
			EmailVerified: true,
		},
		{
			Id:            uuid.New(),
			Email:         "warden@hostel.local",
			PasswordHash:  hashPassword("warden12345"),
			FullName:      "Chief Warden",
			Role:          string(entity.UserRoleWarden),
			Status:        string(entity.UserStatusActive),
			EmailVerified: true,
		},
	}

	for _, u := range staff {
		var count int64
		db.Model(&model.User{}).Where("email = ?", u.Email).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("Warn: Failed to seed user %s: %v", u.Email, err)
		}
	}
}

func seedRooms(db *gorm.DB) {
	log.Println("Seeding rooms...")

	type roomSpec struct {
		block    string
		floor    int
		roomType entity.RoomType
		gender   entity.Gender
		base     float64
		amenity  float64
		count    int
	}

	specs := []roomSpec{
		{"A", 1, entity.RoomTypeDouble, entity.GenderBoys, 48000, 6000, 6},
		{"A", 2, entity.RoomTypeTriple, entity.GenderBoys, 42000, 4500, 4},
		{"B", 1, entity.RoomTypeQuad, entity.GenderBoys, 36000, 3000, 4},
		{"C", 1, entity.RoomTypeDouble, entity.GenderGirls, 48000, 6000, 6},
		{"C", 2, entity.RoomTypeTriple, entity.GenderGirls, 42000, 4500, 4},
		{"D", 1, entity.RoomTypeSingle, entity.GenderGirls, 60000, 8000, 2},
	}

	seq := 0
	for _, spec := range specs {
		for i := 1; i <= spec.count; i++ {
			seq++
			roomNumber := fmt.Sprintf("%s-%d%02d", spec.block, spec.floor, i)

			var count int64
			db.Model(&model.Room{}).Where("room_number = ?", roomNumber).Count(&count)
			if count > 0 {
				continue
			}

			room := model.Room{
				Id:                uuid.New(),
				RoomNumber:        roomNumber,
				Block:             spec.block,
				Floor:             spec.floor,
				RoomType:          string(spec.roomType),
				Gender:            string(spec.gender),
				Capacity:          spec.roomType.Capacity(),
				BasePrice:         spec.base,
				AmenitiesPrice:    spec.amenity,
				TotalPrice:        spec.base + spec.amenity,
				Status:            string(entity.RoomStatusAvailable),
				MaintenanceStatus: string(entity.MaintenanceNone),
			}
			if err := db.Create(&room).Error; err != nil {
				log.Printf("Warn: Failed to seed room %s: %v", roomNumber, err)
			}
		}
	}
	log.Printf("Seeded up to %d rooms", seq)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func seedStudents(db *gorm.DB) {
	log.Println("Seeding students with preference profiles...")

	type profile struct {
		name        string
		gender      entity.Gender
		course      string
		year        int
		personality entity.PersonalityAttributes
		aiPrefs     entity.AiPreferences
	}

	profiles := []profile{
		{"Arjun Mehta", entity.GenderBoys, "Computer Science", 2,
			entity.PersonalityAttributes{SleepingHabits: strPtr("early"), StudyPreference: strPtr("quiet"), CleanlinessLevel: strPtr("high"), Sociability: strPtr("introvert"), AcFanPreference: strPtr("ac"), NoiseTolerance: strPtr("low")},
			entity.AiPreferences{SleepSchedule: strPtr("early"), Cleanliness: intPtr(9), NoiseTolerance: intPtr(2)}},
		{"Rohan Iyer", entity.GenderBoys, "Computer Science", 2,
			entity.PersonalityAttributes{SleepingHabits: strPtr("early"), StudyPreference: strPtr("quiet"), CleanlinessLevel: strPtr("high"), Sociability: strPtr("ambivert"), AcFanPreference: strPtr("ac"), NoiseTolerance: strPtr("low")},
			entity.AiPreferences{Cleanliness: intPtr(8), NoiseTolerance: intPtr(3)}},
		{"Kabir Shah", entity.GenderBoys, "Mechanical", 3,
			entity.PersonalityAttributes{SleepingHabits: strPtr("late"), StudyPreference: strPtr("music"), CleanlinessLevel: strPtr("medium"), Sociability: strPtr("extrovert"), AcFanPreference: strPtr("fan"), NoiseTolerance: strPtr("high")},
			entity.AiPreferences{Lifestyle: strPtr("social"), NoiseTolerance: intPtr(8)}},
		{"Dev Patel", entity.GenderBoys, "Mechanical", 3,
			entity.PersonalityAttributes{SleepingHabits: strPtr("late"), StudyPreference: strPtr("music"), CleanlinessLevel: strPtr("medium"), Sociability: strPtr("extrovert"), AcFanPreference: strPtr("both"), NoiseTolerance: strPtr("high")},
			entity.AiPreferences{Lifestyle: strPtr("social"), NoiseTolerance: intPtr(7)}},
		{"Vikram Rao", entity.GenderBoys, "Electronics", 1,
			entity.PersonalityAttributes{SleepingHabits: strPtr("early"), CleanlinessLevel: strPtr("medium"), Sociability: strPtr("ambivert")},
			entity.AiPreferences{SleepSchedule: strPtr("early")}},
		{"Sameer Khan", entity.GenderBoys, "Electronics", 1,
			entity.PersonalityAttributes{},
			entity.AiPreferences{}},
		{"Ananya Singh", entity.GenderGirls, "Biotech", 2,
			entity.PersonalityAttributes{SleepingHabits: strPtr("early"), StudyPreference: strPtr("quiet"), CleanlinessLevel: strPtr("high"), Sociability: strPtr("introvert"), AcFanPreference: strPtr("ac"), NoiseTolerance: strPtr("low")},
			entity.AiPreferences{Cleanliness: intPtr(10), NoiseTolerance: intPtr(1)}},
		{"Priya Nair", entity.GenderGirls, "Biotech", 2,
			entity.PersonalityAttributes{SleepingHabits: strPtr("early"), StudyPreference: strPtr("quiet"), CleanlinessLevel: strPtr("high"), Sociability: strPtr("ambivert"), AcFanPreference: strPtr("ac"), NoiseTolerance: strPtr("medium")},
			entity.AiPreferences{Cleanliness: intPtr(8)}},
		{"Sneha Kulkarni", entity.GenderGirls, "Architecture", 4,
			entity.PersonalityAttributes{SleepingHabits: strPtr("late"), StudyPreference: strPtr("music"), CleanlinessLevel: strPtr("low"), Sociability: strPtr("extrovert"), AcFanPreference: strPtr("fan"), NoiseTolerance: strPtr("high")},
			entity.AiPreferences{Lifestyle: strPtr("social"), NoiseTolerance: intPtr(9)}},
		{"Isha Verma", entity.GenderGirls, "Architecture", 4,
			entity.PersonalityAttributes{SleepingHabits: strPtr("late"), CleanlinessLevel: strPtr("medium"), Sociability: strPtr("extrovert"), NoiseTolerance: strPtr("high")},
			entity.AiPreferences{NoiseTolerance: intPtr(8)}},
	}

	year := time.Now().Year()
	for i, p := range profiles {
		admissionNo := fmt.Sprintf("HS%d%03d", year%100, i+1)

		var count int64
		db.Model(&model.Student{}).Where("student_id = ?", admissionNo).Count(&count)
		if count > 0 {
			continue
		}

		email := fmt.Sprintf("student%03d@hostel.local", i+1)
		user := model.User{
			Id:            uuid.New(),
			Email:         email,
			PasswordHash:  hashPassword("student12345"),
			FullName:      p.name,
			Role:          string(entity.UserRoleStudent),
			Status:        string(entity.UserStatusActive),
			EmailVerified: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Warn: Failed to seed user %s: %v", email, err)
			continue
		}

		personality, _ := json.Marshal(p.personality)
		aiPrefs, _ := json.Marshal(p.aiPrefs)

		student := model.Student{
			Id:               uuid.New(),
			UserId:           user.Id,
			Name:             p.name,
			StudentId:        admissionNo,
			Email:            email,
			Gender:           string(p.gender),
			Course:           p.course,
			Year:             p.year,
			BatchYear:        year - p.year + 1,
			Status:           string(entity.StudentStatusActive),
			PersonalityAttrs: datatypes.JSON(personality),
			AiPreferences:    datatypes.JSON(aiPrefs),
			PaymentStatus:    string(entity.PaymentStateNotStarted),
		}
		if err := db.Create(&student).Error; err != nil {
			log.Printf("Warn: Failed to seed student %s: %v", admissionNo, err)
			continue
		}

		wallet := model.Wallet{
			Id:        uuid.New(),
			StudentId: student.Id,
			Balance:   0,
		}
		if err := db.Create(&wallet).Error; err != nil {
			log.Printf("Warn: Failed to seed wallet for %s: %v", admissionNo, err)
		}
	}
}
