package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/red7x7/membership-api/internal/config"
	"github.com/red7x7/membership-api/internal/database"
	"github.com/red7x7/membership-api/internal/models"
)

// Seeds the database with demo accounts and sample content. Destructive:
// wipes every table first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	for _, model := range []interface{}{
		&models.ContactRequest{},
		&models.MeetingParticipant{},
		&models.Meeting{},
		&models.Announcement{},
		&models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			log.Fatalf("Failed to wipe table: %v", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Name:         "Ana Admin",
		Email:        "admin@red7x7.cl",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Membership:   models.MembershipPro,
		Company:      "Red7x7",
		Position:     "Directora",
		Phone:        "+56911111111",
	}
	pro := models.User{
		Name:         "Pedro Pro",
		Email:        "pro@red7x7.cl",
		PasswordHash: string(hash),
		Role:         models.RolePro,
		Membership:   models.MembershipPro,
		Company:      "Innovar SpA",
		Position:     "Gerente",
		Phone:        "+56922222222",
	}
	member := models.User{
		Name:         "Maria Socia",
		Email:        "maria@red7x7.cl",
		PasswordHash: string(hash),
		Role:         models.RoleMember,
		Membership:   models.MembershipSocio7x7,
		Company:      "StartUp XYZ",
		Position:     "Fundadora",
		Phone:        "+56933333333",
	}
	for _, u := range []*models.User{&admin, &pro, &member} {
		if err := db.Create(u).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Email, err)
		}
	}

	announcements := []models.Announcement{
		{
			Content:  "Bienvenidos al nuevo portal Red7x7. Recuerden revisar los anuncios todas las mañanas.",
			Pinned:   true,
			AuthorID: admin.ID,
		},
		{
			Content:  "El próximo desayuno de networking será el martes a las 09:00 hrs.",
			Pinned:   false,
			AuthorID: admin.ID,
		},
	}
	if err := db.Create(&announcements).Error; err != nil {
		log.Fatalf("Failed to create announcements: %v", err)
	}

	now := time.Now()
	meeting := models.Meeting{
		Title:       "Reunión de lanzamiento",
		Agenda:      "Repasar funcionalidades del portal y próximos pasos",
		Summary:     "Se alinearon expectativas para el lanzamiento del portal Red7x7.",
		ScheduledAt: &now,
		CreatedByID: admin.ID,
		Participants: []models.MeetingParticipant{
			{UserID: pro.ID, Status: models.ParticipantInvited},
			{UserID: member.ID, Status: models.ParticipantInvited},
		},
	}
	if err := db.Create(&meeting).Error; err != nil {
		log.Fatalf("Failed to create meeting: %v", err)
	}

	resolved := time.Now()
	request := models.ContactRequest{
		RequesterID: pro.ID,
		TargetID:    member.ID,
		Status:      models.RequestApproved,
		ResolvedAt:  &resolved,
	}
	if err := db.Create(&request).Error; err != nil {
		log.Fatalf("Failed to create contact request: %v", err)
	}

	log.Printf("Seed completed: admin=%s pro=%s member=%s meeting=%d",
		admin.Email, pro.Email, member.Email, meeting.ID)
}
