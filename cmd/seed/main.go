package main

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talenthub_backend/database"
	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/config"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
)

var skillNames = []string{
	"Web Development",
	"Graphic Design",
	"Content Writing",
	"Digital Marketing",
	"Video Editing",
	"UI/UX Design",
	"Photography",
	"Mobile Development",
	"Data Analysis",
	"Copywriting",
}

type demoTalent struct {
	username  string
	email     string
	firstName string
	lastName  string
	location  string
	bio       string
	rate      float64
	skills    []string
	verified  bool
}

var demoTalents = []demoTalent{
	{
		username: "adaoguns", email: "ada@example.com",
		firstName: "Ada", lastName: "Oguns",
		location: "Lagos, Nigeria",
		bio:      "Full-stack developer building web products for startups.",
		rate:     45, skills: []string{"Web Development", "UI/UX Design"}, verified: true,
	},
	{
		username: "tundegfx", email: "tunde@example.com",
		firstName: "Tunde", lastName: "Bakare",
		location: "Abuja, Nigeria",
		bio:      "Brand designer with a love for bold identities.",
		rate:     30, skills: []string{"Graphic Design"}, verified: true,
	},
	{
		username: "chiamaka_w", email: "chiamaka@example.com",
		firstName: "Chiamaka", lastName: "Eze",
		location: "Enugu, Nigeria",
		bio:      "Content writer and editor covering tech and culture.",
		rate:     25, skills: []string{"Content Writing", "Copywriting"}, verified: true,
	},
	{
		username: "kunle_shoots", email: "kunle@example.com",
		firstName: "Kunle", lastName: "Adeyemi",
		location: "Ibadan, Nigeria",
		bio:      "Photographer and video editor for events and brands.",
		rate:     35, skills: []string{"Photography", "Video Editing"},
	},
}

var demoPosts = []models.BlogPost{
	{
		Title:    "How to Write a Profile That Gets You Hired",
		Category: "Tips",
		Excerpt:  "Your profile is your storefront. Here is what clients actually read.",
		Content:  "Start with a clear headline, lead with outcomes, and keep your skill list honest. Clients scan location and rate first, so fill both in.",
	},
	{
		Title:    "Introducing Verified Profiles",
		Category: "News",
		Excerpt:  "A new badge that tells clients a talent has been vetted by our team.",
		Content:  "Verified profiles are reviewed manually. The badge appears on the browse page and gives your profile priority placement on the home page.",
	},
	{
		Title:    "Pricing Your Work as a Freelancer",
		Category: "Tips",
		Excerpt:  "Hourly rates are a signal, not just a number.",
		Content:  "An empty rate field reads as inexperience. Research what peers with your skills charge and set a rate you can defend in a first call.",
	},
	{
		Title:    "Community Roundup: Q3",
		Category: "News",
		Excerpt:  "New talents, new skills and what got built this quarter.",
		Content:  "This quarter the platform grew across design and writing categories, and the most requested skill was Web Development.",
	},
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seed(db); err != nil {
		logger.Fatal("Seeding failed", "error", err)
	}
	logger.Info("Seeding complete")
}

func seed(db *gorm.DB) error {
	skillsByName := make(map[string]models.Skill, len(skillNames))
	for _, name := range skillNames {
		var skill models.Skill
		if err := db.Where("name = ?", name).FirstOrCreate(&skill, models.Skill{Name: name}).Error; err != nil {
			return fmt.Errorf("seed skill %q: %w", name, err)
		}
		skillsByName[name] = skill
	}
	logger.Info("Skills seeded", "count", len(skillNames))

	hash, err := auth.HashPassword("changeme123")
	if err != nil {
		return err
	}

	for _, talent := range demoTalents {
		var existing models.User
		err := db.Where("username = ?", talent.username).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		rate := talent.rate
		user := models.User{
			Username:     talent.username,
			Email:        talent.email,
			FirstName:    talent.firstName,
			LastName:     talent.lastName,
			PasswordHash: hash,
		}
		profileSkills := make([]models.Skill, 0, len(talent.skills))
		for _, name := range talent.skills {
			profileSkills = append(profileSkills, skillsByName[name])
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(&models.Profile{
				UserID:     user.ID,
				Location:   talent.location,
				Bio:        talent.bio,
				HourlyRate: &rate,
				IsVerified: talent.verified,
				Skills:     profileSkills,
			}).Error
		})
		if err != nil {
			return fmt.Errorf("seed talent %q: %w", talent.username, err)
		}
		logger.Info("Talent seeded", "username", talent.username)
	}

	for _, post := range demoPosts {
		var existing models.BlogPost
		err := db.Where("title = ?", post.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("seed post %q: %w", post.Title, err)
		}
	}
	logger.Info("Blog posts seeded", "count", len(demoPosts))

	return nil
}
