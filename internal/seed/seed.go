// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"tutegram/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	NumConnections int
	ShouldClean    bool
	PersonaFile    string
}

// Persona is a hand-curated seed user loaded from a YAML file. Personas are
// created before the generated users so they always get the low IDs.
type Persona struct {
	FirstName string   `yaml:"firstName"`
	LastName  string   `yaml:"lastName"`
	Username  string   `yaml:"userName"`
	Email     string   `yaml:"email"`
	Age       int      `yaml:"age"`
	Gender    string   `yaml:"gender"`
	Location  string   `yaml:"location"`
	Bio       string   `yaml:"bio"`
	Interests []string `yaml:"interests"`
}

var interestPool = []string{
	"photography", "hiking", "cooking", "gaming", "reading", "travel",
	"music", "fitness", "painting", "coding", "movies", "yoga",
	"cycling", "chess", "gardening", "podcasts", "running", "baking",
}

// Seed populates the database with test users and connection records.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d connections...", opts.NumUsers, opts.NumConnections)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	var personas []Persona
	if opts.PersonaFile != "" {
		loaded, err := LoadPersonas(opts.PersonaFile)
		if err != nil {
			return err
		}
		personas = loaded
		log.Printf("Loaded %d personas from %s", len(personas), opts.PersonaFile)
	}

	users, err := createUsers(db, personas, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	created, err := createConnections(db, users, opts.NumConnections)
	if err != nil {
		return fmt.Errorf("failed to create connections: %w", err)
	}
	log.Printf("%d connections created", created)

	return nil
}

// LoadPersonas reads seed personas from a YAML file.
func LoadPersonas(path string) ([]Persona, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona file: %w", err)
	}
	var personas []Persona
	if err := yaml.Unmarshal(raw, &personas); err != nil {
		return nil, fmt.Errorf("failed to parse persona file: %w", err)
	}
	return personas, nil
}

func clearData(db *gorm.DB) error {
	if err := db.Exec("DELETE FROM connections").Error; err != nil {
		return err
	}
	return db.Exec("DELETE FROM users").Error
}

func createUsers(db *gorm.DB, personas []Persona, total int) ([]models.User, error) {
	// Every seed user shares the same password; hash once.
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, total)

	for _, p := range personas {
		users = append(users, models.User{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Username:  p.Username,
			Email:     p.Email,
			Password:  string(hashed),
			Age:       p.Age,
			Gender:    p.Gender,
			Location:  p.Location,
			Bio:       p.Bio,
			Interests: p.Interests,
		})
	}

	for i := len(users); i < total; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		username := fmt.Sprintf("%s_%s%d",
			strings.ToLower(first), strings.ToLower(last), gofakeit.Number(1, 9999))

		users = append(users, models.User{
			FirstName: first,
			LastName:  last,
			Username:  username,
			Email:     strings.ToLower(fmt.Sprintf("%s.%s%d@example.com", first, last, i)),
			Password:  string(hashed),
			Age:       gofakeit.Number(18, 65),
			Gender:    gofakeit.RandomString([]string{"male", "female", "other"}),
			Location:  gofakeit.City(),
			Bio:       gofakeit.Sentence(8),
			Interests: randomInterests(),
		})
	}

	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			return nil, err
		}
	}
	return users, nil
}

func randomInterests() []string {
	n := rand.Intn(5) + 1
	picked := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(picked) < n {
		tag := interestPool[rand.Intn(len(interestPool))]
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		picked = append(picked, tag)
	}
	return picked
}

func createConnections(db *gorm.DB, users []models.User, target int) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	statuses := []models.ConnectionStatus{
		models.ConnectionStatusInterested,
		models.ConnectionStatusInterested,
		models.ConnectionStatusAccepted,
		models.ConnectionStatusAccepted,
		models.ConnectionStatusAccepted,
		models.ConnectionStatusIgnored,
		models.ConnectionStatusRejected,
	}

	seen := make(map[string]struct{}, target)
	created := 0
	attempts := 0

	for created < target && attempts < target*10 {
		attempts++

		sender := users[rand.Intn(len(users))]
		receiver := users[rand.Intn(len(users))]
		if sender.ID == receiver.ID {
			continue
		}

		key := models.PairKeyFor(sender.ID, receiver.ID)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		conn := models.Connection{
			SenderID:   sender.ID,
			ReceiverID: receiver.ID,
			Status:     statuses[rand.Intn(len(statuses))],
		}
		if err := db.Create(&conn).Error; err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
