package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"novelnook/db"
	"novelnook/models"
	"novelnook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserNotFound marks a lookup for a user id with no stored account.
var ErrUserNotFound = errors.New("user not found")

// IdentityStore answers user lookups and authorization checks for
// the rest of the service.
type IdentityStore struct {
	coll *mongo.Collection
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{coll: db.UserCollection}
}

func (s *IdentityStore) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// IsAdmin is the authoritative admin check; the role list lives on
// the stored user, never on anything the client supplies. An unknown
// user is simply not an admin; a failed lookup is an error, so callers
// never mistake an infrastructure problem for a missing role.
func (s *IdentityStore) IsAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := s.GetUser(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// SeedAdmin creates the administrator account from ADMIN_EMAIL /
// ADMIN_PASSWORD when it doesn't exist yet.
func SeedAdmin() {
	email := utils.TrimEmail(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var existing models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&existing); err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("SeedAdmin hash error: %v", err)
		return
	}

	now := time.Now()
	admin := models.User{
		UserID:    "u" + utils.GenerateRandomString(10),
		Email:     email,
		Name:      "Administrator",
		Password:  string(hashed),
		Role:      []string{"user", "admin"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := db.UserCollection.InsertOne(ctx, admin); err != nil {
		log.Printf("SeedAdmin insert error: %v", err)
		return
	}
	log.Printf("Seeded admin account %s", email)
}
