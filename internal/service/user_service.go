// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"time"

	"tutegram/internal/models"
	"tutegram/internal/observability"
	"tutegram/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Picture kinds accepted by SetPicture.
const (
	PictureKindProfile = "profilePic"
	PictureKindCover   = "coverPic"
)

// UserService provides profile, feed and account business logic.
type UserService struct {
	userRepo repository.UserRepository
	connRepo repository.ConnectionRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, connRepo repository.ConnectionRepository) *UserService {
	return &UserService{userRepo: userRepo, connRepo: connRepo}
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	UserID    uint
	FirstName string
	LastName  string
	Username  string
	Age       *int
	Gender    string
	Location  string
	Bio       string
	Interests []string
}

// GetPublicByID returns the API-safe view of a user.
func (s *UserService) GetPublicByID(ctx context.Context, id uint) (*models.PublicUser, error) {
	return s.userRepo.GetPublicByID(ctx, id)
}

// ListOthers returns every user except the caller.
func (s *UserService) ListOthers(ctx context.Context, callerID uint) ([]models.PublicUser, error) {
	users, err := s.userRepo.ListOthers(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return models.PublicUsers(users), nil
}

// UpdateProfile applies the given profile fields and returns the fresh view.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.PublicUser, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.Location != "" {
		user.Location = in.Location
	}
	if in.Bio != "" {
		user.Bio = in.Bio
	}
	if in.Interests != nil {
		user.Interests = in.Interests
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}

// ChangeUsername sets a new username for the user.
func (s *UserService) ChangeUsername(ctx context.Context, userID uint, username string) (*models.PublicUser, error) {
	if username == "" {
		return nil, models.NewValidationError("UserName is required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Username = username
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return models.NewValidationError("All fields are required")
	}
	if currentPassword == newPassword {
		return models.NewValidationError("New password cannot be same as old password")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return models.NewNotFoundError("Invalid Credentials")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	user.Password = string(hashed)
	return s.userRepo.Update(ctx, user)
}

// DeleteAccount removes the user and every connection record touching it.
// The connection cleanup runs first so no orphaned edges survive a failure
// between the two deletes.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.connRepo.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// SetPicture updates the profile or cover picture URL.
func (s *UserService) SetPicture(ctx context.Context, userID uint, kind, url string) (*models.PublicUser, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch kind {
	case PictureKindProfile:
		user.ProfilePic = url
	case PictureKindCover:
		user.CoverPic = url
	default:
		return nil, models.NewValidationError("Invalid picture type")
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}

// FeedPage is one page of the discovery feed.
type FeedPage struct {
	Users []models.PublicUser
	Total int64
	Page  int
	Limit int
}

// MaxFeedLimit caps the page size a caller may request.
const MaxFeedLimit = 50

// Feed returns discoverable users: everyone without a connection record
// shared with the caller (any status, either direction), matched against the
// optional search string. An empty page is a reportable not-found condition,
// not silent empty data.
func (s *UserService) Feed(ctx context.Context, userID uint, search string, page, limit int) (*FeedPage, error) {
	start := time.Now()
	defer observability.ObserveFeedQuery(start)

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	conns, err := s.connRepo.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	hidden := make(map[uint]struct{}, len(conns))
	for i := range conns {
		hidden[conns[i].SenderID] = struct{}{}
		hidden[conns[i].ReceiverID] = struct{}{}
	}
	excludeIDs := make([]uint, 0, len(hidden))
	for id := range hidden {
		excludeIDs = append(excludeIDs, id)
	}

	users, total, err := s.userRepo.FeedPage(ctx, repository.FeedQuery{
		UserID:     userID,
		ExcludeIDs: excludeIDs,
		Search:     search,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, models.NewNotFoundError("No feed found")
	}

	return &FeedPage{
		Users: models.PublicUsers(users),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
