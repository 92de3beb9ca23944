package service

import (
	"context"
	"testing"

	"tutegram/internal/models"
	"tutegram/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		svc := NewConnectionService(new(MockConnectionRepository), new(MockUserRepository))
		_, _, err := svc.Send(context.Background(), 1, 2, "accepted")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "Invalid status", appErr.Message)
	})

	t.Run("self connection", func(t *testing.T) {
		svc := NewConnectionService(new(MockConnectionRepository), new(MockUserRepository))
		_, _, err := svc.Send(context.Background(), 1, 1, models.ConnectionStatusInterested)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "You cannot connect with yourself", appErr.Message)
	})

	t.Run("missing receiver", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewConnectionService(new(MockConnectionRepository), userRepo)

		userRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, Username: "alice"}, nil)
		userRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, models.NewNotFoundError("User not found"))

		_, _, err := svc.Send(context.Background(), 1, 99, models.ConnectionStatusInterested)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Status)
	})

	t.Run("existing pair either direction", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		connRepo := new(MockConnectionRepository)
		svc := NewConnectionService(connRepo, userRepo)

		userRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, Username: "alice"}, nil)
		userRepo.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2, Username: "bob"}, nil)
		connRepo.On("GetBetweenUsers", mock.Anything, uint(1), uint(2)).Return(&models.Connection{ID: 10}, nil)

		_, _, err := svc.Send(context.Background(), 1, 2, models.ConnectionStatusInterested)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "Connection already exists", appErr.Message)
	})

	t.Run("success interested", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		connRepo := new(MockConnectionRepository)
		svc := NewConnectionService(connRepo, userRepo)

		userRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, Username: "alice"}, nil)
		userRepo.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2, Username: "bob"}, nil)
		connRepo.On("GetBetweenUsers", mock.Anything, uint(1), uint(2)).Return(nil, nil)
		connRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Connection) bool {
			return c.SenderID == 1 && c.ReceiverID == 2 && c.Status == models.ConnectionStatusInterested
		})).Return(nil)

		conn, message, err := svc.Send(context.Background(), 1, 2, models.ConnectionStatusInterested)
		require.NoError(t, err)
		assert.Equal(t, uint(2), conn.ReceiverID)
		assert.Equal(t, "alice is interested in bob", message)
	})
}

func TestReview(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		svc := NewConnectionService(new(MockConnectionRepository), new(MockUserRepository))
		_, _, err := svc.Review(context.Background(), 2, 10, "interested")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	})

	t.Run("only receiver of pending request may review", func(t *testing.T) {
		connRepo := new(MockConnectionRepository)
		svc := NewConnectionService(connRepo, new(MockUserRepository))

		connRepo.On("FindForReview", mock.Anything, uint(10), uint(3)).
			Return(nil, models.NewNotFoundError("Connection not found"))

		_, _, err := svc.Review(context.Background(), 3, 10, models.ConnectionStatusAccepted)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Status)
	})

	t.Run("accept", func(t *testing.T) {
		connRepo := new(MockConnectionRepository)
		svc := NewConnectionService(connRepo, new(MockUserRepository))

		connRepo.On("FindForReview", mock.Anything, uint(10), uint(2)).
			Return(&models.Connection{ID: 10, SenderID: 1, ReceiverID: 2, Status: models.ConnectionStatusInterested}, nil)
		connRepo.On("UpdateStatus", mock.Anything, uint(10), models.ConnectionStatusAccepted).Return(nil)

		conn, message, err := svc.Review(context.Background(), 2, 10, models.ConnectionStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.ConnectionStatusAccepted, conn.Status)
		assert.Equal(t, "Connection request accepted", message)
	})
}

func TestPendingRequests_EmptyIsNotFound(t *testing.T) {
	connRepo := new(MockConnectionRepository)
	svc := NewConnectionService(connRepo, new(MockUserRepository))

	connRepo.On("GetPendingForReceiver", mock.Anything, uint(1)).Return([]models.Connection{}, nil)

	_, err := svc.PendingRequests(context.Background(), 1)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "No connection requests found", appErr.Message)
}

func TestAcceptedConnections_ReturnsCounterparts(t *testing.T) {
	connRepo := new(MockConnectionRepository)
	svc := NewConnectionService(connRepo, new(MockUserRepository))

	connRepo.On("GetAcceptedForUser", mock.Anything, uint(1)).Return([]models.Connection{
		{ID: 10, SenderID: 1, ReceiverID: 2, Status: models.ConnectionStatusAccepted,
			Receiver: models.User{ID: 2, Username: "bob"}},
		{ID: 11, SenderID: 3, ReceiverID: 1, Status: models.ConnectionStatusAccepted,
			Sender: models.User{ID: 3, Username: "carol"}},
	}, nil)

	users, err := svc.AcceptedConnections(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Username)
	assert.Equal(t, "carol", users[1].Username)
}

// The ranking source is the caller's own accepted records grouped by
// counterpart, so every count is the number of records tying that user
// directly to the caller.
func TestRecommendations_DirectCountsOnly(t *testing.T) {
	userRepo := new(MockUserRepository)
	connRepo := new(MockConnectionRepository)
	svc := NewConnectionService(connRepo, userRepo)

	connRepo.On("CounterpartCounts", mock.Anything, uint(1), models.ConnectionStatusAccepted).
		Return([]repository.CounterpartCount{
			{CounterpartID: 5, Count: 1},
			{CounterpartID: 2, Count: 1},
		}, nil)
	userRepo.On("GetByIDs", mock.Anything, []uint{5, 2}).Return([]models.User{
		{ID: 2, Username: "second"},
		{ID: 5, Username: "first"},
	}, nil)

	users, err := svc.Recommendations(context.Background(), 1, false)
	require.NoError(t, err)
	require.Len(t, users, 2)
	// Aggregation order is preserved even though GetByIDs returned by ID.
	assert.Equal(t, uint(5), users[0].ID)
	assert.Equal(t, uint(2), users[1].ID)
}

func TestRecommendations_InterestWeighting(t *testing.T) {
	userRepo := new(MockUserRepository)
	connRepo := new(MockConnectionRepository)
	svc := NewConnectionService(connRepo, userRepo)

	connRepo.On("CounterpartCounts", mock.Anything, uint(1), models.ConnectionStatusAccepted).
		Return([]repository.CounterpartCount{
			{CounterpartID: 2, Count: 1},
			{CounterpartID: 3, Count: 1},
		}, nil)
	userRepo.On("GetByIDs", mock.Anything, []uint{2, 3}).Return([]models.User{
		{ID: 2, Username: "c", Interests: []string{"chess"}},
		{ID: 3, Username: "b", Interests: []string{"hiking", "cooking"}},
	}, nil)
	userRepo.On("GetByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1, Interests: []string{"hiking", "cooking", "movies"}}, nil)

	users, err := svc.Recommendations(context.Background(), 1, true)
	require.NoError(t, err)
	require.Len(t, users, 2)
	// b shares two interests with the caller, c shares none.
	assert.Equal(t, "b", users[0].Username)
	assert.Equal(t, "c", users[1].Username)
}
