package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tutegram/internal/models"
	"tutegram/internal/observability"
	"tutegram/internal/repository"
)

// ConnectionService provides the connection-request workflow and the
// recommendation query.
type ConnectionService struct {
	connRepo repository.ConnectionRepository
	userRepo repository.UserRepository
}

// NewConnectionService returns a new ConnectionService.
func NewConnectionService(connRepo repository.ConnectionRepository, userRepo repository.UserRepository) *ConnectionService {
	return &ConnectionService{connRepo: connRepo, userRepo: userRepo}
}

// Send creates a connection record from sender to receiver with the given
// creation status. Returns the record and a human-readable message.
func (s *ConnectionService) Send(ctx context.Context, senderID, receiverID uint, status models.ConnectionStatus) (*models.Connection, string, error) {
	if !models.ValidCreationStatus(status) {
		return nil, "", models.NewValidationError("Invalid status")
	}
	if senderID == receiverID {
		return nil, "", models.NewValidationError("You cannot connect with yourself")
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, "", err
	}
	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, "", err
	}

	existing, err := s.connRepo.GetBetweenUsers(ctx, senderID, receiverID)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", models.NewValidationError("Connection already exists")
	}

	conn := &models.Connection{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     status,
	}
	if err := s.connRepo.Create(ctx, conn); err != nil {
		return nil, "", err
	}

	observability.ConnectionTransitions.WithLabelValues(string(status)).Inc()

	message := fmt.Sprintf("%s has ignored %s", sender.Username, receiver.Username)
	if status == models.ConnectionStatusInterested {
		message = fmt.Sprintf("%s is interested in %s", sender.Username, receiver.Username)
	}
	return conn, message, nil
}

// Review resolves a pending request. Only the receiver of a record still in
// the interested state may accept or reject it; every other combination is
// reported as not found.
func (s *ConnectionService) Review(ctx context.Context, reviewerID, connectionID uint, status models.ConnectionStatus) (*models.Connection, string, error) {
	if !models.ValidReviewStatus(status) {
		return nil, "", models.NewValidationError("Invalid status")
	}

	conn, err := s.connRepo.FindForReview(ctx, connectionID, reviewerID)
	if err != nil {
		return nil, "", err
	}

	if err := s.connRepo.UpdateStatus(ctx, conn.ID, status); err != nil {
		return nil, "", err
	}
	conn.Status = status

	observability.ConnectionTransitions.WithLabelValues(string(status)).Inc()

	message := "Connection request rejected"
	if status == models.ConnectionStatusAccepted {
		message = "Connection request accepted"
	}
	return conn, message, nil
}

// PendingRequests returns incoming interested requests with the sender's
// public profile.
func (s *ConnectionService) PendingRequests(ctx context.Context, userID uint) ([]models.ConnectionRequest, error) {
	conns, err := s.connRepo.GetPendingForReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(conns) == 0 {
		return nil, models.NewNotFoundError("No connection requests found")
	}

	out := make([]models.ConnectionRequest, 0, len(conns))
	for i := range conns {
		out = append(out, models.ConnectionRequest{
			ID:        conns[i].ID,
			Status:    conns[i].Status,
			Sender:    conns[i].Sender.Public(),
			CreatedAt: conns[i].CreatedAt,
		})
	}
	return out, nil
}

// AcceptedConnections returns the counterpart public profile of every
// accepted record involving the user.
func (s *ConnectionService) AcceptedConnections(ctx context.Context, userID uint) ([]models.PublicUser, error) {
	conns, err := s.connRepo.GetAcceptedForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(conns) == 0 {
		return nil, models.NewNotFoundError("No connections found")
	}

	out := make([]models.PublicUser, 0, len(conns))
	for i := range conns {
		if conns[i].SenderID == userID {
			out = append(out, conns[i].Receiver.Public())
		} else {
			out = append(out, conns[i].Sender.Public())
		}
	}
	return out, nil
}

// Recommendations ranks candidate users by how many accepted records tie them
// to the caller, most first. This counts the caller's own direct connections
// grouped by counterpart rather than walking friends-of-friends; the ranking
// is kept as-is deliberately. With byInterests set, the result is re-sorted
// by overlap with the caller's interest tags.
func (s *ConnectionService) Recommendations(ctx context.Context, userID uint, byInterests bool) ([]models.PublicUser, error) {
	start := time.Now()
	defer observability.ObserveRecommendationQuery(start)

	counts, err := s.connRepo.CounterpartCounts(ctx, userID, models.ConnectionStatusAccepted)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(counts))
	rank := make(map[uint]int, len(counts))
	for i, row := range counts {
		if row.CounterpartID == userID {
			continue
		}
		ids = append(ids, row.CounterpartID)
		rank[row.CounterpartID] = i
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Restore the aggregation's count-descending order; GetByIDs does not
	// guarantee it.
	sort.SliceStable(users, func(a, b int) bool {
		return rank[users[a].ID] < rank[users[b].ID]
	})

	if byInterests && len(users) > 1 {
		caller, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		mine := make(map[string]struct{}, len(caller.Interests))
		for _, tag := range caller.Interests {
			mine[tag] = struct{}{}
		}
		overlap := func(u *models.User) int {
			n := 0
			for _, tag := range u.Interests {
				if _, ok := mine[tag]; ok {
					n++
				}
			}
			return n
		}
		sort.SliceStable(users, func(a, b int) bool {
			return overlap(&users[a]) > overlap(&users[b])
		})
	}

	return models.PublicUsers(users), nil
}
