package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancedispatch/server/internal/models"
)

type fakeReviewsRepo struct {
	rows    []models.ReviewRow
	bundles []models.ReviewBundle
}

func (f *fakeReviewsRepo) SubmitReview(ctx context.Context, row models.ReviewRow) error {
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeReviewsRepo) ListReviewBundles(ctx context.Context, eventID string) ([]models.ReviewBundle, error) {
	return f.bundles, nil
}

type fakeUserRepo struct {
	usernames map[string]string
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (interface{}, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) AuthenticateUser(ctx context.Context, email, password string) (interface{}, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) RefreshToken(ctx context.Context, refreshToken string) (interface{}, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) GetUser(ctx context.Context, id uuid.UUID, accessToken string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) GetUsername(ctx context.Context, userID string) (string, error) {
	name, ok := f.usernames[userID]
	if !ok {
		return "", errors.New("profile not found")
	}
	return name, nil
}

func newReviewService(reviews *fakeReviewsRepo, users *fakeUserRepo) *ReviewService {
	if users == nil {
		users = &fakeUserRepo{}
	}
	return NewReviewService(reviews, users, nil)
}

func TestSubmit_PersistsSanitizedRows(t *testing.T) {
	repo := &fakeReviewsRepo{}
	rs := newReviewService(repo, nil)

	entries := []ReviewEntry{
		{EntityType: "Event", EntityID: "e1", Comment: "  great night  "},
		{EntityType: "venue", EntityID: "42", Rating: 4, Comment: "good sound"},
		{EntityType: "dj", EntityID: "7", Rating: 5},
	}
	err := rs.Submit(context.Background(), entries, "user1", "e1")
	require.NoError(t, err)
	require.Len(t, repo.rows, 3)

	assert.Equal(t, "event", repo.rows[0].EntityType)
	assert.Equal(t, "great night", repo.rows[0].Comment)
	assert.Equal(t, models.PrivacyPublic, repo.rows[0].PrivacyLevel)
	for _, row := range repo.rows {
		assert.Equal(t, "user1", row.UserID)
		assert.Equal(t, "e1", row.EventID)
	}
}

func TestSubmit_SharesOneTimestampAcrossRows(t *testing.T) {
	repo := &fakeReviewsRepo{}
	rs := newReviewService(repo, nil)

	// A ticking clock: if rows were stamped individually, a submission
	// straddling a second boundary would split into two bundles.
	base := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)
	rs.now = func() time.Time {
		base = base.Add(time.Second)
		return base
	}

	entries := []ReviewEntry{
		{EntityType: "event", EntityID: "e1", Comment: "fine"},
		{EntityType: "venue", EntityID: "42", Rating: 4},
		{EntityType: "dj", EntityID: "7", Rating: 5},
	}
	require.NoError(t, rs.Submit(context.Background(), entries, "user1", "e1"))
	require.Len(t, repo.rows, 3)

	stamp := repo.rows[0].SubmitDate
	require.NotEmpty(t, stamp)
	for _, row := range repo.rows {
		assert.Equal(t, stamp, row.SubmitDate)
	}
}

func TestSubmit_RejectsWholeBatchOnBadEntry(t *testing.T) {
	repo := &fakeReviewsRepo{}
	rs := newReviewService(repo, nil)

	entries := []ReviewEntry{
		{EntityType: "event", EntityID: "e1", Comment: "fine"},
		{EntityType: "stage", EntityID: "s1"},
	}
	err := rs.Submit(context.Background(), entries, "user1", "e1")
	require.Error(t, err)
	assert.Empty(t, repo.rows)
}

func TestSubmit_RequiresSessionEventAndEntries(t *testing.T) {
	rs := newReviewService(&fakeReviewsRepo{}, nil)
	valid := []ReviewEntry{{EntityType: "event", EntityID: "e1"}}

	assert.Error(t, rs.Submit(context.Background(), valid, "", "e1"))
	assert.Error(t, rs.Submit(context.Background(), valid, "user1", " "))
	assert.Error(t, rs.Submit(context.Background(), nil, "user1", "e1"))
}

func TestSubmit_RejectsOutOfRangeRating(t *testing.T) {
	repo := &fakeReviewsRepo{}
	rs := newReviewService(repo, nil)

	err := rs.Submit(context.Background(), []ReviewEntry{{EntityType: "dj", EntityID: "7", Rating: 9}}, "user1", "e1")
	require.Error(t, err)
	assert.Empty(t, repo.rows)
}

func TestListForEvent_ResolvesUsernames(t *testing.T) {
	repo := &fakeReviewsRepo{bundles: []models.ReviewBundle{
		{UserID: "user1", EventID: "e1", PrivacyLevel: models.PrivacyPublic},
		{UserID: "user2", EventID: "e1", PrivacyLevel: models.PrivacyAnonymous},
		{UserID: "user3", EventID: "e1", PrivacyLevel: models.PrivacyPublic},
	}}
	users := &fakeUserRepo{usernames: map[string]string{"user1": "alice"}}
	rs := newReviewService(repo, users)

	bundles, err := rs.ListForEvent(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, bundles, 3)

	assert.Equal(t, "alice", bundles[0].Username)
	// Anonymous bundles never get a username attached.
	assert.Empty(t, bundles[1].Username)
	// Failed lookups fall back to the raw user id.
	assert.Equal(t, "user3", bundles[2].Username)
}

func TestListForEvent_RequiresEventID(t *testing.T) {
	rs := newReviewService(&fakeReviewsRepo{}, nil)

	_, err := rs.ListForEvent(context.Background(), "")
	assert.Error(t, err)
}
