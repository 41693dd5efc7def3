package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/services/dto"
)

func TestLoginAfterRegister(t *testing.T) {
	ts := GetTestServer(t)
	_, auth := registerTalent(t, ts, "login")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Username: auth.User.Username,
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Username: auth.User.Username,
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProfileUpdateFlow(t *testing.T) {
	ts := GetTestServer(t)
	token, auth := registerTalent(t, ts, "update")

	rate := 45.0
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/me/profile", token, dto.UpdateProfileRequest{
		Username:   auth.User.Username,
		Email:      auth.User.Email,
		FirstName:  "Ada",
		LastName:   "Oguns",
		Location:   "Lagos, Nigeria",
		Bio:        "Full-stack developer.",
		HourlyRate: &rate,
		Skills:     []string{"Web Development", "UI/UX Design"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var profile dto.ProfileResponse
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Equal(t, "Lagos, Nigeria", profile.Location)
	assert.ElementsMatch(t, []string{"Web Development", "UI/UX Design"}, profile.Skills)

	// The update leaves exactly one unread confirmation behind.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/recent", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var recent dto.RecentNotifications
	require.NoError(t, json.Unmarshal([]byte(body), &recent))
	require.NotEmpty(t, recent.Notifications)
	assert.Equal(t, int64(1), recent.UnreadCount)
	assert.Equal(t, "You successfully updated your profile details.", recent.Notifications[0].Message)

	// Mark-read is idempotent.
	for i := 0; i < 2; i++ {
		res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/read-all", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
	}
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/recent", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &recent))
	assert.Zero(t, recent.UnreadCount)
}

func TestReviewFlow(t *testing.T) {
	ts := GetTestServer(t)
	talentToken, _ := registerTalent(t, ts, "talent")
	authorToken, author := registerTalent(t, ts, "author")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/me/profile", talentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var talentProfile dto.ProfileResponse
	require.NoError(t, json.Unmarshal([]byte(body), &talentProfile))

	reviewsPath := fmt.Sprintf("/api/v1/talents/%s/reviews", talentProfile.ID)
	for _, rating := range []int{5, 4, 5} {
		res, body = ts.SendRequest(t, http.MethodPost, reviewsPath, authorToken, dto.CreateReviewRequest{
			Rating:  rating,
			Comment: "Great work",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	// Out-of-range ratings never reach the aggregate.
	res, _ = ts.SendRequest(t, http.MethodPost, reviewsPath, authorToken, dto.CreateReviewRequest{Rating: 6})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, reviewsPath, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var reviews dto.ReviewListResponse
	require.NoError(t, json.Unmarshal([]byte(body), &reviews))
	assert.Equal(t, 4.7, reviews.Average)
	assert.Equal(t, int64(3), reviews.Count)

	// The talent got one notification per review, newest first.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/recent", talentToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var recent dto.RecentNotifications
	require.NoError(t, json.Unmarshal([]byte(body), &recent))
	require.Len(t, recent.Notifications, 3)
	assert.Equal(t, int64(3), recent.UnreadCount)
	expected := fmt.Sprintf("You received a new 5-star review from %s", author.User.Username)
	assert.Equal(t, expected, recent.Notifications[0].Message)

	var payload struct {
		ReviewID string `json:"review_id"`
		Rating   int    `json:"rating"`
	}
	require.NoError(t, json.Unmarshal(recent.Notifications[0].Data, &payload))
	assert.NotEmpty(t, payload.ReviewID)
	assert.Equal(t, 5, payload.Rating)

	// The author's own notifications are untouched.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/recent", authorToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &recent))
	assert.Zero(t, recent.UnreadCount)
}

func TestBrowseFindsUpdatedTalent(t *testing.T) {
	ts := GetTestServer(t)
	token, auth := registerTalent(t, ts, "browse")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/me/profile", token, dto.UpdateProfileRequest{
		Username:  auth.User.Username,
		Email:     auth.User.Email,
		FirstName: "Bola",
		Location:  "Port Harcourt, Nigeria",
		Bio:       "Motion designer.",
		Skills:    []string{"Video Editing"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet,
		"/api/v1/talents?location=port+harcourt&skill=Video+Editing", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listing struct {
		Talents []dto.ProfileCard `json:"talents"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))

	found := false
	for _, card := range listing.Talents {
		if card.Username == auth.User.Username {
			found = true
		}
	}
	assert.True(t, found, "updated talent should appear in the filtered listing")
}

func TestSubscribeTwice(t *testing.T) {
	ts := GetTestServer(t)
	token, auth := registerTalent(t, ts, "subscribe")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/subscribe", token, dto.SubscribeRequest{
		Email: auth.User.Email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var first dto.MessageResponse
	require.NoError(t, json.Unmarshal([]byte(body), &first))
	assert.Equal(t, "You have successfully subscribed to our newsletter.", first.Message)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/subscribe", token, dto.SubscribeRequest{
		Email: auth.User.Email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var second dto.MessageResponse
	require.NoError(t, json.Unmarshal([]byte(body), &second))
	assert.Equal(t, "You are already subscribed.", second.Message)

	// Only the first attempt produced a notification.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/recent", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var recent dto.RecentNotifications
	require.NoError(t, json.Unmarshal([]byte(body), &recent))
	assert.Equal(t, int64(1), recent.UnreadCount)
}
