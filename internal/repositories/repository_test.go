package repositories

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talenthub_backend/database"
	"talenthub_backend/internal/models"
)

// setupTestDB opens the database named by TEST_DATABASE_URL and hands the
// test a transaction that is rolled back afterwards. Tests are skipped when
// the variable is unset.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func createTalent(t *testing.T, db *gorm.DB, username, firstName, location, bio string, skills ...string) *models.Profile {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    firstName,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)

	profile := &models.Profile{UserID: user.ID, Location: location, Bio: bio}
	require.NoError(t, db.Create(profile).Error)

	skillRepo := NewSkillRepository(db)
	attached := make([]models.Skill, 0, len(skills))
	for _, name := range skills {
		skill, err := skillRepo.GetOrCreate(name)
		require.NoError(t, err)
		attached = append(attached, *skill)
	}
	if len(attached) > 0 {
		require.NoError(t, db.Model(profile).Association("Skills").Replace(attached))
	}

	loaded, err := NewProfileRepository(db).FindByID(profile.ID)
	require.NoError(t, err)
	return loaded
}

func searchIDs(t *testing.T, db *gorm.DB, criteria ProfileSearchCriteria) []string {
	t.Helper()
	profiles, err := NewProfileRepository(db).Search(criteria)
	require.NoError(t, err)
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestSearchLocationCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)

	lagos := createTalent(t, db, "ada_lagos", "Ada", "Lagos, Nigeria", "Developer")
	createTalent(t, db, "tunde_abuja", "Tunde", "Abuja, Nigeria", "Designer")

	ids := searchIDs(t, db, ProfileSearchCriteria{Location: "lagos"})
	require.Len(t, ids, 1)
	assert.Equal(t, lagos.ID, ids[0])
}

func TestSearchQueryMatchesSkillNamesWithoutDuplicates(t *testing.T) {
	db := setupTestDB(t)

	multi := createTalent(t, db, "designer_x", "Bola", "Lagos", "I design things",
		"Graphic Design", "UI/UX Design")
	createTalent(t, db, "writer_y", "Chi", "Enugu", "I write things", "Content Writing")

	// Both of the profile's skills match "design"; the profile must
	// still appear exactly once.
	ids := searchIDs(t, db, ProfileSearchCriteria{Query: "design"})
	require.Len(t, ids, 1)
	assert.Equal(t, multi.ID, ids[0])
}

func TestSearchQueryMatchesUsernameFirstNameAndBio(t *testing.T) {
	db := setupTestDB(t)

	byUsername := createTalent(t, db, "kunle_shoots", "K", "Ibadan", "events")
	byFirstName := createTalent(t, db, "studio9", "Kunrami", "Ibadan", "events")
	byBio := createTalent(t, db, "lens_lady", "Ada", "Ibadan", "kun photography collective")
	createTalent(t, db, "other", "Tola", "Ibadan", "unrelated")

	ids := searchIDs(t, db, ProfileSearchCriteria{Query: "kun"})
	assert.ElementsMatch(t, []string{byUsername.ID, byFirstName.ID, byBio.ID}, ids)
}

func TestSearchSkillFilterIsExact(t *testing.T) {
	db := setupTestDB(t)

	web := createTalent(t, db, "webdev1", "Ada", "Lagos", "dev", "Web Development")
	createTalent(t, db, "mobiledev1", "Tunde", "Lagos", "dev", "Mobile Development")

	ids := searchIDs(t, db, ProfileSearchCriteria{Skill: "Web Development"})
	require.Len(t, ids, 1)
	assert.Equal(t, web.ID, ids[0])

	// A partial skill name is not an exact match.
	assert.Empty(t, searchIDs(t, db, ProfileSearchCriteria{Skill: "Web"}))
}

func TestSearchFiltersCombineWithAnd(t *testing.T) {
	db := setupTestDB(t)

	match := createTalent(t, db, "ada_dev", "Ada", "Lagos, Nigeria", "developer", "Web Development")
	createTalent(t, db, "ada_design", "Ada", "Lagos, Nigeria", "designer", "Graphic Design")
	createTalent(t, db, "ada_remote", "Ada", "Nairobi, Kenya", "developer", "Web Development")

	ids := searchIDs(t, db, ProfileSearchCriteria{
		Query:    "ada",
		Location: "lagos",
		Skill:    "Web Development",
	})
	require.Len(t, ids, 1)
	assert.Equal(t, match.ID, ids[0])
}

func TestSearchEmptyCriteriaReturnsEveryone(t *testing.T) {
	db := setupTestDB(t)

	createTalent(t, db, "one", "A", "Lagos", "x")
	createTalent(t, db, "two", "B", "Abuja", "y")

	assert.Len(t, searchIDs(t, db, ProfileSearchCriteria{}), 2)
}

func TestAverageRating(t *testing.T) {
	db := setupTestDB(t)

	talent := createTalent(t, db, "rated", "Ada", "Lagos", "dev")
	author := createTalent(t, db, "author", "Tunde", "Abuja", "client")

	reviewRepo := NewReviewRepository(db)
	for _, rating := range []int{5, 4, 5} {
		require.NoError(t, reviewRepo.Create(&models.Review{
			ProfileID: talent.ID,
			AuthorID:  author.UserID,
			Rating:    rating,
		}))
	}

	avg, err := reviewRepo.AverageRating(talent.ID)
	require.NoError(t, err)
	assert.InDelta(t, 14.0/3.0, avg, 0.0001)

	// A profile with no reviews aggregates to zero.
	avg, err = reviewRepo.AverageRating(author.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestReviewRatingRange(t *testing.T) {
	db := setupTestDB(t)

	talent := createTalent(t, db, "rated2", "Ada", "Lagos", "dev")
	reviewRepo := NewReviewRepository(db)

	err := reviewRepo.Create(&models.Review{ProfileID: talent.ID, AuthorID: talent.UserID, Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidReviewRating)

	err = reviewRepo.Create(&models.Review{ProfileID: talent.ID, AuthorID: talent.UserID, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidReviewRating)
}

func TestMarkAllReadScopedToOwner(t *testing.T) {
	db := setupTestDB(t)

	a := createTalent(t, db, "owner_a", "A", "Lagos", "x")
	b := createTalent(t, db, "owner_b", "B", "Abuja", "y")

	repo := NewNotificationRepository(db)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&models.Notification{UserID: a.UserID, Type: "test", Message: "hello"}))
	}
	require.NoError(t, repo.Create(&models.Notification{UserID: b.UserID, Type: "test", Message: "hello"}))

	affected, err := repo.MarkAllRead(a.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	affected, err = repo.MarkAllRead(a.UserID)
	require.NoError(t, err)
	assert.Zero(t, affected)

	unreadA, err := repo.UnreadCount(a.UserID)
	require.NoError(t, err)
	assert.Zero(t, unreadA)

	unreadB, err := repo.UnreadCount(b.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unreadB)
}

func TestFindFeaturedPrefersVerified(t *testing.T) {
	db := setupTestDB(t)

	verified := createTalent(t, db, "verified1", "A", "Lagos", "x")
	require.NoError(t, NewProfileRepository(db).SetVerified(verified.ID, true))
	createTalent(t, db, "plain1", "B", "Abuja", "y")

	repo := NewProfileRepository(db)
	featured, err := repo.FindFeatured(3)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, verified.ID, featured[0].ID)
}

func TestFindFeaturedFallsBackToUnverified(t *testing.T) {
	db := setupTestDB(t)

	createTalent(t, db, "plain_a", "A", "Lagos", "x")
	createTalent(t, db, "plain_b", "B", "Abuja", "y")

	featured, err := NewProfileRepository(db).FindFeatured(3)
	require.NoError(t, err)
	assert.Len(t, featured, 2)
}

func TestUserUpdateToTakenEmailReturnsAlreadyExists(t *testing.T) {
	db := setupTestDB(t)

	createTalent(t, db, "first_user", "Ada", "Lagos", "dev")
	second := createTalent(t, db, "second_user", "Tunde", "Abuja", "dev")

	repo := NewUserRepository(db)
	user, err := repo.FindByID(second.UserID)
	require.NoError(t, err)

	user.Email = "first_user@example.com"
	err = repo.Update(user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	user.Email = "second_user@example.com"
	user.Username = "first_user"
	err = repo.Update(user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSkillGetOrCreate(t *testing.T) {
	db := setupTestDB(t)

	repo := NewSkillRepository(db)
	first, err := repo.GetOrCreate("Animation")
	require.NoError(t, err)

	second, err := repo.GetOrCreate("Animation")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
