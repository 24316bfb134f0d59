package services

import (
	"testing"

	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestVoteService(db *gorm.DB) IVoteService {
	return NewVoteService(repositories.NewVoteRepository(db), repositories.NewToolRepository(db))
}

func createTestTool(t *testing.T, db *gorm.DB, owner *models.User, title string, slug string) *models.Tool {
	t.Helper()

	tool := models.Tool{Title: title, Slug: slug, UserID: owner.ID}
	require.NoError(t, db.Create(&tool).Error)
	return &tool
}

func TestVoteService_CreateVote(t *testing.T) {
	db := setupTestDB(t)
	service := newTestVoteService(db)
	owner := createTestUser(t, db, "owner@example.com")
	voter := createTestUser(t, db, "voter@example.com")
	tool := createTestTool(t, db, owner, "Voted Tool", "voted-tool")

	vote, err := service.CreateVote(dto.CreateVoteInput{ToolID: tool.ID}, voter)
	require.NoError(t, err)
	assert.Equal(t, voter.ID, vote.UserID)
	assert.Equal(t, tool.ID, vote.ToolID)
}

func TestVoteService_CreateVote_OncePerUserAndTool(t *testing.T) {
	db := setupTestDB(t)
	service := newTestVoteService(db)
	owner := createTestUser(t, db, "owner@example.com")
	voter := createTestUser(t, db, "voter@example.com")
	other := createTestUser(t, db, "other@example.com")
	tool := createTestTool(t, db, owner, "Popular Tool", "popular-tool")

	_, err := service.CreateVote(dto.CreateVoteInput{ToolID: tool.ID}, voter)
	require.NoError(t, err)

	_, err = service.CreateVote(dto.CreateVoteInput{ToolID: tool.ID}, voter)
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	// A different user may still vote.
	_, err = service.CreateVote(dto.CreateVoteInput{ToolID: tool.ID}, other)
	require.NoError(t, err)
}

func TestVoteService_CreateVote_MissingTool(t *testing.T) {
	db := setupTestDB(t)
	service := newTestVoteService(db)
	voter := createTestUser(t, db, "voter@example.com")

	_, err := service.CreateVote(dto.CreateVoteInput{ToolID: 9999}, voter)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVoteService_DeleteVote(t *testing.T) {
	db := setupTestDB(t)
	service := newTestVoteService(db)
	owner := createTestUser(t, db, "owner@example.com")
	voter := createTestUser(t, db, "voter@example.com")
	tool := createTestTool(t, db, owner, "Voted Tool", "voted-tool")

	vote, err := service.CreateVote(dto.CreateVoteInput{ToolID: tool.ID}, voter)
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeleteVote(vote.ID, owner), ErrNotOwner)

	require.NoError(t, service.DeleteVote(vote.ID, voter))
	_, err = service.GetVoteByID(vote.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The vote is gone, so the user may vote again.
	_, err = service.CreateVote(dto.CreateVoteInput{ToolID: tool.ID}, voter)
	require.NoError(t, err)
}
