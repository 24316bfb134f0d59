package services

import (
	"testing"

	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestCommentService(db *gorm.DB) ICommentService {
	return NewCommentService(repositories.NewCommentRepository(db), repositories.NewToolRepository(db))
}

func TestCommentService_CreateAndListByTool(t *testing.T) {
	db := setupTestDB(t)
	service := newTestCommentService(db)
	owner := createTestUser(t, db, "owner@example.com")
	commenter := createTestUser(t, db, "commenter@example.com")
	tool := createTestTool(t, db, owner, "Discussed Tool", "discussed-tool")

	created, err := service.CreateComment(tool.ID, dto.CreateCommentInput{Text: "Works great in remote teams."}, commenter)
	require.NoError(t, err)
	assert.Equal(t, commenter.ID, created.UserID)
	assert.Equal(t, tool.ID, created.ToolID)

	comments, count, err := service.GetCommentsByTool(tool.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, comments, 1)
	assert.Equal(t, "Works great in remote teams.", comments[0].Text)
}

func TestCommentService_CreateComment_MissingTool(t *testing.T) {
	db := setupTestDB(t)
	service := newTestCommentService(db)
	commenter := createTestUser(t, db, "commenter@example.com")

	_, err := service.CreateComment(9999, dto.CreateCommentInput{Text: "Lost comment"}, commenter)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCommentService_UpdateComment_OwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	service := newTestCommentService(db)
	owner := createTestUser(t, db, "owner@example.com")
	commenter := createTestUser(t, db, "commenter@example.com")
	tool := createTestTool(t, db, owner, "Discussed Tool", "discussed-tool")

	created, err := service.CreateComment(tool.ID, dto.CreateCommentInput{Text: "First draft"}, commenter)
	require.NoError(t, err)

	_, err = service.UpdateComment(created.ID, dto.UpdateCommentInput{Text: "Hijacked"}, owner)
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := service.UpdateComment(created.ID, dto.UpdateCommentInput{Text: "Second draft"}, commenter)
	require.NoError(t, err)
	assert.Equal(t, "Second draft", updated.Text)
}

func TestCommentService_DeleteComment_OwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	service := newTestCommentService(db)
	owner := createTestUser(t, db, "owner@example.com")
	commenter := createTestUser(t, db, "commenter@example.com")
	tool := createTestTool(t, db, owner, "Discussed Tool", "discussed-tool")

	created, err := service.CreateComment(tool.ID, dto.CreateCommentInput{Text: "Temporary"}, commenter)
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeleteComment(created.ID, owner), ErrNotOwner)
	require.NoError(t, service.DeleteComment(created.ID, commenter))

	_, err = service.GetCommentByID(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
