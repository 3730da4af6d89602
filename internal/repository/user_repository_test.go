package repository

import (
	"context"
	"testing"

	"github.com/ncgames/boardgame-reviews-backend/tests/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite is the test suite for UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo UserRepository
}

func (s *UserRepositoryTestSuite) SetupSuite() {
	s.db = openTestDB(s.T())
	s.repo = NewUserRepository(s.db)
}

func (s *UserRepositoryTestSuite) TearDownSuite() {
	closeTestDB(s.db)
}

func (s *UserRepositoryTestSuite) SetupTest() {
	require.NoError(s.T(), fixtures.Truncate(s.db))
	require.NoError(s.T(), fixtures.Seed(s.db))
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestList_ReturnsAllUsers() {
	// Act
	users, err := s.repo.List(context.Background())

	// Assert
	require.NoError(s.T(), err)
	assert.Len(s.T(), users, 4)
	for _, user := range users {
		assert.NotEmpty(s.T(), user.Username)
		assert.NotEmpty(s.T(), user.Name)
		assert.NotEmpty(s.T(), user.AvatarURL)
	}
}

func (s *UserRepositoryTestSuite) TestGetByUsername_Found() {
	// Act
	user, err := s.repo.GetByUsername(context.Background(), "mallionaire")

	// Assert
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "mallionaire", user.Username)
	assert.Equal(s.T(), "haz", user.Name)
}

func (s *UserRepositoryTestSuite) TestGetByUsername_NotFound() {
	// Act
	user, err := s.repo.GetByUsername(context.Background(), "not-a-user")

	// Assert
	assert.Nil(s.T(), user)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}
