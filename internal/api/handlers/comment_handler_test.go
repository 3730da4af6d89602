package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ncgames/boardgame-reviews-backend/internal/api/response"
	"github.com/ncgames/boardgame-reviews-backend/internal/models"
	"github.com/ncgames/boardgame-reviews-backend/internal/repository"
	"github.com/ncgames/boardgame-reviews-backend/tests/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// CommentHandlerTestSuite is the test suite for CommentHandler
type CommentHandlerTestSuite struct {
	suite.Suite
	echo            *echo.Echo
	handler         *CommentHandler
	mockCommentRepo *mocks.MockCommentRepository
	mockReviewRepo  *mocks.MockReviewRepository
	mockUserRepo    *mocks.MockUserRepository
}

// SetupTest runs before each test
func (s *CommentHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.mockCommentRepo = new(mocks.MockCommentRepository)
	s.mockReviewRepo = new(mocks.MockReviewRepository)
	s.mockUserRepo = new(mocks.MockUserRepository)
	s.handler = NewCommentHandler(s.mockCommentRepo, s.mockReviewRepo, s.mockUserRepo)
}

// TearDownTest runs after each test
func (s *CommentHandlerTestSuite) TearDownTest() {
	s.mockCommentRepo.AssertExpectations(s.T())
	s.mockReviewRepo.AssertExpectations(s.T())
	s.mockUserRepo.AssertExpectations(s.T())
}

// TestCommentHandlerTestSuite runs the test suite
func TestCommentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}

// Helper function to create a test context
func (s *CommentHandlerTestSuite) createContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

// Helper function to create a test comment
func (s *CommentHandlerTestSuite) createTestComment(id, reviewID int, author, body string) models.Comment {
	return models.Comment{
		CommentID: id,
		ReviewID:  reviewID,
		Author:    author,
		Body:      body,
		Votes:     0,
		CreatedAt: time.Now(),
	}
}

func (s *CommentHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) response.ErrorResponse {
	var resp response.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// ==================== ListByReview Tests ====================

// TestListByReview_Success tests listing comments for an existing review
func (s *CommentHandlerTestSuite) TestListByReview_Success() {
	// Arrange
	comments := []models.Comment{
		s.createTestComment(3, 2, "philippaclaire9", "I didn't know dogs could play games"),
		s.createTestComment(1, 2, "bainesface", "I loved this game too!"),
	}
	c, rec := s.createContext(http.MethodGet, "/api/reviews/2/comments", "")
	c.SetParamNames("review_id")
	c.SetParamValues("2")

	s.mockReviewRepo.On("Exists", mock.Anything, 2).Return(true, nil)
	s.mockCommentRepo.On("ListByReview", mock.Anything, 2).Return(comments, nil)

	// Act
	err := s.handler.ListByReview(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Comments []models.Comment `json:"comments"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Comments, 2)
	for _, comment := range resp.Comments {
		s.Equal(2, comment.ReviewID)
	}
}

// TestListByReview_NoComments tests that a commentless review yields an
// empty list, not an error
func (s *CommentHandlerTestSuite) TestListByReview_NoComments() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/reviews/1/comments", "")
	c.SetParamNames("review_id")
	c.SetParamValues("1")

	s.mockReviewRepo.On("Exists", mock.Anything, 1).Return(true, nil)
	s.mockCommentRepo.On("ListByReview", mock.Anything, 1).Return([]models.Comment{}, nil)

	// Act
	err := s.handler.ListByReview(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"comments": []}`, rec.Body.String())
}

// TestListByReview_InvalidID tests a non-numeric review ID
func (s *CommentHandlerTestSuite) TestListByReview_InvalidID() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/reviews/notID/comments", "")
	c.SetParamNames("review_id")
	c.SetParamValues("notID")

	// Act
	err := s.handler.ListByReview(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid input", s.decodeError(rec).Msg)
}

// TestListByReview_NonExistentID tests a well-formed but missing review ID
func (s *CommentHandlerTestSuite) TestListByReview_NonExistentID() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/reviews/99999/comments", "")
	c.SetParamNames("review_id")
	c.SetParamValues("99999")

	s.mockReviewRepo.On("Exists", mock.Anything, 99999).Return(false, nil)

	// Act
	err := s.handler.ListByReview(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ID 99999 does not exist", s.decodeError(rec).Msg)
}

// ==================== Create Tests ====================

// TestCreate_ValidInput tests creating a comment with valid input
func (s *CommentHandlerTestSuite) TestCreate_ValidInput() {
	// Arrange
	body := `{"username": "mallionaire", "body": "some text"}`
	c, rec := s.createContext(http.MethodPost, "/api/reviews/4/comments", body)
	c.SetParamNames("review_id")
	c.SetParamValues("4")

	s.mockReviewRepo.On("Exists", mock.Anything, 4).Return(true, nil)
	s.mockUserRepo.On("GetByUsername", mock.Anything, "mallionaire").
		Return(&models.User{Username: "mallionaire", Name: "haz"}, nil)
	s.mockCommentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).
		Run(func(args mock.Arguments) {
			comment := args.Get(1).(*models.Comment)
			comment.CommentID = 7
			comment.CreatedAt = time.Now()
		}).
		Return(nil)

	// Act
	err := s.handler.Create(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp struct {
		Comment models.Comment `json:"comment"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(7, resp.Comment.CommentID)
	s.Equal(4, resp.Comment.ReviewID)
	s.Equal("mallionaire", resp.Comment.Author)
	s.Equal("some text", resp.Comment.Body)
	s.Equal(0, resp.Comment.Votes)
}

// TestCreate_InvalidID tests that a non-numeric ID reports before the body
func (s *CommentHandlerTestSuite) TestCreate_InvalidID() {
	// Arrange: body is also incomplete; the id error must win
	c, rec := s.createContext(http.MethodPost, "/api/reviews/notID/comments", `{}`)
	c.SetParamNames("review_id")
	c.SetParamValues("notID")

	// Act
	err := s.handler.Create(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid input", s.decodeError(rec).Msg)
}

// TestCreate_NonExistentID tests that a missing review reports before the body
func (s *CommentHandlerTestSuite) TestCreate_NonExistentID() {
	// Arrange: body is also incomplete; the 404 must win
	c, rec := s.createContext(http.MethodPost, "/api/reviews/99999/comments", `{}`)
	c.SetParamNames("review_id")
	c.SetParamValues("99999")

	s.mockReviewRepo.On("Exists", mock.Anything, 99999).Return(false, nil)

	// Act
	err := s.handler.Create(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ID 99999 does not exist", s.decodeError(rec).Msg)
}

// TestCreate_MissingUsername tests a body with an empty username
func (s *CommentHandlerTestSuite) TestCreate_MissingUsername() {
	// Arrange
	body := `{"username": "", "body": "some text"}`
	c, rec := s.createContext(http.MethodPost, "/api/reviews/4/comments", body)
	c.SetParamNames("review_id")
	c.SetParamValues("4")

	s.mockReviewRepo.On("Exists", mock.Anything, 4).Return(true, nil)

	// Act
	err := s.handler.Create(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Missing input", s.decodeError(rec).Msg)
}

// TestCreate_MissingBody tests a body without comment text
func (s *CommentHandlerTestSuite) TestCreate_MissingBody() {
	// Arrange
	body := `{"username": "mallionaire"}`
	c, rec := s.createContext(http.MethodPost, "/api/reviews/4/comments", body)
	c.SetParamNames("review_id")
	c.SetParamValues("4")

	s.mockReviewRepo.On("Exists", mock.Anything, 4).Return(true, nil)

	// Act
	err := s.handler.Create(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Missing input", s.decodeError(rec).Msg)
}

// TestCreate_UnknownUser tests a username that resolves to no user
func (s *CommentHandlerTestSuite) TestCreate_UnknownUser() {
	// Arrange
	body := `{"username": "not-a-user", "body": "some text"}`
	c, rec := s.createContext(http.MethodPost, "/api/reviews/4/comments", body)
	c.SetParamNames("review_id")
	c.SetParamValues("4")

	s.mockReviewRepo.On("Exists", mock.Anything, 4).Return(true, nil)
	s.mockUserRepo.On("GetByUsername", mock.Anything, "not-a-user").Return(nil, repository.ErrNotFound)

	// Act
	err := s.handler.Create(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Username not-a-user does not exist", s.decodeError(rec).Msg)
}

// TestCreate_InternalError tests a store failure surfacing as 5xx
func (s *CommentHandlerTestSuite) TestCreate_InternalError() {
	// Arrange
	body := `{"username": "mallionaire", "body": "some text"}`
	c, rec := s.createContext(http.MethodPost, "/api/reviews/4/comments", body)
	c.SetParamNames("review_id")
	c.SetParamValues("4")

	s.mockReviewRepo.On("Exists", mock.Anything, 4).Return(true, nil)
	s.mockUserRepo.On("GetByUsername", mock.Anything, "mallionaire").
		Return(&models.User{Username: "mallionaire"}, nil)
	s.mockCommentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).
		Return(errors.New("database error"))

	// Act
	err := s.handler.Create(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
}
