package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/comment"
	fileDomain "fileshare-api/internal/domain/file"
	userDomain "fileshare-api/internal/domain/user"
	fileDB "fileshare-api/internal/infrastructure/db/postgres/file"
	jwtSvc "fileshare-api/internal/infrastructure/jwt"
	commentDTO "fileshare-api/internal/interface/api/rest/dto/comment"
)

type FakeCommentService struct {
	CreateCommentFunc    func(ctx context.Context, fileID fileDomain.ID, userID userDomain.ID, content string) (*domain.Comment, error)
	FindFileCommentsFunc func(ctx context.Context, fileID fileDomain.ID) (domain.CommentsWithAuthor, error)
}

func (f *FakeCommentService) CreateComment(ctx context.Context, fileID fileDomain.ID, userID userDomain.ID, content string) (*domain.Comment, error) {
	if f.CreateCommentFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateCommentFunc(ctx, fileID, userID, content)
}
func (f *FakeCommentService) FindFileComments(ctx context.Context, fileID fileDomain.ID) (domain.CommentsWithAuthor, error) {
	if f.FindFileCommentsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFileCommentsFunc(ctx, fileID)
}

func setupCommentRouter(t *testing.T, cs ports.CommentService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()
	j := jwtSvc.New(testSecret)

	NewCommentController(r, cs, logger, j)

	return r
}

func someCommentWithAuthor() *domain.CommentWithAuthor {
	name := "Jane"
	return &domain.CommentWithAuthor{
		Comment: &domain.Comment{
			ID:        11,
			FileID:    7,
			UserID:    42,
			Content:   "great shot",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Author: &domain.Author{
			ID:   42,
			Name: &name,
		},
	}
}

func TestCommentController_ListCommentsHandler(t *testing.T) {
	tests := []struct {
		name       string
		fileID     string
		mockCS     func() ports.CommentService
		wantStatus int
		wantErr    string
		wantLen    int
	}{
		{
			name:       "400 invalid id",
			fileID:     "-1",
			mockCS:     func() ports.CommentService { return &FakeCommentService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "file_id must be a positive integer id",
		},
		{
			name:   "500 service error",
			fileID: "7",
			mockCS: func() ports.CommentService {
				return &FakeCommentService{
					FindFileCommentsFunc: func(ctx context.Context, fileID fileDomain.ID) (domain.CommentsWithAuthor, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get comments",
		},
		{
			name:   "200 newest first payload",
			fileID: "7",
			mockCS: func() ports.CommentService {
				return &FakeCommentService{
					FindFileCommentsFunc: func(ctx context.Context, fileID fileDomain.ID) (domain.CommentsWithAuthor, error) {
						require.Equal(t, fileDomain.ID(7), fileID)
						return domain.CommentsWithAuthor{someCommentWithAuthor()}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantLen:    1,
		},
		{
			name:   "200 empty list",
			fileID: "7",
			mockCS: func() ports.CommentService {
				return &FakeCommentService{
					FindFileCommentsFunc: func(ctx context.Context, fileID fileDomain.ID) (domain.CommentsWithAuthor, error) {
						return domain.CommentsWithAuthor{}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupCommentRouter(t, tt.mockCS())
			rr := doReq(t, r, http.MethodGet, "/api/v1/files/"+tt.fileID+"/comments", nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}

			var resp commentDTO.ResponseData
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp.Data, tt.wantLen)
		})
	}
}

func TestCommentController_CreateCommentHandler(t *testing.T) {
	tests := []struct {
		name       string
		headers    func(t *testing.T) map[string]string
		body       any
		mockCS     func() ports.CommentService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing auth header",
			headers:    func(t *testing.T) map[string]string { return nil },
			body:       commentDTO.Request{Content: "great shot"},
			mockCS:     func() ports.CommentService { return &FakeCommentService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 empty content",
			headers:    func(t *testing.T) map[string]string { return authHeaders(t, 42) },
			body:       commentDTO.Request{Content: "   "},
			mockCS:     func() ports.CommentService { return &FakeCommentService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "404 unknown file",
			headers: func(t *testing.T) map[string]string { return authHeaders(t, 42) },
			body:    commentDTO.Request{Content: "great shot"},
			mockCS: func() ports.CommentService {
				return &FakeCommentService{
					CreateCommentFunc: func(ctx context.Context, fileID fileDomain.ID, userID userDomain.ID, content string) (*domain.Comment, error) {
						return nil, fileDB.ErrFileNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "file not found",
		},
		{
			name:    "500 service error",
			headers: func(t *testing.T) map[string]string { return authHeaders(t, 42) },
			body:    commentDTO.Request{Content: "great shot"},
			mockCS: func() ports.CommentService {
				return &FakeCommentService{
					CreateCommentFunc: func(ctx context.Context, fileID fileDomain.ID, userID userDomain.ID, content string) (*domain.Comment, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to create a comment",
		},
		{
			name:    "201 created",
			headers: func(t *testing.T) map[string]string { return authHeaders(t, 42) },
			body:    commentDTO.Request{Content: "great shot"},
			mockCS: func() ports.CommentService {
				return &FakeCommentService{
					CreateCommentFunc: func(ctx context.Context, fileID fileDomain.ID, userID userDomain.ID, content string) (*domain.Comment, error) {
						require.Equal(t, fileDomain.ID(7), fileID)
						require.Equal(t, userDomain.ID(42), userID)
						require.Equal(t, "great shot", content)
						return someCommentWithAuthor().Comment, nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupCommentRouter(t, tt.mockCS())
			rr := doReq(t, r, http.MethodPost, "/api/v1/files/7/comments", tt.body, tt.headers(t))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}

			var resp commentDTO.Comment
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, uint64(11), resp.ID)
			assert.Equal(t, "great shot", resp.Content)
		})
	}
}
