package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	fileDB "fileshare-api/internal/infrastructure/db/postgres/file"
	"fileshare-api/internal/infrastructure/jwt"
	commentDTO "fileshare-api/internal/interface/api/rest/dto/comment"
	"fileshare-api/internal/interface/api/rest/middleware"
	"fileshare-api/internal/interface/api/rest/validator"
)

type CommentController struct {
	commentService ports.CommentService
	logger         *zap.Logger
}

func NewCommentController(
	r *gin.Engine,
	commentService ports.CommentService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *CommentController {
	cc := &CommentController{
		commentService: commentService,
		logger:         logger,
	}

	r.GET(RouteFileComments, cc.ListCommentsHandler)
	r.POST(RouteFileComments, middleware.AuthMiddleware(jwtService), cc.CreateCommentHandler)

	return cc
}

func (cc *CommentController) ListCommentsHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("file_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id " + err.Error()},
		)
		return
	}

	comments, err := cc.commentService.FindFileComments(c.Request.Context(), file.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get comments"},
		)
		cc.logger.Error("FindFileComments() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, commentDTO.ResponseData{
		Data: commentDTO.ToResponseCommentsWithAuthor(comments),
	})
}

func (cc *CommentController) CreateCommentHandler(c *gin.Context) {
	userID := c.GetUint64(middleware.CtxUserID)

	id, err := validator.ParseID(c.Param("file_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id " + err.Error()},
		)
		return
	}

	var req commentDTO.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateComment(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cm, err := cc.commentService.CreateComment(c.Request.Context(), file.ID(id), user.ID(userID), req.Content)
	if err != nil {
		if errors.Is(err, fileDB.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a comment"},
		)
		cc.logger.Error("CreateComment() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, commentDTO.ToResponseComment(cm))
}
