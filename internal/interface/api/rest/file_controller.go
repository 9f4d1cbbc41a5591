package rest

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	fileDB "fileshare-api/internal/infrastructure/db/postgres/file"
	"fileshare-api/internal/infrastructure/jwt"
	fileDTO "fileshare-api/internal/interface/api/rest/dto/file"
	"fileshare-api/internal/interface/api/rest/middleware"
	"fileshare-api/internal/interface/api/rest/validator"
)

// 10MB
const maxUploadSize = 10 << 20

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.GET(RouteFiles, fc.ListFilesHandler)
	r.GET(RouteFile, fc.GetFileHandler)
	r.GET(RouteMyFiles, auth, fc.MyFilesHandler)
	r.POST(RouteFiles, auth, fc.CreateFileHandler)
	r.POST(RouteUploadURL, auth, fc.UploadURLHandler)
	r.POST(RouteUploadDirect, auth, fc.UploadDirectHandler)
	r.DELETE(RouteFile, auth, fc.DeleteFileHandler)
	r.POST(RouteFileLike, auth, fc.ToggleLikeHandler)
	r.GET(RouteFileLike, auth, fc.CheckLikedHandler)

	return fc
}

func (fc *FileController) ListFilesHandler(c *gin.Context) {
	t, err := validator.ValidateListType(c.Query("type"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	files, err := fc.fileService.FindFiles(c.Request.Context(), t)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, fileDTO.ResponseData{
		Data: fileDTO.ToResponseFilesWithUploader(files),
	})
}

func (fc *FileController) GetFileHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("file_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id " + err.Error()},
		)
		return
	}

	fu, err := fc.fileService.FindFileByID(c.Request.Context(), file.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a file"},
		)
		fc.logger.Error("FindFileByID() error", zap.Error(err))
		return
	}
	if fu == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "file not found"},
		)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFileWithUploader(fu))
}

func (fc *FileController) MyFilesHandler(c *gin.Context) {
	userID := c.GetUint64(middleware.CtxUserID)

	files, err := fc.fileService.FindUserFiles(c.Request.Context(), user.ID(userID))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindUserFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, fileDTO.ResponseData{
		Data: fileDTO.ToResponseFiles(files),
	})
}

func (fc *FileController) CreateFileHandler(c *gin.Context) {
	userID := c.GetUint64(middleware.CtxUserID)

	var req fileDTO.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCreateFile(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	f, err := fc.fileService.CreateFile(c.Request.Context(), user.ID(userID), ports.FileCreateInput{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		FileKey:     req.FileKey,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		MimeType:    req.MimeType,
		FileType:    file.Type(req.FileType),
		Category:    req.Category,
	})
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a file"},
		)
		fc.logger.Error("CreateFile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, fileDTO.ToResponseFile(f))
}

func (fc *FileController) UploadURLHandler(c *gin.Context) {
	userID := c.GetUint64(middleware.CtxUserID)

	var req fileDTO.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUploadURL(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	key := fc.fileService.GenerateUploadKey(user.ID(userID), req.FileName)

	c.JSON(http.StatusOK, gin.H{"file_key": key})
}

func (fc *FileController) UploadDirectHandler(c *gin.Context) {
	userID := c.GetUint64(middleware.CtxUserID)

	var req fileDTO.UploadDirectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUploadDirect(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_data must be valid base64"})
		return
	}
	if len(data) == 0 || len(data) > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	f, err := fc.fileService.UploadDirect(c.Request.Context(), user.ID(userID), ports.DirectUploadInput{
		FileName:    req.FileName,
		Data:        data,
		MimeType:    req.MimeType,
		Title:       req.Title,
		Description: req.Description,
		FileType:    file.Type(req.FileType),
		Category:    req.Category,
	})
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to upload a file"},
		)
		fc.logger.Error("UploadDirect() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"url":     f.FileURL,
		"file":    fileDTO.ToResponseFile(f),
	})
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	userID := c.GetUint64(middleware.CtxUserID)

	id, err := validator.ParseID(c.Param("file_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id " + err.Error()},
		)
		return
	}

	err = fc.fileService.DeleteFile(c.Request.Context(), file.ID(id), user.ID(userID))
	if err != nil {
		if errors.Is(err, fileDB.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		if errors.Is(err, fileDB.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a file"},
		)
		fc.logger.Error("DeleteFile() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func (fc *FileController) ToggleLikeHandler(c *gin.Context) {
	userID := c.GetUint64(middleware.CtxUserID)

	id, err := validator.ParseID(c.Param("file_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id " + err.Error()},
		)
		return
	}

	liked, err := fc.fileService.ToggleLike(c.Request.Context(), file.ID(id), user.ID(userID))
	if err != nil {
		if errors.Is(err, fileDB.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to toggle like"},
		)
		fc.logger.Error("ToggleLike() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (fc *FileController) CheckLikedHandler(c *gin.Context) {
	userID := c.GetUint64(middleware.CtxUserID)

	id, err := validator.ParseID(c.Param("file_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id " + err.Error()},
		)
		return
	}

	liked := fc.fileService.CheckUserLiked(c.Request.Context(), file.ID(id), user.ID(userID))

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
