package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/mq"
	fileDTO "fileshare-api/internal/interface/api/rest/dto/file"
)

const maxBaseNameLen = 100

var windowsReserved = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {}, "com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {}, "lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

type FileService struct {
	s3             ports.S3Client
	fileRepository domain.Repository
	logger         *zap.Logger
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	s3 ports.S3Client,
	fileRepository domain.Repository,
	logger *zap.Logger,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		s3:             s3,
		fileRepository: fileRepository,
		logger:         logger,
		mq:             rbMQ,
		mCounter:       mCounter,
	}
}

// Read paths degrade instead of failing: a broken store must not take the
// gallery down, so listing errors are logged and surface as empty results.
func (fs *FileService) FindFiles(ctx context.Context, t domain.Type) (domain.FilesWithUploader, error) {
	var (
		fls domain.FilesWithUploader
		err error
	)
	if t == "" {
		fls, err = fs.fileRepository.FetchAll(ctx)
	} else {
		fls, err = fs.fileRepository.FetchByType(ctx, t)
	}
	if err != nil {
		fs.logger.Warn("file listing degraded to empty", zap.Error(err))
		return domain.FilesWithUploader{}, nil
	}

	return fls, nil
}

func (fs *FileService) FindFileByID(ctx context.Context, id domain.ID) (*domain.FileWithUploader, error) {
	fu, err := fs.fileRepository.FetchByID(ctx, id)
	if err != nil {
		fs.logger.Warn("file detail degraded to not found", zap.Uint64("file_id", uint64(id)), zap.Error(err))
		return nil, nil
	}
	if fu == nil {
		return nil, nil
	}

	// Every detail fetch counts, repeat viewers included.
	if err = fs.fileRepository.IncrementViews(ctx, id); err != nil {
		fs.logger.Warn("view increment failed", zap.Uint64("file_id", uint64(id)), zap.Error(err))
	} else {
		fs.mCounter.WithLabelValues("file_views_total").Inc()
	}

	return fu, nil
}

func (fs *FileService) FindUserFiles(ctx context.Context, userID user.ID) (domain.Files, error) {
	fls, err := fs.fileRepository.FetchUserFiles(ctx, userID)
	if err != nil {
		fs.logger.Warn("user file listing degraded to empty", zap.Uint64("user_id", uint64(userID)), zap.Error(err))
		return domain.Files{}, nil
	}

	return fls, nil
}

func (fs *FileService) CreateFile(ctx context.Context, userID user.ID, in ports.FileCreateInput) (*domain.File, error) {
	f := &domain.File{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		FileURL:     in.FileURL,
		FileKey:     in.FileKey,
		FileName:    sanitizeFileName(in.FileName),
		FileSize:    in.FileSize,
		MimeType:    in.MimeType,
		FileType:    in.FileType,
		Category:    in.Category,
	}

	out, err := fs.fileRepository.CreateFile(ctx, f)
	if err != nil {
		return nil, err
	}

	fs.publish(mq.ActionFileUploaded, out.ID, userID, fileDTO.ToResponseFile(out))
	fs.mCounter.WithLabelValues("files_created_total").Inc()

	return out, nil
}

// GenerateUploadKey builds the storage key a client uploads under:
// "{userId}/files/{fileName}-{randomSuffix}".
func (fs *FileService) GenerateUploadKey(userID user.ID, fileName string) string {
	return fmt.Sprintf("%d/files/%s-%s", userID, sanitizeFileName(fileName), randomSuffix())
}

func (fs *FileService) UploadDirect(ctx context.Context, userID user.ID, in ports.DirectUploadInput) (*domain.File, error) {
	safeName := sanitizeFileName(in.FileName)
	key := fmt.Sprintf("%d/files/%s-%s", userID, safeName, randomSuffix())

	if err := fs.s3.PutObject(ctx, key, in.Data, in.MimeType); err != nil {
		return nil, err
	}

	out, err := fs.fileRepository.CreateFile(ctx, &domain.File{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		FileURL:     fs.s3.GetPublicURL(key),
		FileKey:     key,
		FileName:    safeName,
		FileSize:    uint64(len(in.Data)),
		MimeType:    in.MimeType,
		FileType:    in.FileType,
		Category:    in.Category,
	})
	if err != nil {
		return nil, err
	}

	fs.publish(mq.ActionFileUploaded, out.ID, userID, fileDTO.ToResponseFile(out))
	fs.mCounter.WithLabelValues("files_created_total").Inc()

	return out, nil
}

func (fs *FileService) DeleteFile(ctx context.Context, id domain.ID, userID user.ID) error {
	if err := fs.fileRepository.DeleteFile(ctx, id, userID); err != nil {
		return err
	}

	fs.publish(mq.ActionFileDeleted, id, userID, nil)
	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

func (fs *FileService) ToggleLike(ctx context.Context, id domain.ID, userID user.ID) (bool, error) {
	liked, err := fs.fileRepository.ToggleLike(ctx, id, userID)
	if err != nil {
		return false, err
	}

	action := mq.ActionFileUnliked
	if liked {
		action = mq.ActionFileLiked
	}
	fs.publish(action, id, userID, nil)
	fs.mCounter.WithLabelValues("likes_toggled_total").Inc()

	return liked, nil
}

func (fs *FileService) CheckUserLiked(ctx context.Context, id domain.ID, userID user.ID) bool {
	liked, err := fs.fileRepository.CheckUserLiked(ctx, id, userID)
	if err != nil {
		fs.logger.Warn("like check degraded to false", zap.Uint64("file_id", uint64(id)), zap.Error(err))
		return false
	}

	return liked
}

func (fs *FileService) publish(action string, fileID domain.ID, userID user.ID, payload any) {
	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		UserID:  uint64(userID),
		FileID:  uint64(fileID),
		Payload: payload,
	}
}

func randomSuffix() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// sanitizeFileName make file name ASCII standard
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)

	//  [a-z0-9], '-' и '_', dot/space → '-'
	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		case r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}
	if _, bad := windowsReserved[base]; bad {
		base = "_" + base
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
