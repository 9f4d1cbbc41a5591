package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/comment"
	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/mq"
	commentDTO "fileshare-api/internal/interface/api/rest/dto/comment"
)

type CommentService struct {
	commentRepository domain.Repository
	logger            *zap.Logger
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewCommentService(
	commentRepository domain.Repository,
	logger *zap.Logger,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.CommentService {
	return &CommentService{
		commentRepository: commentRepository,
		logger:            logger,
		mq:                rbMQ,
		mCounter:          mCounter,
	}
}

func (cs *CommentService) CreateComment(ctx context.Context, fileID file.ID, userID user.ID, content string) (*domain.Comment, error) {
	out, err := cs.commentRepository.CreateComment(ctx, &domain.Comment{
		FileID:  fileID,
		UserID:  userID,
		Content: content,
	})
	if err != nil {
		return nil, err
	}

	cs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionCommentCreated,
		UserID:  uint64(userID),
		FileID:  uint64(fileID),
		Payload: commentDTO.ToResponseComment(out),
	}

	cs.mCounter.WithLabelValues("comments_created_total").Inc()

	return out, nil
}

func (cs *CommentService) FindFileComments(ctx context.Context, fileID file.ID) (domain.CommentsWithAuthor, error) {
	cmts, err := cs.commentRepository.FetchFileComments(ctx, fileID)
	if err != nil {
		cs.logger.Warn("comment listing degraded to empty", zap.Uint64("file_id", uint64(fileID)), zap.Error(err))
		return domain.CommentsWithAuthor{}, nil
	}

	return cmts, nil
}
