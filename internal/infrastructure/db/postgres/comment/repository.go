package comment

import (
	"context"

	"fileshare-api/internal/domain/comment"
	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/infrastructure/db/postgres"
	fileDB "fileshare-api/internal/infrastructure/db/postgres/file"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) comment.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateComment(ctx context.Context, req *comment.Comment) (*comment.Comment, error) {
	c := new(Comment)

	err := r.db.QueryRow(
		ctx,
		InsertComment,
		req.FileID, req.UserID, req.Content,
	).Scan(
		&c.ID,
		&c.FileID,
		&c.UserID,
		&c.Content,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, fileDB.ErrFileNotFound
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) FetchFileComments(ctx context.Context, fileID file.ID) (comment.CommentsWithAuthor, error) {
	rows, err := r.db.Query(ctx, SelectFileComments, fileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cas CommentsWithAuthor
	for rows.Next() {
		ca := &CommentWithAuthor{Comment: new(Comment), Author: new(Author)}

		if err = rows.Scan(
			&ca.Comment.ID,
			&ca.Comment.FileID,
			&ca.Comment.UserID,
			&ca.Comment.Content,

			&ca.Comment.CreatedAt,
			&ca.Comment.UpdatedAt,

			&ca.Author.ID,
			&ca.Author.Name,
		); err != nil {
			return nil, err
		}

		cas = append(cas, ca)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModelsWithAuthor(&cas), nil
}
