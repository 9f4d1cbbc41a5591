package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateFile(ctx context.Context, req *file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.UserID, req.Title, req.Description, req.FileURL, req.FileKey,
		req.FileName, req.FileSize, req.MimeType, string(req.FileType), req.Category,
	).Scan(
		&f.ID,
		&f.UserID,

		&f.Title,
		&f.Description,
		&f.FileURL,
		&f.FileKey,
		&f.FileName,
		&f.FileSize,
		&f.MimeType,
		&f.FileType,
		&f.Category,

		&f.Likes,
		&f.Views,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchAll(ctx context.Context) (file.FilesWithUploader, error) {
	return r.fetchJoined(ctx, SelectAllFiles)
}

func (r *Repository) FetchByType(ctx context.Context, t file.Type) (file.FilesWithUploader, error) {
	return r.fetchJoined(ctx, SelectFilesByType, string(t))
}

func (r *Repository) fetchJoined(ctx context.Context, query string, args ...any) (file.FilesWithUploader, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fus FilesWithUploader
	for rows.Next() {
		fu := &FileWithUploader{File: new(File), Uploader: new(Uploader)}

		if err = rows.Scan(
			&fu.File.ID,
			&fu.File.UserID,

			&fu.File.Title,
			&fu.File.Description,
			&fu.File.FileURL,
			&fu.File.FileKey,
			&fu.File.FileName,
			&fu.File.FileSize,
			&fu.File.MimeType,
			&fu.File.FileType,
			&fu.File.Category,

			&fu.File.Likes,
			&fu.File.Views,

			&fu.File.CreatedAt,
			&fu.File.UpdatedAt,

			&fu.Uploader.ID,
			&fu.Uploader.Name,
			&fu.Uploader.Email,
		); err != nil {
			return nil, err
		}

		fus = append(fus, fu)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModelsWithUploader(&fus), nil
}

func (r *Repository) FetchByID(ctx context.Context, id file.ID) (*file.FileWithUploader, error) {
	fu := &FileWithUploader{File: new(File), Uploader: new(Uploader)}

	err := r.db.QueryRow(ctx, SelectFileByID, id).Scan(
		&fu.File.ID,
		&fu.File.UserID,

		&fu.File.Title,
		&fu.File.Description,
		&fu.File.FileURL,
		&fu.File.FileKey,
		&fu.File.FileName,
		&fu.File.FileSize,
		&fu.File.MimeType,
		&fu.File.FileType,
		&fu.File.Category,

		&fu.File.Likes,
		&fu.File.Views,

		&fu.File.CreatedAt,
		&fu.File.UpdatedAt,

		&fu.Uploader.ID,
		&fu.Uploader.Name,
		&fu.Uploader.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModelWithUploader(fu), err
}

func (r *Repository) FetchUserFiles(ctx context.Context, userID user.ID) (file.Files, error) {
	rows, err := r.db.Query(ctx, SelectUserFiles, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.UserID,

			&f.Title,
			&f.Description,
			&f.FileURL,
			&f.FileKey,
			&f.FileName,
			&f.FileSize,
			&f.MimeType,
			&f.FileType,
			&f.Category,

			&f.Likes,
			&f.Views,

			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

// DeleteFile removes the file row together with its comments and likes in
// one transaction. The owner check runs first so callers can tell a missing
// file from a file that belongs to someone else.
func (r *Repository) DeleteFile(ctx context.Context, id file.ID, userID user.ID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var ownerID uint64
	if err = tx.QueryRow(ctx, SelectFileOwner, id).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrFileNotFound
		}
		return err
	}
	if ownerID != uint64(userID) {
		return ErrNotOwner
	}

	if _, err = tx.Exec(ctx, DeleteFileComments, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, DeleteFileLikes, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, DeleteFileByID, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ToggleLike flips the like state for the (file, user) pair. The insert is
// guarded by the unique constraint on (file_id, user_id); whichever branch
// runs, the counter delta is taken from the rows the statement reported, so
// concurrent toggles can never drift files.likes away from the relation.
func (r *Repository) ToggleLike(ctx context.Context, id file.ID, userID user.ID) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	ins, err := tx.Exec(ctx, InsertFileLike, id, userID)
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return false, ErrFileNotFound
		}
		return false, err
	}

	liked := ins.RowsAffected() == 1
	if liked {
		if _, err = tx.Exec(ctx, AdjustFileLikes, id, int64(1)); err != nil {
			return false, err
		}
	} else {
		del, derr := tx.Exec(ctx, DeleteFileLike, id, userID)
		if derr != nil {
			return false, derr
		}
		if n := del.RowsAffected(); n > 0 {
			if _, err = tx.Exec(ctx, AdjustFileLikes, id, -n); err != nil {
				return false, err
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return false, err
	}

	return liked, nil
}

func (r *Repository) CheckUserLiked(ctx context.Context, id file.ID, userID user.ID) (bool, error) {
	var liked bool
	if err := r.db.QueryRow(ctx, SelectUserLiked, id, userID).Scan(&liked); err != nil {
		return false, err
	}

	return liked, nil
}

func (r *Repository) IncrementViews(ctx context.Context, id file.ID) error {
	_, err := r.db.Exec(ctx, IncrementFileViews, id)
	return err
}
