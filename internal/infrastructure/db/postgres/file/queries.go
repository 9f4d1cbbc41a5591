package file

const (
	InsertFile = `
		INSERT INTO files (user_id, title, description, file_url, file_key, file_name, file_size, mime_type, file_type, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING
		  id, user_id, title, description, file_url, file_key, file_name, file_size, mime_type, file_type, category, likes, views, created_at, updated_at
	`
	SelectAllFiles = `
		SELECT f.id, f.user_id, f.title, f.description, f.file_url, f.file_key, f.file_name, f.file_size, f.mime_type, f.file_type, f.category, f.likes, f.views, f.created_at, f.updated_at,
		       u.id, u.name, u.email
		FROM files f
		LEFT JOIN users u ON u.id = f.user_id
		ORDER BY f.created_at DESC, f.id DESC
	`
	SelectFilesByType = `
		SELECT f.id, f.user_id, f.title, f.description, f.file_url, f.file_key, f.file_name, f.file_size, f.mime_type, f.file_type, f.category, f.likes, f.views, f.created_at, f.updated_at,
		       u.id, u.name, u.email
		FROM files f
		LEFT JOIN users u ON u.id = f.user_id
		WHERE f.file_type = $1
		ORDER BY f.created_at DESC, f.id DESC
	`
	SelectFileByID = `
		SELECT f.id, f.user_id, f.title, f.description, f.file_url, f.file_key, f.file_name, f.file_size, f.mime_type, f.file_type, f.category, f.likes, f.views, f.created_at, f.updated_at,
		       u.id, u.name, u.email
		FROM files f
		LEFT JOIN users u ON u.id = f.user_id
		WHERE f.id = $1
	`
	SelectUserFiles = `
		SELECT id, user_id, title, description, file_url, file_key, file_name, file_size, mime_type, file_type, category, likes, views, created_at, updated_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	SelectFileOwner = `SELECT user_id FROM files WHERE id = $1`

	DeleteFileComments = `DELETE FROM comments WHERE file_id = $1`
	DeleteFileLikes    = `DELETE FROM file_likes WHERE file_id = $1`
	DeleteFileByID     = `DELETE FROM files WHERE id = $1`

	// The like toggle never reads before it writes: the insert's conflict
	// clause decides the branch and the counter delta comes from the
	// rows each statement actually touched.
	InsertFileLike  = `INSERT INTO file_likes (file_id, user_id) VALUES ($1, $2) ON CONFLICT (file_id, user_id) DO NOTHING`
	DeleteFileLike  = `DELETE FROM file_likes WHERE file_id = $1 AND user_id = $2`
	AdjustFileLikes = `UPDATE files SET likes = likes + $2, updated_at = now() WHERE id = $1`

	SelectUserLiked = `SELECT EXISTS (SELECT 1 FROM file_likes WHERE file_id = $1 AND user_id = $2)`

	IncrementFileViews = `UPDATE files SET views = views + 1 WHERE id = $1`
)
