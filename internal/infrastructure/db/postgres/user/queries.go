package user

// The upsert is a single statement on purpose: it is called on every
// successful portal login and must stay idempotent. Role resolution order
// is explicit role > owner promotion > existing value (insert: 'user').
const (
	UpsertUserByOpenID = `
		INSERT INTO users (open_id, name, email, login_method, role, last_signed_in)
		VALUES ($1, $2, $3, $4, COALESCE($5, CASE WHEN $1 = $6 THEN 'admin' END, 'user'), now())
		ON CONFLICT (open_id) DO UPDATE SET
		    name = COALESCE(EXCLUDED.name, users.name),
		    email = COALESCE(EXCLUDED.email, users.email),
		    login_method = COALESCE(EXCLUDED.login_method, users.login_method),
		    role = COALESCE($5, CASE WHEN $1 = $6 THEN 'admin' END, users.role),
		    last_signed_in = now(),
		    updated_at = now()
		RETURNING
		  id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in
	`
	SelectUserByOpenID = `
		SELECT id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in
		FROM users
		WHERE open_id = $1
	`
	SelectUserByID = `
		SELECT id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in
		FROM users
		WHERE id = $1
	`
)
