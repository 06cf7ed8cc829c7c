package user

const (
	SelectUsers = `
		SELECT id, uuid, email, password_hash, role, created_at, updated_at, deleted_at
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY id
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectUserByID = `
		SELECT id, uuid, email, password_hash, role, created_at, updated_at, deleted_at
		FROM users
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	SelectUserByEmail = `
		SELECT id, uuid, email, password_hash, role, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING
		  id, uuid, email, password_hash, role, created_at, updated_at, deleted_at
	`
	UpdateUserRoleByUUID = `
		UPDATE users
		SET role = $2, updated_at = now()
		WHERE uuid = $1 AND deleted_at IS NULL
		RETURNING
		  id, uuid, email, password_hash, role, created_at, updated_at, deleted_at
	`
	SoftDeleteUserByUUID = `
		UPDATE users
		SET deleted_at = now()
		WHERE uuid = $1 AND deleted_at IS NULL
		RETURNING
		  id, uuid, email, password_hash, role, created_at, updated_at, deleted_at
	`
)
