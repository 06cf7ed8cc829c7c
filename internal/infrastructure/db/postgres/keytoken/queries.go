package keytoken

const (
	InsertKeyToken = `
		INSERT INTO key_tokens (user_id, token_hash)
		VALUES ($1, $2)
	`
	SelectKeyToken = `
		SELECT user_id, token_hash, created_at
		FROM key_tokens
		WHERE token_hash = $1
	`
	DeleteKeyToken = `
		DELETE FROM key_tokens
		WHERE token_hash = $1
	`
	DeleteKeyTokensByUser = `
		DELETE FROM key_tokens
		WHERE user_id = $1
	`
)
