package blacklist

const (
	// Double logout re-inserts the same tokens; ON CONFLICT keeps that a
	// no-op instead of a constraint failure.
	InsertToken = `
		INSERT INTO black_list_tokens (token)
		VALUES ($1)
		ON CONFLICT (token) DO NOTHING
	`
	SelectTokenExists = `
		SELECT EXISTS (
			SELECT 1 FROM black_list_tokens WHERE token = $1
		)
	`
)
