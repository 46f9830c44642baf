package store

const (
	createUser = `INSERT INTO users (email, password_hash, name)
    VALUES (?, ?, ?)
    RETURNING user_id, email, name, password_hash, created_at, updated_at;`

	findUserByID = `SELECT user_id, email, name, password_hash, created_at, updated_at
    FROM users
    WHERE user_id = ?;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, created_at, updated_at
    FROM users
    WHERE email = ?;`

	addFavorite = `INSERT INTO favorites (user_id, movie_id)
    VALUES (?, ?)
    RETURNING favorite_id, user_id, movie_id, created_at;`

	removeFavorite = `DELETE FROM favorites
    WHERE user_id = ? AND movie_id = ?;`
)
