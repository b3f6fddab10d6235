package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kadong/kadong-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the "user" role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedUserWithRole creates a user with the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva",
		Name:         "Test User " + suffix,
		Role:         role,
		Preferences:  []byte(`{}`),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.Name, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedNote inserts a note for userID.
func SeedNote(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, pinned bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO notes (user_id, title, content, pinned) VALUES ($1, $2, 'seed', $3) RETURNING id`,
		userID, title, pinned,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}
	return id
}

// SeedWishlistItem inserts a wishlist item for userID.
func SeedWishlistItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, price float64, currency string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO wishlist_items (user_id, product_name, product_url, price, currency)
		 VALUES ($1, $2, 'https://example.com/p', $3, $4) RETURNING id`,
		userID, name, price, currency,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedWishlistItem: %v", err)
	}
	return id
}
