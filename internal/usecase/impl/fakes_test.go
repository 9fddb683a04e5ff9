package impl

import (
	"context"
	"sync"
	"time"

	"cannadex/internal/domain/entity"
	domainerrors "cannadex/internal/domain/errors"
	"cannadex/internal/domain/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. They enforce the same uniqueness rules as the
// real PostgreSQL indexes so service-level behavior matches production.

type fakeStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]*entity.User
	auths         map[string]*entity.Authentication // keyed by provider + "|" + providerUserID
	refreshTokens map[string]*entity.RefreshToken   // keyed by token hash
	strains       map[uuid.UUID]*entity.Strain
	products      map[uuid.UUID]*entity.Product
	reviews       map[uuid.UUID]*entity.Review
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         make(map[uuid.UUID]*entity.User),
		auths:         make(map[string]*entity.Authentication),
		refreshTokens: make(map[string]*entity.RefreshToken),
		strains:       make(map[uuid.UUID]*entity.Strain),
		products:      make(map[uuid.UUID]*entity.Product),
		reviews:       make(map[uuid.UUID]*entity.Review),
	}
}

// --- UserRepository ---

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user, ok := r.store.users[id]; ok {
		copied := *user

		return &copied, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Username == username {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailAlreadyExists
		}
		if existing.Username == user.Username {
			return domainerrors.ErrUsernameAlreadyExists
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.store.users[user.ID] = &copied

	return nil
}

// --- AuthRepository ---

type fakeAuthRepo struct{ store *fakeStore }

func authKey(provider, providerUserID string) string {
	return provider + "|" + providerUserID
}

func (r *fakeAuthRepo) CreateAuthentication(_ context.Context, auth *entity.Authentication) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := authKey(auth.Provider, auth.ProviderUserID)
	if _, ok := r.store.auths[key]; ok {
		return domainerrors.ErrEmailAlreadyExists
	}

	auth.ID = uuid.New()
	auth.CreatedAt = time.Now()
	copied := *auth
	r.store.auths[key] = &copied

	return nil
}

func (r *fakeAuthRepo) FindAuthentication(_ context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if auth, ok := r.store.auths[authKey(provider, providerUserID)]; ok {
		copied := *auth

		return &copied, nil
	}

	return nil, repository.ErrAuthNotFound
}

// --- RefreshTokenRepository ---

type fakeRefreshTokenRepo struct{ store *fakeStore }

func (r *fakeRefreshTokenRepo) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	token.ID = uuid.New()
	token.CreatedAt = time.Now()
	copied := *token
	r.store.refreshTokens[token.TokenHash] = &copied

	return nil
}

func (r *fakeRefreshTokenRepo) FindRefreshTokenByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	token, ok := r.store.refreshTokens[tokenHash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if time.Now().After(token.ExpiresAt) {
		return nil, repository.ErrRefreshTokenExpired
	}
	copied := *token

	return &copied, nil
}

func (r *fakeRefreshTokenRepo) DeleteRefreshTokenByHash(_ context.Context, tokenHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.refreshTokens[tokenHash]; !ok {
		return repository.ErrRefreshTokenNotFound
	}
	delete(r.store.refreshTokens, tokenHash)

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteRefreshTokensByUserID(_ context.Context, userID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for hash, token := range r.store.refreshTokens {
		if token.UserID == userID {
			delete(r.store.refreshTokens, hash)
		}
	}

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpiredRefreshTokens(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	for hash, token := range r.store.refreshTokens {
		if now.After(token.ExpiresAt) {
			delete(r.store.refreshTokens, hash)
		}
	}

	return nil
}

// --- StrainRepository ---

type fakeStrainRepo struct{ store *fakeStore }

func (r *fakeStrainRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Strain, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if strain, ok := r.store.strains[id]; ok {
		copied := *strain

		return &copied, nil
	}

	return nil, repository.ErrStrainNotFound
}

func (r *fakeStrainRepo) List(_ context.Context, limit, offset int) ([]*entity.Strain, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	all := make([]*entity.Strain, 0, len(r.store.strains))
	for _, strain := range r.store.strains {
		copied := *strain
		all = append(all, &copied)
	}
	total := int64(len(all))

	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end], total, nil
}

func (r *fakeStrainRepo) Create(_ context.Context, strain *entity.Strain) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.strains {
		if existing.Name == strain.Name {
			return domainerrors.ErrStrainAlreadyExists
		}
	}

	strain.ID = uuid.New()
	strain.CreatedAt = time.Now()
	strain.UpdatedAt = strain.CreatedAt
	copied := *strain
	r.store.strains[strain.ID] = &copied

	return nil
}

func (r *fakeStrainRepo) Update(_ context.Context, strain *entity.Strain) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.strains[strain.ID]; !ok {
		return repository.ErrStrainNotFound
	}
	copied := *strain
	copied.UpdatedAt = time.Now()
	r.store.strains[strain.ID] = &copied

	return nil
}

func (r *fakeStrainRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.strains[id]; !ok {
		return repository.ErrStrainNotFound
	}
	delete(r.store.strains, id)

	return nil
}

// --- ReviewRepository ---

type fakeReviewRepo struct{ store *fakeStore }

func (r *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if review, ok := r.store.reviews[id]; ok {
		copied := *review

		return &copied, nil
	}

	return nil, repository.ErrReviewNotFound
}

func (r *fakeReviewRepo) ListByStrainID(_ context.Context, strainID uuid.UUID) ([]*entity.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	reviews := make([]*entity.Review, 0)
	for _, review := range r.store.reviews {
		if review.StrainID == strainID {
			copied := *review
			reviews = append(reviews, &copied)
		}
	}

	return reviews, nil
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.reviews {
		if existing.UserID == review.UserID && existing.StrainID == review.StrainID {
			return domainerrors.ErrReviewAlreadyExists
		}
	}

	review.ID = uuid.New()
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	copied := *review
	r.store.reviews[review.ID] = &copied

	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(r.store.reviews, id)

	return nil
}

// --- TransactionManager ---

// fakeTxManager runs the callback directly against the shared store.
// Rollback semantics are not simulated; tests assert on returned errors.
type fakeTxManager struct{ store *fakeStore }

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepoFactory{store: tm.store})
}

type fakeRepoFactory struct{ store *fakeStore }

func (f *fakeRepoFactory) UserRepo() repository.UserRepository {
	return &fakeUserRepo{store: f.store}
}

func (f *fakeRepoFactory) AuthRepo() repository.AuthRepository {
	return &fakeAuthRepo{store: f.store}
}

func (f *fakeRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return &fakeRefreshTokenRepo{store: f.store}
}

func (f *fakeRepoFactory) ReviewRepo() repository.ReviewRepository {
	return &fakeReviewRepo{store: f.store}
}
