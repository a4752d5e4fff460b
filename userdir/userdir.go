package userdir

import (
	"context"
	"errors"
	"strings"
	"time"

	"passabola/collection"
	"passabola/models"
	"passabola/store"

	"github.com/google/uuid"
)

const usersKey = "passabola_users"

var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrEmailTaken     = errors.New("email taken by another account")
)

// Directory owns the accounts collection. Emails are unique after case
// folding; passwords are stored and compared verbatim.
type Directory struct {
	accounts *collection.Collection[models.Account]
}

func New(s store.Store) *Directory {
	return &Directory{accounts: collection.New[models.Account](s, usersKey)}
}

// seed installs the two stock accounts the product ships with. Runs on
// every read path but only writes when the collection is empty.
func (d *Directory) seed(ctx context.Context) {
	if len(d.accounts.List(ctx)) > 0 {
		return
	}
	now := time.Now()
	d.accounts.Save(ctx, []models.Account{
		{ID: "1", Email: "admin@passabola.com", Password: "admin123", Name: "Administrador", Role: models.RoleAdmin, Avatar: "👑", CreatedAt: now},
		{ID: "2", Email: "user@passabola.com", Password: "user123", Name: "Usuário", Role: models.RoleUser, Avatar: "⚽", CreatedAt: now},
	})
}

func (d *Directory) List(ctx context.Context) []models.Account {
	d.seed(ctx)
	return d.accounts.List(ctx)
}

func (d *Directory) ByID(ctx context.Context, id string) (models.Account, bool) {
	d.seed(ctx)
	return d.accounts.FindBy(ctx, func(a models.Account) bool { return a.ID == id })
}

func (d *Directory) ByEmail(ctx context.Context, email string) (models.Account, bool) {
	d.seed(ctx)
	folded := strings.ToLower(email)
	return d.accounts.FindBy(ctx, func(a models.Account) bool {
		return strings.ToLower(a.Email) == folded
	})
}

// Authenticate returns the account only when the case-folded email
// matches and the password is byte-equal. Callers get no hint which of
// the two was wrong.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (models.Account, bool) {
	acct, ok := d.ByEmail(ctx, email)
	if !ok || acct.Password != password {
		return models.Account{}, false
	}
	return acct, true
}

func (d *Directory) Register(ctx context.Context, name, email, password, role string) (models.Account, error) {
	d.seed(ctx)
	if _, exists := d.ByEmail(ctx, email); exists {
		return models.Account{}, ErrDuplicateEmail
	}
	if role != models.RoleAdmin {
		role = models.RoleUser
	}
	acct := models.Account{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(email),
		Password:  password,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := d.accounts.Insert(ctx, acct); err != nil {
		return models.Account{}, err
	}
	return acct, nil
}

// Patch carries optional replacement fields for Update.
type Patch struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	Position *string
}

// Update mutates the account registered under email. An email change
// re-checks uniqueness against every other account first.
func (d *Directory) Update(ctx context.Context, email string, patch Patch) (models.Account, error) {
	d.seed(ctx)
	current, ok := d.ByEmail(ctx, email)
	if !ok {
		return models.Account{}, ErrNotFound
	}

	if patch.Email != nil && !strings.EqualFold(*patch.Email, current.Email) {
		if other, exists := d.ByEmail(ctx, *patch.Email); exists && other.ID != current.ID {
			return models.Account{}, ErrEmailTaken
		}
	}

	var updated models.Account
	err := d.accounts.UpdateWhere(ctx,
		func(a models.Account) bool { return a.ID == current.ID },
		func(a *models.Account) {
			if patch.Name != nil {
				a.Name = *patch.Name
			}
			if patch.Email != nil {
				a.Email = strings.ToLower(*patch.Email)
			}
			if patch.Password != nil {
				a.Password = *patch.Password
			}
			if patch.Role != nil {
				a.Role = *patch.Role
			}
			if patch.Position != nil {
				a.Position = *patch.Position
			}
			a.UpdatedAt = time.Now()
			updated = *a
		})
	if errors.Is(err, collection.ErrNotFound) {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	return updated, nil
}

func (d *Directory) Delete(ctx context.Context, email string) error {
	d.seed(ctx)
	folded := strings.ToLower(email)
	return d.accounts.DeleteWhere(ctx, func(a models.Account) bool {
		return strings.ToLower(a.Email) == folded
	})
}
