package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/usecase"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

type userRepo struct{ users map[string]*entity.User }

func (r *userRepo) Create(u *entity.User) error              { r.users[u.ID] = u; return nil }
func (r *userRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *userRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	return nil, nil
}
func (r *userRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }

func TestUserUseCase_Me(t *testing.T) {
	repo := &userRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", CompanyID: "c1", Email: "ana@acme.in", PasswordHash: "x", Role: entity.RoleAccountant},
	}}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Me("c1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.in", out.Email)
	assert.Equal(t, "contador", out.Role)

	_, err = uc.Me("c2", "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "otra empresa no ve al usuario")

	_, err = uc.Me("c1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
