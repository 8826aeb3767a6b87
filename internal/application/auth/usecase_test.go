package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/avicola-api/internal/application/auth"
	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/domain"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/avicola-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por nombre
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.Name] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByName(_ context.Context, name string) (*entity.User, error) {
	return f.users[name], nil
}

func (f *fakeUserRepo) List(context.Context, string) ([]*entity.User, error) { return nil, nil }

func newUseCase(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"sales": {
			ID:           "00000000-0000-0000-0000-000000000001",
			Name:         "sales",
			PasswordHash: string(hash),
			Role:         entity.RoleSalesPerson,
		},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "avicola-api-test",
	})
	return uc, repo
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _ := newUseCase(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Name: "sales", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "sales", out.User.Name)
	assert.Equal(t, entity.RoleSalesPerson, out.User.Role)

	// El token lleva los claims del usuario.
	userID, name, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "sales", name)
	assert.Equal(t, entity.RoleSalesPerson, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Name: "sales", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario inexistente y password incorrecto devuelven el mismo error, para
// no revelar qué nombres existen.
func TestLogin_UsuarioInexistenteMismoError(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Name: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegisterUser_CreaConHash(t *testing.T) {
	uc, repo := newUseCase(t)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterUserRequest{
		Name:     "nuevo",
		Password: "clave-larga",
		Role:     entity.RoleManager,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, out.Role)

	stored := repo.users["nuevo"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-larga", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-larga")))
}

func TestRegisterUser_NombreDuplicado(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterUserRequest{
		Name:     "sales",
		Password: "clave-larga",
		Role:     entity.RoleSalesPerson,
	})
	assert.ErrorIs(t, err, domain.ErrNameAlreadyExists)
}

func TestRegisterUser_RolDesconocido(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterUserRequest{
		Name:     "nuevo",
		Password: "clave-larga",
		Role:     "SUPERVISOR",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
