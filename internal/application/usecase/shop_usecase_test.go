package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
)

func setupShopUC(t *testing.T) (*usecase.ShopUseCase, *usecase.UserUseCase, *fakeShopRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	shopRepo := newFakeShopRepo()
	return usecase.NewShopUseCase(shopRepo, userRepo), usecase.NewUserUseCase(userRepo), shopRepo
}

// Crear con owner inexistente falla con ErrInvalidReference y no persiste nada.
func TestShopCreate_OwnerInexistente(t *testing.T) {
	shopUC, _, shopRepo := setupShopUC(t)

	_, err := shopUC.Create(dto.CreateShopRequest{ShopName: "Tienda", OwnerUserID: "nonexistent"})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	list, err := shopRepo.List()
	require.NoError(t, err)
	assert.Empty(t, list, "el fallo de referencia no debe dejar registros parciales")
}

func TestShopCreate_RoundTrip(t *testing.T) {
	shopUC, userUC, _ := setupShopUC(t)
	owner, err := userUC.Create(dto.CreateUserRequest{Email: "o@x.com", Name: "O", Password: "p"})
	require.NoError(t, err)

	created, err := shopUC.Create(dto.CreateShopRequest{
		ShopName: "Tienda", Description: "desc", OwnerUserID: owner.ID,
		ContactNumber: "+57 1", Address: "Calle 1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	got, err := shopUC.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tienda", got.ShopName)
	assert.Equal(t, owner.ID, got.OwnerUserID)
	assert.Equal(t, "Calle 1", got.Address)
}

// Update con ownerUserId inexistente falla y deja la tienda intacta.
func TestShopUpdate_OwnerInvalido(t *testing.T) {
	shopUC, userUC, _ := setupShopUC(t)
	owner, err := userUC.Create(dto.CreateUserRequest{Email: "o@x.com", Name: "O", Password: "p"})
	require.NoError(t, err)
	created, err := shopUC.Create(dto.CreateShopRequest{ShopName: "Tienda", OwnerUserID: owner.ID})
	require.NoError(t, err)

	_, err = shopUC.Update(created.ID, dto.UpdateShopRequest{OwnerUserID: strPtr("no-existe")})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	got, err := shopUC.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got.OwnerUserID, "la referencia original no debe cambiar")
}

// Update parcial: solo los campos presentes se modifican.
func TestShopUpdate_Parcial(t *testing.T) {
	shopUC, userUC, _ := setupShopUC(t)
	owner, err := userUC.Create(dto.CreateUserRequest{Email: "o@x.com", Name: "O", Password: "p"})
	require.NoError(t, err)
	created, err := shopUC.Create(dto.CreateShopRequest{
		ShopName: "Tienda", Description: "desc", OwnerUserID: owner.ID, Address: "Calle 1",
	})
	require.NoError(t, err)

	got, err := shopUC.Update(created.ID, dto.UpdateShopRequest{Description: strPtr("nueva desc")})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "nueva desc", got.Description)
	assert.Equal(t, "Tienda", got.ShopName)
	assert.Equal(t, "Calle 1", got.Address)
	assert.Equal(t, owner.ID, got.OwnerUserID)
}

func TestShopUpdate_NoExiste(t *testing.T) {
	shopUC, _, _ := setupShopUC(t)

	got, err := shopUC.Update("no-existe", dto.UpdateShopRequest{ShopName: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestShopDelete_NoExiste(t *testing.T) {
	shopUC, _, _ := setupShopUC(t)
	assert.ErrorIs(t, shopUC.Delete("no-existe"), domain.ErrNotFound)
}
