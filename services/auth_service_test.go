package services

import (
	"testing"

	"bloom/models"
	"bloom/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	svc := NewAuthService(db)

	require.NoError(t, svc.Register(RegisterInput{
		Username:     "brooke",
		Password:     "petunia",
		Confirmation: "petunia",
		FullName:     "Brooke Stone",
	}))

	var user models.User
	require.NoError(t, db.Where("username = ?", "brooke").First(&user).Error)
	assert.NotEqual(t, "petunia", user.Password, "password must be stored hashed")
	assert.True(t, utils.CheckPasswordHash("petunia", user.Password))

	token, err := svc.Login("brooke", "petunia")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("brooke", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "petunia")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	in := RegisterInput{Username: "brooke", Password: "pw", Confirmation: "pw", FullName: "Brooke"}
	require.NoError(t, svc.Register(in))

	err := svc.Register(in)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	cases := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"missing username", RegisterInput{Password: "pw", Confirmation: "pw", FullName: "B"}, "username"},
		{"missing password", RegisterInput{Username: "b", FullName: "B"}, "password"},
		{"mismatched confirmation", RegisterInput{Username: "b", Password: "pw", Confirmation: "other", FullName: "B"}, "confirmation"},
		{"missing name", RegisterInput{Username: "b", Password: "pw", Confirmation: "pw"}, "full_name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Register(tc.in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
