package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/bnsmrk/haynkoo/database"
	"github.com/bnsmrk/haynkoo/models"
)

func TestLogin(t *testing.T) {
	setupDB(t)
	e := echo.New()
	h := &AuthHandler{JWTSecret: "test-secret"}

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	u := models.User{Username: "Admin", Password: string(hash), Role: "admin", Name: "Administrator"}
	assert.NoError(t, database.DB.Create(&u).Error)

	ctx, rec := newRequest(e, http.MethodPost, "/auth/login", map[string]any{
		"username": "Admin",
		"password": "s3cret",
	})
	assert.NoError(t, h.Login(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "admin", body["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	setupDB(t)
	e := echo.New()
	h := &AuthHandler{JWTSecret: "test-secret"}

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	u := models.User{Username: "Admin", Password: string(hash), Role: "admin"}
	assert.NoError(t, database.DB.Create(&u).Error)

	ctx, _ := newRequest(e, http.MethodPost, "/auth/login", map[string]any{
		"username": "Admin",
		"password": "wrong",
	})
	err := h.Login(ctx)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		}
	}
}
