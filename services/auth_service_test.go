package services

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"nutriscan/utils"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func (m *fakeMailer) SendWelcome(_ context.Context, to, _ string) error {
	m.mu.Lock()
	m.sent = append(m.sent, to)
	m.mu.Unlock()
	close(m.done)
	return nil
}

func newAuthService(t *testing.T, mailer Mailer) *AuthService {
	t.Helper()
	log, _ := test.NewNullLogger()
	return NewAuthService(newTestDB(t), testSecret, time.Hour, mailer, log)
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	mailer := &fakeMailer{done: make(chan struct{})}
	svc := newAuthService(t, mailer)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: " Budi@Example.com ", Password: "secret1", Name: "Budi"})
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", reg.User.Email)
	assert.NotEmpty(t, reg.Token)

	uid, err := utils.ParseJWT(reg.Token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, uid)

	select {
	case <-mailer.done:
		assert.Equal(t, []string{"budi@example.com"}, mailer.sent)
	case <-time.After(2 * time.Second):
		t.Fatal("welcome email was not sent")
	}

	_, err = svc.Register(ctx, RegisterInput{Email: "budi@example.com", Password: "another", Name: "Dup"})
	assertStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "Email already in use", err.Error())

	login, err := svc.Login(ctx, LoginInput{Email: "BUDI@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
	assert.Nil(t, login.User.Profile)

	for _, in := range []LoginInput{
		{Email: "budi@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret1"},
	} {
		_, err := svc.Login(ctx, in)
		assertStatus(t, err, http.StatusUnauthorized)
		assert.Equal(t, "Invalid email or password", err.Error())
	}
}

func TestAuthServiceConcurrentRegisterSameEmail(t *testing.T) {
	svc := newAuthService(t, nil)
	ctx := context.Background()

	const n = 5
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, RegisterInput{Email: "race@example.com", Password: "secret1", Name: "Racer"})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assertStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, "Email already in use", err.Error())
	}
	assert.Equal(t, 1, created)
}

func TestAuthServiceCheckEmail(t *testing.T) {
	svc := newAuthService(t, nil)
	ctx := context.Background()

	ok, err := svc.CheckEmailAvailable(ctx, "new@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.Register(ctx, RegisterInput{Email: "new@example.com", Password: "secret1", Name: "New"})
	require.NoError(t, err)

	ok, err = svc.CheckEmailAvailable(ctx, "NEW@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthServiceAuthenticate(t *testing.T) {
	svc := newAuthService(t, nil)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: "tok@example.com", Password: "secret1", Name: "Tok"})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, reg.Token)
	require.NoError(t, err)
	assert.Equal(t, "tok@example.com", user.Email)

	_, err = svc.Authenticate(ctx, "garbage")
	assertStatus(t, err, http.StatusUnauthorized)

	forged, err := utils.GenerateJWT(reg.User.ID, []byte("other-secret"), time.Hour)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, forged)
	assertStatus(t, err, http.StatusUnauthorized)

	expired, err := utils.GenerateJWT(reg.User.ID, []byte(testSecret), -time.Minute)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, expired)
	assertStatus(t, err, http.StatusUnauthorized)

	ghost, err := utils.GenerateJWT("ghost", []byte(testSecret), time.Hour)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, ghost)
	assertStatus(t, err, http.StatusUnauthorized)
	assert.Equal(t, "User not found", err.Error())
}
