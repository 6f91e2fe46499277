package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"savium/internal/apperr"
	"savium/internal/dto"
	"savium/internal/models"
	"savium/pkg/auth"
	"savium/pkg/googleauth"

	"go.uber.org/zap"
)

func newTestAuthService(google GoogleExchanger) (*AuthService, *memUserStore) {
	users := newMemUserStore()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(users, jwtManager, google, zap.NewNop()), users
}

func TestAuthServiceRegister(t *testing.T) {
	svc, users := newTestAuthService(nil)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Alice Smith",
		Email:    " Alice@Example.COM ",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if resp.Token == "" {
		t.Errorf("expected a token")
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("email = %q, want normalized", resp.User.Email)
	}
	if resp.User.Role != string(models.RoleUser) {
		t.Errorf("role = %q, want user", resp.User.Role)
	}
	if resp.User.LoginType != string(models.LoginTypeEmail) {
		t.Errorf("loginType = %q, want email", resp.User.LoginType)
	}

	stored, err := users.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("stored user: %v", err)
	}
	if stored.Password == "secret123" || stored.Password == "" {
		t.Errorf("password stored in the clear or missing")
	}
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(nil)

	req := &dto.RegisterRequest{FullName: "Alice Smith", Email: "alice@example.com", Password: "secret123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	appErr, ok := apperr.From(err)
	if !ok || appErr.Status != http.StatusConflict {
		t.Fatalf("err = %v, want conflict", err)
	}
	if appErr.Message != "Email already registered." {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestAuthServiceLogin(t *testing.T) {
	svc, _ := newTestAuthService(nil)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Alice Smith", Email: "alice@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Errorf("expected a token")
	}
}

func TestAuthServiceLoginBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(nil)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Alice Smith", Email: "alice@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Unknown email and wrong password produce the same message, so a caller
	// cannot probe which addresses are registered.
	cases := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Email: "alice@example.com", Password: "nope"}},
		{"unknown email", dto.LoginRequest{Email: "bob@example.com", Password: "secret123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &tc.req)
			appErr, ok := apperr.From(err)
			if !ok || appErr.Status != http.StatusBadRequest {
				t.Fatalf("err = %v, want bad request", err)
			}
			if appErr.Message != "Invalid email or password." {
				t.Errorf("message = %q", appErr.Message)
			}
		})
	}
}

func TestAuthServiceLoginTypeMismatch(t *testing.T) {
	google := &fakeExchanger{profile: &googleauth.Profile{
		Email: "carol@example.com",
		Name:  "Carol Jones",
	}}
	svc, _ := newTestAuthService(google)

	if _, err := svc.LoginWithGoogle(context.Background(), "auth-code"); err != nil {
		t.Fatalf("LoginWithGoogle: %v", err)
	}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "carol@example.com", Password: "whatever",
	})
	appErr, ok := apperr.From(err)
	if !ok || appErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want bad request", err)
	}
	want := "You have previously registered using google. Please use the google login option to access your account."
	if appErr.Message != want {
		t.Errorf("message = %q, want %q", appErr.Message, want)
	}
}

func TestAuthServiceLoginWithGoogle(t *testing.T) {
	google := &fakeExchanger{profile: &googleauth.Profile{
		Email:   "Carol@Example.com",
		Name:    "Carol Jones",
		Picture: "https://example.com/carol.png",
	}}
	svc, users := newTestAuthService(google)

	resp, err := svc.LoginWithGoogle(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("LoginWithGoogle: %v", err)
	}
	if resp.User.LoginType != string(models.LoginTypeGoogle) {
		t.Errorf("loginType = %q, want google", resp.User.LoginType)
	}
	if resp.User.Email != "carol@example.com" {
		t.Errorf("email = %q, want normalized", resp.User.Email)
	}

	stored, err := users.GetByEmail(context.Background(), "carol@example.com")
	if err != nil {
		t.Fatalf("stored user: %v", err)
	}
	if stored.Password != "" {
		t.Errorf("federated account must not carry a password")
	}

	// A second login signs in the same account instead of creating another.
	again, err := svc.LoginWithGoogle(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("second LoginWithGoogle: %v", err)
	}
	if again.User.ID != resp.User.ID {
		t.Errorf("second login created a new account")
	}
	all, _ := users.List(context.Background())
	if len(all) != 1 {
		t.Errorf("users = %d, want 1", len(all))
	}
}

func TestAuthServiceLoginWithGoogleEmailAccountExists(t *testing.T) {
	google := &fakeExchanger{profile: &googleauth.Profile{
		Email: "alice@example.com",
		Name:  "Alice Smith",
	}}
	svc, _ := newTestAuthService(google)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Alice Smith", Email: "alice@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.LoginWithGoogle(context.Background(), "auth-code")
	appErr, ok := apperr.From(err)
	if !ok || appErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want bad request", err)
	}
	want := "You have previously registered using email. Please use the email login option to access your account."
	if appErr.Message != want {
		t.Errorf("message = %q, want %q", appErr.Message, want)
	}
}

func TestAuthServiceLoginWithGoogleMissingCode(t *testing.T) {
	svc, _ := newTestAuthService(&fakeExchanger{})

	_, err := svc.LoginWithGoogle(context.Background(), "")
	appErr, ok := apperr.From(err)
	if !ok || appErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want bad request", err)
	}
}
