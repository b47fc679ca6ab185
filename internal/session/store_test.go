package session

import (
	"context"
	"errors"
	"testing"

	"github.com/movehub/marketplace-client/internal/core/domain"
	"github.com/movehub/marketplace-client/internal/infrastructure/credstore"
)

type stubAuthAPI struct {
	loginFn    func(ctx context.Context, email, password string) (domain.TokenPair, error)
	googleFn   func(ctx context.Context, credential, roleHint string) (domain.TokenPair, error)
	registerFn func(ctx context.Context, req domain.RegisterRequest) (domain.TokenPair, error)
	logoutFn   func(ctx context.Context, refresh string) error
	profileFn  func(ctx context.Context) (*domain.User, error)
}

func (s *stubAuthAPI) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthAPI) GoogleLogin(ctx context.Context, credential, roleHint string) (domain.TokenPair, error) {
	return s.googleFn(ctx, credential, roleHint)
}

func (s *stubAuthAPI) Register(ctx context.Context, req domain.RegisterRequest) (domain.TokenPair, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAuthAPI) Logout(ctx context.Context, refresh string) error {
	return s.logoutFn(ctx, refresh)
}

func (s *stubAuthAPI) Profile(ctx context.Context) (*domain.User, error) {
	return s.profileFn(ctx)
}

type recordingNav struct {
	routes []string
}

func (n *recordingNav) NavigateTo(route string) {
	n.routes = append(n.routes, route)
}

func (n *recordingNav) last() string {
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

func TestStore_Login_PersistsPairAndNavigatesByRole(t *testing.T) {
	creds := credstore.NewMemoryStore()
	nav := &recordingNav{}
	auth := &stubAuthAPI{
		loginFn: func(_ context.Context, email, password string) (domain.TokenPair, error) {
			if email != "u@x.com" || password != "pw" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return domain.TokenPair{Access: "A", Refresh: "R"}, nil
		},
		profileFn: func(context.Context) (*domain.User, error) {
			return &domain.User{ID: "1", Email: "u@x.com", UserType: domain.RoleMover}, nil
		},
	}
	store := New(auth, creds, nav)

	user, err := store.Login(context.Background(), "u@x.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.UserType != domain.RoleMover {
		t.Fatalf("unexpected user: %+v", user)
	}

	pair, ok, _ := creds.Load()
	if !ok || pair.Access != "A" || pair.Refresh != "R" {
		t.Fatalf("credential pair not persisted: %+v ok=%v", pair, ok)
	}
	if nav.last() != RouteMoverHome {
		t.Fatalf("expected navigation to %s, got %s", RouteMoverHome, nav.last())
	}

	snap := store.Snapshot()
	if !snap.Authenticated || snap.Identity == nil || snap.Identity.ID != "1" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestStore_Login_RoleLandingRoutes(t *testing.T) {
	cases := []struct {
		userType string
		route    string
	}{
		{domain.RoleAdmin, RouteAdminHome},
		{domain.RoleMover, RouteMoverHome},
		{domain.RoleCustomer, RouteNewOrder},
	}
	for _, tc := range cases {
		if got := LandingRoute(tc.userType); got != tc.route {
			t.Fatalf("%s: expected %s, got %s", tc.userType, tc.route, got)
		}
	}
}

func TestStore_Login_FailureLeavesPreviousSessionIntact(t *testing.T) {
	creds := credstore.NewMemoryStore()
	_ = creds.Save(domain.TokenPair{Access: "old-A", Refresh: "old-R"})
	nav := &recordingNav{}
	auth := &stubAuthAPI{
		loginFn: func(context.Context, string, string) (domain.TokenPair, error) {
			return domain.TokenPair{}, errors.New("invalid credentials")
		},
		profileFn: func(context.Context) (*domain.User, error) {
			return &domain.User{ID: "1", UserType: domain.RoleCustomer}, nil
		},
	}
	store := New(auth, creds, nav)
	store.setIdentity(&domain.User{ID: "prev"})

	if _, err := store.Login(context.Background(), "u@x.com", "bad"); err == nil {
		t.Fatalf("expected login error")
	}

	pair, ok, _ := creds.Load()
	if !ok || pair.Access != "old-A" {
		t.Fatalf("stored pair should be untouched: %+v", pair)
	}
	if snap := store.Snapshot(); snap.Identity == nil || snap.Identity.ID != "prev" {
		t.Fatalf("previous identity should remain: %+v", snap)
	}
	if len(nav.routes) != 0 {
		t.Fatalf("no navigation expected on failure, got %v", nav.routes)
	}
}

func TestStore_Logout_ClearsEverythingEvenWhenServerFails(t *testing.T) {
	creds := credstore.NewMemoryStore()
	_ = creds.Save(domain.TokenPair{Access: "A", Refresh: "R"})
	nav := &recordingNav{}
	auth := &stubAuthAPI{
		logoutFn: func(_ context.Context, refresh string) error {
			if refresh != "R" {
				t.Fatalf("expected refresh token, got %q", refresh)
			}
			return errors.New("network down")
		},
	}
	store := New(auth, creds, nav)
	store.setIdentity(&domain.User{ID: "1"})

	res := store.Logout(context.Background())
	if !res.Recovered || res.Cause == nil {
		t.Fatalf("expected recovered result, got %+v", res)
	}

	if _, ok, _ := creds.Load(); ok {
		t.Fatalf("credential pair should be cleared")
	}
	snap := store.Snapshot()
	if snap.Authenticated || snap.Identity != nil {
		t.Fatalf("identity should be cleared: %+v", snap)
	}
	if nav.last() != RouteLogin {
		t.Fatalf("expected navigation to %s, got %s", RouteLogin, nav.last())
	}
}

func TestStore_Logout_SuccessReportsNoRecovery(t *testing.T) {
	creds := credstore.NewMemoryStore()
	_ = creds.Save(domain.TokenPair{Access: "A", Refresh: "R"})
	auth := &stubAuthAPI{
		logoutFn: func(context.Context, string) error { return nil },
	}
	store := New(auth, creds, &recordingNav{})

	if res := store.Logout(context.Background()); res.Recovered {
		t.Fatalf("unexpected recovery: %+v", res)
	}
}

func TestStore_Initialize_RecoversFromStaleCredential(t *testing.T) {
	creds := credstore.NewMemoryStore()
	_ = creds.Save(domain.TokenPair{Access: "stale", Refresh: "stale"})
	auth := &stubAuthAPI{
		profileFn: func(context.Context) (*domain.User, error) {
			return nil, errors.New("401 token expired")
		},
	}
	store := New(auth, creds, &recordingNav{})

	res := store.Initialize(context.Background())
	if !res.Recovered || res.Cause == nil {
		t.Fatalf("expected recovered result, got %+v", res)
	}
	if _, ok, _ := creds.Load(); ok {
		t.Fatalf("stale pair should be cleared")
	}
	snap := store.Snapshot()
	if snap.Loading {
		t.Fatalf("loading should be false after initialize")
	}
	if snap.Authenticated {
		t.Fatalf("no identity should be set: %+v", snap)
	}
}

func TestStore_Initialize_ResolvesStoredCredential(t *testing.T) {
	creds := credstore.NewMemoryStore()
	_ = creds.Save(domain.TokenPair{Access: "A", Refresh: "R"})
	auth := &stubAuthAPI{
		profileFn: func(context.Context) (*domain.User, error) {
			return &domain.User{ID: "1", UserType: domain.RoleCustomer}, nil
		},
	}
	store := New(auth, creds, &recordingNav{})

	if res := store.Initialize(context.Background()); res.Recovered {
		t.Fatalf("unexpected recovery: %+v", res)
	}
	snap := store.Snapshot()
	if snap.Loading || !snap.Authenticated {
		t.Fatalf("expected authenticated session: %+v", snap)
	}
}

func TestStore_Initialize_NoCredentialComesUpAnonymous(t *testing.T) {
	store := New(&stubAuthAPI{}, credstore.NewMemoryStore(), &recordingNav{})

	if res := store.Initialize(context.Background()); res.Recovered {
		t.Fatalf("unexpected recovery: %+v", res)
	}
	snap := store.Snapshot()
	if snap.Loading || snap.Authenticated {
		t.Fatalf("expected anonymous resolved session: %+v", snap)
	}
}

func TestStore_LoadingNeverReentersAcrossLoginLogout(t *testing.T) {
	creds := credstore.NewMemoryStore()
	auth := &stubAuthAPI{
		loginFn: func(context.Context, string, string) (domain.TokenPair, error) {
			return domain.TokenPair{Access: "A", Refresh: "R"}, nil
		},
		profileFn: func(context.Context) (*domain.User, error) {
			return &domain.User{ID: "1", UserType: domain.RoleCustomer}, nil
		},
		logoutFn: func(context.Context, string) error { return nil },
	}
	store := New(auth, creds, &recordingNav{})

	var sawLoading bool
	store.Subscribe(func(snap Snapshot) {
		if snap.Loading {
			sawLoading = true
		}
	})

	store.Initialize(context.Background())
	if _, err := store.Login(context.Background(), "u@x.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	store.Logout(context.Background())

	if sawLoading {
		t.Fatalf("loading must never be observable after initialize")
	}
	if store.Snapshot().Loading {
		t.Fatalf("loading re-entered")
	}
}

func TestStore_UpdateIdentity_ShallowMerge(t *testing.T) {
	store := New(&stubAuthAPI{}, credstore.NewMemoryStore(), &recordingNav{})
	store.setIdentity(&domain.User{ID: "1", Email: "u@x.com", FirstName: "Ada"})

	store.UpdateIdentity(map[string]any{"first_name": "Grace", "phone": "+123"})

	snap := store.Snapshot()
	if snap.Identity.FirstName != "Grace" {
		t.Fatalf("field not merged: %+v", snap.Identity)
	}
	if snap.Identity.Phone != "+123" {
		t.Fatalf("new field not merged: %+v", snap.Identity)
	}
	if snap.Identity.ID != "1" || snap.Identity.Email != "u@x.com" {
		t.Fatalf("untouched fields lost: %+v", snap.Identity)
	}
}

func TestStore_UpdateIdentity_NoOpWhileAnonymous(t *testing.T) {
	store := New(&stubAuthAPI{}, credstore.NewMemoryStore(), &recordingNav{})

	store.UpdateIdentity(map[string]any{"first_name": "Grace"})

	if snap := store.Snapshot(); snap.Identity != nil {
		t.Fatalf("no identity should materialize: %+v", snap)
	}
}

func TestStore_LoginWithGoogle_UnavailableWithoutClientID(t *testing.T) {
	store := New(&stubAuthAPI{}, credstore.NewMemoryStore(), &recordingNav{})

	_, err := store.LoginWithGoogle(context.Background(), "google:u@x.com", "")
	if !errors.Is(err, domain.ErrGoogleUnavailable) {
		t.Fatalf("expected ErrGoogleUnavailable, got %v", err)
	}
}

func TestStore_Subscribe_SeesIdentityChanges(t *testing.T) {
	store := New(&stubAuthAPI{}, credstore.NewMemoryStore(), &recordingNav{})

	var seen []bool
	store.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap.Authenticated)
	})

	store.setIdentity(&domain.User{ID: "1"})
	store.setIdentity(nil)

	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}
