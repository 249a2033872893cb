package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/boltdb/bolt"

	"github.com/dhananjaysingh10/P2P-D-X/config"
	"github.com/dhananjaysingh10/P2P-D-X/internal/backend"
	"github.com/dhananjaysingh10/P2P-D-X/internal/common"
	"github.com/dhananjaysingh10/P2P-D-X/misc"
)

func TestScopes(t *testing.T) {
	var (
		sm = ScopeMap{
			InstitutionScope: {Get: true, Post: true},
			AllScopes:        {Get: true},
		}

		tests = []struct {
			s  Scope
			m  string
			ex bool
		}{
			{InstitutionScope, "GET", true},
			{InstitutionScope, "POST", true},
			{InstitutionScope, "PUT", false},
			{UserScope, "GET", true}, // inherited from the catch-all
			{UserScope, "POST", false},
			{InvalidScope, "GET", true},
		}
	)

	for _, ts := range tests {
		if v := sm.HasAccess(ts.s, ts.m); v != ts.ex {
			t.Errorf("wanted %+v, got %v", ts, v)
		}
	}
}

// fake remote: one known user behind the envelope, one institution in the
// listing
func newFakeRemote() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/email/", func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimPrefix(r.URL.Path, "/api/v1/users/email/")
		if email != "ravi@example.com" {
			w.WriteHeader(404)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "User not found"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    &common.User{Id: 3, Name: "Ravi", Email: email},
		})
	})
	mux.HandleFunc("/institutions", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]*common.Institution{
			{Id: 7, Name: "Helping Hands", Email: "admin@helpinghands.org"},
		})
	})
	return httptest.NewServer(mux)
}

func newTestAuth(t *testing.T) (a *Auth, done func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "portal-auth")
	if err != nil {
		t.Fatal(err)
	}

	remote := newFakeRemote()

	cfg := &config.Config{}
	cfg.DBPath, cfg.DBName = dir+"/", "test"
	cfg.Bucket.Session = "session"
	cfg.Bucket.All = []string{"session"}
	cfg.API.BaseURL = remote.URL

	db := misc.OpenDB(cfg.DBPath, cfg.DBName)
	if err := misc.InitBuckets(db, cfg.Bucket.All); err != nil {
		t.Fatal(err)
	}

	a = New(db, cfg, backend.New(remote.URL, "test"))
	return a, func() {
		db.Close()
		remote.Close()
		os.RemoveAll(dir)
	}
}

func (a *Auth) sessionCount() (n int) {
	a.db.View(func(tx *bolt.Tx) error {
		return misc.GetBucket(tx, a.cfg.Bucket.Session).ForEach(func(k, v []byte) error {
			n++
			return nil
		})
	})
	return
}

func TestSignInUnknownUserWritesNothing(t *testing.T) {
	a, done := newTestAuth(t)
	defer done()

	if _, _, err := a.SignIn("ghost@example.com", UserScope); err == nil {
		t.Fatal("expected a lookup miss")
	}
	if n := a.sessionCount(); n != 0 {
		t.Errorf("expected no stored sessions, found %d", n)
	}
}

func TestSignInRoundtrip(t *testing.T) {
	a, done := newTestAuth(t)
	defer done()

	sess, stok, err := a.SignIn("ravi@example.com", UserScope)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Id != 3 || sess.Type != UserScope || sess.Email != "ravi@example.com" {
		t.Errorf("bad session: %+v", sess)
	}

	got := a.GetSession(stok)
	if got == nil || *got != *sess {
		t.Errorf("roundtrip mismatch: %+v vs %+v", got, sess)
	}
}

func TestInstitutionSignInIsCaseSensitive(t *testing.T) {
	a, done := newTestAuth(t)
	defer done()

	sess, _, err := a.SignIn("admin@helpinghands.org", InstitutionScope)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Id != 7 {
		t.Errorf("bad institution id: %+v", sess)
	}

	// the listing scan is an exact match, no case folding
	if _, _, err := a.SignIn("Admin@HelpingHands.org", InstitutionScope); err == nil {
		t.Error("expected a case-sensitive miss")
	}
}

func TestSignOutIsIdempotent(t *testing.T) {
	a, done := newTestAuth(t)
	defer done()

	_, stok, err := a.SignIn("ravi@example.com", UserScope)
	if err != nil {
		t.Fatal(err)
	}

	if err := a.SignOut(stok); err != nil {
		t.Fatal(err)
	}
	if a.GetSession(stok) != nil {
		t.Error("session survived sign-out")
	}
	if err := a.SignOut(stok); err != nil {
		t.Errorf("second sign-out errored: %v", err)
	}
	if err := a.SignOut("never-issued"); err != nil {
		t.Errorf("sign-out of an unknown token errored: %v", err)
	}
}

func TestInvalidScope(t *testing.T) {
	a, done := newTestAuth(t)
	defer done()

	if _, _, err := a.SignIn("ravi@example.com", Scope("admin")); err != ErrInvalidScope {
		t.Errorf("expected ErrInvalidScope, got %v", err)
	}
}
