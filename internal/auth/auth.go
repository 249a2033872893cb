package auth

import (
	"errors"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"

	"github.com/dhananjaysingh10/P2P-D-X/config"
	"github.com/dhananjaysingh10/P2P-D-X/internal/backend"
	"github.com/dhananjaysingh10/P2P-D-X/misc"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidScope = errors.New("invalid account type")
)

// Session is the identity triple persisted at login. It is self-asserted:
// no server-issued credential backs it, the backend never sees it, and it
// carries no expiry. Every protected route reads it and nothing more.
type Session struct {
	Email string `json:"email"`
	Type  Scope  `json:"type"`
	Id    int64  `json:"id"`
}

type Auth struct {
	db  *bolt.DB
	cfg *config.Config
	api *backend.Client

	loginUrl string
}

func New(db *bolt.DB, cfg *config.Config, api *backend.Client) *Auth {
	return &Auth{
		db:       db,
		cfg:      cfg,
		api:      api,
		loginUrl: "/signIn",
	}
}

// SignIn resolves the actor's numeric id against the backend and persists the
// session triple under a fresh token. Nothing is written when the lookup
// misses. Users resolve via the direct email endpoint; institutions via a
// scan of the full listing, the only lookup the backend offers.
func (a *Auth) SignIn(email string, typ Scope) (*Session, string, error) {
	if email == "" {
		return nil, "", ErrInvalidEmail
	}

	var id int64
	switch typ {
	case UserScope:
		u, err := a.api.UserByEmail(email)
		if err != nil {
			return nil, "", err
		}
		id = u.Id
	case InstitutionScope:
		inst, err := a.api.InstitutionByEmail(email)
		if err != nil {
			return nil, "", err
		}
		id = inst.Id
	default:
		return nil, "", ErrInvalidScope
	}

	sess := &Session{Email: email, Type: typ, Id: id}
	stok := uuid.NewString()
	if err := a.db.Update(func(tx *bolt.Tx) error {
		return misc.PutTxJson(tx, a.cfg.Bucket.Session, stok, sess)
	}); err != nil {
		return nil, "", err
	}
	return sess, stok, nil
}

func (a *Auth) GetSession(stok string) *Session {
	var sess Session
	a.db.View(func(tx *bolt.Tx) error {
		misc.GetTxJson(tx, a.cfg.Bucket.Session, stok, &sess)
		return nil
	})
	if sess.Email == "" {
		return nil
	}
	return &sess
}

// SignOut drops the stored triple unconditionally; signing out a token that
// was never signed in is not an error.
func (a *Auth) SignOut(stok string) error {
	return a.db.Update(func(tx *bolt.Tx) error {
		return misc.DelBucketBytes(tx, a.cfg.Bucket.Session, stok)
	})
}
