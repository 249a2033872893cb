package server

import (
	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/dhananjaysingh10/P2P-D-X/config"
	"github.com/dhananjaysingh10/P2P-D-X/internal/auth"
	"github.com/dhananjaysingh10/P2P-D-X/internal/backend"
	"github.com/dhananjaysingh10/P2P-D-X/internal/common"
	"github.com/dhananjaysingh10/P2P-D-X/misc"
)

// Server is the portal in front of the remote donation service: it holds the
// session bucket, the backend client and nothing else. All authoritative
// state lives upstream.
type Server struct {
	Cfg  *config.Config
	r    *gin.Engine
	db   *bolt.DB
	auth *auth.Auth
	api  *backend.Client

	inFlight *common.InFlight
}

func New(cfg *config.Config, r *gin.Engine) (*Server, error) {
	db := misc.OpenDB(cfg.DBPath, cfg.DBName)
	if err := misc.InitBuckets(db, cfg.Bucket.All); err != nil {
		return nil, err
	}

	api := backend.New(cfg.API.BaseURL, cfg.API.ShardKey)
	srv := &Server{
		Cfg:      cfg,
		r:        r,
		db:       db,
		auth:     auth.New(db, cfg, api),
		api:      api,
		inFlight: common.NewInFlight(),
	}
	srv.initializeRoutes(r)
	return srv, nil
}

func (srv *Server) initializeRoutes(r *gin.Engine) {
	r.POST("/signIn", srv.auth.SignInHandler)
	r.GET("/signOut", srv.auth.SignOutHandler)

	r.POST("/signUp/user", postUserSignup(srv))
	r.POST("/signUp/institution", postInstitutionSignup(srv))
	r.GET("/signUp/check/:email", getEmailCheck(srv))

	verified := r.Group("", srv.auth.VerifyUser)
	verified.GET("/dashboard", getDashboard(srv))

	verified.GET("/campaigns", getLiveCampaigns(srv))
	verified.GET("/campaigns/approved", getApprovedCampaigns(srv))
	verified.GET("/campaigns/:id", getCampaign(srv))
	verified.POST("/campaigns", postCampaign(srv))
	verified.POST("/campaigns/:id/donate", postDonation(srv))

	// institution review: the lifecycle controller
	instOnly := srv.auth.CheckScopes(auth.ScopeMap{
		auth.InstitutionScope: {Get: true, Post: true},
	})
	review := verified.Group("/review", instOnly)
	review.GET("", getReview(srv))
	review.GET("/mine", getInstitutionCampaigns(srv))
	review.POST("/:id/approve", campaignTransition(srv, common.Campaign.Approve))
	review.POST("/:id/reject", campaignTransition(srv, common.Campaign.Reject))
	review.POST("/:id/close", campaignTransition(srv, common.Campaign.Close))
}

func (srv *Server) Run() error {
	return srv.r.Run(srv.Cfg.Host + ":" + srv.Cfg.Port)
}

func (srv *Server) Close() error {
	return srv.db.Close()
}
