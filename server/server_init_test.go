package server

import (
	"flag"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/swayops/resty"

	"github.com/dhananjaysingh10/P2P-D-X/config"
	"github.com/dhananjaysingh10/P2P-D-X/internal/common"
)

type M map[string]interface{}

var (
	printResp = flag.Bool("pr", os.Getenv("PR") != "", "print responses")

	cfg *config.Config
	srv *Server
	ts  *httptest.Server
	api *fakeBackend

	rstP = sync.Pool{
		New: func() interface{} {
			return resty.NewClient(ts.URL)
		},
	}
)

func getClient() *resty.Client  { return rstP.Get().(*resty.Client) }
func putClient(c *resty.Client) { rstP.Put(c) }

func panicIf(err error) {
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	var code int = 1
	defer func() { os.Exit(code) }()

	flag.Parse()
	log.SetFlags(log.Lshortfile | log.Ltime)
	resty.LogRequests = *printResp

	// disable all the gin spam
	gin.SetMode(gin.ReleaseMode)

	api = newFakeBackend()
	remote := httptest.NewServer(api.router())
	defer remote.Close()

	dir, err := os.MkdirTemp("", "portal-srv")
	panicIf(err)
	defer os.RemoveAll(dir)

	cfg = &config.Config{}
	cfg.Host, cfg.Port = "localhost", "8090"
	cfg.DBPath, cfg.DBName = dir+"/", "portal"
	cfg.Sandbox = true
	cfg.API.BaseURL = remote.URL
	cfg.API.ShardKey = "test"
	cfg.Bucket.Session = "session"
	cfg.Bucket.All = []string{"session"}

	r := gin.New()
	srv, err = New(cfg, r)
	panicIf(err)
	defer srv.Close()

	ts = httptest.NewServer(r)
	defer ts.Close()

	code = m.Run()
}

// fakeBackend is an in-memory stand-in for the remote donation service,
// speaking the same routes and envelopes the real one does.
type fakeBackend struct {
	mu sync.Mutex

	users     map[string]*common.User
	insts     []*common.Institution
	campaigns map[int64]*common.Campaign
	txns      []*common.Transaction
	nextId    int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users: map[string]*common.User{
			"ravi@example.com":  {Id: 3, Name: "Ravi Kumar", Email: "ravi@example.com", Phone: "9876543210"},
			"meera@example.com": {Id: 4, Name: "Meera Shah", Email: "meera@example.com", Phone: "9876543211"},
		},
		insts: []*common.Institution{
			{Id: 7, Name: "Helping Hands", Email: "admin@helpinghands.org", Phone: "9123456789"},
		},
		campaigns: map[int64]*common.Campaign{
			42: {Id: 42, Title: "Heart surgery for Asha", BeneficiaryId: 3, InstitutionId: 7, IsLive: true, FundRaised: 25000, DonorCount: 12},
			55: {Id: 55, Title: "School fees for Arjun", BeneficiaryId: 4, InstitutionId: 7, IsLive: true},
			77: {Id: 77, Title: "Dialysis support", BeneficiaryId: 4, InstitutionId: 7, IsLive: true, IsApproved: true, FundRaised: 64000, DonorCount: 31},
			99: {Id: 99, Title: "Flood relief", BeneficiaryId: 3, InstitutionId: 7, IsApproved: true, IsFulfilled: true},
		},
		nextId: 100,
	}
}

func (f *fakeBackend) campaign(id int64) common.Campaign {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.campaigns[id]
}

func (f *fakeBackend) campaignList(keep func(*common.Campaign) bool) []*common.Campaign {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*common.Campaign{}
	for _, cmp := range f.campaigns {
		if keep == nil || keep(cmp) {
			c := *cmp
			out = append(out, &c)
		}
	}
	return out
}

func (f *fakeBackend) lastTransaction() *common.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.txns) == 0 {
		return nil
	}
	return f.txns[len(f.txns)-1]
}

func (f *fakeBackend) router() http.Handler {
	r := gin.New()

	r.GET("/api/v1/users/email/:email", func(c *gin.Context) {
		f.mu.Lock()
		u := f.users[c.Params.ByName("email")]
		f.mu.Unlock()
		if u == nil {
			c.JSON(404, gin.H{"success": false, "error": "User not found"})
			return
		}
		c.JSON(200, gin.H{"success": true, "data": u})
	})
	r.GET("/api/v1/users/check/email/:email", func(c *gin.Context) {
		f.mu.Lock()
		_, ok := f.users[c.Params.ByName("email")]
		f.mu.Unlock()
		c.JSON(200, gin.H{"success": true, "data": ok})
	})
	r.POST("/api/v1/users/register", func(c *gin.Context) {
		var u common.User
		if c.BindJSON(&u) != nil {
			c.JSON(400, gin.H{"success": false, "error": "bad payload"})
			return
		}
		f.mu.Lock()
		f.nextId++
		u.Id = f.nextId
		f.users[u.Email] = &u
		f.mu.Unlock()
		c.JSON(200, gin.H{"success": true, "data": u})
	})

	r.GET("/institutions", func(c *gin.Context) {
		f.mu.Lock()
		insts := append([]*common.Institution{}, f.insts...)
		f.mu.Unlock()
		c.JSON(200, insts)
	})
	r.POST("/institutions", func(c *gin.Context) {
		var inst common.Institution
		if c.BindJSON(&inst) != nil {
			c.JSON(400, gin.H{"message": "bad payload"})
			return
		}
		f.mu.Lock()
		f.nextId++
		inst.Id = f.nextId
		f.insts = append(f.insts, &inst)
		f.mu.Unlock()
		c.JSON(201, inst)
	})

	r.GET("/campaigns", func(c *gin.Context) {
		c.JSON(200, f.campaignList(nil))
	})
	r.GET("/campaigns/live", func(c *gin.Context) {
		c.JSON(200, f.campaignList(func(cmp *common.Campaign) bool { return cmp.IsLive }))
	})
	r.GET("/campaigns/approved", func(c *gin.Context) {
		c.JSON(200, f.campaignList(func(cmp *common.Campaign) bool { return cmp.Active() }))
	})
	r.GET("/campaigns/institution/:id", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Params.ByName("id"), 10, 64)
		c.JSON(200, f.campaignList(func(cmp *common.Campaign) bool { return cmp.InstitutionId == id }))
	})
	r.GET("/campaigns/:id", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Params.ByName("id"), 10, 64)
		f.mu.Lock()
		cmp := f.campaigns[id]
		f.mu.Unlock()
		if cmp == nil {
			c.JSON(404, gin.H{"message": "Campaign not found"})
			return
		}
		c.JSON(200, cmp)
	})
	r.POST("/campaigns", func(c *gin.Context) {
		var cmp common.Campaign
		if c.BindJSON(&cmp) != nil {
			c.JSON(400, gin.H{"message": "bad payload"})
			return
		}
		f.mu.Lock()
		f.nextId++
		cmp.Id = f.nextId
		f.campaigns[cmp.Id] = &cmp
		f.mu.Unlock()
		c.JSON(201, cmp)
	})
	r.PUT("/campaigns/:id", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Params.ByName("id"), 10, 64)
		var cmp common.Campaign
		if c.BindJSON(&cmp) != nil {
			c.JSON(400, gin.H{"message": "bad payload"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.campaigns[id] == nil {
			c.JSON(404, gin.H{"message": "Campaign not found"})
			return
		}
		cmp.Id = id
		f.campaigns[id] = &cmp // full-record replace, like the real thing
		c.JSON(200, cmp)
	})

	r.POST("/transactions", func(c *gin.Context) {
		var txn common.Transaction
		if c.BindJSON(&txn) != nil {
			c.JSON(400, gin.H{"message": "bad payload"})
			return
		}
		f.mu.Lock()
		f.txns = append(f.txns, &txn)
		f.mu.Unlock()
		c.JSON(201, txn)
	})

	return r
}
