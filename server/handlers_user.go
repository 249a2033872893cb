package server

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/dhananjaysingh10/P2P-D-X/internal/auth"
	"github.com/dhananjaysingh10/P2P-D-X/internal/common"
	"github.com/dhananjaysingh10/P2P-D-X/misc"
)

///////// Registration /////////

func postUserSignup(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var u common.User
		if err := misc.BindJSON(c, &u); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if err := u.Check(); err != nil {
			misc.AbortWithErr(c, 400, err)
			return
		}
		if err := s.api.RegisterUser(&u); err != nil {
			abortBackendErr(c, err)
			return
		}
		c.JSON(200, misc.StatusOK(""))
	}
}

func postInstitutionSignup(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inst common.Institution
		if err := misc.BindJSON(c, &inst); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if err := inst.Check(); err != nil {
			misc.AbortWithErr(c, 400, err)
			return
		}
		if err := s.api.RegisterInstitution(&inst); err != nil {
			abortBackendErr(c, err)
			return
		}

		s.sendInstitutionAck(&inst)
		c.JSON(200, misc.StatusOK(""))
	}
}

const institutionAckBody = `<p>Hi %s,</p>
<p>We received your institution application. Our team will review the
submitted documents and reach out on %s.</p>`

// sendInstitutionAck mails the application acknowledgement. Failures are
// logged only; the registration itself already succeeded upstream.
func (s *Server) sendInstitutionAck(inst *common.Institution) {
	if s.Cfg.Sandbox || s.Cfg.Mandrill.APIKey == "" {
		return
	}
	body := fmt.Sprintf(institutionAckBody, inst.Name, inst.Phone)
	if resp, err := s.Cfg.MailClient().SendMessage(body, "Application received", inst.Email, inst.Name, []string{"institution signup"}); err != nil || len(resp) != 1 || resp[0].RejectReason != "" {
		log.Printf("institution ack mail: %v: %+v", err, resp)
	}
}

func getEmailCheck(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		exists, err := s.api.CheckEmail(c.Params.ByName("email"))
		if err != nil {
			abortBackendErr(c, err)
			return
		}
		c.JSON(200, gin.H{"exists": exists})
	}
}

///////// Dashboard /////////

func getDashboard(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := auth.GetCtxSession(c)
		c.JSON(200, gin.H{
			"email":             sess.Email,
			"type":              sess.Type,
			"id":                sess.Id,
			"canDonate":         true,
			"canCreateCampaign": sess.Type == auth.UserScope,
			"canReview":         sess.Type == auth.InstitutionScope,
		})
	}
}
