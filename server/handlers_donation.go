package server

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dhananjaysingh10/P2P-D-X/internal/auth"
	"github.com/dhananjaysingh10/P2P-D-X/internal/common"
	"github.com/dhananjaysingh10/P2P-D-X/misc"
)

///////// Donations /////////

var (
	errMissingAmount = errors.New("please provide a donation amount")
	errBadAmount     = errors.New("please provide a valid donation amount")
)

const donationAck = "Your donation is being processed"

func postDonation(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramId(c)
		if !ok {
			return
		}

		// amount arrives as the raw form string; an empty one never reaches
		// the network
		var don struct {
			Amount       string `json:"amount" form:"amount"`
			UpiId        string `json:"upiId" form:"upiId"`
			IsAnonymous  bool   `json:"isAnonymous" form:"isAnonymous"`
			DonorMessage string `json:"donorMessage" form:"donorMessage"`
		}
		if err := misc.BindJSON(c, &don); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if don.Amount == "" {
			misc.AbortWithErr(c, 400, errMissingAmount)
			return
		}
		amount, err := strconv.ParseFloat(don.Amount, 64)
		if err != nil || amount <= 0 {
			misc.AbortWithErr(c, 400, errBadAmount)
			return
		}

		sess := auth.GetCtxSession(c)
		txn := common.NewTransaction(sess.Id, id, amount, don.UpiId, don.IsAnonymous, don.DonorMessage)
		if err := s.api.CreateTransaction(txn); err != nil {
			abortBackendErr(c, err)
			return
		}

		// re-fetch so the caller sees whatever totals the backend has applied
		// by now; this may still be the pre-donation value and that is fine,
		// settlement is not polled
		cmp, _ := s.api.CampaignById(id)
		c.JSON(200, gin.H{
			"status":        "success",
			"msg":           donationAck,
			"transactionId": txn.TransactionId,
			"campaign":      cmp,
		})
	}
}
