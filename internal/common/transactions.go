package common

import "github.com/dhananjaysingh10/P2P-D-X/misc"

///////// Transactions /////////

const StatusPending = "PENDING"

// Transaction is write-only from this side: it is created once per donation
// and never read back. The backend owns the status field after creation; the
// campaign is re-fetched separately to observe any change in totals.
type Transaction struct {
	TransactionId string  `json:"transactionId"`
	DonorId       int64   `json:"donorId"`
	CampaignId    int64   `json:"campaignId"`
	Amount        float64 `json:"amount"`
	UpiId         string  `json:"upiId"`
	Status        string  `json:"status"`
	IsAnonymous   bool    `json:"isAnonymous"`
	DonorMessage  string  `json:"donorMessage,omitempty"`
}

func NewTransaction(donorId, campaignId int64, amount float64, upiId string, anonymous bool, message string) *Transaction {
	return &Transaction{
		TransactionId: misc.TransactionID(),
		DonorId:       donorId,
		CampaignId:    campaignId,
		Amount:        amount,
		UpiId:         upiId,
		Status:        StatusPending,
		IsAnonymous:   anonymous,
		DonorMessage:  message,
	}
}
