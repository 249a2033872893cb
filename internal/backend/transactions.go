package backend

import "github.com/dhananjaysingh10/P2P-D-X/internal/common"

///////// Transactions /////////

// CreateTransaction records a donation. The transaction is never read back;
// callers re-fetch the campaign to observe any resulting total change.
func (c *Client) CreateTransaction(txn *common.Transaction) error {
	return c.send("POST", c.sharded("/transactions"), txn)
}
