package backend

import "github.com/dhananjaysingh10/P2P-D-X/internal/common"

///////// Institutions /////////

func (c *Client) RegisterInstitution(inst *common.Institution) error {
	return c.send("POST", c.sharded("/institutions"), inst)
}

func (c *Client) Institutions() ([]*common.Institution, error) {
	var insts []*common.Institution
	if err := c.getJSON(c.sharded("/institutions"), &insts); err != nil {
		return nil, err
	}
	return insts, nil
}

// InstitutionByEmail scans the full listing for a case-sensitive exact match.
// The backend exposes no direct lookup, so this is O(n) in institution count
// and only holds up at small scale.
func (c *Client) InstitutionByEmail(email string) (*common.Institution, error) {
	insts, err := c.Institutions()
	if err != nil {
		return nil, err
	}
	for _, inst := range insts {
		if inst.Email == email {
			return inst, nil
		}
	}
	return nil, ErrNotFound
}
