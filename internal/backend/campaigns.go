package backend

import (
	"strconv"

	"github.com/dhananjaysingh10/P2P-D-X/internal/common"
)

///////// Campaigns /////////

func (c *Client) LiveCampaigns() ([]*common.Campaign, error) {
	return c.campaignList("/campaigns/live")
}

func (c *Client) AllCampaigns() ([]*common.Campaign, error) {
	return c.campaignList("/campaigns")
}

func (c *Client) ApprovedCampaigns() ([]*common.Campaign, error) {
	return c.campaignList("/campaigns/approved")
}

func (c *Client) CampaignsByInstitution(institutionId int64) ([]*common.Campaign, error) {
	return c.campaignList("/campaigns/institution/" + strconv.FormatInt(institutionId, 10))
}

func (c *Client) campaignList(path string) ([]*common.Campaign, error) {
	var cmps []*common.Campaign
	if err := c.getJSON(c.sharded(path), &cmps); err != nil {
		return nil, err
	}
	return cmps, nil
}

// CampaignById treats any non-success as a miss; the detail view only ever
// distinguishes "not found" from a transport failure.
func (c *Client) CampaignById(id int64) (*common.Campaign, error) {
	var cmp common.Campaign
	err := c.getJSON(c.sharded("/campaigns/"+strconv.FormatInt(id, 10)), &cmp)
	if err != nil {
		if _, ok := err.(*FetchError); ok {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cmp, nil
}

func (c *Client) CreateCampaign(cmp *common.Campaign) error {
	return c.send("POST", c.sharded("/campaigns"), cmp)
}

// UpdateCampaign writes the whole record. Lifecycle transitions go through
// here, which is why they must always start from the most recently fetched
// representation: a stale record would clobber backend-accumulated fields.
func (c *Client) UpdateCampaign(cmp *common.Campaign) error {
	return c.send("PUT", c.sharded("/campaigns/"+strconv.FormatInt(cmp.Id, 10)), cmp)
}
