package request

import (
	"retail-ops-core/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type ShopifyImportRequest struct {
	CollectionID string   `json:"collection_id" binding:"max=200"`
	SKUs         []string `json:"skus" binding:"max=500,dive,required,max=200"`
	Overwrite    bool     `json:"overwrite"`
}

func (r *ShopifyImportRequest) ToInput() (commands.ShopifyImportInput, error) {
	var in commands.ShopifyImportInput
	err := copier.Copy(&in, r)
	return in, err
}

type ProductSyncRequest struct {
	Title      string `json:"title" binding:"max=500"`
	PriceCents *int64 `json:"price_cents" binding:"omitempty,min=0"`
	Quantity   *int   `json:"quantity" binding:"omitempty,min=0"`
	Status     string `json:"status" binding:"omitempty,oneof=active draft archived"`
}

func (r *ProductSyncRequest) ToInput() (commands.ProductSyncInput, error) {
	var in commands.ProductSyncInput
	err := copier.Copy(&in, r)
	return in, err
}

type KlaviyoCampaignRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	Subject   string `json:"subject" binding:"max=500"`
	ListID    string `json:"list_id" binding:"required,max=100"`
	HTMLBody  string `json:"html_body" binding:"max=200000"`
	SendAfter string `json:"send_after" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (r *KlaviyoCampaignRequest) ToInput() (commands.KlaviyoCampaignInput, error) {
	var in commands.KlaviyoCampaignInput
	err := copier.Copy(&in, r)
	return in, err
}
