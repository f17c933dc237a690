//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/commands"
	commandsmock "retail-ops-core/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIntegrations_SyncShopifyProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := commandsmock.NewMockOutboundPlatform(ctrl)
	uc := commands.NewIntegrationUseCase(platform)

	qty := 4
	platform.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req commands.OutboundRequest) (*commands.OutboundResponse, error) {
			assert.Equal(t, commands.PlatformShopify, req.Platform)
			assert.Equal(t, http.MethodPut, req.Method)
			assert.Equal(t, "/products/AMP%2F200", req.Path)
			body := req.Body.(map[string]any)
			assert.Equal(t, 4, body["inventory_quantity"])
			return &commands.OutboundResponse{StatusCode: http.StatusOK, Body: json.RawMessage(`{"updated":true}`)}, nil
		})

	res, err := uc.SyncShopifyProduct(context.Background(), "AMP/200", commands.ProductSyncInput{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, "product.sync", res.Operation)
	assert.JSONEq(t, `{"updated":true}`, string(res.Response))
}

func TestIntegrations_ValidationNeverCallsPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := commandsmock.NewMockOutboundPlatform(ctrl)
	uc := commands.NewIntegrationUseCase(platform)

	_, err := uc.SyncShopifyProduct(context.Background(), "AMP-200", commands.ProductSyncInput{})
	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	_, err = uc.ImportShopifyProducts(context.Background(), commands.ShopifyImportInput{})
	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	_, err = uc.PushKlaviyoCampaign(context.Background(), commands.KlaviyoCampaignInput{Name: "Spring"})
	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
}

func TestIntegrations_PlatformFailureIsMarked(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := commandsmock.NewMockOutboundPlatform(ctrl)
	uc := commands.NewIntegrationUseCase(platform)

	cause := errors.New("dial tcp: i/o timeout")
	platform.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, cause)

	_, err := uc.PushKlaviyoCampaign(context.Background(), commands.KlaviyoCampaignInput{Name: "Spring", ListID: "L1"})
	assert.True(t, errs.Is(err, errs.ErrOutboundCallFailed))
	assert.ErrorIs(t, err, cause)
}
