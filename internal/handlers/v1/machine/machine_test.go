package machine

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/vendo-server/internal/catalog"
	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/vending"
)

type discardLog struct{}

func (discardLog) Append(context.Context, vending.TransactionEntry) error { return nil }

// newTestAPI wires every machine endpoint against a freshly seeded machine
// behind a real operator so handler tests exercise the full path.
func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	ledger := vending.NewLedger(decimal.NewFromInt(200), decimal.NewFromInt(100))
	m := vending.NewMachine(catalog.SeedRegular(), catalog.SeedSpecial(), ledger, discardLog{})
	op := operator.NewOperatorDelegator(m)
	op.Start()
	t.Cleanup(op.Stop)

	_, api := humatest.New(t)
	NewGetMachineHandler(op).Register(api)
	NewInsertCoinsHandler(op).Register(api)
	NewPurchaseItemHandler(op).Register(api)
	NewPurchaseSpecialItemHandler(op).Register(api)
	return api
}

func TestParseDecision(t *testing.T) {
	decision, err := parseDecision("proceed")
	assert.NoError(t, err)
	assert.Equal(t, vending.Proceed, decision)

	decision, err = parseDecision("cancel")
	assert.NoError(t, err)
	assert.Equal(t, vending.Cancel, decision)

	_, err = parseDecision("maybe")
	assert.Error(t, err)
}

func TestHTTP_GetMachine(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/v1/machine")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetMachineResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0", body.Balances.Accumulated)
	assert.Equal(t, "200", body.Balances.MachineBalance)
	assert.Equal(t, "100", body.Balances.StartingBalance)
}

func TestHTTP_InsertCoins(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/v1/machine/coins", InsertCoinsBody{Coins: "10 20 abc 5000 50"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body InsertCoinsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "80", body.Accepted)
	assert.Equal(t, "80", body.Accumulated)
	assert.Equal(t, []string{"abc", "5000"}, body.Rejected)
}

func TestHTTP_InsertCoins_Empty(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/v1/machine/coins", InsertCoinsBody{Coins: "   "})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_PurchaseItem(t *testing.T) {
	api := newTestAPI(t)

	api.Post("/v1/machine/coins", InsertCoinsBody{Coins: "100"})
	resp := api.Post("/v1/machine/purchase", PurchaseItemBody{Name: "Hotsilog", Decision: "proceed"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PurchaseItemResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "completed", body.State)
	assert.Equal(t, "Hotsilog", body.ItemName)
	assert.Equal(t, "50", body.Price)
	assert.Equal(t, "100", body.AmountPaid)
	assert.Equal(t, "50", body.Change)
}

func TestHTTP_PurchaseItem_Cancelled(t *testing.T) {
	api := newTestAPI(t)

	api.Post("/v1/machine/coins", InsertCoinsBody{Coins: "100"})
	resp := api.Post("/v1/machine/purchase", PurchaseItemBody{Name: "Hotsilog", Decision: "cancel"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PurchaseItemResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "cancelled", body.State)
}

func TestHTTP_PurchaseItem_NotFound(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/v1/machine/purchase", PurchaseItemBody{Name: "hotsilog", Decision: "proceed"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_PurchaseItem_InsufficientFunds(t *testing.T) {
	api := newTestAPI(t)

	api.Post("/v1/machine/coins", InsertCoinsBody{Coins: "20"})
	resp := api.Post("/v1/machine/purchase", PurchaseItemBody{Name: "Hotsilog", Decision: "proceed"})

	assert.Equal(t, http.StatusPaymentRequired, resp.Code)
}

func TestHTTP_PurchaseItem_BadDecision(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/v1/machine/purchase", PurchaseItemBody{Name: "Hotsilog", Decision: "maybe"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_PurchaseSpecialItem_Pending(t *testing.T) {
	api := newTestAPI(t)

	api.Post("/v1/machine/coins", InsertCoinsBody{Coins: "10"})
	resp := api.Post("/v1/machine/purchase-special", PurchaseSpecialItemBody{Name: "Hotdog", Decision: "proceed"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PurchaseSpecialItemResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "pending", body.State)
	assert.Equal(t, "Hotdog", body.ItemName)
	assert.Equal(t, "15", body.Price)
	assert.Equal(t, "5", body.Shortfall)
}

func TestHTTP_PurchaseSpecialItem_CompletesWithCarryOver(t *testing.T) {
	api := newTestAPI(t)

	api.Post("/v1/machine/coins", InsertCoinsBody{Coins: "20"})
	resp := api.Post("/v1/machine/purchase-special", PurchaseSpecialItemBody{Name: "Hotdog", Decision: "proceed"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PurchaseSpecialItemResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "completed", body.State)
	assert.Equal(t, "5", body.CarryOver)

	var machineBody GetMachineResponseBody
	machineResp := api.Get("/v1/machine")
	assert.NoError(t, json.NewDecoder(machineResp.Body).Decode(&machineBody))
	assert.Equal(t, "5", machineBody.Balances.Accumulated)
}

func TestHTTP_PurchaseSpecialItem_NotFound(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/v1/machine/purchase-special", PurchaseSpecialItemBody{Name: "Hotsilog", Decision: "proceed"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
