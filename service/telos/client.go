package telos

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	bCtx "github.com/otccloak/goapi/base/ctx"
)

var ErrStatusCodeNotOk = errors.New("http.status != 200")

// Client is a thin reader over the chain's HTTP RPC. Only table reads are
// needed; the service never signs or pushes transactions.
type Client interface {
	GetTableRows(ctx bCtx.Ctx, req *GetTableRowsRequest) (*GetTableRowsResponse, error)
}

type ClientCfg struct {
	HttpClient http.Client
	RpcUrl     string
	Timeout    time.Duration
}

// GetTableRowsRequest mirrors the /v1/chain/get_table_rows request body.
type GetTableRowsRequest struct {
	Code       string `json:"code"`
	Scope      string `json:"scope"`
	Table      string `json:"table"`
	LowerBound string `json:"lower_bound,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Json       bool   `json:"json"`
}

type GetTableRowsResponse struct {
	Rows    []json.RawMessage `json:"rows"`
	More    bool              `json:"more"`
	NextKey string            `json:"next_key"`
}
