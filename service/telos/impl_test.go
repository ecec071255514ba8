package telos

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/otccloak/goapi/base/ctx"
)

func TestGetTableRows(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/v1/chain/get_table_rows", r.URL.Path)

		body := &GetTableRowsRequest{}
		req.NoError(json.NewDecoder(r.Body).Decode(body))
		req.Equal("thezeosalias", body.Code)
		req.Equal("auctioncfg", body.Table)
		req.True(body.Json)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rows":[{"start_block_time":1700000000}],"more":false,"next_key":""}`))
	}))
	defer server.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		RpcUrl:     server.URL,
		Timeout:    5 * time.Second,
	})

	resp, err := c.GetTableRows(bCtx.Background(), &GetTableRowsRequest{
		Code:  "thezeosalias",
		Scope: "thezeosalias",
		Table: "auctioncfg",
		Limit: 1,
		Json:  true,
	})
	req.NoError(err)
	req.False(resp.More)
	req.Len(resp.Rows, 1)
}

func TestGetTableRowsNotOk(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		RpcUrl:     server.URL,
		Timeout:    5 * time.Second,
	})

	_, err := c.GetTableRows(bCtx.Background(), &GetTableRowsRequest{
		Code:  "thezeosalias",
		Scope: "thezeosalias",
		Table: "auctioncfg",
		Json:  true,
	})
	req.ErrorIs(err, ErrStatusCodeNotOk)
}
