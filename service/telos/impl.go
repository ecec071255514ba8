package telos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		rpcUrl:  cfg.RpcUrl,
		timeout: cfg.Timeout,
	}
}

type client struct {
	client  http.Client
	rpcUrl  string
	timeout time.Duration
}

func (c *client) GetTableRows(ctx bCtx.Ctx, req *GetTableRowsRequest) (*GetTableRowsResponse, error) {
	url := fmt.Sprintf("%s/v1/chain/get_table_rows", c.rpcUrl)
	data, err := c.post(ctx, url, req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.post failed")
		return nil, err
	}
	resp := &GetTableRowsResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) post(ctx bCtx.Ctx, url string, payload interface{}) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return respBody, nil
}
