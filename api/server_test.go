package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coschain/creatorfund-go/app"
	"github.com/coschain/creatorfund-go/common/constants"
	"github.com/coschain/creatorfund-go/db/storage"
	"github.com/coschain/creatorfund-go/mylog"
	"github.com/coschain/creatorfund-go/prototype"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testFundBalance = 3 * constants.DefaultCreatorFundReward

type apiTester struct {
	db     *storage.DatabaseService
	ctrl   *app.Controller
	server *Server
}

func newAPITester(t *testing.T) *apiTester {
	db := storage.NewMemoryDatabaseService()
	t.Cleanup(db.Close)

	fundOwner := prototype.NamedAddress(constants.CreatorFundName)
	registry := prometheus.NewRegistry()
	ctrl := app.NewController(db, app.Options{FundAccount: prototype.TokenAccountAddress(fundOwner)}, mylog.Discard())
	ctrl.SetMetrics(app.NewMetrics(registry))
	require.NoError(t, ctrl.Open(app.Genesis{Owner: fundOwner, Balance: testFundBalance}))

	reader, err := app.NewPostReader(ctrl, 16)
	require.NoError(t, err)
	t.Cleanup(reader.Close)

	return &apiTester{db: db, ctrl: ctrl, server: NewServer(ctrl, reader, registry, mylog.Discard())}
}

func (tester *apiTester) do(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tester.server.Handler().ServeHTTP(w, req)

	out := map[string]interface{}{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestServer(t *testing.T) {
	tester := newAPITester(t)
	alice := prototype.NamedAddress("alice")
	bob := prototype.NamedAddress("bob")

	t.Run("posts", func(t *testing.T) {
		a := assert.New(t)
		code, out := tester.do(t, http.MethodPost, "/v1/posts", postBody(alice, "hello", "world"))
		a.Equal(http.StatusCreated, code)
		a.Equal(prototype.PostAddress(alice, "hello").String(), out["address"])

		code, out = tester.do(t, http.MethodPost, "/v1/posts", postBody(alice, "hello", "again"))
		a.Equal(http.StatusConflict, code)
		a.Equal("DuplicatePost", out["code"])

		code, out = tester.do(t, http.MethodPost, "/v1/posts", postBody(alice, strings.Repeat("t", 101), "x"))
		a.Equal(http.StatusBadRequest, code)
		a.Equal("TitleTooLong", out["code"])

		code, out = tester.do(t, http.MethodGet, "/v1/posts/"+prototype.PostAddress(alice, "hello").String(), nil)
		a.Equal(http.StatusOK, code)
		a.Equal("world", out["content"])
		a.Equal(alice.String(), out["author"])

		code, out = tester.do(t, http.MethodGet, "/v1/posts/"+prototype.PostAddress(bob, "hello").String(), nil)
		a.Equal(http.StatusNotFound, code)
		a.Equal("PostNotFound", out["code"])

		code, out = tester.do(t, http.MethodGet, "/v1/posts/not-base58", nil)
		a.Equal(http.StatusBadRequest, code)
		a.Equal("AddressFormat", out["code"])
	})

	t.Run("votes and claim", func(t *testing.T) {
		a := assert.New(t)
		post := prototype.PostAddress(alice, "hello").String()
		votePath := "/v1/posts/" + post + "/votes"

		for i := 0; i < constants.RewardThreshold; i++ {
			voter := prototype.NamedAddress(fmt.Sprintf("fan%d", i))
			code, out := tester.do(t, http.MethodPost, votePath, map[string]interface{}{"voter": voter, "direction": "up"})
			a.Equal(http.StatusOK, code)
			a.EqualValues(i+1, out["up_votes"])
		}
		code, out := tester.do(t, http.MethodPost, votePath, map[string]interface{}{"voter": prototype.NamedAddress("fan0"), "direction": "down"})
		a.Equal(http.StatusConflict, code)
		a.Equal("DuplicateVote", out["code"])

		code, _ = tester.do(t, http.MethodPost, votePath, map[string]interface{}{"voter": bob, "direction": "sideways"})
		a.Equal(http.StatusBadRequest, code)

		claimPath := "/v1/posts/" + post + "/claim"
		code, out = tester.do(t, http.MethodPost, claimPath, map[string]interface{}{"claimant": alice})
		a.Equal(http.StatusPreconditionFailed, code)
		a.Equal("WalletNotProvisioned", out["code"])

		code, out = tester.do(t, http.MethodPost, "/v1/wallets", map[string]interface{}{"owner": alice})
		a.Equal(http.StatusCreated, code)
		vault := out["vault"]

		code, out = tester.do(t, http.MethodPost, claimPath, map[string]interface{}{"claimant": alice})
		a.Equal(http.StatusOK, code)
		a.EqualValues(constants.DefaultCreatorFundReward, out["amount"])
		a.Equal(vault, out["to"])

		code, out = tester.do(t, http.MethodPost, claimPath, map[string]interface{}{"claimant": alice})
		a.Equal(http.StatusConflict, code)
		a.Equal("AlreadyRewarded", out["code"])

		code, out = tester.do(t, http.MethodGet, "/v1/accounts/"+vault.(string), nil)
		a.Equal(http.StatusOK, code)
		a.EqualValues(constants.DefaultCreatorFundReward, out["balance"])

		code, out = tester.do(t, http.MethodGet, "/v1/posts/"+post, nil)
		a.Equal(http.StatusOK, code)
		a.Equal(true, out["rewarded"])
	})

	t.Run("tips", func(t *testing.T) {
		a := assert.New(t)
		ledger := app.NewKvLedger(tester.db)
		bobAcc := prototype.TokenAccountAddress(bob)
		aliceAcc := prototype.TokenAccountAddress(alice)
		require.NoError(t, ledger.Open(bobAcc, bob))
		require.NoError(t, ledger.Credit(bobAcc, 50))
		require.NoError(t, ledger.Open(aliceAcc, alice))

		tip := map[string]interface{}{
			"tipper":       bob,
			"amount":       30,
			"from":         bobAcc,
			"to":           aliceAcc,
			"creator_post": prototype.PostAddress(alice, "hello"),
		}
		code, out := tester.do(t, http.MethodPost, "/v1/tips", tip)
		a.Equal(http.StatusOK, code)
		a.EqualValues(20, out["from_balance"])

		code, out = tester.do(t, http.MethodPost, "/v1/tips", tip)
		a.Equal(http.StatusPaymentRequired, code)
		a.Equal("InsufficientFunds", out["code"])

		tip["amount"] = 0
		code, out = tester.do(t, http.MethodPost, "/v1/tips", tip)
		a.Equal(http.StatusBadRequest, code)
		a.Equal("InvalidAmount", out["code"])

		code, _ = tester.do(t, http.MethodPost, "/v1/tips", "not an object")
		a.Equal(http.StatusBadRequest, code)
	})

	t.Run("metrics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		tester.server.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "creatorfund_operations_total")
	})
}

func postBody(author prototype.Address, title, content string) map[string]interface{} {
	return map[string]interface{}{"author": author, "title": title, "content": content}
}

func TestServerLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	tester := newAPITester(t)
	require.NoError(t, tester.server.Start("127.0.0.1:0"))

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	body := `{"owner":"` + prototype.NamedAddress("alice").String() + `"}`
	resp, err := client.Post("http://"+tester.server.Addr()+"/v1/wallets", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, tester.server.Stop(ctx))
}
