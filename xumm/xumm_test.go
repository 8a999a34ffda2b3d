package xumm

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/xumm-community/xc/internal/rippledtest"
	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/tx"
)

const testID = "f94fc5d2-0dfe-4123-9182-a9f3b5addc8a"

type fakeXumm struct {
	*httptest.Server
	t *testing.T

	posted   Payload
	gets     int32
	resolved int32 // GET reports resolved once gets reaches this
	status   string
}

func newFakeXumm(t *testing.T) *fakeXumm {
	f := &fakeXumm{t: t, resolved: 1}
	f.status = `{"meta":{"exists":true,"uuid":"` + testID + `","resolved":true,"signed":true},"payload":{"tx_type":"Payment"},"response":{"txid":"C6BF","dispatched_to":"wss://s2.ripple.com","dispatched_result":"tesSUCCESS","dispatched_nodetype":"MAINNET","account":"rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"}}`

	upgrader := websocket.Upgrader{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sign/"+testID {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				t.Errorf("upgrade: %s", err)
				return
			}
			defer conn.Close()
			for _, msg := range []string{
				`{"message":"Welcome ` + testID + `"}`,
				`{"expires_in_seconds":299}`,
				`{"opened":true}`,
				`{"payload_uuidv4":"` + testID + `","signed":true,"user_token":true}`,
			} {
				conn.WriteMessage(websocket.TextMessage, []byte(msg))
			}
			return
		}

		if r.Header.Get("X-API-Key") != "key" || r.Header.Get("X-API-Secret") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error":{"reference":"a61ba59a","code":812}}`)
			return
		}

		switch {
		case r.Method == "POST" && r.URL.Path == "/api/v1/platform/payload":
			body, _ := ioutil.ReadAll(r.Body)
			if err := json.Unmarshal(body, &f.posted); err != nil {
				t.Errorf("bad payload %s: %s", body, err)
			}
			fmt.Fprintf(w, `{"uuid":%q,"next":{"always":"https://xumm.app/sign/%s"},"refs":{"websocket_status":%q},"pushed":false}`,
				testID, testID, "ws"+strings.TrimPrefix(f.URL, "http")+"/sign/"+testID)
		case r.Method == "GET" && r.URL.Path == "/api/v1/platform/payload/"+testID:
			if atomic.AddInt32(&f.gets, 1) < atomic.LoadInt32(&f.resolved) {
				fmt.Fprint(w, `{"meta":{"exists":true,"uuid":"`+testID+`","resolved":false}}`)
				return
			}
			fmt.Fprint(w, f.status)
		case r.Method == "DELETE" && r.URL.Path == "/api/v1/platform/payload/"+testID:
			fmt.Fprint(w, `{"result":{"cancelled":true,"reason":"OK"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":{"reference":"b1","code":404}}`)
		}
	}))
	return f
}

func (f *fakeXumm) client(t *testing.T, key string) *Client {
	c, err := NewClient(f.URL+"/api/v1/", key, "secret")
	if err != nil {
		t.Fatal(err)
	}
	c.PollInterval = time.Millisecond
	return c
}

func TestSubmit(t *testing.T) {
	f := newFakeXumm(t)
	defer f.Close()
	c := f.client(t, "key")

	payment, err := tx.NewPayment(tx.SetDestination("rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"), tx.SetAmount("1"))
	if err != nil {
		t.Fatal(err)
	}
	req := Request{
		Options: RequestOptions{XrplAccount: "rsoLo2S1kiGeCcn6hCUXVrCpGMWLrRrLZz", Referer: "https://example.com/tx"},
		Payload: *NewPayload(payment, 5).Instruct("pay"),
	}

	created, err := c.Submit(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if created.UUID != testID {
		t.Errorf("unexpected uuid %q", created.UUID)
	}
	if f.posted.TxJSON.String("Account") != "rsoLo2S1kiGeCcn6hCUXVrCpGMWLrRrLZz" {
		t.Errorf("expected account pinned, got %v", f.posted.TxJSON)
	}
	if f.posted.Options == nil || f.posted.Options.Expire != 5 || f.posted.Options.ReturnURL.Web != "https://example.com/tx?payloadId={id}" {
		t.Errorf("unexpected options %+v", f.posted.Options)
	}
	if f.posted.CustomMeta.Instruction != "pay" {
		t.Errorf("unexpected custom_meta %+v", f.posted.CustomMeta)
	}
	if payment.Has("Account") {
		t.Error("caller's transaction modified")
	}
}

func TestSubmitError(t *testing.T) {
	f := newFakeXumm(t)
	defer f.Close()
	c := f.client(t, "wrong")

	_, err := c.Submit(context.Background(), *SignIn(""))
	e, ok := err.(*ErrorResponse)
	if !ok {
		t.Fatalf("expected ErrorResponse, got %v", err)
	}
	if e.Err.Code != 812 {
		t.Errorf("unexpected code %d", e.Err.Code)
	}

	_, err = c.Submit(context.Background(), Request{})
	if err == nil {
		t.Error("expected error for empty payload")
	}
}

func TestPrepareIssuing(t *testing.T) {
	req, err := Donation("rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B", "10", nil, "rsoLo2S1kiGeCcn6hCUXVrCpGMWLrRrLZz", "")
	if err != nil {
		t.Fatal(err)
	}
	p, err := Prepare(*req)
	if err != nil {
		t.Fatal(err)
	}
	if p.TxJSON.Has("Account") {
		t.Error("donation should not pin the account")
	}
	if p.Instruction() != "Thank you for your donation!" || p.CustomMeta.Blob["isDonation"] != true {
		t.Errorf("unexpected custom_meta %+v", p.CustomMeta)
	}
	if p.TxJSON.String("Amount") != "10000000" {
		t.Errorf("unexpected amount %v", p.TxJSON["Amount"])
	}

	p, err = Prepare(*SignIn("https://example.com/?a=b"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Options.ReturnURL.Web != "https://example.com/?a=b&payloadId={id}" {
		t.Errorf("unexpected return url %q", p.Options.ReturnURL.Web)
	}
}

func TestWait(t *testing.T) {
	f := newFakeXumm(t)
	defer f.Close()
	c := f.client(t, "key")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := c.Submit(ctx, *SignIn(""))
	if err != nil {
		t.Fatal(err)
	}
	status, err := c.Wait(ctx, created)
	if err != nil {
		t.Fatal(err)
	}
	if !status.Meta.Signed {
		t.Errorf("expected signed, got %+v", status.Meta)
	}
	if atomic.LoadInt32(&f.gets) != 1 {
		t.Errorf("expected a single GET after the feed, got %d", f.gets)
	}
}

func TestWaitPolls(t *testing.T) {
	f := newFakeXumm(t)
	defer f.Close()
	atomic.StoreInt32(&f.resolved, 3)
	c := f.client(t, "key")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// no status feed here
	created := &Created{UUID: testID, Refs: Refs{WebsocketStatus: "ws" + strings.TrimPrefix(f.URL, "http") + "/nowhere"}}
	status, err := c.Wait(ctx, created)
	if err != nil {
		t.Fatal(err)
	}
	if !status.Done() {
		t.Error("expected payload done")
	}
	if n := atomic.LoadInt32(&f.gets); n != 3 {
		t.Errorf("expected 3 polls, got %d", n)
	}
}

func TestValidate(t *testing.T) {
	f := newFakeXumm(t)
	defer f.Close()
	c := f.client(t, "key")

	tv, err := c.Validate(context.Background(), testID)
	if err != nil {
		t.Fatal(err)
	}
	if !tv.Success || tv.Testnet || tv.Network() != "live net" {
		t.Errorf("unexpected validation %+v", tv)
	}
	if tv.String() != "Your transaction was successful on live net." {
		t.Errorf("unexpected message %q", tv.String())
	}

	_, err = c.Validate(context.Background(), "not-a-uuid")
	if err == nil {
		t.Error("expected error for bad id")
	}

	if err := c.Cancel(context.Background(), testID); err != nil {
		t.Error(err)
	}
}

func TestValidation(t *testing.T) {
	for _, test := range []struct {
		name    string
		status  PayloadStatus
		success bool
		testnet bool
	}{
		{"rejected", PayloadStatus{Meta: Meta{Resolved: true}}, false, false},
		{"sign in", PayloadStatus{Meta: Meta{Signed: true}, Payload: Details{TxType: tx.SignIn}, Response: Response{Account: "rA"}}, true, false},
		{"failed on ledger", PayloadStatus{Meta: Meta{Signed: true}, Payload: Details{TxType: tx.Payment}, Response: Response{DispatchedResult: "tecUNFUNDED_PAYMENT"}}, false, false},
		{"testnet", PayloadStatus{Meta: Meta{Signed: true}, Payload: Details{TxType: tx.AccountSet}, Response: Response{DispatchedResult: "tesSUCCESS", DispatchedNodeType: "TESTNET"}}, true, true},
		{"testnet by url", PayloadStatus{Meta: Meta{Signed: true}, Payload: Details{TxType: tx.AccountSet}, Response: Response{DispatchedResult: "tesSUCCESS", DispatchedTo: "wss://testnet.xrpl-labs.com"}}, true, true},
		{"altnet by url", PayloadStatus{Meta: Meta{Signed: true}, Payload: Details{TxType: tx.AccountSet}, Response: Response{DispatchedResult: "tesSUCCESS", DispatchedTo: "wss://s.altnet.rippletest.net:51233"}}, true, true},
		{"mainnet host named dev", PayloadStatus{Meta: Meta{Signed: true}, Payload: Details{TxType: tx.AccountSet}, Response: Response{DispatchedResult: "tesSUCCESS", DispatchedTo: "wss://xrpl.devshop.com"}}, true, false},
		{"mainnet host named test", PayloadStatus{Meta: Meta{Signed: true}, Payload: Details{TxType: tx.AccountSet}, Response: Response{DispatchedResult: "tesSUCCESS", DispatchedTo: "wss://latest.example.com/testnet"}}, true, false},
	} {
		tv := Validation(&test.status)
		if tv.Success != test.success || tv.Testnet != test.testnet {
			t.Errorf("%s: got %+v", test.name, tv)
		}
	}
}

func TestConfirm(t *testing.T) {
	s := rippledtest.NewServer(t)
	defer s.Close()
	s.Handle("tx", rippledtest.Result([]byte(`{"Account":"rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B","TransactionType":"AccountSet","hash":"C6BF","meta":{"TransactionIndex":3,"TransactionResult":"tecNO_PERMISSION"},"validated":true}`)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ledger, err := rpc.Dial(ctx, s.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer ledger.Close()

	tv := &TransactionValidation{Type: tx.AccountSet, TxID: "C6BF", Result: "tesSUCCESS", Success: true}
	if err := Confirm(ctx, ledger, tv); err != nil {
		t.Fatal(err)
	}
	if tv.Success || tv.Result != "tecNO_PERMISSION" {
		t.Errorf("expected ledger result to win, got %+v", tv)
	}

	// nothing to confirm for a sign in
	tv = &TransactionValidation{Type: tx.SignIn, Account: "rA", Success: true}
	if err := Confirm(ctx, ledger, tv); err != nil || !tv.Success {
		t.Errorf("unexpected %v %+v", err, tv)
	}
	if n := len(s.Requests()); n != 1 {
		t.Errorf("expected 1 request, got %d", n)
	}
}
