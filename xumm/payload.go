package xumm

import (
	"github.com/xumm-community/xc/tx"
)

// Payload is a transaction request for the signing service.
type Payload struct {
	TxJSON     tx.TxJSON   `json:"txjson"`
	Options    *Options    `json:"options,omitempty"`
	CustomMeta *CustomMeta `json:"custom_meta,omitempty"`
	UserToken  string      `json:"user_token,omitempty"`
}

type Options struct {
	Submit    *bool      `json:"submit,omitempty"`
	Multisign bool       `json:"multisign,omitempty"`
	Expire    int        `json:"expire,omitempty"` // minutes
	ReturnURL *ReturnURL `json:"return_url,omitempty"`
}

type ReturnURL struct {
	App string `json:"app,omitempty"`
	Web string `json:"web,omitempty"`
}

type CustomMeta struct {
	Identifier  string                 `json:"identifier,omitempty"`
	Blob        map[string]interface{} `json:"blob,omitempty"`
	Instruction string                 `json:"instruction,omitempty"`
}

// NewPayload wraps a transaction.  Expire is in minutes, zero for the
// service default.
func NewPayload(t tx.TxJSON, expire int) *Payload {
	p := &Payload{TxJSON: t}
	if expire > 0 {
		p.Options = &Options{Expire: expire}
	}
	return p
}

// Instruct sets the instruction shown to the signer.
func (p *Payload) Instruct(instruction string) *Payload {
	if p.CustomMeta == nil {
		p.CustomMeta = &CustomMeta{}
	}
	p.CustomMeta.Instruction = instruction
	return p
}

func (p *Payload) Instruction() string {
	if p.CustomMeta == nil {
		return ""
	}
	return p.CustomMeta.Instruction
}

// Request is a payload together with the context it was made in.
// Commands write Requests to stdout, and "submit" reads them back.
type Request struct {
	Options RequestOptions `json:"options"`
	Payload Payload        `json:"payload"`
}

type RequestOptions struct {
	// When set, only this account may sign.
	XrplAccount string `json:"xrplAccount,omitempty"`
	// When set, the signer is sent back here, with "?payloadId=<uuid>".
	Referer string `json:"referer,omitempty"`
	// Issuing requests are raised by the application itself, such as
	// donations.  Any account may sign them, so XrplAccount is not
	// pinned.
	Issuing bool `json:"issuing,omitempty"`
}

// Created is the response to a new payload.
// {"uuid":"f94fc5d2-0dfe-4123-9182-a9f3b5addc8a","next":{"always":"https://xumm.app/sign/f94fc5d2-0dfe-4123-9182-a9f3b5addc8a"},"refs":{"qr_png":"https://xumm.app/sign/f94fc5d2-0dfe-4123-9182-a9f3b5addc8a_q.png","websocket_status":"wss://xumm.app/sign/f94fc5d2-0dfe-4123-9182-a9f3b5addc8a"},"pushed":false}
type Created struct {
	UUID   string `json:"uuid"`
	Next   Next   `json:"next"`
	Refs   Refs   `json:"refs"`
	Pushed bool   `json:"pushed"`
}

type Next struct {
	Always string `json:"always"`
}

type Refs struct {
	QRPNG           string `json:"qr_png"`
	WebsocketStatus string `json:"websocket_status"`
}

// PayloadStatus is the state of a payload, as returned by GET.
type PayloadStatus struct {
	Meta       Meta       `json:"meta"`
	Payload    Details    `json:"payload"`
	Response   Response   `json:"response"`
	CustomMeta CustomMeta `json:"custom_meta"`
}

type Meta struct {
	Exists    bool   `json:"exists"`
	UUID      string `json:"uuid"`
	Submit    bool   `json:"submit"`
	Resolved  bool   `json:"resolved"`
	Signed    bool   `json:"signed"`
	Cancelled bool   `json:"cancelled"`
	Expired   bool   `json:"expired"`
	AppOpened bool   `json:"app_opened"`

	ReturnURLWeb string `json:"return_url_web"`
}

type Details struct {
	TxType    string `json:"tx_type"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
}

type Response struct {
	Hex                string `json:"hex"`
	TxID               string `json:"txid"`
	ResolvedAt         string `json:"resolved_at"`
	DispatchedTo       string `json:"dispatched_to"`
	DispatchedResult   string `json:"dispatched_result"`
	DispatchedNodeType string `json:"dispatched_nodetype"`
	Account            string `json:"account"`
}

// Done reports whether the payload will change no further.
func (s *PayloadStatus) Done() bool {
	return s.Meta.Resolved || s.Meta.Expired || s.Meta.Cancelled
}
