package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"freshcart/internal/misc"
	"freshcart/internal/model"

	"github.com/pkg/errors"
)

const telegramAPIBase = "https://api.telegram.org/bot"

type telegramSendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendVerificationCode relays a login code for phone to the operator
// chat. The code is short-lived, so delivery latency matters more than
// delivery guarantees here.
func (c Client) SendVerificationCode(phone string, code string) error {
	text := fmt.Sprintf("Login code for %s\n\n<code>%s</code>\n\nValid for 5 minutes.", phone, code)
	return c.sendMessage(text)
}

// NotifyOrder alerts the operator chat about an order reaching status.
func (c Client) NotifyOrder(o model.Order, status model.OrderStatus) error {
	text := fmt.Sprintf("Order <b>%s</b>\nStatus: <b>%s</b>\nTotal: %d\nAddress: %s",
		o.ID, status, o.TotalAmount, o.DeliveryAddress)
	return c.sendMessage(text)
}

func (c Client) sendMessage(text string) error {
	if c.BotToken == "" || c.AdminChatID == 0 {
		return ErrNotConfigured
	}

	reqBody, err := json.Marshal(telegramSendMessageRequest{
		ChatID:    c.AdminChatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return errors.Wrap(err, "error marshalling Telegram sendMessage request")
	}

	apiURL := telegramAPIBase + c.BotToken + "/sendMessage"
	req, err := newRequest(http.MethodPost, apiURL, bytes.NewReader(reqBody))
	if err != nil {
		return errors.Wrap(err, "error creating Telegram sendMessage request")
	}
	req.Header.Set("Content-Type", "application/json")

	c.Logger.Debugf("sendMessage: Sending Telegram message to chat: %d", c.AdminChatID)
	resp, err := c.Do(req)
	if err != nil {
		return errors.Wrap(err, "error doing Telegram sendMessage request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(http.MaxBytesReader(nil, resp.Body, 64*1024))
	if err != nil {
		return errors.Wrapf(err, "error reading Telegram response body, status: %s", resp.Status)
	}
	tgResp := telegramResponse{}
	if err = json.Unmarshal(body, &tgResp); err != nil {
		return errors.Wrapf(err, "error unmarshalling Telegram response, status: %s, body:\n%s",
			resp.Status, misc.BytesLimit(body, 2000))
	}
	if !tgResp.OK {
		return errors.Errorf("Telegram sendMessage failed, status: %s, description: %s",
			resp.Status, tgResp.Description)
	}
	return nil
}
