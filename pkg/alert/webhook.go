package alert

import (
	"context"
	"fmt"

	imrocreq "github.com/imroc/req/v3"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/config"
)

// Message 是发送到群聊机器人的消息结构体
type Message struct {
	Msgtype string `json:"msgtype"`
	Text    struct {
		Content string `json:"content"`
	} `json:"text"`
}

type webhookAlerter struct {
	req *imrocreq.Client
	url string
}

func newWebhookAlerter() alertHandlerInterface {
	return &webhookAlerter{
		req: imrocreq.C(),
		url: config.GetConfig().Webhook.URL,
	}
}

// SendMessageTo 发送文本消息到群聊，机器人频道不区分接收人
func (w *webhookAlerter) SendMessageTo(ctx context.Context, _ *model.UserAttribute, subject, body string) error {
	msg := Message{Msgtype: "text"}
	msg.Text.Content = subject + "\n" + body

	resp, err := w.req.R().
		SetContext(ctx).
		SetBodyJsonMarshal(msg).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("failed to send webhook request: %w", err)
	}
	if resp.IsErrorState() {
		return fmt.Errorf("webhook replied with status %s", resp.Status)
	}
	return nil
}
