package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/EconLab-ReservationService/pkg/metrics"
)

// maxErrorBody сколько байт ответа попадает в текст ошибки
const maxErrorBody = 512

// Client отправляет уведомления на адрес, заданный администратором
type Client struct {
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента webhook
func NewClient(timeout time.Duration, m Metrics, log Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: m,
		log:     log,
	}
}

// Send отправляет payload POST-запросом с JSON телом
func (c *Client) Send(ctx context.Context, url string, payload Payload) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrNotConfigured
	}

	err := c.send(ctx, url, payload)
	if err != nil {
		c.metrics.WebhookOutcome(metrics.WebhookFailure)
		c.log.Error("Webhook delivery failed: %v", err)
		return err
	}

	c.metrics.WebhookOutcome(metrics.WebhookSuccess)
	c.log.Info("Webhook delivered: %d numbers, %d cancelled ids", len(payload.Numbers), len(payload.CancelledIDs))
	return nil
}

func (c *Client) send(ctx context.Context, url string, payload Payload) error {
	if payload.Numbers == nil {
		payload.Numbers = []string{}
	}
	if payload.CancelledIDs == nil {
		payload.CancelledIDs = []string{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: HTTP %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(respBody))
	}

	return nil
}
