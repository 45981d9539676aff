package meetlink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего провайдера видеовстреч
// Провайдер потребляется как непрозрачная возможность "создай встречу,
// верни ссылку" - внутренности календаря сервис не знает
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера видеовстреч
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateMeeting создает видеовстречу и возвращает ссылку для подключения
func (c *Client) CreateMeeting(ctx context.Context, req *CreateMeetingRequest) (*Meeting, error) {
	url := fmt.Sprintf("%s/internal/meetings", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: provider rejected meeting request", ErrInvalidResponse)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var meeting Meeting
	if err := json.NewDecoder(resp.Body).Decode(&meeting); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if meeting.JoinURL == "" {
		return nil, fmt.Errorf("%w: empty join URL", ErrInvalidResponse)
	}

	return &meeting, nil
}

// CreateMeetingWithGracefulDegradation создает видеовстречу с graceful degradation
// При любой недоступности провайдера возвращает ErrServiceDegraded - вызывающий
// продолжает бронирование с placeholder-ссылкой, бронь не теряется
func (c *Client) CreateMeetingWithGracefulDegradation(ctx context.Context, req *CreateMeetingRequest) (*Meeting, error) {
	meeting, err := c.CreateMeeting(ctx, req)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("MeetLink provider unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Successfully created meeting id=%s", meeting.ID)
	return meeting, nil
}
