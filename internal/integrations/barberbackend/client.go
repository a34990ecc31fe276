package barberbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс для записи метрик запросов к бэкенду
type MetricsCollector interface {
	ObserveBackendRequest(operation string, status int, duration time.Duration)
}

// Client клиент для работы с бэкендом барбершопа.
// Bearer-токен непрозрачен для клиента и прикладывается к каждому запросу.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	collector  MetricsCollector
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда барбершопа.
// collector может быть nil, если метрики выключены.
func NewClient(baseURL string, token string, timeout time.Duration, collector MetricsCollector, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		collector: collector,
		log:       log,
	}
}

// FetchSchedule получает сохраненное расписание барбера.
// 404 транслируется в ErrScheduleNotFound - отсутствие расписания не ошибка,
// вызывающий код подставляет дефолтное.
func (c *Client) FetchSchedule(ctx context.Context, barberID int64) (*Horario, error) {
	reqURL := fmt.Sprintf("%s/barberos/%d/horario", c.baseURL, barberID)

	resp, err := c.do(ctx, http.MethodGet, "fetch_schedule", reqURL, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrScheduleNotFound
	default:
		return nil, c.unexpectedStatus("FetchSchedule", resp)
	}

	var envelope horarioEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: FetchSchedule - decode response: %v", ErrInvalidResponse, err)
	}

	if envelope.Horario == nil {
		// Бэкенд отвечает 200 с пустым телом, пока расписание не сохранено
		return nil, ErrScheduleNotFound
	}

	return envelope.Horario, nil
}

// FetchAppointments получает записи барбера ровно на один календарный день.
// Пустой список - валидный ответ.
func (c *Client) FetchAppointments(ctx context.Context, barberID int64, date time.Time) ([]Cita, error) {
	query := url.Values{}
	query.Set("barberoID", fmt.Sprintf("%d", barberID))
	query.Set("fecha", date.Format(domain.DateFormat))
	query.Set("all", "true")

	reqURL := fmt.Sprintf("%s/citas?%s", c.baseURL, query.Encode())

	resp, err := c.do(ctx, http.MethodGet, "fetch_appointments", reqURL, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus("FetchAppointments", resp)
	}

	var envelope citasEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: FetchAppointments - decode response: %v", ErrInvalidResponse, err)
	}

	return envelope.Citas, nil
}

// SaveSchedule сохраняет расписание барбера целиком, одним атомарным PUT.
// Частичных обновлений полей у бэкенда нет.
func (c *Client) SaveSchedule(ctx context.Context, barberID int64, horario *Horario) error {
	reqURL := fmt.Sprintf("%s/barberos/%d/horario", c.baseURL, barberID)

	body, err := json.Marshal(horario)
	if err != nil {
		return fmt.Errorf("%w: SaveSchedule - marshal body: %v", ErrInternal, err)
	}

	resp, err := c.do(ctx, http.MethodPut, "save_schedule", reqURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, string(respBody))
	default:
		return c.unexpectedStatus("SaveSchedule", resp)
	}
}

// do выполняет запрос с bearer-токеном и записывает метрики
func (c *Client) do(ctx context.Context, method, operation, reqURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		if c.collector != nil {
			c.collector.ObserveBackendRequest(operation, 0, duration)
		}
		c.log.Error("barberbackend: %s %s failed: %v", method, reqURL, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if c.collector != nil {
		c.collector.ObserveBackendRequest(operation, resp.StatusCode, duration)
	}

	return resp, nil
}

// unexpectedStatus оборачивает неожиданный статус-код в подходящую sentinel-ошибку
func (c *Client) unexpectedStatus(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: %s - status %d: %s", ErrUnavailable, operation, resp.StatusCode, string(body))
	}
	return fmt.Errorf("%w: %s - unexpected status %d: %s", ErrInvalidResponse, operation, resp.StatusCode, string(body))
}
