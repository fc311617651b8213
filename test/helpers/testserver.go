package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"freelancehub_backend/internal/app"
	"freelancehub_backend/internal/config"
)

// TestServer - запущенное приложение поверх тестовой БД
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// TestConfig собирает конфигурацию для тестового окружения
func TestConfig() *config.Config {
	var cfg config.Config
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "my_super_secret_key_for_tests_12345"
	cfg.JWT.TTL = 60
	cfg.Payments.PlatformFeeRate = 0.10
	cfg.Payments.Currency = "INR"
	cfg.Notifications.RetentionDays = 30
	cfg.RateLimit.PerSecond = 1000
	cfg.RateLimit.Burst = 1000
	return &cfg
}

// NewTestServer поднимает httptest-сервер с роутером приложения
// поверх свежей in-memory БД
func NewTestServer(t *testing.T) *TestServer {
	cfg := TestConfig()
	config.AppConfig = cfg

	db := NewTestDB(t)
	router, _ := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables очищает все таблицы между тестами
func (ts *TestServer) ClearTables(t *testing.T) {
	tables := []string{"messages", "reviews", "transactions", "notifications", "bids", "jobs", "profiles"}
	for _, table := range tables {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Не удалось очистить таблицу %s: %v", table, err)
		}
	}
}

// SendRequest шлет JSON-запрос на тестовый сервер и возвращает ответ
// вместе с прочитанным телом
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader = nil
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
