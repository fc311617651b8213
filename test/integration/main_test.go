package integration_test

import (
	"encoding/json"
	"os"
	"sync"
	"testing"

	"freelancehub_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает общий тестовый сервер (создает при первом вызове)
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		globalTestServer = helpers.NewTestServer(t)
	})
	globalTestServer.ClearTables(t)
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}

// errorCode вытаскивает код ошибки из стандартного конверта
// {"error": {"code": ..., "domain": ..., "message": ...}}
func errorCode(t *testing.T, body string) string {
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("Не удалось распарсить конверт ошибки: %v (body: %s)", err, body)
	}
	return envelope.Error.Code
}

func unmarshalBody(t *testing.T, body string, dst interface{}) {
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		t.Fatalf("Не удалось распарсить JSON-ответ: %v (body: %s)", err, body)
	}
}
