package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/avikravi/card-inventory-app/internal/handlers"
	"github.com/avikravi/card-inventory-app/internal/logger"
	"github.com/avikravi/card-inventory-app/internal/middleware"
	"github.com/avikravi/card-inventory-app/internal/models"
	"github.com/avikravi/card-inventory-app/internal/services"
	"github.com/avikravi/card-inventory-app/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Asset{},
		&models.SaleRecord{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	assetService := services.NewAssetService(db)
	saleService := services.NewSaleService(db)
	reportService := services.NewReportService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	assetHandler := handlers.NewAssetHandler(assetService, saleService, auditService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Router, mirroring cmd/api
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/assets", assetHandler.ListAssets)
	router.POST("/assets", assetHandler.CreateAsset)
	router.PATCH("/assets/:asset_id", assetHandler.UpdateAsset)
	router.PUT("/assets/:asset_id", assetHandler.RecordSale)
	router.GET("/reports/summary", reportHandler.GetSummary)
	router.GET("/ledger", reportHandler.ListSales)

	return &testApp{DB: db, Router: router}
}

// doRequest performs an HTTP request against the test router and returns the recorder.
func (app *testApp) doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

// errorCode extracts the error code from an error envelope.
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error envelope, got %q", w.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}
