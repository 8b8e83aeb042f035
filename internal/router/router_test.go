// internal/router/router_test.go
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/shoply/shop-backend/internal/config"
)

type RouterTestSuite struct {
	suite.Suite
	engine *gin.Engine
}

func (s *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment: "test",
		CORS: config.CORSConfig{
			AllowOrigins: []string{"*"},
		},
	}
	s.engine = Initialize(nil, cfg)
}

func (s *RouterTestSuite) request(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) TestHealthCheck() {
	w := s.request("GET", "/health")
	s.Equal(http.StatusOK, w.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("healthy", body["status"])
}

func (s *RouterTestSuite) TestListCategories() {
	w := s.request("GET", "/v1/categories")
	s.Equal(http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Categories []string `json:"categories"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.True(body.Success)
	s.Contains(body.Data.Categories, "Electronics")
	s.Contains(body.Data.Categories, "Home & Garden")
	s.Len(body.Data.Categories, 6)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	w := s.request("GET", "/v1/nope")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterTestSuite) TestBadProductID() {
	w := s.request("GET", "/v1/products/not-a-uuid")
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
