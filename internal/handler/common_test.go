package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go-event-management/internal/model"

	"github.com/gin-gonic/gin"
)

var (
	InvalidJSON = `{"invalid": json}`
)

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if raw, ok := data.(string); ok {
		return bytes.NewBufferString(raw)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser 測試用身份 middleware，跳過 token 驗證直接塞入請求者
func asUser(user model.AuthUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("authUser", user)
		c.Next()
	}
}
