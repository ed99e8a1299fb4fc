package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"go-event-management/config"
	"go-event-management/pkg/apperrors"
	"go-event-management/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// BindJsonFields 綁定失敗時回傳欄位層級的錯誤清單，
// 格式 {success, message: "Validation failed", errors: [{field, message}]}
func BindJsonFields(c *gin.Context, obj interface{}) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrs := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			name := jsonFieldName(obj, fe.StructField())
			fieldErrs = append(fieldErrs, apperrors.FieldError{
				Field:   name,
				Message: fieldMessage(name, fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
		return err
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Invalid request format",
	})
	return err
}

func fieldMessage(name string, fe validator.FieldError) string {
	// isPrivate 必須是明確的布林值，不接受缺漏或 truthy/falsy
	if name == "isPrivate" && fe.Tag() == "required" {
		return "Must be a boolean value"
	}

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email"
	case "gt", "min":
		return name + " must be a positive integer"
	case "oneof":
		return name + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return name + " is invalid"
	}
}

func jsonFieldName(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if field, ok := t.FieldByName(structField); ok {
		if tag := strings.Split(field.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
			return tag
		}
	}
	return structField
}

// respondError 依錯誤分類對應 HTTP 狀態碼，不做錯誤訊息字串比對
func respondError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var status int
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation, apperrors.KindBusinessRule:
		log.Warn("Request rejected")
		status = http.StatusBadRequest
	case apperrors.KindNotFound:
		log.Warn("Resource not found")
		status = http.StatusNotFound
	case apperrors.KindConflict:
		log.Warn("Conflict")
		status = http.StatusConflict
	case apperrors.KindAuthorization:
		log.Warn("Forbidden")
		status = http.StatusForbidden
	default:
		log.Error("Unexpected error")
		body := gin.H{
			"success": false,
			"message": "Internal server error",
		}
		// 非正式環境回傳錯誤細節方便除錯
		if config.AppConfig == nil || !config.AppConfig.IsProduction() {
			body["detail"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	c.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}
