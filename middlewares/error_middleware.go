package middlewares

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"nutriscan/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// UseJSONFieldNames makes validation issues report json names instead of Go field names.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
}

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler(log logrus.FieldLogger, exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, body := renderError(err, exposeDetails)
		if status >= http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).Error("request failed")
		}
		c.JSON(status, body)
	}
}

func renderError(err error, exposeDetails bool) (int, gin.H) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		body := gin.H{"status": appErr.Kind(), "message": appErr.Message}
		if len(appErr.Issues) > 0 {
			body["errors"] = appErr.Issues
		}
		return appErr.Status, body
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]utils.Issue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, utils.Issue{Field: fe.Field(), Message: issueMessage(fe)})
		}
		return http.StatusBadRequest, gin.H{"status": "fail", "message": "validation failed", "errors": issues}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, gin.H{"status": "fail", "message": "invalid JSON body"}
	}

	body := gin.H{"status": "error", "message": "Something went wrong"}
	if exposeDetails {
		body["message"] = err.Error()
	}
	return http.StatusInternalServerError, body
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
